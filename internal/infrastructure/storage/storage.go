// Package storage encapsula o bucket público de logos no Supabase Storage.
package storage

import (
	"fmt"
	"io"
	"os"

	storage_go "github.com/supabase-community/storage-go"
)

// Client fala com um bucket do Supabase Storage usando a service key.
type Client struct {
	client *storage_go.Client
	bucket string
}

// NewFromEnv monta o cliente a partir de SUPABASE_URL e SUPABASE_SERVICE_KEY.
func NewFromEnv(bucket string) (*Client, error) {
	url := os.Getenv("SUPABASE_URL")
	serviceKey := os.Getenv("SUPABASE_SERVICE_KEY")
	if url == "" || serviceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be defined in the environment")
	}
	return New(url, serviceKey, bucket), nil
}

func New(projectURL, serviceKey, bucket string) *Client {
	return &Client{
		client: storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil),
		bucket: bucket,
	}
}

// Upload envia o blob e retorna a URL pública do objeto.
func (c *Client) Upload(path, contentType string, body io.Reader) (string, error) {
	_, err := c.client.UploadFile(c.bucket, path, body, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", path, err)
	}

	return c.client.GetPublicUrl(c.bucket, path).SignedURL, nil
}

// Remove apaga o objeto do bucket.
func (c *Client) Remove(path string) error {
	if _, err := c.client.RemoveFile(c.bucket, []string{path}); err != nil {
		return fmt.Errorf("failed to remove %q: %w", path, err)
	}
	return nil
}

package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
)

type fakeSettingsRepo struct {
	settings entities.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (entities.Settings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, fields map[string]interface{}) (entities.Settings, error) {
	for key, value := range fields {
		var url *string
		if value != nil {
			s := value.(string)
			url = &s
		}
		switch key {
		case "logo":
			f.settings.Logo = url
		case "navbar_logo":
			f.settings.NavbarLogo = url
		}
	}
	return f.settings, nil
}

type fakeBlobStore struct {
	uploaded map[string]string
	removed  []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{uploaded: map[string]string{}}
}

func (f *fakeBlobStore) Upload(path, contentType string, body io.Reader) (string, error) {
	content, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploaded[path] = string(content)
	return "https://cdn.example.com/storage/" + path, nil
}

func (f *fakeBlobStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	delete(f.uploaded, path)
	return nil
}

func TestUploadLogo(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entities.Settings{ID: "s1"}}
	blobStore := newFakeBlobStore()
	uc := NewSettingsUseCase(repo, blobStore)

	url, err := uc.UploadLogo(context.Background(), "logo", "marca.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.Contains(t, url, "https://cdn.example.com/storage/logos/logo_")
	require.True(t, strings.HasSuffix(url, ".png"))

	require.Len(t, blobStore.uploaded, 1)
	require.NotNil(t, repo.settings.Logo)
	require.Equal(t, url, *repo.settings.Logo)
}

func TestUploadLogo_InvalidKind(t *testing.T) {
	uc := NewSettingsUseCase(&fakeSettingsRepo{}, newFakeBlobStore())

	_, err := uc.UploadLogo(context.Background(), "favicon", "x.png", "image/png", strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalidLogoKind)
}

func TestRemoveLogo(t *testing.T) {
	current := "https://cdn.example.com/storage/logos/navbar_logo_abc.png"
	repo := &fakeSettingsRepo{settings: entities.Settings{ID: "s1", NavbarLogo: &current}}
	blobStore := newFakeBlobStore()
	uc := NewSettingsUseCase(repo, blobStore)

	require.NoError(t, uc.RemoveLogo(context.Background(), "navbar_logo"))
	require.Equal(t, []string{"logos/navbar_logo_abc.png"}, blobStore.removed)
	require.Nil(t, repo.settings.NavbarLogo)
}

func TestRemoveLogo_NothingSet(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entities.Settings{ID: "s1"}}
	blobStore := newFakeBlobStore()
	uc := NewSettingsUseCase(repo, blobStore)

	// Sem logo gravado, não há objeto para remover no bucket
	require.NoError(t, uc.RemoveLogo(context.Background(), "logo"))
	require.Empty(t, blobStore.removed)
}

func TestUpdateSettings_PartialFields(t *testing.T) {
	repo := &fakeSettingsRepo{settings: entities.Settings{ID: "s1"}}
	uc := NewSettingsUseCase(repo, newFakeBlobStore())

	logo := "https://cdn.example.com/storage/logos/logo_x.png"
	settings, err := uc.UpdateSettings(context.Background(), &logo, nil)
	require.NoError(t, err)
	require.NotNil(t, settings.Logo)
	require.Equal(t, logo, *settings.Logo)
	require.Nil(t, settings.NavbarLogo)
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/crescerhub/diagnostico-api/internal/domain/repositories"
)

// ErrInvalidLogoKind indica um tipo de logo fora de logo/navbar_logo.
var ErrInvalidLogoKind = errors.New("tipo de logo inválido")

// BlobStore é o colaborador de armazenamento de arquivos: grava bytes e
// devolve uma URL pública.
type BlobStore interface {
	Upload(path, contentType string, body io.Reader) (string, error)
	Remove(path string) error
}

// SettingsUseCase cuida das configurações de identidade visual e do ciclo
// de upload/remoção de logos.
type SettingsUseCase interface {
	GetSettings(ctx context.Context) (entities.Settings, error)
	UpdateSettings(ctx context.Context, logo, navbarLogo *string) (entities.Settings, error)
	UploadLogo(ctx context.Context, kind, filename, contentType string, body io.Reader) (string, error)
	RemoveLogo(ctx context.Context, kind string) error
}

type settingsUseCase struct {
	settingsRepo repositories.SettingsRepository
	blobStore    BlobStore
}

func NewSettingsUseCase(settingsRepo repositories.SettingsRepository, blobStore BlobStore) SettingsUseCase {
	return &settingsUseCase{settingsRepo, blobStore}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (entities.Settings, error) {
	return uc.settingsRepo.Get(ctx)
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, logo, navbarLogo *string) (entities.Settings, error) {
	fields := map[string]interface{}{}
	if logo != nil {
		fields["logo"] = *logo
	}
	if navbarLogo != nil {
		fields["navbar_logo"] = *navbarLogo
	}
	if len(fields) == 0 {
		return uc.settingsRepo.Get(ctx)
	}
	return uc.settingsRepo.Update(ctx, fields)
}

// UploadLogo grava o arquivo no bucket com um nome único e aponta a
// configuração correspondente para a URL pública resultante.
func (uc *settingsUseCase) UploadLogo(ctx context.Context, kind, filename, contentType string, body io.Reader) (string, error) {
	if err := validateLogoKind(kind); err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("logos/%s_%s%s", kind, uuid.NewString(), path.Ext(filename))

	publicURL, err := uc.blobStore.Upload(objectPath, contentType, body)
	if err != nil {
		return "", err
	}

	if _, err := uc.settingsRepo.Update(ctx, map[string]interface{}{kind: publicURL}); err != nil {
		return "", err
	}

	return publicURL, nil
}

// RemoveLogo apaga o objeto do bucket (se houver) e limpa a URL gravada.
func (uc *settingsUseCase) RemoveLogo(ctx context.Context, kind string) error {
	if err := validateLogoKind(kind); err != nil {
		return err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	var current *string
	if kind == "logo" {
		current = settings.Logo
	} else {
		current = settings.NavbarLogo
	}

	if current != nil && *current != "" {
		// O nome do objeto é o último segmento da URL pública
		segments := strings.Split(*current, "/")
		objectName := segments[len(segments)-1]
		if err := uc.blobStore.Remove("logos/" + objectName); err != nil {
			return err
		}
	}

	_, err = uc.settingsRepo.Update(ctx, map[string]interface{}{kind: nil})
	return err
}

func validateLogoKind(kind string) error {
	if kind != "logo" && kind != "navbar_logo" {
		return fmt.Errorf("%w: %q", ErrInvalidLogoKind, kind)
	}
	return nil
}

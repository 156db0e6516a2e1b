package repositories

import (
	"context"
	"errors"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, fields map[string]interface{}) (entities.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db}
}

// Get retorna a linha única de configurações, criando-a no primeiro acesso.
func (r *settingsRepository) Get(ctx context.Context) (entities.Settings, error) {
	var settings entities.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entities.Settings{ID: uuid.NewString()}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return entities.Settings{}, err
		}
		return settings, nil
	}
	return settings, err
}

func (r *settingsRepository) Update(ctx context.Context, fields map[string]interface{}) (entities.Settings, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}

	err = r.db.WithContext(ctx).
		Model(&entities.Settings{}).
		Where("id = ?", settings.ID).
		Updates(fields).Error
	if err != nil {
		return entities.Settings{}, err
	}

	return r.Get(ctx)
}

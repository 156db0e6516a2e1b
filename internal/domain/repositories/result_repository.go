package repositories

import (
	"context"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Insert(ctx context.Context, result *entities.DiagnosticResult) error
	FindByOwner(ctx context.Context, ownerID string) ([]entities.DiagnosticResult, error)
	FindByID(ctx context.Context, id string) (entities.DiagnosticResult, error)
	Delete(ctx context.Context, id string) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db}
}

func (r *resultRepository) Insert(ctx context.Context, result *entities.DiagnosticResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// FindByOwner retorna os resultados do dono, mais recentes primeiro.
// Sem paginação: o volume por usuário é pequeno.
func (r *resultRepository) FindByOwner(ctx context.Context, ownerID string) ([]entities.DiagnosticResult, error) {
	var results []entities.DiagnosticResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) FindByID(ctx context.Context, id string) (entities.DiagnosticResult, error) {
	var result entities.DiagnosticResult
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	return result, err
}

// Delete é idempotente: excluir um id inexistente não é erro.
func (r *resultRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.DiagnosticResult{}).Error
}

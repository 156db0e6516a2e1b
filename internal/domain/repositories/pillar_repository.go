package repositories

import (
	"context"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"gorm.io/gorm"
)

type PillarRepository interface {
	FindAll(ctx context.Context) ([]entities.Pillar, error)
	FindByID(ctx context.Context, id string) (entities.Pillar, error)
	Create(ctx context.Context, pillar *entities.Pillar) error
	Update(ctx context.Context, id, name string, order int) error
	Delete(ctx context.Context, id string) error
	AddQuestion(ctx context.Context, question *entities.Question) error
	UpdateQuestion(ctx context.Context, id string, question entities.Question) error
	DeleteQuestion(ctx context.Context, id string) error
}

type pillarRepository struct {
	db *gorm.DB
}

func NewPillarRepository(db *gorm.DB) PillarRepository {
	return &pillarRepository{db}
}

// FindAll retorna todos os pilares ordenados, com as perguntas de cada um
// já carregadas na ordem de exibição.
func (r *pillarRepository) FindAll(ctx context.Context) ([]entities.Pillar, error) {
	var pillars []entities.Pillar
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Order(`"order" ASC`).
		Find(&pillars).Error
	return pillars, err
}

func (r *pillarRepository) FindByID(ctx context.Context, id string) (entities.Pillar, error) {
	var pillar entities.Pillar
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		First(&pillar, "id = ?", id).Error
	return pillar, err
}

func (r *pillarRepository) Create(ctx context.Context, pillar *entities.Pillar) error {
	return r.db.WithContext(ctx).Create(pillar).Error
}

func (r *pillarRepository) Update(ctx context.Context, id, name string, order int) error {
	return r.db.WithContext(ctx).
		Model(&entities.Pillar{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"order": order,
		}).Error
}

// Delete remove o pilar e suas perguntas na mesma transação.
func (r *pillarRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pillar_id = ?", id).Delete(&entities.Question{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Pillar{}).Error
	})
}

func (r *pillarRepository) AddQuestion(ctx context.Context, question *entities.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *pillarRepository) UpdateQuestion(ctx context.Context, id string, question entities.Question) error {
	return r.db.WithContext(ctx).
		Model(&entities.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"text":            question.Text,
			"points":          question.Points,
			"positive_answer": question.PositiveAnswer,
			"answer_type":     question.AnswerType,
			"order":           question.Order,
		}).Error
}

func (r *pillarRepository) DeleteQuestion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Question{}).Error
}

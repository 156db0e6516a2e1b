package usecases

import (
	"context"
	"time"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/crescerhub/diagnostico-api/internal/domain/repositories"
	"github.com/crescerhub/diagnostico-api/internal/infrastructure/cache"
)

const (
	pillarsCacheKey = "pillars"
	pillarsCacheTTL = time.Minute
)

// PillarUseCase cobre a leitura dos pilares pelo questionário e o CRUD do
// Backoffice. Toda mutação invalida o cache: quem lê em seguida busca de
// novo no banco em vez de depender de notificação.
type PillarUseCase interface {
	GetPillars(ctx context.Context) ([]entities.Pillar, error)
	CreatePillar(ctx context.Context, name string, order int) (entities.Pillar, error)
	UpdatePillar(ctx context.Context, id, name string, order int) error
	DeletePillar(ctx context.Context, id string) error
	AddQuestion(ctx context.Context, pillarID string, question entities.Question) (entities.Question, error)
	UpdateQuestion(ctx context.Context, id string, question entities.Question) error
	DeleteQuestion(ctx context.Context, id string) error
}

type pillarUseCase struct {
	pillarRepo repositories.PillarRepository
	cache      *cache.Cache
}

func NewPillarUseCase(pillarRepo repositories.PillarRepository, c *cache.Cache) PillarUseCase {
	return &pillarUseCase{pillarRepo, c}
}

func (uc *pillarUseCase) GetPillars(ctx context.Context) ([]entities.Pillar, error) {
	if cached, found := uc.cache.Get(pillarsCacheKey); found {
		return cached.([]entities.Pillar), nil
	}

	pillars, err := uc.pillarRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(pillarsCacheKey, pillars, pillarsCacheTTL)
	return pillars, nil
}

func (uc *pillarUseCase) CreatePillar(ctx context.Context, name string, order int) (entities.Pillar, error) {
	pillar := entities.Pillar{
		Name:      name,
		Order:     order,
		Questions: []entities.Question{},
	}
	if err := uc.pillarRepo.Create(ctx, &pillar); err != nil {
		return entities.Pillar{}, err
	}

	uc.cache.Delete(pillarsCacheKey)
	return pillar, nil
}

func (uc *pillarUseCase) UpdatePillar(ctx context.Context, id, name string, order int) error {
	if err := uc.pillarRepo.Update(ctx, id, name, order); err != nil {
		return err
	}
	uc.cache.Delete(pillarsCacheKey)
	return nil
}

func (uc *pillarUseCase) DeletePillar(ctx context.Context, id string) error {
	if err := uc.pillarRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete(pillarsCacheKey)
	return nil
}

func (uc *pillarUseCase) AddQuestion(ctx context.Context, pillarID string, question entities.Question) (entities.Question, error) {
	// Garante que o pilar existe antes de pendurar a pergunta nele
	if _, err := uc.pillarRepo.FindByID(ctx, pillarID); err != nil {
		return entities.Question{}, err
	}

	question.PillarID = pillarID
	if err := uc.pillarRepo.AddQuestion(ctx, &question); err != nil {
		return entities.Question{}, err
	}

	uc.cache.Delete(pillarsCacheKey)
	return question, nil
}

func (uc *pillarUseCase) UpdateQuestion(ctx context.Context, id string, question entities.Question) error {
	if err := uc.pillarRepo.UpdateQuestion(ctx, id, question); err != nil {
		return err
	}
	uc.cache.Delete(pillarsCacheKey)
	return nil
}

func (uc *pillarUseCase) DeleteQuestion(ctx context.Context, id string) error {
	if err := uc.pillarRepo.DeleteQuestion(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete(pillarsCacheKey)
	return nil
}

package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crescerhub/diagnostico-api/internal/application/report"
	"github.com/crescerhub/diagnostico-api/internal/application/scoring"
	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/crescerhub/diagnostico-api/internal/domain/repositories"
	"github.com/crescerhub/diagnostico-api/internal/infrastructure/cache"
)

var (
	// ErrUnauthenticated indica tentativa de salvar sem identidade autenticada.
	ErrUnauthenticated = errors.New("usuário não autenticado")
	// ErrResultNotFound cobre tanto id inexistente quanto resultado de outro dono.
	ErrResultNotFound = errors.New("resultado não encontrado")
)

const resultsCacheTTL = 30 * time.Second

// DiagnosticUseCase orquestra o ciclo de vida de um diagnóstico:
// calcular, persistir, listar, excluir e projetar para exibição.
type DiagnosticUseCase interface {
	Save(ctx context.Context, ownerID string, companyData entities.CompanyData, answers entities.AnswerMap) (entities.DiagnosticResult, error)
	List(ctx context.Context, ownerID string) ([]entities.DiagnosticResult, error)
	Get(ctx context.Context, ownerID, id string) (entities.DiagnosticResult, error)
	Delete(ctx context.Context, ownerID, id string) error
	Report(ctx context.Context, ownerID, id string) (report.Report, error)
}

type diagnosticUseCase struct {
	pillarRepo repositories.PillarRepository
	resultRepo repositories.ResultRepository
	cache      *cache.Cache
	now        func() time.Time
}

func NewDiagnosticUseCase(pillarRepo repositories.PillarRepository, resultRepo repositories.ResultRepository, c *cache.Cache) DiagnosticUseCase {
	return &diagnosticUseCase{
		pillarRepo: pillarRepo,
		resultRepo: resultRepo,
		cache:      c,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Save calcula a pontuação sobre os pilares vigentes e persiste o resultado
// completo atribuído ao dono autenticado. Falha de persistência sobe
// inalterada para o chamador decidir se repete; nada parcial é considerado
// salvo.
func (uc *diagnosticUseCase) Save(ctx context.Context, ownerID string, companyData entities.CompanyData, answers entities.AnswerMap) (entities.DiagnosticResult, error) {
	if ownerID == "" {
		return entities.DiagnosticResult{}, ErrUnauthenticated
	}

	pillars, err := uc.pillarRepo.FindAll(ctx)
	if err != nil {
		return entities.DiagnosticResult{}, err
	}

	score := scoring.Compute(answers, pillars)

	result := entities.DiagnosticResult{
		ID:               uuid.NewString(),
		UserID:           ownerID,
		CompanyData:      companyData,
		Answers:          answers,
		PillarScores:     score.PillarScores,
		TotalScore:       score.TotalScore,
		MaxPossibleScore: score.MaxPossibleScore,
		PercentageScore:  score.PercentageScore,
		CreatedAt:        uc.now(),
	}

	if err := uc.resultRepo.Insert(ctx, &result); err != nil {
		return entities.DiagnosticResult{}, err
	}

	// A próxima listagem é reconstruída a partir do banco, não do resultado
	// em memória, tolerando escritas concorrentes de outras sessões.
	uc.cache.Delete(resultsCacheKey(ownerID))

	return result, nil
}

// List retorna os resultados do dono, mais recentes primeiro.
func (uc *diagnosticUseCase) List(ctx context.Context, ownerID string) ([]entities.DiagnosticResult, error) {
	key := resultsCacheKey(ownerID)
	if cached, found := uc.cache.Get(key); found {
		return cached.([]entities.DiagnosticResult), nil
	}

	results, err := uc.resultRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(key, results, resultsCacheTTL)
	return results, nil
}

func (uc *diagnosticUseCase) Get(ctx context.Context, ownerID, id string) (entities.DiagnosticResult, error) {
	result, err := uc.resultRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DiagnosticResult{}, ErrResultNotFound
	}
	if err != nil {
		return entities.DiagnosticResult{}, err
	}
	if result.UserID != ownerID {
		return entities.DiagnosticResult{}, ErrResultNotFound
	}
	return result, nil
}

// Delete exclui um resultado do dono. Idempotente: excluir um id já
// inexistente não é erro.
func (uc *diagnosticUseCase) Delete(ctx context.Context, ownerID, id string) error {
	result, err := uc.resultRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if result.UserID != ownerID {
		return ErrResultNotFound
	}

	if err := uc.resultRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Delete(resultsCacheKey(ownerID))
	return nil
}

// Report projeta um resultado na estrutura plana consumida pela tela de
// resultados e pela exportação em PDF.
func (uc *diagnosticUseCase) Report(ctx context.Context, ownerID, id string) (report.Report, error) {
	result, err := uc.Get(ctx, ownerID, id)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(result, uc.now())
}

func resultsCacheKey(ownerID string) string {
	return "results:" + ownerID
}

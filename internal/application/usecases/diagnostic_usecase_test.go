package usecases

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/crescerhub/diagnostico-api/internal/infrastructure/cache"
)

type fakePillarRepo struct {
	pillars []entities.Pillar
}

func (f *fakePillarRepo) FindAll(ctx context.Context) ([]entities.Pillar, error) {
	return f.pillars, nil
}

func (f *fakePillarRepo) FindByID(ctx context.Context, id string) (entities.Pillar, error) {
	for _, p := range f.pillars {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Pillar{}, gorm.ErrRecordNotFound
}

func (f *fakePillarRepo) Create(ctx context.Context, pillar *entities.Pillar) error {
	f.pillars = append(f.pillars, *pillar)
	return nil
}

func (f *fakePillarRepo) Update(ctx context.Context, id, name string, order int) error { return nil }
func (f *fakePillarRepo) Delete(ctx context.Context, id string) error                  { return nil }
func (f *fakePillarRepo) AddQuestion(ctx context.Context, question *entities.Question) error {
	return nil
}
func (f *fakePillarRepo) UpdateQuestion(ctx context.Context, id string, question entities.Question) error {
	return nil
}
func (f *fakePillarRepo) DeleteQuestion(ctx context.Context, id string) error { return nil }

type fakeResultRepo struct {
	results map[string]entities.DiagnosticResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: map[string]entities.DiagnosticResult{}}
}

func (f *fakeResultRepo) Insert(ctx context.Context, result *entities.DiagnosticResult) error {
	f.results[result.ID] = *result
	return nil
}

func (f *fakeResultRepo) FindByOwner(ctx context.Context, ownerID string) ([]entities.DiagnosticResult, error) {
	var owned []entities.DiagnosticResult
	for _, r := range f.results {
		if r.UserID == ownerID {
			owned = append(owned, r)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (f *fakeResultRepo) FindByID(ctx context.Context, id string) (entities.DiagnosticResult, error) {
	result, found := f.results[id]
	if !found {
		return entities.DiagnosticResult{}, gorm.ErrRecordNotFound
	}
	return result, nil
}

func (f *fakeResultRepo) Delete(ctx context.Context, id string) error {
	delete(f.results, id)
	return nil
}

func testPillars() []entities.Pillar {
	return []entities.Pillar{
		{ID: "pa", Name: "Pilar A", Order: 1, Questions: []entities.Question{
			{ID: "qa", Points: 10, PositiveAnswer: entities.AnswerYes, AnswerType: entities.AnswerTypeBinary},
		}},
		{ID: "pb", Name: "Pilar B", Order: 2, Questions: []entities.Question{
			{ID: "qb", Points: 20, PositiveAnswer: entities.AnswerYes, AnswerType: entities.AnswerTypeTernary},
		}},
	}
}

func newTestDiagnosticUseCase(resultRepo *fakeResultRepo) *diagnosticUseCase {
	return &diagnosticUseCase{
		pillarRepo: &fakePillarRepo{pillars: testPillars()},
		resultRepo: resultRepo,
		cache:      cache.New(),
		now:        func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) },
	}
}

func TestSave_RequiresAuthenticatedOwner(t *testing.T) {
	uc := newTestDiagnosticUseCase(newFakeResultRepo())

	_, err := uc.Save(context.Background(), "", entities.CompanyData{}, entities.AnswerMap{})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSave_ComputesAndPersists(t *testing.T) {
	resultRepo := newFakeResultRepo()
	uc := newTestDiagnosticUseCase(resultRepo)

	answers := entities.AnswerMap{
		"qa": entities.AnswerYes,
		"qb": entities.AnswerPartial,
	}
	companyData := entities.CompanyData{Empresa: "Padaria Estrela"}

	result, err := uc.Save(context.Background(), "owner-1", companyData, answers)
	require.NoError(t, err)

	require.NotEmpty(t, result.ID)
	require.Equal(t, "owner-1", result.UserID)
	require.Equal(t, uc.now(), result.CreatedAt)
	require.Equal(t, 20.0, result.TotalScore)
	require.Equal(t, 30.0, result.MaxPossibleScore)
	require.InDelta(t, 66.67, result.PercentageScore, 0.01)
	require.Equal(t, companyData, result.CompanyData)
	require.Equal(t, answers, result.Answers)

	// Persistido por inteiro, não só em memória
	stored, err := resultRepo.FindByID(context.Background(), result.ID)
	require.NoError(t, err)
	require.Equal(t, result, stored)
}

func TestList_NewestFirstAndRebuiltFromStore(t *testing.T) {
	resultRepo := newFakeResultRepo()
	uc := newTestDiagnosticUseCase(resultRepo)
	ctx := context.Background()

	older := entities.DiagnosticResult{ID: "r1", UserID: "owner-1", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.DiagnosticResult{ID: "r2", UserID: "owner-1", CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	other := entities.DiagnosticResult{ID: "r3", UserID: "owner-2", CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, resultRepo.Insert(ctx, &older))
	require.NoError(t, resultRepo.Insert(ctx, &newer))
	require.NoError(t, resultRepo.Insert(ctx, &other))

	results, err := uc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "r2", results[0].ID)
	require.Equal(t, "r1", results[1].ID)

	// Salvar invalida o cache: a próxima listagem vem do banco e inclui o
	// resultado novo.
	saved, err := uc.Save(ctx, "owner-1", entities.CompanyData{}, entities.AnswerMap{"qa": entities.AnswerYes})
	require.NoError(t, err)

	results, err = uc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, saved.ID, results[0].ID)
}

func TestGet_ScopedToOwner(t *testing.T) {
	resultRepo := newFakeResultRepo()
	uc := newTestDiagnosticUseCase(resultRepo)
	ctx := context.Background()

	result := entities.DiagnosticResult{ID: "r1", UserID: "owner-1"}
	require.NoError(t, resultRepo.Insert(ctx, &result))

	found, err := uc.Get(ctx, "owner-1", "r1")
	require.NoError(t, err)
	require.Equal(t, "r1", found.ID)

	// Resultado de outro dono se comporta como inexistente
	_, err = uc.Get(ctx, "owner-2", "r1")
	require.ErrorIs(t, err, ErrResultNotFound)

	_, err = uc.Get(ctx, "owner-1", "nada")
	require.ErrorIs(t, err, ErrResultNotFound)
}

func TestDelete_IdempotentAndScoped(t *testing.T) {
	resultRepo := newFakeResultRepo()
	uc := newTestDiagnosticUseCase(resultRepo)
	ctx := context.Background()

	result := entities.DiagnosticResult{ID: "r1", UserID: "owner-1"}
	require.NoError(t, resultRepo.Insert(ctx, &result))

	// Outro dono não pode excluir
	require.ErrorIs(t, uc.Delete(ctx, "owner-2", "r1"), ErrResultNotFound)

	require.NoError(t, uc.Delete(ctx, "owner-1", "r1"))
	_, err := resultRepo.FindByID(ctx, "r1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Excluir de novo não é erro
	require.NoError(t, uc.Delete(ctx, "owner-1", "r1"))
}

func TestReport_ProjectsSavedResult(t *testing.T) {
	resultRepo := newFakeResultRepo()
	uc := newTestDiagnosticUseCase(resultRepo)
	ctx := context.Background()

	saved, err := uc.Save(ctx, "owner-1", entities.CompanyData{Empresa: "Padaria Estrela"}, entities.AnswerMap{
		"qa": entities.AnswerYes,
		"qb": entities.AnswerPartial,
	})
	require.NoError(t, err)

	rep, err := uc.Report(ctx, "owner-1", saved.ID)
	require.NoError(t, err)
	require.Equal(t, 20, rep.TotalScore)
	require.Equal(t, 30, rep.MaxPossibleScore)
	require.Equal(t, 67, rep.Percentage)
	require.Equal(t, "Em Desenvolvimento", rep.MaturityTier)
	require.Equal(t, "Pilar A", rep.Best.Name)
	require.Equal(t, "Pilar B", rep.Worst.Name)

	_, err = uc.Report(ctx, "owner-1", "nada")
	require.ErrorIs(t, err, ErrResultNotFound)
}

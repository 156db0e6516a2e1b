package classification

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
)

func TestTierFor_Boundaries(t *testing.T) {
	require.Equal(t, TierInicial, TierFor(0))
	require.Equal(t, TierInicial, TierFor(40))
	require.Equal(t, TierEmDesenvolvimento, TierFor(40.01))
	require.Equal(t, TierEmDesenvolvimento, TierFor(70))
	require.Equal(t, TierConsolidado, TierFor(70.01))
	require.Equal(t, TierConsolidado, TierFor(100))
}

func TestTierFor_RawScoreNotRounded(t *testing.T) {
	// 40.4 arredondaria para 40 (Inicial); a classificação usa o valor bruto
	require.Equal(t, TierEmDesenvolvimento, TierFor(40.4))
}

func TestDescriptionAndRecommendation_PerTier(t *testing.T) {
	tiers := []Tier{TierInicial, TierEmDesenvolvimento, TierConsolidado}
	seenDescriptions := map[string]bool{}

	for _, tier := range tiers {
		desc := Description(tier)
		require.NotEmpty(t, desc)
		require.False(t, seenDescriptions[desc], "descrição repetida entre faixas")
		seenDescriptions[desc] = true
	}

	require.Equal(t, recommendations[TierInicial], Recommendation(30))
	require.Equal(t, recommendations[TierEmDesenvolvimento], Recommendation(55))
	require.Equal(t, recommendations[TierConsolidado], Recommendation(90))
}

func TestBestAndWorst(t *testing.T) {
	scores := []entities.PillarScore{
		{PillarID: "p1", PillarName: "Gestão Financeira", PercentageScore: 30},
		{PillarID: "p2", PillarName: "Planejamento", PercentageScore: 90},
		{PillarID: "p3", PillarName: "Vendas", PercentageScore: 60},
	}

	best, worst, err := BestAndWorst(scores)
	require.NoError(t, err)
	require.Equal(t, 90.0, best.PercentageScore)
	require.Equal(t, "Planejamento", best.PillarName)
	require.Equal(t, 30.0, worst.PercentageScore)
	require.Equal(t, "Gestão Financeira", worst.PillarName)

	// A entrada não pode ser reordenada
	require.Equal(t, "Gestão Financeira", scores[0].PillarName)
	require.Equal(t, "Vendas", scores[2].PillarName)
}

func TestBestAndWorst_StableOnTies(t *testing.T) {
	scores := []entities.PillarScore{
		{PillarID: "p1", PillarName: "Primeiro", PercentageScore: 50},
		{PillarID: "p2", PillarName: "Segundo", PercentageScore: 50},
		{PillarID: "p3", PillarName: "Terceiro", PercentageScore: 50},
	}

	best, worst, err := BestAndWorst(scores)
	require.NoError(t, err)
	require.Equal(t, "Primeiro", best.PillarName)
	require.Equal(t, "Terceiro", worst.PillarName)
}

func TestBestAndWorst_SinglePillar(t *testing.T) {
	scores := []entities.PillarScore{
		{PillarID: "p1", PillarName: "Único", PercentageScore: 75},
	}

	best, worst, err := BestAndWorst(scores)
	require.NoError(t, err)
	require.Equal(t, best, worst)
}

func TestBestAndWorst_EmptyFailsLoudly(t *testing.T) {
	_, _, err := BestAndWorst(nil)
	require.ErrorIs(t, err, ErrNoPillarScores)
}

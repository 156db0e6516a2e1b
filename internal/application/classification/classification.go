// Package classification deriva o nível de maturidade, a recomendação e os
// destaques (melhor/pior pilar) de um resultado calculado. É o único lugar
// do sistema com essa lógica: a tela de resultados e a exportação em PDF
// consomem as mesmas funções, sempre sobre a pontuação bruta (sem
// arredondamento), para que um mesmo resultado nunca seja classificado de
// formas diferentes em superfícies diferentes.
package classification

import (
	"errors"
	"sort"

	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
)

// Tier é o nível de maturidade do negócio.
type Tier string

const (
	TierInicial           Tier = "Inicial"
	TierEmDesenvolvimento Tier = "Em Desenvolvimento"
	TierConsolidado       Tier = "Consolidado"
)

var ErrNoPillarScores = errors.New("nenhuma pontuação de pilar disponível")

var descriptions = map[Tier]string{
	TierInicial:           "O negócio está começando ou ainda não possui processos bem definidos. Planejamento e estruturação são prioridades.",
	TierEmDesenvolvimento: "O negócio já possui alguns processos organizados, mas ainda enfrenta desafios para alcançar estabilidade e crescimento consistente.",
	TierConsolidado:       "O negócio tem processos bem estabelecidos, boa gestão e está em um estágio de expansão ou consolidação no mercado.",
}

var recommendations = map[Tier]string{
	TierInicial:           "Priorize a criação de um planejamento estratégico básico, organize as finanças e defina processos essenciais para o funcionamento do negócio. Considere buscar orientação de um consultor para acelerar essa estruturação.",
	TierEmDesenvolvimento: "Foco em otimizar os processos existentes, investir em capacitação da equipe e melhorar a gestão financeira. Avalie ferramentas que possam automatizar operações e aumentar a eficiência.",
	TierConsolidado:       "Concentre-se na inovação, expansão de mercado e diversificação de produtos/serviços. Invista em estratégias de marketing e mantenha um controle financeiro rigoroso para sustentar o crescimento.",
}

// TierFor classifica a pontuação total bruta. Faixas: até 40 Inicial,
// de 40 (exclusivo) a 70 Em Desenvolvimento, acima de 70 Consolidado.
func TierFor(totalScore float64) Tier {
	switch {
	case totalScore <= 40:
		return TierInicial
	case totalScore <= 70:
		return TierEmDesenvolvimento
	default:
		return TierConsolidado
	}
}

// Description retorna o texto descritivo do nível de maturidade.
func Description(tier Tier) string {
	return descriptions[tier]
}

// Recommendation retorna o parágrafo de recomendação da faixa em que a
// pontuação bruta se encontra.
func Recommendation(totalScore float64) string {
	return recommendations[TierFor(totalScore)]
}

// BestAndWorst retorna os pilares de melhor e pior desempenho percentual.
// A ordenação é estável: em empate, prevalece a ordem original dos pilares.
// Exige ao menos um pilar pontuado.
func BestAndWorst(pillarScores []entities.PillarScore) (best, worst entities.PillarScore, err error) {
	if len(pillarScores) == 0 {
		return best, worst, ErrNoPillarScores
	}

	sorted := make([]entities.PillarScore, len(pillarScores))
	copy(sorted, pillarScores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PercentageScore > sorted[j].PercentageScore
	})

	return sorted[0], sorted[len(sorted)-1], nil
}

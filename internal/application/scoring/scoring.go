package scoring

import (
	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
)

// Result agrega a pontuação calculada de um diagnóstico completo.
type Result struct {
	PillarScores     []entities.PillarScore `json:"pillar_scores"`
	TotalScore       float64                `json:"total_score"`
	MaxPossibleScore float64                `json:"max_possible_score"`
	PercentageScore  float64                `json:"percentage_score"`
}

// Compute converte um conjunto de respostas e pilares em pontuações por
// pilar e totais agregados. Função pura e total: qualquer combinação de
// entradas (pilares vazios, respostas vazias, ids desconhecidos) produz um
// resultado bem definido, nunca NaN.
//
// Regras de crédito, por pergunta:
//   - resposta igual à positiveAnswer: crédito integral (points)
//   - resposta PARCIALMENTE: meio crédito (points/2)
//   - sem resposta ou resposta negativa: sem crédito
//
// Ids de pergunta presentes em answers mas ausentes dos pilares são
// ignorados. A compatibilidade entre answerType e o valor respondido é
// responsabilidade de quem captura as respostas.
func Compute(answers entities.AnswerMap, pillars []entities.Pillar) Result {
	result := Result{
		PillarScores: make([]entities.PillarScore, 0, len(pillars)),
	}

	for _, pillar := range pillars {
		var pillarScore, pillarMaxScore float64

		for _, question := range pillar.Questions {
			pillarMaxScore += float64(question.Points)

			answer, answered := answers[question.ID]
			if !answered {
				continue
			}

			switch answer {
			case question.PositiveAnswer:
				pillarScore += float64(question.Points)
			case entities.AnswerPartial:
				pillarScore += float64(question.Points) / 2
			}
		}

		// Pilar sem perguntas (ou só perguntas de zero pontos): percentual
		// definido como 0 para evitar divisão por zero.
		var percentage float64
		if pillarMaxScore > 0 {
			percentage = pillarScore / pillarMaxScore * 100
		}

		result.PillarScores = append(result.PillarScores, entities.PillarScore{
			PillarID:         pillar.ID,
			PillarName:       pillar.Name,
			Score:            pillarScore,
			MaxPossibleScore: pillarMaxScore,
			PercentageScore:  percentage,
		})

		result.TotalScore += pillarScore
		result.MaxPossibleScore += pillarMaxScore
	}

	if result.MaxPossibleScore > 0 {
		result.PercentageScore = result.TotalScore / result.MaxPossibleScore * 100
	}

	return result
}

// Package report projeta um DiagnosticResult na estrutura plana, arredondada
// e formatada que a tela de resultados e a exportação em PDF consomem.
// Todo arredondamento para inteiro acontece aqui, e só aqui: o motor de
// cálculo e a classificação trabalham sempre com valores brutos.
package report

import (
	"math"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/crescerhub/diagnostico-api/internal/application/classification"
	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/crescerhub/diagnostico-api/internal/utils"
)

// Title é o cabeçalho fixo do relatório exportado.
const Title = "Diagnóstico Financeiro Empresarial"

// RecommendedScore é a pontuação de referência exibida ao lado da pontuação
// final do respondente.
const RecommendedScore = 75

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Report é o contrato de dados com as superfícies de renderização (tela e
// PDF). Campos numéricos já chegam arredondados e campos monetários já
// chegam formatados; quem renderiza não faz conta nenhuma.
type Report struct {
	Title            string        `json:"title"`
	IssuedAt         string        `json:"issued_at"`
	Date             string        `json:"date"`
	Company          Company       `json:"company"`
	TotalScore       int           `json:"total_score"`
	MaxPossibleScore int           `json:"max_possible_score"`
	Percentage       int           `json:"percentage"`
	RecommendedScore int           `json:"recommended_score"`
	MaturityTier     string        `json:"maturity_tier"`
	TierDescription  string        `json:"tier_description"`
	Recommendation   string        `json:"recommendation"`
	Best             PillarRanking `json:"best"`
	Worst            PillarRanking `json:"worst"`
	Pillars          []PillarRow   `json:"pillars"`
}

// Company é o bloco de dados da empresa pronto para exibição.
type Company struct {
	Empresa        string `json:"empresa"`
	CNPJ           string `json:"cnpj"`
	Responsavel    string `json:"responsavel"`
	TemSocios      string `json:"tem_socios"`
	Funcionarios   int    `json:"funcionarios"`
	Faturamento    string `json:"faturamento"`
	Segmento       string `json:"segmento"`
	Localizacao    string `json:"localizacao"`
	TempoAtividade string `json:"tempo_atividade"`
	FormaJuridica  string `json:"forma_juridica"`
}

// PillarRanking destaca um pilar (melhor ou pior desempenho).
type PillarRanking struct {
	PillarID   string `json:"pillar_id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Percentage int    `json:"percentage"`
}

// PillarRow é uma linha da tabela de pontuação por pilar.
type PillarRow struct {
	PillarID         string `json:"pillar_id"`
	Name             string `json:"name"`
	Score            int    `json:"score"`
	MaxPossibleScore int    `json:"max_possible_score"`
	Percentage       int    `json:"percentage"`
}

// Build projeta o resultado para exibição. A classificação usa o percentual
// bruto do resultado, nunca um valor já arredondado; issuedAt entra como
// parâmetro para manter a projeção determinística.
func Build(result entities.DiagnosticResult, issuedAt time.Time) (Report, error) {
	best, worst, err := classification.BestAndWorst(result.PillarScores)
	if err != nil {
		return Report{}, err
	}

	tier := classification.TierFor(result.PercentageScore)

	ranked := make([]entities.PillarScore, len(result.PillarScores))
	copy(ranked, result.PillarScores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PercentageScore > ranked[j].PercentageScore
	})

	rows := make([]PillarRow, 0, len(ranked))
	for _, ps := range ranked {
		rows = append(rows, PillarRow{
			PillarID:         ps.PillarID,
			Name:             ps.PillarName,
			Score:            round(ps.Score),
			MaxPossibleScore: round(ps.MaxPossibleScore),
			Percentage:       round(ps.PercentageScore),
		})
	}

	return Report{
		Title:            Title,
		IssuedAt:         utils.FormatBrasilDateTime(issuedAt),
		Date:             utils.FormatBrasilDateTime(result.CreatedAt),
		Company:          buildCompany(result.CompanyData),
		TotalScore:       round(result.TotalScore),
		MaxPossibleScore: round(result.MaxPossibleScore),
		Percentage:       round(result.PercentageScore),
		RecommendedScore: RecommendedScore,
		MaturityTier:     string(tier),
		TierDescription:  classification.Description(tier),
		Recommendation:   classification.Recommendation(result.PercentageScore),
		Best: PillarRanking{
			PillarID:   best.PillarID,
			Name:       best.PillarName,
			Score:      round(best.Score),
			Percentage: round(best.PercentageScore),
		},
		Worst: PillarRanking{
			PillarID:   worst.PillarID,
			Name:       worst.PillarName,
			Score:      round(worst.Score),
			Percentage: round(worst.PercentageScore),
		},
		Pillars: rows,
	}, nil
}

func buildCompany(data entities.CompanyData) Company {
	temSocios := "Não"
	if data.TemSocios == "sim" {
		temSocios = "Sim"
	}

	return Company{
		Empresa:        data.Empresa,
		CNPJ:           data.CNPJ,
		Responsavel:    data.Nome,
		TemSocios:      temSocios,
		Funcionarios:   data.NumeroFuncionarios,
		Faturamento:    FormatCurrency(data.Faturamento),
		Segmento:       data.Segmento,
		Localizacao:    data.Localizacao,
		TempoAtividade: data.TempoAtividade,
		FormaJuridica:  data.FormaJuridica,
	}
}

// FormatCurrency formata um valor em reais no padrão pt-BR: "R$ 1.234,56".
func FormatCurrency(value float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// round usa arredondamento meio-para-longe-do-zero, o mesmo comportamento
// de Math.round para pontuações não negativas.
func round(value float64) int {
	return int(math.Round(value))
}

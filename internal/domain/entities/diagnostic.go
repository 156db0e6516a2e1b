package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CompanyData é o snapshot dos dados informados pelo respondente.
// Nenhuma validação de formato é feita aqui; quem captura valida.
type CompanyData struct {
	Nome               string  `json:"nome"`
	Empresa            string  `json:"empresa"`
	CNPJ               string  `json:"cnpj"`
	TemSocios          string  `json:"temSocios"`
	NumeroFuncionarios int     `json:"numeroFuncionarios"`
	Faturamento        float64 `json:"faturamento"`
	Segmento           string  `json:"segmento"`
	TempoAtividade     string  `json:"tempoAtividade"`
	Localizacao        string  `json:"localizacao"`
	FormaJuridica      string  `json:"formaJuridica"`
}

func (d CompanyData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *CompanyData) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// AnswerMap mapeia id da pergunta para o valor respondido.
// Perguntas sem resposta simplesmente não constam no mapa; a consulta
// com vírgula-ok (`v, respondida := m[id]`) torna esse caminho explícito.
type AnswerMap map[string]string

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	return json.Marshal(m)
}

func (m *AnswerMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// PillarScore é a pontuação derivada de um pilar no momento do cálculo.
// Score pode ser fracionário por causa do meio crédito em PARCIALMENTE.
type PillarScore struct {
	PillarID         string  `json:"pillarId"`
	PillarName       string  `json:"pillarName"`
	Score            float64 `json:"score"`
	MaxPossibleScore float64 `json:"maxPossibleScore"`
	PercentageScore  float64 `json:"percentageScore"`
}

type PillarScores []PillarScore

func (s PillarScores) Value() (driver.Value, error) {
	if s == nil {
		s = PillarScores{}
	}
	return json.Marshal(s)
}

func (s *PillarScores) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// DiagnosticResult é a unidade persistida: snapshot completo de respostas,
// dados da empresa e pontuações. Imutável depois de salvo.
type DiagnosticResult struct {
	ID               string       `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID           string       `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	CompanyData      CompanyData  `json:"company_data" gorm:"column:company_data;type:jsonb"`
	Answers          AnswerMap    `json:"answers" gorm:"column:answers;type:jsonb"`
	PillarScores     PillarScores `json:"pillar_scores" gorm:"column:pillar_scores;type:jsonb"`
	TotalScore       float64      `json:"total_score" gorm:"column:total_score"`
	MaxPossibleScore float64      `json:"max_possible_score" gorm:"column:max_possible_score"`
	PercentageScore  float64      `json:"percentage_score" gorm:"column:percentage_score"`
	CreatedAt        time.Time    `json:"created_at" gorm:"column:created_at"`
}

func (DiagnosticResult) TableName() string {
	return "diagnostic_results"
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("tipo inesperado para coluna jsonb: %T", value)
	}
}

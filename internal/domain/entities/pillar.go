package entities

import (
	"time"
)

// Valores de resposta aceitos pelo diagnóstico.
const (
	AnswerYes     = "SIM"
	AnswerNo      = "NÃO"
	AnswerPartial = "PARCIALMENTE"
)

// Tipos de pergunta: BINARY aceita SIM/NÃO, TERNARY inclui PARCIALMENTE.
const (
	AnswerTypeBinary  = "BINARY"
	AnswerTypeTernary = "TERNARY"
)

// Pillar representa um pilar do diagnóstico com suas perguntas ordenadas
type Pillar struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"column:name"`
	Order     int       `json:"order" gorm:"column:order"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	// Relações
	Questions []Question `json:"questions" gorm:"foreignKey:PillarID"`
}

func (Pillar) TableName() string {
	return "pillars"
}

// MaxPossibleScore soma os pontos de todas as perguntas do pilar.
func (p Pillar) MaxPossibleScore() float64 {
	var total float64
	for _, q := range p.Questions {
		total += float64(q.Points)
	}
	return total
}

// Question representa uma pergunta de um pilar
type Question struct {
	ID             string    `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	PillarID       string    `json:"pillar_id" gorm:"column:pillar_id;type:uuid"`
	Text           string    `json:"text" gorm:"column:text"`
	Points         int       `json:"points" gorm:"column:points"`
	PositiveAnswer string    `json:"positive_answer" gorm:"column:positive_answer"`
	AnswerType     string    `json:"answer_type" gorm:"column:answer_type"`
	Order          int       `json:"order" gorm:"column:order"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}

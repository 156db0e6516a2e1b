package entities

import "time"

// Settings guarda as URLs dos logos usados na identidade visual.
// Existe uma única linha na tabela.
type Settings struct {
	ID         string    `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	Logo       *string   `json:"logo" gorm:"column:logo"`
	NavbarLogo *string   `json:"navbar_logo" gorm:"column:navbar_logo"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Settings) TableName() string {
	return "settings"
}

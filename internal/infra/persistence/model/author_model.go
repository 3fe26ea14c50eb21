package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorModel mirrors the 'authors' table. PostgreSQL generates UUIDs via
// gen_random_uuid(). GitHubID is the unique external identity key.
type AuthorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GitHubID  string    `gorm:"column:github_id;type:varchar(64);unique;not null"`
	Name      string    `gorm:"type:varchar(255)"`
	Username  string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255)"`
	Image     string    `gorm:"type:text"`
	Bio       string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Startups []*StartupModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}

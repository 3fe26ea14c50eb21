package model

import (
	"time"

	"github.com/google/uuid"
)

// StartupModel mirrors the 'startups' table. Slug is indexed but not unique;
// distinct titles normalizing to the same slug may coexist.
type StartupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500);not null"`
	Category    string    `gorm:"type:varchar(20);not null"`
	Image       string    `gorm:"type:text"`
	Slug        string    `gorm:"type:varchar(120);index;not null"`
	Pitch       string    `gorm:"type:text;not null"`
	AuthorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Views       int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time

	Author *AuthorModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (StartupModel) TableName() string {
	return "startups"
}

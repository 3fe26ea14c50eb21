package model

import (
	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table. Playlists are curated out of
// band; this service only reads them.
type PlaylistModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title string    `gorm:"type:varchar(255);not null"`
	Slug  string    `gorm:"type:varchar(120);unique;not null"`

	Items []*PlaylistItemModel `gorm:"foreignKey:PlaylistID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistItemModel mirrors the 'playlist_items' join table. Position keeps
// the curated ordering stable.
type PlaylistItemModel struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartupID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"not null"`

	Startup *StartupModel `gorm:"foreignKey:StartupID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistItemModel) TableName() string {
	return "playlist_items"
}

package entity

import "github.com/google/uuid"

// Playlist is a curated, ordered selection of startups keyed by a stable
// slug (e.g. "editors-picks"). Playlists are read-only from this service's
// point of view; curation happens out of band.
type Playlist struct {
	ID       uuid.UUID
	Title    string
	Slug     string
	Startups []*Startup
}

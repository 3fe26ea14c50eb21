package repository

import (
	"context"
	"errors"

	"pitchboard/internal/domain/entity"
)

// ErrPlaylistNotFound is a domain-specific error returned when a playlist is not found.
var ErrPlaylistNotFound = errors.New("playlist not found")

// PlaylistRepository defines read access to curated startup playlists.
type PlaylistRepository interface {
	// FindBySlug retrieves a playlist by its stable slug, including the
	// ordered startups with their author snapshots.
	FindBySlug(ctx context.Context, slug string) (*entity.Playlist, error)
}

package repository

import (
	"context"
	"errors"

	"pitchboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStartupNotFound is a domain-specific error returned when a startup is not found.
var ErrStartupNotFound = errors.New("startup not found")

// StartupRepository defines the standard operations for startup persistence.
// Reads attach a denormalized author snapshot; writes never touch the author.
type StartupRepository interface {
	// FindByID retrieves a single startup by ID, including its author snapshot.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Startup, error)

	// Search returns startups whose title, category, or description matches
	// the query case-insensitively, newest first. An empty query returns all
	// startups, newest first.
	Search(ctx context.Context, query string) ([]*entity.Startup, error)

	// ListByAuthor returns all startups submitted by the given author, newest first.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Startup, error)

	// Create persists a new startup entity to the storage.
	Create(ctx context.Context, startup *entity.Startup) error

	// IncrementViews adds one to the view counter of the given startup.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

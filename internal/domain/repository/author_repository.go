// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pitchboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthorNotFound is a domain-specific error returned when an author is not found.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorRepository defines the standard operations for author persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AuthorRepository interface {
	// FindByID retrieves a single author by their internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)

	// FindByGitHubID retrieves a single author by their external identity key.
	FindByGitHubID(ctx context.Context, githubID string) (*entity.Author, error)

	// Create persists a new author entity to the storage.
	Create(ctx context.Context, author *entity.Author) error
}

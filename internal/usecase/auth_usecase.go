// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pitchboard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignInInput defines the data required to complete the OAuth callback.
type SignInInput struct {
	Code string
}

// --- Output DTOs ---

// SignInOutput returns the signed session token after a completed callback.
// Author is nil when the author record could not be resolved; the token is
// still issued with an empty identity claim.
type SignInOutput struct {
	Token  string
	Author *entity.Author
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignIn exchanges the OAuth authorization code, ensures an author record
	// exists for the external identity, and issues a session token.
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)

	// CurrentAuthor resolves the author behind an authenticated session.
	CurrentAuthor(ctx context.Context, authorID uuid.UUID) (*entity.Author, error)
}

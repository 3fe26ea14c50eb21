package service

import (
	"github.com/google/uuid"
)

// TokenService signs and verifies session tokens. The token's only claim of
// interest is the internal author id; a token with an empty subject is valid
// but unauthenticated.
type TokenService interface {
	// GenerateToken creates a signed session token embedding the author id.
	// authorID may be uuid.Nil, in which case the subject claim is left empty.
	GenerateToken(authorID uuid.UUID) (string, error)

	// AuthorIDFromToken verifies the token signature and expiry and returns
	// the embedded author id. A verified token without a subject claim yields
	// uuid.Nil and no error.
	AuthorIDFromToken(tokenString string) (uuid.UUID, error)
}

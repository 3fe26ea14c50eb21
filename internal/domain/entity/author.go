// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Author is a person who signed in through the external identity provider
// and can submit startup pitches. One Author exists per external identity;
// the record is created on first sign-in and its profile fields are
// first-seen-wins (no update path).
type Author struct {
	ID        uuid.UUID // Internal identifier, referenced by Startup.AuthorID.
	GitHubID  string    // External identity key from the OAuth provider.
	Name      string    // Display name as reported by the provider.
	Username  string    // Provider login handle.
	Email     string    // Contact email from the provider profile.
	Image     string    // Avatar URL.
	Bio       string    // Profile bio; empty when the provider omits it.
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Startup is a user-submitted pitch document. It is created exactly once via
// the submission workflow; Views is the only field mutated afterwards.
type Startup struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Image       string    // Link to the pitch thumbnail image.
	Slug        string    // Derived from Title at creation time; collisions are tolerated.
	Pitch       string    // Markdown pitch body.
	AuthorID    uuid.UUID // Non-owning reference to the submitting Author.
	Views       int64
	CreatedAt   time.Time

	// Author is the denormalized author snapshot attached by read queries.
	// It is nil on write paths.
	Author *Author
}

package usecase

import (
	"context"

	"pitchboard/internal/domain/entity"

	"github.com/google/uuid"
)

// Submission result statuses.
const (
	SubmissionStatusSuccess = "SUCCESS"
	SubmissionStatusError   = "ERROR"
)

// --- Input DTOs ---

// CreateStartupInput defines the form data required to submit a new pitch.
type CreateStartupInput struct {
	Title       string `json:"title" form:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" form:"description" validate:"required,min=20,max=500"`
	Category    string `json:"category" form:"category" validate:"required,min=3,max=20"`
	Link        string `json:"link" form:"link" validate:"required,url"`
	Pitch       string `json:"pitch" form:"pitch" validate:"required,min=10"`
}

// --- Output DTOs ---

// SubmissionResult is the envelope returned by pitch creation. It always
// carries a terminal status; callers merge it into their prior form state, so
// business failures travel inside the result rather than as errors.
type SubmissionResult struct {
	Status      string            `json:"status"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`

	// Document is the normalized created pitch, present only on success.
	Document map[string]any `json:"document,omitempty"`
}

// StartupDetail is the detail-page payload: the pitch itself plus the curated
// editors-picks playlist when one is configured and present.
type StartupDetail struct {
	Startup      *entity.Startup
	EditorsPicks *entity.Playlist
}

// Profile is the profile-page payload: an author and their pitches, newest first.
type Profile struct {
	Author   *entity.Author
	Startups []*entity.Startup
}

// StartupUsecase defines the interface for pitch-related business operations.
type StartupUsecase interface {
	// CreateStartup runs the submission workflow for the given session. The
	// returned result is always non-nil when the error is nil; session
	// absence, validation failure, and persistence failure are all reported
	// inside the result envelope.
	CreateStartup(ctx context.Context, session *entity.Session, input CreateStartupInput) (*SubmissionResult, error)

	// SearchStartups returns pitches matching the free-text query, newest
	// first. An empty query returns all pitches.
	SearchStartups(ctx context.Context, query string) ([]*entity.Startup, error)

	// GetStartup returns the detail payload for one pitch and records a view
	// best-effort.
	GetStartup(ctx context.Context, id uuid.UUID) (*StartupDetail, error)

	// GetProfile returns an author together with their pitches, newest first.
	GetProfile(ctx context.Context, authorID uuid.UUID) (*Profile, error)
}

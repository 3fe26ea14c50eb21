package handler

import (
	"time"

	"pitchboard/internal/domain/entity"

	"github.com/google/uuid"
)

// View models shape the JSON surface independently of the domain entities.

type authorView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Image    string    `json:"image"`
	Bio      string    `json:"bio"`
}

type startupView struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Slug        string      `json:"slug"`
	Pitch       string      `json:"pitch,omitempty"`
	Views       int64       `json:"views"`
	CreatedAt   time.Time   `json:"createdAt"`
	Author      *authorView `json:"author,omitempty"`
}

type playlistView struct {
	Title    string         `json:"title"`
	Slug     string         `json:"slug"`
	Startups []*startupView `json:"startups"`
}

type sessionView struct {
	SignedIn bool        `json:"signedIn"`
	Author   *authorView `json:"author,omitempty"`
}

func toAuthorView(author *entity.Author) *authorView {
	if author == nil {
		return nil
	}

	return &authorView{
		ID:       author.ID,
		Name:     author.Name,
		Username: author.Username,
		Email:    author.Email,
		Image:    author.Image,
		Bio:      author.Bio,
	}
}

// toStartupSummaryView renders a listing entry; the pitch body is omitted.
func toStartupSummaryView(startup *entity.Startup) *startupView {
	if startup == nil {
		return nil
	}

	return &startupView{
		ID:          startup.ID,
		Title:       startup.Title,
		Description: startup.Description,
		Category:    startup.Category,
		Image:       startup.Image,
		Slug:        startup.Slug,
		Views:       startup.Views,
		CreatedAt:   startup.CreatedAt,
		Author:      toAuthorView(startup.Author),
	}
}

// toStartupDetailView renders the full document including the pitch body.
func toStartupDetailView(startup *entity.Startup) *startupView {
	view := toStartupSummaryView(startup)
	if view != nil {
		view.Pitch = startup.Pitch
	}

	return view
}

func toStartupSummaryViews(startups []*entity.Startup) []*startupView {
	views := make([]*startupView, 0, len(startups))
	for _, startup := range startups {
		views = append(views, toStartupSummaryView(startup))
	}

	return views
}

func toPlaylistView(playlist *entity.Playlist) *playlistView {
	if playlist == nil {
		return nil
	}

	return &playlistView{
		Title:    playlist.Title,
		Slug:     playlist.Slug,
		Startups: toStartupSummaryViews(playlist.Startups),
	}
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"pitchboard/config"
	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/domain/entity"
	domainerrors "pitchboard/internal/domain/errors"
	"pitchboard/internal/domain/repository"
	"pitchboard/internal/domain/service"
	"pitchboard/internal/normalize"
	"pitchboard/internal/slug"
	"pitchboard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// startupService implements the StartupUsecase interface.
type startupService struct {
	startupRepo      repository.StartupRepository
	authorRepo       repository.AuthorRepository
	playlistRepo     repository.PlaylistRepository
	sanitizer        service.ContentSanitizer
	validate         *validator.Validate
	featuredPlaylist string
	logger           *slog.Logger
}

// StartupServiceParams holds dependencies for startupService, injected by Fx.
type StartupServiceParams struct {
	fx.In

	StartupRepo  repository.StartupRepository
	AuthorRepo   repository.AuthorRepository
	PlaylistRepo repository.PlaylistRepository
	Sanitizer    service.ContentSanitizer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStartupService is the constructor for startupService. It receives all dependencies as interfaces.
func NewStartupService(params StartupServiceParams) usecase.StartupUsecase {
	featuredPlaylist := ""
	if params.Config != nil && params.Config.Content != nil {
		featuredPlaylist = params.Config.Content.FeaturedPlaylist
	}

	return &startupService{
		startupRepo:      params.StartupRepo,
		authorRepo:       params.AuthorRepo,
		playlistRepo:     params.PlaylistRepo,
		sanitizer:        params.Sanitizer,
		validate:         newSubmissionValidator(),
		featuredPlaylist: featuredPlaylist,
		logger:           params.Logger,
	}
}

// newSubmissionValidator builds the validator used for pitch submissions.
// Field errors are keyed by the json tag name so they map onto form fields.
func newSubmissionValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return validate
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *startupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStartup runs the submission workflow. Session absence, validation
// failure, and persistence failure all terminate inside the result envelope;
// the error return is reserved for programming errors.
func (srv *startupService) CreateStartup(ctx context.Context, session *entity.Session, input usecase.CreateStartupInput) (*usecase.SubmissionResult, error) {
	// 1. A pitch always belongs to a signed-in author.
	if !session.SignedIn() {
		srv.log(ctx).Warn("Pitch submission without session rejected")

		return &usecase.SubmissionResult{
			Status: usecase.SubmissionStatusError,
			Error:  domainerrors.ErrNotSignedIn.Message(),
		}, nil
	}

	// 2. Validate the form fields before touching storage.
	if err := srv.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, errors.Wrap(err, "failed to validate submission input")
		}

		srv.log(ctx).Info("Pitch submission failed validation",
			slog.Any("authorID", session.AuthorID), slog.Int("fieldErrors", len(validationErrs)))

		return &usecase.SubmissionResult{
			Status:      usecase.SubmissionStatusError,
			Error:       domainerrors.ErrValidationFailed.Message(),
			FieldErrors: buildFieldErrors(validationErrs),
		}, nil
	}

	// 3. Build the document: derived slug, sanitized pitch body, author from
	// the session. Exactly one create call persists it.
	startup := &entity.Startup{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Link,
		Slug:        slug.Make(input.Title),
		Pitch:       srv.sanitizer.Sanitize(input.Pitch),
		AuthorID:    session.AuthorID,
	}

	if err := srv.startupRepo.Create(ctx, startup); err != nil {
		srv.log(ctx).Error("Failed to persist pitch",
			slog.Any("authorID", session.AuthorID), slog.Any("error", err))

		return &usecase.SubmissionResult{
			Status: usecase.SubmissionStatusError,
			Error:  err.Error(),
		}, nil
	}

	document, err := normalize.Map(newCreatedStartupView(startup))
	if err != nil {
		return nil, errors.Wrap(err, "failed to normalize created pitch")
	}

	srv.log(ctx).Info("Pitch created",
		slog.Any("startupID", startup.ID), slog.Any("authorID", session.AuthorID), slog.String("slug", startup.Slug))

	return &usecase.SubmissionResult{
		Status:   usecase.SubmissionStatusSuccess,
		Document: document,
	}, nil
}

// SearchStartups returns pitches matching the free-text query, newest first.
func (srv *startupService) SearchStartups(ctx context.Context, query string) ([]*entity.Startup, error) {
	startups, err := srv.startupRepo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search startups")
	}

	return startups, nil
}

// GetStartup returns the detail payload for one pitch. Each call records a
// view; the increment is best-effort and never fails the page.
func (srv *startupService) GetStartup(ctx context.Context, id uuid.UUID) (*usecase.StartupDetail, error) {
	startup, err := srv.startupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStartupNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStartupNotFound, "startup detail lookup")
		}

		return nil, errors.Wrap(err, "failed to find startup")
	}

	if err := srv.startupRepo.IncrementViews(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to record startup view",
			slog.Any("startupID", id), slog.Any("error", err))
	}

	return &usecase.StartupDetail{
		Startup:      startup,
		EditorsPicks: srv.loadFeaturedPlaylist(ctx),
	}, nil
}

// loadFeaturedPlaylist fetches the curated playlist for the detail page.
// Absence or lookup failure degrades to no playlist.
func (srv *startupService) loadFeaturedPlaylist(ctx context.Context) *entity.Playlist {
	if srv.featuredPlaylist == "" {
		return nil
	}

	playlist, err := srv.playlistRepo.FindBySlug(ctx, srv.featuredPlaylist)
	if err != nil {
		if !errors.Is(err, repository.ErrPlaylistNotFound) {
			srv.log(ctx).Warn("Failed to load featured playlist",
				slog.String("slug", srv.featuredPlaylist), slog.Any("error", err))
		}

		return nil
	}

	return playlist
}

// GetProfile returns an author together with their pitches, newest first.
func (srv *startupService) GetProfile(ctx context.Context, authorID uuid.UUID) (*usecase.Profile, error) {
	author, err := srv.authorRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthorNotFound, "profile lookup")
		}

		return nil, errors.Wrap(err, "failed to find author")
	}

	startups, err := srv.startupRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list author startups")
	}

	return &usecase.Profile{
		Author:   author,
		Startups: startups,
	}, nil
}

// buildFieldErrors converts validator errors into a field-keyed message map.
func buildFieldErrors(validationErrs validator.ValidationErrors) map[string]string {
	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = fieldErrorMessage(fieldErr)
	}

	return fieldErrors
}

func fieldErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldErr.Param())
	case "url":
		return "Must be a valid URL"
	default:
		return fmt.Sprintf("Failed validation rule %q", fieldErr.Tag())
	}
}

// createdStartupView is the JSON shape of a freshly created pitch before
// normalization.
type createdStartupView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	Pitch       string    `json:"pitch"`
	AuthorID    uuid.UUID `json:"authorId"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newCreatedStartupView(startup *entity.Startup) *createdStartupView {
	return &createdStartupView{
		ID:          startup.ID,
		Title:       startup.Title,
		Description: startup.Description,
		Category:    startup.Category,
		Image:       startup.Image,
		Slug:        startup.Slug,
		Pitch:       startup.Pitch,
		AuthorID:    startup.AuthorID,
		Views:       startup.Views,
		CreatedAt:   startup.CreatedAt,
	}
}

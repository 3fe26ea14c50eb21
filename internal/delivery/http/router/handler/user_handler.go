package handler

import (
	"log/slog"
	"net/http"

	"pitchboard/internal/delivery/http/response"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile-related handlers.
type UserHandler struct {
	uc     usecase.StartupUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.StartupUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Profile handles the author profile page: the author plus their pitches,
// newest first.
func (h *UserHandler) Profile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "AUTHOR_NOT_FOUND", "Author not found")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"author":   toAuthorView(profile.Author),
		"startups": toStartupSummaryViews(profile.Startups),
	}, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/delivery/http/response"
	"pitchboard/internal/metrics"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StartupHandler holds dependencies for pitch-related handlers.
type StartupHandler struct {
	uc       usecase.StartupUsecase
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewStartupHandler is the constructor for StartupHandler, injected by Fx.
func NewStartupHandler(uc usecase.StartupUsecase, recorder metrics.Recorder, logger *slog.Logger) *StartupHandler {
	return &StartupHandler{
		uc:       uc,
		recorder: recorder,
		logger:   logger,
	}
}

// List handles listing and free-text search of pitches.
func (h *StartupHandler) List(c echo.Context) error {
	query := c.QueryParam("query")

	startups, err := h.uc.SearchStartups(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":    len(startups),
		"startups": toStartupSummaryViews(startups),
	}, "Startups retrieved successfully")
}

// Create handles a pitch submission. The submission result envelope is the
// response body regardless of outcome so the caller can merge it back into
// form state.
func (h *StartupHandler) Create(c echo.Context) error {
	var input usecase.CreateStartupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	session := deliverycontext.GetSession(c.Request().Context())

	result, err := h.uc.CreateStartup(c.Request().Context(), session, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if h.recorder != nil {
		h.recorder.RecordSubmission(result.Status)
	}

	return c.JSON(http.StatusOK, result)
}

// Detail handles the pitch detail page. Each successful lookup records a view.
func (h *StartupHandler) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "STARTUP_NOT_FOUND", "Startup not found")
	}

	detail, err := h.uc.GetStartup(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if h.recorder != nil {
		h.recorder.RecordViewRecorded()
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"startup":      toStartupDetailView(detail.Startup),
		"editorsPicks": toPlaylistView(detail.EditorsPicks),
	}, "Startup retrieved successfully")
}

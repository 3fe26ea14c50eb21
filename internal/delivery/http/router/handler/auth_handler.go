// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pitchboard/config"
	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/delivery/http/response"
	"pitchboard/internal/domain/service"
	"pitchboard/internal/metrics"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const oauthStateCookie = "pitchboard_oauth_state"

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	oauthService service.OAuthService
	cfg          *config.Config
	recorder     metrics.Recorder
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, oauthService service.OAuthService, cfg *config.Config, recorder metrics.Recorder, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		oauthService: oauthService,
		cfg:          cfg,
		recorder:     recorder,
		logger:       logger,
	}
}

// GitHubLogin initiates the GitHub sign-in flow.
func (h *AuthHandler) GitHubLogin(c echo.Context) error {
	state := uuid.New().String()

	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})

	oauthURL := h.oauthService.BuildAuthorizationURL(state)

	// JSON is available for frontends that drive the redirect themselves.
	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{
			"oauth_url": oauthURL,
		}, "GitHub OAuth URL generated successfully")
	}

	return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
}

// GitHubCallback completes the GitHub sign-in flow: state check, code
// exchange, author bootstrap, session cookie.
func (h *AuthHandler) GitHubCallback(c echo.Context) error {
	if err := h.verifyState(c); err != nil {
		return response.BadRequest(c, "OAUTH_STATE_MISMATCH", "OAuth state mismatch")
	}

	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "OAUTH_CODE_INVALID", "Missing authorization code")
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{Code: code})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)
	if h.recorder != nil {
		h.recorder.RecordSignIn()
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":  output.Token,
		"author": toAuthorView(output.Author),
	}, "Signed in successfully")
}

// Logout clears the session cookie. Sessions are stateless, so there is no
// server-side record to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Signed out successfully")
}

// GetSession returns the materialized session for the caller.
func (h *AuthHandler) GetSession(c echo.Context) error {
	session := deliverycontext.GetSession(c.Request().Context())
	if !session.SignedIn() {
		return response.Success(c, http.StatusOK, &sessionView{SignedIn: false}, "No active session")
	}

	author, err := h.uc.CurrentAuthor(c.Request().Context(), session.AuthorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &sessionView{
		SignedIn: true,
		Author:   toAuthorView(author),
	}, "Session retrieved successfully")
}

// verifyState compares the callback state with the value set at login time.
// A missing cookie is tolerated so that direct-link callbacks still work.
func (h *AuthHandler) verifyState(c echo.Context) error {
	state := c.QueryParam("state")

	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil {
		return nil
	}
	if cookie.Value != state {
		return errors.New("oauth state mismatch")
	}

	return nil
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	maxAge := 0
	if h.cfg != nil && h.cfg.Session != nil {
		maxAge = int(h.cfg.Session.TokenTTL.Seconds())
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) cookieName() string {
	if h.cfg != nil && h.cfg.Session != nil && h.cfg.Session.CookieName != "" {
		return h.cfg.Session.CookieName
	}

	return "pitchboard_session"
}

func (h *AuthHandler) cookieSecure() bool {
	return h.cfg != nil && h.cfg.Session != nil && h.cfg.Session.CookieSecure
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pitchboard/config"
	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/domain/entity"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			TokenTTL:   24 * time.Hour,
			CookieName: "pitchboard_session",
		},
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_GitHubLogin_Redirects(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/github/login", nil)
	rec := httptest.NewRecorder()

	err := h.GitHubLogin(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	location := rec.Header().Get(echo.HeaderLocation)
	assert.Contains(t, location, "client_id=test_client_id")
	assert.Contains(t, location, "state=")

	stateCookie := findCookie(t, rec, oauthStateCookie)
	require.NotNil(t, stateCookie)
	assert.Contains(t, location, stateCookie.Value)
}

func TestAuthHandler_GitHubLogin_JSONMode(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/github/login?redirect=false", nil)
	rec := httptest.NewRecorder()

	err := h.GitHubLogin(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "oauth_url")
}

func TestAuthHandler_GitHubCallback_Success(t *testing.T) {
	author := &entity.Author{ID: uuid.New(), Username: "octocat"}
	uc := &fakeAuthUsecase{
		signInFn: func(_ context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
			assert.Equal(t, "valid-code", input.Code)

			return &usecase.SignInOutput{Token: "signed-token", Author: author}, nil
		},
	}
	h := NewAuthHandler(uc, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=valid-code&state=abc", nil)
	rec := httptest.NewRecorder()

	err := h.GitHubCallback(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), "octocat")

	sessionCookie := findCookie(t, rec, "pitchboard_session")
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "signed-token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestAuthHandler_GitHubCallback_MissingCode(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback", nil)
	rec := httptest.NewRecorder()

	err := h.GitHubCallback(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_GitHubCallback_StateMismatch(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=valid-code&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "expected"})
	rec := httptest.NewRecorder()

	err := h.GitHubCallback(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	err := h.Logout(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	sessionCookie := findCookie(t, rec, "pitchboard_session")
	require.NotNil(t, sessionCookie)
	assert.Empty(t, sessionCookie.Value)
	assert.Negative(t, sessionCookie.MaxAge)
}

func TestAuthHandler_GetSession_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()

	err := h.GetSession(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"signedIn":false`)
}

func TestAuthHandler_GetSession_EmptyIdentityClaimIsUnauthenticated(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req = req.WithContext(deliverycontext.WithSession(req.Context(), &entity.Session{}))
	rec := httptest.NewRecorder()

	err := h.GetSession(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"signedIn":false`)
}

func TestAuthHandler_GetSession_Authenticated(t *testing.T) {
	authorID := uuid.New()
	uc := &fakeAuthUsecase{
		currentAuthorFn: func(_ context.Context, id uuid.UUID) (*entity.Author, error) {
			assert.Equal(t, authorID, id)

			return &entity.Author{ID: id, Username: "octocat"}, nil
		},
	}
	h := NewAuthHandler(uc, fakeOAuthService{}, newAuthTestConfig(), nil, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req = req.WithContext(deliverycontext.WithSession(req.Context(), &entity.Session{AuthorID: authorID}))
	rec := httptest.NewRecorder()

	err := h.GetSession(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"signedIn":true`)
	assert.Contains(t, rec.Body.String(), "octocat")
}

package github

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchboard/config"
)

func newTestService(t *testing.T, tokenStatus int, tokenBody string, userStatus int, userBody string) (*oauthService, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(tokenStatus)
		io.WriteString(w, tokenBody)
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_testtoken", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userStatus)
		io.WriteString(w, userBody)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GitHubOAuth: &config.GitHubOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost/auth/github/callback",
			AuthorizeURL: server.URL + "/login/oauth/authorize",
			TokenURL:     server.URL + "/login/oauth/access_token",
			UserURL:      server.URL + "/user",
		},
	}

	svc, err := NewOAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc.(*oauthService), server
}

func TestExchangeCode_Success(t *testing.T) {
	userJSON, _ := json.Marshal(map[string]any{
		"id":         12345,
		"login":      "octocat",
		"name":       "The Octocat",
		"email":      "octo@example.com",
		"avatar_url": "https://avatars.example/octocat.png",
		"bio":        "I build things.",
	})

	svc, _ := newTestService(t,
		http.StatusOK, `{"access_token":"gho_testtoken","token_type":"bearer"}`,
		http.StatusOK, string(userJSON),
	)

	user, err := svc.ExchangeCode(context.Background(), "test-code")
	require.NoError(t, err)

	assert.Equal(t, "12345", user.ID)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, "octo@example.com", user.Email)
	assert.Equal(t, "https://avatars.example/octocat.png", user.AvatarURL)
	assert.Equal(t, "I build things.", user.Bio)
}

func TestExchangeCode_EmptyAccessToken(t *testing.T) {
	svc, _ := newTestService(t,
		http.StatusOK, `{"error":"bad_verification_code"}`,
		http.StatusOK, `{}`,
	)

	_, err := svc.ExchangeCode(context.Background(), "bad-code")
	assert.ErrorContains(t, err, "empty access token")
}

func TestExchangeCode_UserFetchFails(t *testing.T) {
	svc, _ := newTestService(t,
		http.StatusOK, `{"access_token":"gho_testtoken"}`,
		http.StatusUnauthorized, `{"message":"Bad credentials"}`,
	)

	_, err := svc.ExchangeCode(context.Background(), "test-code")
	assert.ErrorContains(t, err, "failed to fetch github user")
}

func TestBuildAuthorizationURL(t *testing.T) {
	svc, server := newTestService(t, http.StatusOK, `{}`, http.StatusOK, `{}`)

	got := svc.BuildAuthorizationURL("state-123")

	assert.Contains(t, got, server.URL+"/login/oauth/authorize?")
	assert.Contains(t, got, "client_id=client-id")
	assert.Contains(t, got, "state=state-123")
}

func TestNewOAuthService_RequiresClientID(t *testing.T) {
	_, err := NewOAuthService(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

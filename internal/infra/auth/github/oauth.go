// Package github implements the OAuthService against the GitHub OAuth 2.0
// web application flow: authorize redirect, code-for-token exchange, and a
// profile fetch from the user endpoint.
package github

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pitchboard/config"
	"pitchboard/internal/domain/service"
)

const (
	defaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	defaultTokenURL     = "https://github.com/login/oauth/access_token"
	defaultUserURL      = "https://api.github.com/user"
)

// oauthService implements service.OAuthService for GitHub.
type oauthService struct {
	clientID     string
	clientSecret string
	redirectURL  string

	authorizeURL string
	tokenURL     string
	userURL      string

	httpClient *http.Client
	logger     *slog.Logger
}

// NewOAuthService is the constructor for the GitHub OAuth provider. The
// endpoint URLs fall back to GitHub's public endpoints when not configured;
// tests point them at a local server.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) (service.OAuthService, error) {
	if cfg.GitHubOAuth == nil || cfg.GitHubOAuth.ClientID == "" {
		return nil, errors.New("github oauth client id must be provided")
	}

	svc := &oauthService{
		clientID:     cfg.GitHubOAuth.ClientID,
		clientSecret: cfg.GitHubOAuth.ClientSecret,
		redirectURL:  cfg.GitHubOAuth.RedirectURL,
		authorizeURL: cfg.GitHubOAuth.AuthorizeURL,
		tokenURL:     cfg.GitHubOAuth.TokenURL,
		userURL:      cfg.GitHubOAuth.UserURL,
		httpClient:   http.DefaultClient,
		logger:       logger,
	}

	if svc.authorizeURL == "" {
		svc.authorizeURL = defaultAuthorizeURL
	}
	if svc.tokenURL == "" {
		svc.tokenURL = defaultTokenURL
	}
	if svc.userURL == "" {
		svc.userURL = defaultUserURL
	}

	return svc, nil
}

// BuildAuthorizationURL returns GitHub's authorize URL for this application.
func (s *oauthService) BuildAuthorizationURL(state string) string {
	params := url.Values{
		"client_id":    {s.clientID},
		"redirect_uri": {s.redirectURL},
		"scope":        {"read:user user:email"},
		"state":        {state},
	}

	return s.authorizeURL + "?" + params.Encode()
}

// tokenResponse is GitHub's token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// userResponse is GitHub's user endpoint response. The numeric id is the
// stable identity key; login, name, email, avatar, and bio feed the author
// profile.
type userResponse struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

// ExchangeCode trades an authorization code for the verified user profile.
func (s *oauthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := s.exchangeToken(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	user, err := s.fetchUser(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch github user")
	}

	s.logger.Info("GitHub profile fetched",
		slog.String("login", user.Login),
		slog.Int64("github_id", user.ID),
	)

	return &service.OAuthUser{
		ID:        strconv.FormatInt(user.ID, 10),
		Login:     user.Login,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
	}, nil
}

// exchangeToken posts the authorization code to the token endpoint.
func (s *oauthService) exchangeToken(ctx context.Context, code string) (string, error) {
	data := url.Values{
		"client_id":     {s.clientID},
		"client_secret": {s.clientSecret},
		"code":          {code},
		"redirect_uri":  {s.redirectURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read token response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errors.Wrap(err, "failed to parse token response")
	}

	if token.AccessToken == "" {
		return "", errors.New("empty access token in response")
	}

	return token.AccessToken, nil
}

// fetchUser retrieves the authenticated user's profile.
func (s *oauthService) fetchUser(ctx context.Context, accessToken string) (*userResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "user request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read user response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("user fetch failed with status %d: %s", resp.StatusCode, string(body))
	}

	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, errors.Wrap(err, "failed to parse user response")
	}

	if user.ID == 0 {
		return nil, errors.New("empty user id in response")
	}

	return &user, nil
}

// compile-time interface check
var _ service.OAuthService = (*oauthService)(nil)

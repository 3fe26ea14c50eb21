// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pitchboard/internal/delivery/context"
	"pitchboard/internal/domain/entity"
	domainerrors "pitchboard/internal/domain/errors"
	"pitchboard/internal/domain/repository"
	"pitchboard/internal/domain/service"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	authorRepo   repository.AuthorRepository
	oauthService service.OAuthService
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AuthorRepo   repository.AuthorRepository
	OAuthService service.OAuthService
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		authorRepo:   params.AuthorRepo,
		oauthService: params.OAuthService,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn orchestrates the OAuth callback: code exchange, author bootstrap,
// and token issuance.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Info("Handling OAuth callback")

	if input.Code == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "missing authorization code")
	}

	// 1. Exchange the authorization code for the verified profile.
	oauthUser, err := srv.oauthService.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to exchange authorization code")
	}

	// 2. Ensure an author record exists for this identity. A failure here is
	// logged but does not abort the callback; token issuance below falls back
	// to an empty identity claim.
	if err := srv.ensureAuthor(ctx, oauthUser); err != nil {
		srv.log(ctx).Error("Failed to ensure author for OAuth identity",
			slog.String("githubID", oauthUser.ID), slog.Any("error", err))
	}

	// 3. Issue the session token. The author is re-fetched by external id so
	// the claim always reflects the stored record.
	author, authorID := srv.resolveAuthor(ctx, oauthUser.ID)

	token, err := srv.tokenService.GenerateToken(authorID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.String("githubID", oauthUser.ID), slog.Any("authorID", authorID))

	return &usecase.SignInOutput{Token: token, Author: author}, nil
}

// ensureAuthor creates an author record for the identity on first sign-in.
// Profile fields are first-seen-wins; an existing record is never updated.
func (srv *authService) ensureAuthor(ctx context.Context, oauthUser *service.OAuthUser) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authorRepo := repoFactory.AuthorRepo()

		_, err := authorRepo.FindByGitHubID(ctx, oauthUser.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrAuthorNotFound) {
			return errors.Wrap(err, "failed to find author by github id")
		}

		srv.log(ctx).Info("Author not found, creating new author", slog.String("githubID", oauthUser.ID))

		newAuthor := &entity.Author{
			GitHubID: oauthUser.ID,
			Name:     oauthUser.Name,
			Username: oauthUser.Login,
			Email:    oauthUser.Email,
			Image:    oauthUser.AvatarURL,
			Bio:      oauthUser.Bio,
		}

		if err := authorRepo.Create(ctx, newAuthor); err != nil {
			return errors.Wrap(err, "failed to create author during sign-in")
		}

		return nil
	})
}

// resolveAuthor fetches the author for token issuance. A lookup failure is
// logged and yields uuid.Nil so the token is issued without an identity claim.
func (srv *authService) resolveAuthor(ctx context.Context, githubID string) (*entity.Author, uuid.UUID) {
	author, err := srv.authorRepo.FindByGitHubID(ctx, githubID)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve author for token issuance",
			slog.String("githubID", githubID), slog.Any("error", err))

		return nil, uuid.Nil
	}

	return author, author.ID
}

// CurrentAuthor resolves the author behind an authenticated session.
func (srv *authService) CurrentAuthor(ctx context.Context, authorID uuid.UUID) (*entity.Author, error) {
	author, err := srv.authorRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthorNotFound, "session author no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find session author")
	}

	return author, nil
}

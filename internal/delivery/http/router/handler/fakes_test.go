package handler

import (
	"context"
	"io"
	"log/slog"

	"pitchboard/internal/domain/entity"
	"pitchboard/internal/domain/service"
	"pitchboard/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuthUsecase struct {
	signInFn        func(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error)
	currentAuthorFn func(ctx context.Context, authorID uuid.UUID) (*entity.Author, error)
}

func (f *fakeAuthUsecase) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	return f.signInFn(ctx, input)
}

func (f *fakeAuthUsecase) CurrentAuthor(ctx context.Context, authorID uuid.UUID) (*entity.Author, error) {
	return f.currentAuthorFn(ctx, authorID)
}

type fakeStartupUsecase struct {
	createFn  func(ctx context.Context, session *entity.Session, input usecase.CreateStartupInput) (*usecase.SubmissionResult, error)
	searchFn  func(ctx context.Context, query string) ([]*entity.Startup, error)
	detailFn  func(ctx context.Context, id uuid.UUID) (*usecase.StartupDetail, error)
	profileFn func(ctx context.Context, authorID uuid.UUID) (*usecase.Profile, error)
}

func (f *fakeStartupUsecase) CreateStartup(ctx context.Context, session *entity.Session, input usecase.CreateStartupInput) (*usecase.SubmissionResult, error) {
	return f.createFn(ctx, session, input)
}

func (f *fakeStartupUsecase) SearchStartups(ctx context.Context, query string) ([]*entity.Startup, error) {
	return f.searchFn(ctx, query)
}

func (f *fakeStartupUsecase) GetStartup(ctx context.Context, id uuid.UUID) (*usecase.StartupDetail, error) {
	return f.detailFn(ctx, id)
}

func (f *fakeStartupUsecase) GetProfile(ctx context.Context, authorID uuid.UUID) (*usecase.Profile, error) {
	return f.profileFn(ctx, authorID)
}

type fakeOAuthService struct{}

func (fakeOAuthService) BuildAuthorizationURL(state string) string {
	return "https://github.com/login/oauth/authorize?client_id=test_client_id&state=" + state
}

func (fakeOAuthService) ExchangeCode(context.Context, string) (*service.OAuthUser, error) {
	panic("not used by handlers")
}

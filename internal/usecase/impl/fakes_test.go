package impl

import (
	"context"
	"io"
	"log/slog"

	"pitchboard/config"
	"pitchboard/internal/domain/entity"
	"pitchboard/internal/domain/repository"
	"pitchboard/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(featuredPlaylist string) *config.Config {
	return &config.Config{
		Content: &config.ContentConfig{
			FeaturedPlaylist: featuredPlaylist,
		},
	}
}

// --- Hand-written fakes for the domain interfaces ---
// Unset function fields default to not-found sentinels so each test only
// wires the calls it cares about.

type fakeAuthorRepo struct {
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	findByGitHubIDFn func(ctx context.Context, githubID string) (*entity.Author, error)
	createFn         func(ctx context.Context, author *entity.Author) error

	createCalls int
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrAuthorNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeAuthorRepo) FindByGitHubID(ctx context.Context, githubID string) (*entity.Author, error) {
	if f.findByGitHubIDFn == nil {
		return nil, repository.ErrAuthorNotFound
	}

	return f.findByGitHubIDFn(ctx, githubID)
}

func (f *fakeAuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	f.createCalls++
	if f.createFn == nil {
		author.ID = uuid.New()

		return nil
	}

	return f.createFn(ctx, author)
}

type fakeStartupRepo struct {
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.Startup, error)
	searchFn         func(ctx context.Context, query string) ([]*entity.Startup, error)
	listByAuthorFn   func(ctx context.Context, authorID uuid.UUID) ([]*entity.Startup, error)
	createFn         func(ctx context.Context, startup *entity.Startup) error
	incrementViewsFn func(ctx context.Context, id uuid.UUID) error

	createCalls    int
	incrementCalls int
}

func (f *fakeStartupRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Startup, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrStartupNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeStartupRepo) Search(ctx context.Context, query string) ([]*entity.Startup, error) {
	if f.searchFn == nil {
		return nil, nil
	}

	return f.searchFn(ctx, query)
}

func (f *fakeStartupRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Startup, error) {
	if f.listByAuthorFn == nil {
		return nil, nil
	}

	return f.listByAuthorFn(ctx, authorID)
}

func (f *fakeStartupRepo) Create(ctx context.Context, startup *entity.Startup) error {
	f.createCalls++
	if f.createFn == nil {
		startup.ID = uuid.New()

		return nil
	}

	return f.createFn(ctx, startup)
}

func (f *fakeStartupRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	f.incrementCalls++
	if f.incrementViewsFn == nil {
		return nil
	}

	return f.incrementViewsFn(ctx, id)
}

type fakePlaylistRepo struct {
	findBySlugFn func(ctx context.Context, slug string) (*entity.Playlist, error)
}

func (f *fakePlaylistRepo) FindBySlug(ctx context.Context, slug string) (*entity.Playlist, error) {
	if f.findBySlugFn == nil {
		return nil, repository.ErrPlaylistNotFound
	}

	return f.findBySlugFn(ctx, slug)
}

// fakeRepoFactory hands the same fakes back for transactional work.
type fakeRepoFactory struct {
	authorRepo  repository.AuthorRepository
	startupRepo repository.StartupRepository
}

func (f *fakeRepoFactory) AuthorRepo() repository.AuthorRepository {
	return f.authorRepo
}

func (f *fakeRepoFactory) StartupRepo() repository.StartupRepository {
	return f.startupRepo
}

// fakeTxManager runs the unit of work immediately without a real transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

type fakeOAuthService struct {
	authorizeURL   string
	exchangeCodeFn func(ctx context.Context, code string) (*service.OAuthUser, error)
}

func (f *fakeOAuthService) BuildAuthorizationURL(state string) string {
	return f.authorizeURL + "?state=" + state
}

func (f *fakeOAuthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthUser, error) {
	return f.exchangeCodeFn(ctx, code)
}

type fakeTokenService struct {
	generateTokenFn func(authorID uuid.UUID) (string, error)

	generatedFor []uuid.UUID
}

func (f *fakeTokenService) GenerateToken(authorID uuid.UUID) (string, error) {
	f.generatedFor = append(f.generatedFor, authorID)
	if f.generateTokenFn == nil {
		return "token-" + authorID.String(), nil
	}

	return f.generateTokenFn(authorID)
}

func (f *fakeTokenService) AuthorIDFromToken(string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

// fakeSanitizer records inputs and marks output so tests can assert the
// sanitizer sat on the write path.
type fakeSanitizer struct {
	inputs []string
}

func (f *fakeSanitizer) Sanitize(markdown string) string {
	f.inputs = append(f.inputs, markdown)

	return "sanitized:" + markdown
}

package postgres

import (
	"context"

	"pitchboard/internal/domain/entity"
	domainerrors "pitchboard/internal/domain/errors"
	"pitchboard/internal/domain/repository"
	"pitchboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// startupRepository implements the domain.StartupRepository interface using GORM.
type startupRepository struct {
	db *gorm.DB
}

// NewStartupRepository is the constructor for startupRepository.
func NewStartupRepository(db *gorm.DB) repository.StartupRepository {
	return &startupRepository{db: db}
}

// FindByID retrieves a single startup by ID, preloading its author snapshot.
func (repo *startupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Startup, error) {
	var startupM model.StartupModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&startupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStartupNotFound
		}

		return nil, errors.Wrap(err, "failed to find startup by id")
	}

	return toStartupDomain(&startupM), nil
}

// Search returns startups whose title, category, or description matches the
// query case-insensitively, newest first. An empty query returns all startups.
func (repo *startupRepository) Search(ctx context.Context, query string) ([]*entity.Startup, error) {
	var startupMs []*model.StartupModel

	tx := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC")

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("title ILIKE ? OR category ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	if err := tx.Find(&startupMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search startups")
	}

	return toStartupDomainList(startupMs), nil
}

// ListByAuthor returns all startups submitted by the given author, newest first.
func (repo *startupRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Startup, error) {
	var startupMs []*model.StartupModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&startupMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list startups by author")
	}

	return toStartupDomainList(startupMs), nil
}

// Create persists a new startup entity to the database.
func (repo *startupRepository) Create(ctx context.Context, startup *entity.Startup) error {
	startupM := fromStartupDomain(startup)

	if err := repo.db.WithContext(ctx).Create(startupM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStartupCreationFailed.WrapMessage("missing required startup information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStartupCreationFailed.WrapMessage("unknown author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create startup")
	}

	// Update the startup entity with the generated ID and timestamp
	startup.ID = startupM.ID
	startup.CreatedAt = startupM.CreatedAt

	return nil
}

// IncrementViews adds one to the view counter of the given startup.
// The increment runs as a single UPDATE so concurrent views never lose counts.
func (repo *startupRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StartupModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment startup views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStartupNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStartupDomain converts a GORM StartupModel to a domain Startup entity.
func toStartupDomain(data *model.StartupModel) *entity.Startup {
	if data == nil {
		return nil
	}

	return &entity.Startup{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Image:       data.Image,
		Slug:        data.Slug,
		Pitch:       data.Pitch,
		AuthorID:    data.AuthorID,
		Views:       data.Views,
		CreatedAt:   data.CreatedAt,
		Author:      toAuthorDomain(data.Author),
	}
}

func toStartupDomainList(data []*model.StartupModel) []*entity.Startup {
	startups := make([]*entity.Startup, 0, len(data))
	for _, startupM := range data {
		startups = append(startups, toStartupDomain(startupM))
	}

	return startups
}

// fromStartupDomain converts a domain Startup entity to a GORM StartupModel
// for persistence. The author snapshot is read-only and never written back.
func fromStartupDomain(data *entity.Startup) *model.StartupModel {
	if data == nil {
		return nil
	}

	return &model.StartupModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Image:       data.Image,
		Slug:        data.Slug,
		Pitch:       data.Pitch,
		AuthorID:    data.AuthorID,
		Views:       data.Views,
	}
}

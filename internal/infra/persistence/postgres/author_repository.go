// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// authorRepository implements the domain.AuthorRepository interface using GORM.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
// It returns the repository as a domain.AuthorRepository interface, adhering to dependency inversion.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

// FindByID retrieves a single author by their internal ID.
func (repo *authorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var authorM model.AuthorModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&authorM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find author by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAuthorDomain(&authorM), nil
}

// FindByGitHubID retrieves a single author by their external identity key.
func (repo *authorRepository) FindByGitHubID(ctx context.Context, githubID string) (*entity.Author, error) {
	var authorM model.AuthorModel

	err := repo.db.WithContext(ctx).
		Where("github_id = ?", githubID).
		First(&authorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by github id")
	}

	return toAuthorDomain(&authorM), nil
}

// Create persists a new author entity to the database.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	// Map the pure domain entity to a GORM persistence model.
	authorM := fromAuthorDomain(author)

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAuthorCreationFailed.WrapMessage("github identity already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAuthorCreationFailed.WrapMessage("missing required author information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	// Update the author entity with the generated ID and timestamps
	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt
	author.UpdatedAt = authorM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAuthorDomain converts a GORM AuthorModel to a domain Author entity.
func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:        data.ID,
		GitHubID:  data.GitHubID,
		Name:      data.Name,
		Username:  data.Username,
		Email:     data.Email,
		Image:     data.Image,
		Bio:       data.Bio,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAuthorDomain converts a domain Author entity to a GORM AuthorModel for persistence.
func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:       data.ID,
		GitHubID: data.GitHubID,
		Name:     data.Name,
		Username: data.Username,
		Email:    data.Email,
		Image:    data.Image,
		Bio:      data.Bio,
	}
}

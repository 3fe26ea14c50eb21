package postgres

import (
	"context"

	"pitchboard/internal/domain/entity"
	"pitchboard/internal/domain/repository"
	"pitchboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playlistRepository implements the domain.PlaylistRepository interface using GORM.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

// FindBySlug retrieves a playlist by its stable slug, preloading the curated
// startups in position order together with their author snapshots.
func (repo *playlistRepository) FindBySlug(ctx context.Context, slug string) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_items.position ASC")
		}).
		Preload("Items.Startup").
		Preload("Items.Startup.Author").
		Where("slug = ?", slug).
		First(&playlistM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by slug")
	}

	return toPlaylistDomain(&playlistM), nil
}

// toPlaylistDomain converts a GORM PlaylistModel to a domain Playlist entity.
// Items whose startup has been deleted are skipped.
func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	startups := make([]*entity.Startup, 0, len(data.Items))
	for _, item := range data.Items {
		if item.Startup == nil {
			continue
		}
		startups = append(startups, toStartupDomain(item.Startup))
	}

	return &entity.Playlist{
		ID:       data.ID,
		Title:    data.Title,
		Slug:     data.Slug,
		Startups: startups,
	}
}

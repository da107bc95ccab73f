package implementation

import (
	"context"
	"errors"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/mapper"
	"wink-music-be/internal/model"
	"wink-music-be/internal/repository/contract"
	"wink-music-be/internal/repository/scope"
	"wink-music-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlaylistMapper
}

func NewPlaylistRepository(db *gorm.DB) contract.PlaylistRepository {
	return &PlaylistRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlaylistMapper(),
	}
}

func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *entity.Playlist) error {
	m := r.mapper.ToModel(playlist)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	if len(playlist.Items) == 0 {
		return nil
	}

	items := make([]*model.PlaylistItem, len(playlist.Items))
	for i, item := range playlist.Items {
		item.PlaylistId = m.Id
		items[i] = r.mapper.ItemToModel(item)
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *PlaylistRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Playlist, error) {
	var m model.Playlist
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []*model.PlaylistItem
	if err := r.db.WithContext(ctx).
		Where("playlist_id = ?", m.Id).
		Scopes(scope.OrderByTrackAsc).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m, items), nil
}

func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("playlist_id = ?", id).Delete(&model.PlaylistItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Playlist{}, "id = ?", id).Error
}

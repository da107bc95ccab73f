package implementation

import (
	"context"
	"errors"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/mapper"
	"wink-music-be/internal/model"
	"wink-music-be/internal/repository/contract"
	"wink-music-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AiRecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecommendationMapper
}

func NewAiRecommendationRepository(db *gorm.DB) contract.AiRecommendationRepository {
	return &AiRecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecommendationMapper(),
	}
}

func (r *AiRecommendationRepositoryImpl) Create(ctx context.Context, recommendation *entity.AiRecommendation) error {
	m := r.mapper.ToModel(recommendation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recommendation = *r.mapper.ToEntity(m)
	return nil
}

func (r *AiRecommendationRepositoryImpl) Update(ctx context.Context, recommendation *entity.AiRecommendation) error {
	m := r.mapper.ToModel(recommendation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*recommendation = *r.mapper.ToEntity(m)
	return nil
}

func (r *AiRecommendationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiRecommendation, error) {
	var m model.AiRecommendation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AiRecommendationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AiRecommendation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AiRecommendationRepositoryImpl) DeleteSongsByRecommendationId(ctx context.Context, recommendationId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recommendation_id = ?", recommendationId).
		Delete(&model.AiRecommendationSong{}).Error
}

func (r *AiRecommendationRepositoryImpl) CreateSongs(ctx context.Context, songs []*entity.AiRecommendationSong) error {
	if len(songs) == 0 {
		return nil
	}
	models := make([]*model.AiRecommendationSong, len(songs))
	for i, s := range songs {
		models[i] = r.mapper.SongToModel(s)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*songs[i] = *r.mapper.SongToEntity(m)
	}
	return nil
}

func (r *AiRecommendationRepositoryImpl) FindSongs(ctx context.Context, specs ...specification.Specification) ([]*entity.AiRecommendationSong, error) {
	var models []*model.AiRecommendationSong
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SongsToEntities(models), nil
}

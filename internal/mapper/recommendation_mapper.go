package mapper

import (
	"wink-music-be/internal/entity"
	"wink-music-be/internal/model"

	"gorm.io/datatypes"
)

type RecommendationMapper struct{}

func NewRecommendationMapper() *RecommendationMapper {
	return &RecommendationMapper{}
}

func (m *RecommendationMapper) ToEntity(r *model.AiRecommendation) *entity.AiRecommendation {
	if r == nil {
		return nil
	}
	return &entity.AiRecommendation{
		Id:           r.Id,
		SessionId:    r.SessionId,
		Summary:      r.Summary,
		KeywordsJson: []byte(r.KeywordsJson),
		CreatedAt:    r.CreatedAt,
	}
}

func (m *RecommendationMapper) ToModel(r *entity.AiRecommendation) *model.AiRecommendation {
	if r == nil {
		return nil
	}
	return &model.AiRecommendation{
		Id:           r.Id,
		SessionId:    r.SessionId,
		Summary:      r.Summary,
		KeywordsJson: datatypes.JSON(r.KeywordsJson),
		CreatedAt:    r.CreatedAt,
	}
}

func (m *RecommendationMapper) SongToEntity(s *model.AiRecommendationSong) *entity.AiRecommendationSong {
	if s == nil {
		return nil
	}
	return &entity.AiRecommendationSong{
		Id:               s.Id,
		RecommendationId: s.RecommendationId,
		SongId:           s.SongId,
		Title:            s.Title,
		Artist:           s.Artist,
		AlbumCover:       s.AlbumCover,
		PreviewUrl:       s.PreviewUrl,
		RankNo:           s.RankNo,
	}
}

func (m *RecommendationMapper) SongToModel(s *entity.AiRecommendationSong) *model.AiRecommendationSong {
	if s == nil {
		return nil
	}
	return &model.AiRecommendationSong{
		Id:               s.Id,
		RecommendationId: s.RecommendationId,
		SongId:           s.SongId,
		Title:            s.Title,
		Artist:           s.Artist,
		AlbumCover:       s.AlbumCover,
		PreviewUrl:       s.PreviewUrl,
		RankNo:           s.RankNo,
	}
}

func (m *RecommendationMapper) SongsToEntities(models []*model.AiRecommendationSong) []*entity.AiRecommendationSong {
	entities := make([]*entity.AiRecommendationSong, len(models))
	for i, s := range models {
		entities[i] = m.SongToEntity(s)
	}
	return entities
}

package contract

import (
	"context"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AiRecommendationRepository interface {
	Create(ctx context.Context, recommendation *entity.AiRecommendation) error
	Update(ctx context.Context, recommendation *entity.AiRecommendation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiRecommendation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	DeleteSongsByRecommendationId(ctx context.Context, recommendationId uuid.UUID) error
	CreateSongs(ctx context.Context, songs []*entity.AiRecommendationSong) error
	FindSongs(ctx context.Context, specs ...specification.Specification) ([]*entity.AiRecommendationSong, error)
}

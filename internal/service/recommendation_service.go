package service

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"wink-music-be/internal/dto"
	"wink-music-be/internal/entity"
	"wink-music-be/internal/pkg/logger"
	"wink-music-be/internal/repository/specification"
	"wink-music-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const recommenderModule = "RECOMMENDER"

type IRecommendationService interface {
	SaveRecommendation(ctx context.Context, req *dto.SaveRecommendationRequest) (*dto.RecommendationResponse, error)
	GetRecommendation(ctx context.Context, sessionId uuid.UUID) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// SaveRecommendation upserts the single bundle of a session. The header is
// updated in place and the song list is replaced wholesale.
func (s *recommendationService) SaveRecommendation(ctx context.Context, req *dto.SaveRecommendationRequest) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	keywords := req.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	repo := uow.AiRecommendationRepository()
	bundle, err := repo.FindOne(ctx, specification.BySessionID{SessionID: session.Id})
	if err != nil {
		return nil, err
	}

	if bundle == nil {
		bundle = &entity.AiRecommendation{
			Id:           uuid.New(),
			SessionId:    session.Id,
			Summary:      req.Summary,
			KeywordsJson: encodeJSON(keywords),
			CreatedAt:    time.Now(),
		}
		if err := repo.Create(ctx, bundle); err != nil {
			return nil, err
		}
	} else {
		bundle.Summary = req.Summary
		bundle.KeywordsJson = encodeJSON(keywords)
		bundle.CreatedAt = time.Now()
		if err := repo.Update(ctx, bundle); err != nil {
			return nil, err
		}
		if err := repo.DeleteSongsByRecommendationId(ctx, bundle.Id); err != nil {
			return nil, err
		}
	}

	songs := rankSongs(bundle.Id, req.Recommendations)
	if len(songs) > 0 {
		if err := repo.CreateSongs(ctx, songs); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(recommenderModule, "Recommendation saved", map[string]interface{}{
		"session_id": session.Id,
		"songs":      len(songs),
	})

	return toRecommendationResponse(bundle, songs), nil
}

func (s *recommendationService) GetRecommendation(ctx context.Context, sessionId uuid.UUID) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AiRecommendationRepository()

	bundle, err := repo.FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, ErrRecommendationNotFound
	}

	songs, err := repo.FindSongs(ctx, specification.ByRecommendationID{RecommendationID: bundle.Id}, specification.ByRank{})
	if err != nil {
		return nil, err
	}

	return toRecommendationResponse(bundle, songs), nil
}

// rankSongs keeps explicit ranks and numbers the rest 1, 2, 3... in payload
// order. The counter only advances for songs without a rank.
func rankSongs(recommendationId uuid.UUID, inputs []dto.RecommendationSongInput) []*entity.AiRecommendationSong {
	songs := make([]*entity.AiRecommendationSong, 0, len(inputs))
	next := 1
	for _, in := range inputs {
		rank := next
		if in.Rank != nil {
			rank = *in.Rank
		} else {
			next++
		}
		songs = append(songs, &entity.AiRecommendationSong{
			Id:               uuid.New(),
			RecommendationId: recommendationId,
			SongId:           in.SongId,
			Title:            in.Title,
			Artist:           in.Artist,
			AlbumCover:       in.AlbumCover,
			PreviewUrl:       in.PreviewUrl,
			RankNo:           rank,
		})
	}
	return songs
}

func toRecommendationResponse(bundle *entity.AiRecommendation, songs []*entity.AiRecommendationSong) *dto.RecommendationResponse {
	keywords := make([]string, 0)
	if err := json.Unmarshal(bundle.KeywordsJson, &keywords); err != nil || keywords == nil {
		keywords = make([]string, 0)
	}

	sorted := slices.Clone(songs)
	slices.SortStableFunc(sorted, func(a, b *entity.AiRecommendationSong) int {
		return a.RankNo - b.RankNo
	})

	res := &dto.RecommendationResponse{
		SessionId: bundle.SessionId,
		Summary:   bundle.Summary,
		Keywords:  keywords,
		Songs:     make([]dto.RecommendedSongResponse, 0, len(sorted)),
		CreatedAt: bundle.CreatedAt,
	}
	for _, song := range sorted {
		res.Songs = append(res.Songs, dto.RecommendedSongResponse{
			SongId:     song.SongId,
			Title:      song.Title,
			Artist:     song.Artist,
			AlbumCover: song.AlbumCover,
			PreviewUrl: song.PreviewUrl,
			Rank:       song.RankNo,
		})
	}
	return res
}

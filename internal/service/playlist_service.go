package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"wink-music-be/internal/constant"
	"wink-music-be/internal/dto"
	"wink-music-be/internal/entity"
	"wink-music-be/internal/pkg/logger"
	"wink-music-be/internal/repository/specification"
	"wink-music-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const playlistModule = "PLAYLIST"

type IPlaylistService interface {
	CreateFromSession(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PlaylistResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type playlistService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPlaylistService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IPlaylistService {
	return &playlistService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// CreateFromSession snapshots the current recommendation bundle of a session.
// Later upserts of the bundle do not touch the playlist.
func (s *playlistService) CreateFromSession(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistResponse, error) {
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

	bundle, err := uow.AiRecommendationRepository().FindOne(ctx, specification.BySessionID{SessionID: session.Id})
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, ErrRecommendationNotFound
	}

	songs, err := uow.AiRecommendationRepository().FindSongs(ctx,
		specification.ByRecommendationID{RecommendationID: bundle.Id},
		specification.ByRank{},
	)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = constant.DefaultPlaylistName
	}

	sessionId := session.Id
	playlist := entity.Playlist{
		Id:        uuid.New(),
		SessionId: &sessionId,
		Name:      name,
		CreatedAt: time.Now(),
		Items:     make([]*entity.PlaylistItem, 0, len(songs)),
	}
	for i, song := range songs {
		playlist.Items = append(playlist.Items, &entity.PlaylistItem{
			Id:         uuid.New(),
			PlaylistId: playlist.Id,
			SongId:     song.SongId,
			SongTitle:  song.Title,
			Artist:     song.Artist,
			AlbumCover: song.AlbumCover,
			PreviewUrl: song.PreviewUrl,
			TrackNo:    i + 1,
		})
	}

	if err := uow.PlaylistRepository().Create(ctx, &playlist); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(playlistModule, "Playlist created", map[string]interface{}{
		"playlist_id": playlist.Id,
		"session_id":  session.Id,
		"tracks":      len(playlist.Items),
	})

	return toPlaylistResponse(&playlist), nil
}

func (s *playlistService) Show(ctx context.Context, id uuid.UUID) (*dto.PlaylistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	playlist, err := uow.PlaylistRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, ErrPlaylistNotFound
	}

	return toPlaylistResponse(playlist), nil
}

func (s *playlistService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	playlist, err := uow.PlaylistRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if playlist == nil {
		return ErrPlaylistNotFound
	}

	if err := uow.PlaylistRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info(playlistModule, "Playlist deleted", map[string]interface{}{
		"playlist_id": id,
	})
	return nil
}

func toPlaylistResponse(p *entity.Playlist) *dto.PlaylistResponse {
	items := slices.Clone(p.Items)
	slices.SortStableFunc(items, func(a, b *entity.PlaylistItem) int {
		return a.TrackNo - b.TrackNo
	})

	res := &dto.PlaylistResponse{
		Id:        p.Id,
		SessionId: p.SessionId,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		Items:     make([]dto.PlaylistItemResponse, 0, len(items)),
	}
	for _, item := range items {
		res.Items = append(res.Items, dto.PlaylistItemResponse{
			Id:         item.Id,
			SongId:     item.SongId,
			Title:      item.SongTitle,
			Artist:     item.Artist,
			AlbumCover: item.AlbumCover,
			PreviewUrl: item.PreviewUrl,
			TrackNo:    item.TrackNo,
		})
	}
	return res
}

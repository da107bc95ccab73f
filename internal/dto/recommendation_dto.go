package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationSongInput struct {
	SongId     *int64 `json:"songId"`
	Title      string `json:"title" validate:"required,max=255"`
	Artist     string `json:"artist" validate:"required,max=255"`
	AlbumCover string `json:"albumCover" validate:"max=2048"`
	PreviewUrl string `json:"previewUrl" validate:"max=2048"`
	Rank       *int   `json:"rank" validate:"omitempty,min=1"`
}

type SaveRecommendationRequest struct {
	SessionId       uuid.UUID                 `json:"sessionId" validate:"required"`
	Summary         string                    `json:"summary"`
	Keywords        []string                  `json:"keywords"`
	Recommendations []RecommendationSongInput `json:"recommendations" validate:"max=100,dive"`
}

type RecommendedSongResponse struct {
	SongId     *int64 `json:"songId"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	AlbumCover string `json:"albumCover"`
	PreviewUrl string `json:"previewUrl"`
	Rank       int    `json:"rank"`
}

type RecommendationResponse struct {
	SessionId uuid.UUID                 `json:"sessionId"`
	Summary   string                    `json:"summary"`
	Keywords  []string                  `json:"keywords"`
	Songs     []RecommendedSongResponse `json:"songs"`
	CreatedAt time.Time                 `json:"createdAt"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type AiRecommendation struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	Summary      string
	KeywordsJson []byte
	CreatedAt    time.Time
}

type AiRecommendationSong struct {
	Id               uuid.UUID
	RecommendationId uuid.UUID
	SongId           *int64
	Title            string
	Artist           string
	AlbumCover       string
	PreviewUrl       string
	RankNo           int
}

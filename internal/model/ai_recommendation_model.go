package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AiRecommendation struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SessionId    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Summary      string         `gorm:"type:text"`
	KeywordsJson datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"not null"`
}

func (AiRecommendation) TableName() string {
	return "ai_recommendations"
}

type AiRecommendationSong struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecommendationId uuid.UUID `gorm:"type:uuid;not null;index"`
	SongId           *int64
	Title            string `gorm:"type:varchar(255);not null"`
	Artist           string `gorm:"type:varchar(255);not null"`
	AlbumCover       string `gorm:"type:text"`
	PreviewUrl       string `gorm:"type:text"`
	RankNo           int    `gorm:"not null"`
}

func (AiRecommendationSong) TableName() string {
	return "ai_recommendation_songs"
}

package specification

import (
	"wink-music-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ByRecommendationID struct {
	RecommendationID uuid.UUID
}

func (s ByRecommendationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recommendation_id = ?", s.RecommendationID)
}

// Chronological orders history oldest first. Message ids are UUIDv7, so
// the id tiebreak keeps insertion order for equal timestamps.
type Chronological struct{}

func (s Chronological) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByCreatedAsc)
}

type ByRank struct{}

func (s ByRank) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByRankAsc)
}

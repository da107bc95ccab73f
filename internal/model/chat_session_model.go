package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(20);not null"` // MY | SPACE
	Topic     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// SessionContext holds the spatial context of a SPACE session.
type SessionContext struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ImageUrl  string    `gorm:"type:text"`
	Lat       *float64
	Lng       *float64
	Address   string `gorm:"type:text"`
	PlaceName string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (SessionContext) TableName() string {
	return "session_contexts"
}

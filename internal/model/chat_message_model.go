package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SessionId           uuid.UUID      `gorm:"type:uuid;not null;index:idx_chat_messages_session_created,priority:1"`
	Sender              string         `gorm:"type:varchar(10);not null"` // user | ai
	Text                string         `gorm:"type:text"`
	ImageUrl            string         `gorm:"type:text"`
	KeywordsJson        datatypes.JSON `gorm:"type:jsonb"`
	RecommendationsJson datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt           time.Time      `gorm:"not null;index:idx_chat_messages_session_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Sender    string
	Text      string
	ImageUrl  string
	// Raw JSON blobs, decoded lazily by readers.
	KeywordsJson        []byte
	RecommendationsJson []byte
	CreatedAt           time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	Kind      string
	Topic     string
	CreatedAt time.Time
}

type SessionContext struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	ImageUrl  string
	Lat       *float64
	Lng       *float64
	Address   string
	PlaceName string
	CreatedAt time.Time
}

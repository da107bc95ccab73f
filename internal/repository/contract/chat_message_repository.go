package contract

import (
	"context"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/repository/specification"
)

// ChatMessageRepository is append-only: history rows are never updated.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

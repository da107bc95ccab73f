package unitofwork

import (
	"context"

	"wink-music-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	SessionContextRepository() contract.SessionContextRepository
	ChatMessageRepository() contract.ChatMessageRepository
	AiRecommendationRepository() contract.AiRecommendationRepository
	PlaylistRepository() contract.PlaylistRepository
}

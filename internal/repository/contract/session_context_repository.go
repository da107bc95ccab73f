package contract

import (
	"context"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/repository/specification"
)

type SessionContextRepository interface {
	Create(ctx context.Context, sessionContext *entity.SessionContext) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionContext, error)
}

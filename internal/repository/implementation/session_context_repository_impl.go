package implementation

import (
	"context"
	"errors"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/mapper"
	"wink-music-be/internal/model"
	"wink-music-be/internal/repository/contract"
	"wink-music-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionContextRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewSessionContextRepository(db *gorm.DB) contract.SessionContextRepository {
	return &SessionContextRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *SessionContextRepositoryImpl) Create(ctx context.Context, sessionContext *entity.SessionContext) error {
	m := r.mapper.SessionContextToModel(sessionContext)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sessionContext = *r.mapper.SessionContextToEntity(m)
	return nil
}

func (r *SessionContextRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionContext, error) {
	var m model.SessionContext
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionContextToEntity(&m), nil
}

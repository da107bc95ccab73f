package mapper

import (
	"wink-music-be/internal/entity"
	"wink-music-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		Kind:      s.Kind,
		Topic:     s.Topic,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		Kind:      s.Kind,
		Topic:     s.Topic,
		CreatedAt: s.CreatedAt,
	}
}

// Context Mappers

func (m *ChatMapper) SessionContextToEntity(c *model.SessionContext) *entity.SessionContext {
	if c == nil {
		return nil
	}
	return &entity.SessionContext{
		Id:        c.Id,
		SessionId: c.SessionId,
		ImageUrl:  c.ImageUrl,
		Lat:       c.Lat,
		Lng:       c.Lng,
		Address:   c.Address,
		PlaceName: c.PlaceName,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) SessionContextToModel(c *entity.SessionContext) *model.SessionContext {
	if c == nil {
		return nil
	}
	return &model.SessionContext{
		Id:        c.Id,
		SessionId: c.SessionId,
		ImageUrl:  c.ImageUrl,
		Lat:       c.Lat,
		Lng:       c.Lng,
		Address:   c.Address,
		PlaceName: c.PlaceName,
		CreatedAt: c.CreatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:                  msg.Id,
		SessionId:           msg.SessionId,
		Sender:              msg.Sender,
		Text:                msg.Text,
		ImageUrl:            msg.ImageUrl,
		KeywordsJson:        []byte(msg.KeywordsJson),
		RecommendationsJson: []byte(msg.RecommendationsJson),
		CreatedAt:           msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:                  msg.Id,
		SessionId:           msg.SessionId,
		Sender:              msg.Sender,
		Text:                msg.Text,
		ImageUrl:            msg.ImageUrl,
		KeywordsJson:        datatypes.JSON(msg.KeywordsJson),
		RecommendationsJson: datatypes.JSON(msg.RecommendationsJson),
		CreatedAt:           msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.ChatMessageToEntity(msg)
	}
	return entities
}

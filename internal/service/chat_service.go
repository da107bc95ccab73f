package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"wink-music-be/internal/constant"
	"wink-music-be/internal/dto"
	"wink-music-be/internal/entity"
	"wink-music-be/internal/pkg/logger"
	"wink-music-be/internal/repository/specification"
	"wink-music-be/internal/repository/unitofwork"
	"wink-music-be/pkg/recommender"
	"wink-music-be/pkg/topic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const chatModule = "CHAT"

var tracer = otel.Tracer("wink-music-be/internal/service")

type IChatService interface {
	StartMySession(ctx context.Context, req *dto.ChatStartMyRequest) (*dto.ChatStartResponse, error)
	StartSpaceSession(ctx context.Context, req *dto.ChatStartSpaceRequest) (*dto.ChatStartResponse, error)
	GenerateAiResponse(ctx context.Context, req *dto.AiResponseRequest) (*dto.AiResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	uowFactory            unitofwork.RepositoryFactory
	topicResolver         *topic.Resolver
	recommender           recommender.Client
	recommendationService IRecommendationService
	logger                logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	topicResolver *topic.Resolver,
	recommender recommender.Client,
	recommendationService IRecommendationService,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:            uowFactory,
		topicResolver:         topicResolver,
		recommender:           recommender,
		recommendationService: recommendationService,
		logger:                logger,
	}
}

func (s *chatService) StartMySession(ctx context.Context, req *dto.ChatStartMyRequest) (*dto.ChatStartResponse, error) {
	// Resolve before opening the transaction; the provider call may be slow.
	resolved := s.topicResolver.Resolve(ctx, req.InputText, topic.ImageHint(req.ImageUrls))

	now := time.Now()
	session := entity.ChatSession{
		Id:        uuid.New(),
		Kind:      constant.SessionKindMy,
		Topic:     resolved,
		CreatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.InputText) != "" {
		message := s.newMessage(session.Id, constant.SenderUser, req.InputText, req.ImageUrls, now)
		if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(chatModule, "Session started", map[string]interface{}{
		"session_id": session.Id,
		"kind":       session.Kind,
		"topic":      session.Topic,
	})

	return &dto.ChatStartResponse{
		SessionId: session.Id,
		Kind:      session.Kind,
		Topic:     session.Topic,
		Message:   constant.MySessionCreatedMessage,
		Timestamp: session.CreatedAt,
	}, nil
}

func (s *chatService) StartSpaceSession(ctx context.Context, req *dto.ChatStartSpaceRequest) (*dto.ChatStartResponse, error) {
	hint := topic.SpaceHint{}
	var loc dto.LocationDTO
	if req.Location != nil {
		loc = *req.Location
	}
	hint.PlaceName = loc.PlaceName
	hint.Address = loc.Address
	hint.Lat = loc.Lat
	hint.Lng = loc.Lng
	for _, m := range req.NearbyMusic {
		hint.Nearby = append(hint.Nearby, topic.NearbySong{Title: m.Title, Artist: m.Artist})
	}

	// The place is the input sentence; everything else is auxiliary.
	input := loc.PlaceName
	if strings.TrimSpace(input) == "" {
		input = loc.Address
	}
	aux := hint.String()
	if req.ImageUrl != "" {
		aux += "\n" + topic.ImageHint([]string{req.ImageUrl})
	}
	resolved := s.topicResolver.Resolve(ctx, input, aux)

	now := time.Now()
	session := entity.ChatSession{
		Id:        uuid.New(),
		Kind:      constant.SessionKindSpace,
		Topic:     resolved,
		CreatedAt: now,
	}
	sessionContext := entity.SessionContext{
		Id:        uuid.New(),
		SessionId: session.Id,
		ImageUrl:  req.ImageUrl,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		Address:   loc.Address,
		PlaceName: loc.PlaceName,
		CreatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}
	if err := uow.SessionContextRepository().Create(ctx, &sessionContext); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(chatModule, "Session started", map[string]interface{}{
		"session_id": session.Id,
		"kind":       session.Kind,
		"topic":      session.Topic,
		"nearby":     len(req.NearbyMusic),
	})

	return &dto.ChatStartResponse{
		SessionId: session.Id,
		Kind:      session.Kind,
		Topic:     session.Topic,
		Message:   constant.SpaceSessionCreatedMessage,
		Timestamp: session.CreatedAt,
	}, nil
}

// GenerateAiResponse forwards a user turn to the recommendation service.
// An unknown session is fatal. An upstream failure is reported in-band as a
// degraded response. Conversation log writes are best effort.
func (s *chatService) GenerateAiResponse(ctx context.Context, req *dto.AiResponseRequest) (*dto.AiResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	receivedAt := time.Now()
	result, callErr := s.callRecommender(ctx, session, req)

	s.appendBestEffort(ctx, uow, s.newMessage(session.Id, constant.SenderUser, req.InputText, req.ImageUrls, receivedAt))

	if callErr != nil {
		s.logger.Error(chatModule, "Recommendation service call failed", map[string]interface{}{
			"session_id": session.Id,
			"error":      callErr.Error(),
		})
		return &dto.AiResponse{
			SessionId:       session.Id,
			Topic:           constant.DegradedTopic,
			Keywords:        []string{constant.DegradedKeyword},
			AiMessage:       constant.DegradedAiMessage,
			Recommendations: []dto.RecommendationDTO{},
			Timestamp:       time.Now(),
		}, nil
	}

	recommendations := make([]dto.RecommendationDTO, 0, len(result.Recommendations))
	for _, song := range result.Recommendations {
		recommendations = append(recommendations, dto.RecommendationDTO{
			SongId:     song.SongId,
			Title:      song.Title,
			Artist:     song.Artist,
			AlbumCover: song.AlbumCover,
			PreviewUrl: song.PreviewUrl,
		})
	}

	aiMessage := s.newMessage(session.Id, constant.SenderAi, result.AiMessage, nil, time.Now())
	aiMessage.KeywordsJson = encodeJSON(result.Keywords)
	aiMessage.RecommendationsJson = encodeJSON(recommendations)
	s.appendBestEffort(ctx, uow, aiMessage)

	// A failed bundle write leaves the previous bundle in place; the reply is still returned.
	if _, err := s.recommendationService.SaveRecommendation(ctx, toSaveRequest(session.Id, result)); err != nil {
		s.logger.Error(chatModule, "Failed to persist recommendation bundle", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
	}

	return &dto.AiResponse{
		SessionId:       session.Id,
		Topic:           session.Topic,
		Keywords:        result.Keywords,
		AiMessage:       result.AiMessage,
		Recommendations: recommendations,
		Timestamp:       aiMessage.CreatedAt,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.Chronological{},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatHistoryResponse{
		SessionId: session.Id,
		Kind:      session.Kind,
		Topic:     session.Topic,
		Messages:  make([]dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		keywords := make([]string, 0)
		recommendations := make([]dto.RecommendationDTO, 0)
		// Unreadable stored payloads degrade to empty lists.
		if len(m.KeywordsJson) > 0 {
			if err := json.Unmarshal(m.KeywordsJson, &keywords); err != nil || keywords == nil {
				keywords = make([]string, 0)
			}
		}
		if len(m.RecommendationsJson) > 0 {
			if err := json.Unmarshal(m.RecommendationsJson, &recommendations); err != nil || recommendations == nil {
				recommendations = make([]dto.RecommendationDTO, 0)
			}
		}
		res.Messages = append(res.Messages, dto.ChatMessageResponse{
			MessageId:       m.Id,
			Sender:          m.Sender,
			Text:            m.Text,
			Keywords:        keywords,
			Recommendations: recommendations,
			Timestamp:       m.CreatedAt,
		})
	}

	return res, nil
}

func (s *chatService) callRecommender(ctx context.Context, session *entity.ChatSession, req *dto.AiResponseRequest) (*recommender.Result, error) {
	ctx, span := tracer.Start(ctx, "recommender.Recommend", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", session.Id.String()),
		attribute.Int("request.images", len(req.ImageUrls)),
	)

	imageUrls := req.ImageUrls
	if imageUrls == nil {
		imageUrls = []string{}
	}
	result, err := s.recommender.Recommend(ctx, &recommender.Request{
		SessionId: session.Id.String(),
		Topic:     session.Topic,
		InputText: req.InputText,
		ImageUrls: imageUrls,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("response.recommendations", len(result.Recommendations)))
	return result, nil
}

// appendBestEffort writes a conversation log row outside any transaction.
// Failures are logged and dropped.
func (s *chatService) appendBestEffort(ctx context.Context, uow unitofwork.UnitOfWork, message *entity.ChatMessage) {
	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		s.logger.Error(chatModule, "Failed to persist chat message", map[string]interface{}{
			"session_id": message.SessionId,
			"sender":     message.Sender,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) newMessage(sessionId uuid.UUID, sender, text string, imageUrls []string, at time.Time) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:        newMessageId(),
		SessionId: sessionId,
		Sender:    sender,
		Text:      text,
		ImageUrl:  strings.Join(imageUrls, constant.ImageUrlSeparator),
		CreatedAt: at,
	}
}

// newMessageId returns a time-ordered id so equal timestamps keep insert order.
func newMessageId() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

func toSaveRequest(sessionId uuid.UUID, result *recommender.Result) *dto.SaveRecommendationRequest {
	songs := make([]dto.RecommendationSongInput, 0, len(result.Recommendations))
	for _, song := range result.Recommendations {
		songs = append(songs, dto.RecommendationSongInput{
			SongId:     song.SongId,
			Title:      song.Title,
			Artist:     song.Artist,
			AlbumCover: song.AlbumCover,
			PreviewUrl: song.PreviewUrl,
		})
	}
	return &dto.SaveRecommendationRequest{
		SessionId:       sessionId,
		Summary:         result.AiMessage,
		Keywords:        result.Keywords,
		Recommendations: songs,
	}
}

func encodeJSON(v interface{}) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

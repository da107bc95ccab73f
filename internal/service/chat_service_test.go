package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"wink-music-be/internal/constant"
	"wink-music-be/internal/dto"
	"wink-music-be/internal/entity"
	"wink-music-be/internal/model"
	"wink-music-be/pkg/recommender"
	"wink-music-be/pkg/topic"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartMySessionUsesFallbackTopicAndStoresFirstMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{
		InputText: "비 오는 날 듣기 좋은 노래",
		ImageUrls: []string{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, constant.SessionKindMy, res.Kind)
	assert.Equal(t, "비 오는 날 감성", res.Topic)
	assert.Equal(t, constant.MySessionCreatedMessage, res.Message)
	assert.False(t, res.Timestamp.IsZero())

	history, err := f.chat.GetHistory(ctx, res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "비 오는 날 감성", history.Topic)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, constant.SenderUser, history.Messages[0].Sender)
	assert.Equal(t, "비 오는 날 듣기 좋은 노래", history.Messages[0].Text)
	assert.Empty(t, history.Messages[0].Keywords)
	assert.Empty(t, history.Messages[0].Recommendations)

	var stored model.ChatMessage
	require.NoError(t, f.db.Where("session_id = ?", res.SessionId).First(&stored).Error)
	assert.Equal(t, "a.jpg,b.jpg", stored.ImageUrl)
}

func TestStartMySessionBlankInput(t *testing.T) {
	p := &stubProvider{text: "unused"}
	f := newFixture(t, withProvider(p))

	res, err := f.chat.StartMySession(context.Background(), &dto.ChatStartMyRequest{InputText: "   "})
	require.NoError(t, err)

	assert.Equal(t, topic.UntitledTopic, res.Topic)
	assert.Empty(t, p.prompt)
	assert.Equal(t, int64(1), f.count(t, &model.ChatSession{}))
	assert.Equal(t, int64(0), f.count(t, &model.ChatMessage{}))
}

func TestStartMySessionImagesOnlyStoresNoMessage(t *testing.T) {
	f := newFixture(t)

	res, err := f.chat.StartMySession(context.Background(), &dto.ChatStartMyRequest{
		InputText: "",
		ImageUrls: []string{"a.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, topic.UntitledTopic, res.Topic)
	assert.Equal(t, int64(1), f.count(t, &model.ChatSession{}))
	assert.Equal(t, int64(0), f.count(t, &model.ChatMessage{}))
}

func TestStartMySessionUsesProviderTopic(t *testing.T) {
	p := &stubProvider{text: " 새벽 감성 발라드 "}
	f := newFixture(t, withProvider(p))

	res, err := f.chat.StartMySession(context.Background(), &dto.ChatStartMyRequest{InputText: "잠이 안 와"})
	require.NoError(t, err)

	assert.Equal(t, "새벽 감성 발라드", res.Topic)
	assert.Contains(t, p.prompt, "잠이 안 와")
}

func TestStartSpaceSessionStoresContext(t *testing.T) {
	p := &stubProvider{err: errors.New("quota exceeded")}
	f := newFixture(t, withProvider(p))

	lat, lng := 37.5, 127.0
	res, err := f.chat.StartSpaceSession(context.Background(), &dto.ChatStartSpaceRequest{
		ImageUrl: "space.jpg",
		Location: &dto.LocationDTO{Lat: &lat, Lng: &lng, Address: "서울시 중구", PlaceName: "한강 산책로"},
		NearbyMusic: []dto.NearbyMusicDTO{
			{Title: "밤편지", Artist: "아이유"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, constant.SessionKindSpace, res.Kind)
	assert.Equal(t, constant.SpaceSessionCreatedMessage, res.Message)
	assert.Equal(t, "산책할 때 듣는 음악", res.Topic)
	assert.Contains(t, p.prompt, `문장: "한강 산책로"`)
	assert.Contains(t, p.prompt, "주변 음악: 밤편지 - 아이유")
	assert.Contains(t, p.prompt, "첨부 이미지: space.jpg")

	var ctxRow model.SessionContext
	require.NoError(t, f.db.Where("session_id = ?", res.SessionId).First(&ctxRow).Error)
	assert.Equal(t, "space.jpg", ctxRow.ImageUrl)
	assert.Equal(t, "한강 산책로", ctxRow.PlaceName)
	require.NotNil(t, ctxRow.Lat)
	assert.InDelta(t, 37.5, *ctxRow.Lat, 1e-9)
	require.NotNil(t, ctxRow.Lng)
	assert.InDelta(t, 127.0, *ctxRow.Lng, 1e-9)
	assert.Equal(t, "서울시 중구", ctxRow.Address)
	assert.Equal(t, int64(0), f.count(t, &model.ChatMessage{}))
}

func TestStartSpaceSessionFallsBackToAddress(t *testing.T) {
	f := newFixture(t)

	res, err := f.chat.StartSpaceSession(context.Background(), &dto.ChatStartSpaceRequest{
		Location: &dto.LocationDTO{Address: "퇴근길 버스 정류장"},
	})
	require.NoError(t, err)
	assert.Equal(t, "퇴근길 플레이리스트", res.Topic)

	empty, err := f.chat.StartSpaceSession(context.Background(), &dto.ChatStartSpaceRequest{})
	require.NoError(t, err)
	assert.Equal(t, topic.UntitledTopic, empty.Topic)
}

func TestGenerateAiResponseSuccess(t *testing.T) {
	var got recommender.Request
	f := newFixture(t, withRecommender(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(recommenderReply))
	}))
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{InputText: "비가 와"})
	require.NoError(t, err)

	res, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{
		SessionId: session.SessionId,
		InputText: "재즈 추천해줘",
		ImageUrls: []string{"x.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, session.SessionId.String(), got.SessionId)
	assert.Equal(t, "비 오는 날 감성", got.Topic)
	assert.Equal(t, "재즈 추천해줘", got.InputText)
	assert.Equal(t, []string{"x.jpg"}, got.ImageUrls)

	assert.Equal(t, "비 오는 날 감성", res.Topic)
	assert.Equal(t, []string{"rainy", "jazz"}, res.Keywords)
	assert.Equal(t, "비 오는 날 어울리는 재즈입니다.", res.AiMessage)
	require.Len(t, res.Recommendations, 3)
	assert.Equal(t, "Autumn Leaves", res.Recommendations[0].Title)
	require.NotNil(t, res.Recommendations[0].SongId)
	assert.Equal(t, int64(11), *res.Recommendations[0].SongId)
	assert.Nil(t, res.Recommendations[2].SongId)

	history, err := f.chat.GetHistory(ctx, session.SessionId)
	require.NoError(t, err)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, constant.SenderUser, history.Messages[0].Sender)
	assert.Equal(t, constant.SenderUser, history.Messages[1].Sender)
	assert.Equal(t, "재즈 추천해줘", history.Messages[1].Text)
	ai := history.Messages[2]
	assert.Equal(t, constant.SenderAi, ai.Sender)
	assert.Equal(t, res.AiMessage, ai.Text)
	assert.Equal(t, res.Keywords, ai.Keywords)
	assert.Equal(t, res.Recommendations, ai.Recommendations)

	bundle, err := f.recommendations.GetRecommendation(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, res.AiMessage, bundle.Summary)
	assert.Equal(t, res.Keywords, bundle.Keywords)
	require.Len(t, bundle.Songs, 3)
	for i, song := range bundle.Songs {
		assert.Equal(t, i+1, song.Rank)
		assert.Equal(t, res.Recommendations[i].Title, song.Title)
	}
}

func TestGenerateAiResponseDegradesOnUpstreamFailure(t *testing.T) {
	f := newFixture(t, withRecommender(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	res, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{
		SessionId: session.SessionId,
		InputText: "신나는 노래",
	})
	require.NoError(t, err)

	assert.Equal(t, session.SessionId, res.SessionId)
	assert.Equal(t, constant.DegradedTopic, res.Topic)
	assert.Equal(t, []string{constant.DegradedKeyword}, res.Keywords)
	assert.Equal(t, constant.DegradedAiMessage, res.AiMessage)
	assert.NotNil(t, res.Recommendations)
	assert.Empty(t, res.Recommendations)

	history, err := f.chat.GetHistory(ctx, session.SessionId)
	require.NoError(t, err)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, constant.SenderUser, history.Messages[0].Sender)
	assert.Equal(t, "신나는 노래", history.Messages[0].Text)

	_, err = f.recommendations.GetRecommendation(ctx, session.SessionId)
	assert.ErrorIs(t, err, ErrRecommendationNotFound)
}

func TestGenerateAiResponseDegradesOnMalformedReply(t *testing.T) {
	f := newFixture(t, withRecommender(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	res, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{SessionId: session.SessionId})
	require.NoError(t, err)
	assert.Equal(t, constant.DegradedAiMessage, res.AiMessage)
	assert.Equal(t, int64(0), f.count(t, &model.AiRecommendation{}))
}

func TestGenerateAiResponseUnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.chat.GenerateAiResponse(context.Background(), &dto.AiResponseRequest{
		SessionId: uuid.New(),
		InputText: "hello",
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NotErrorIs(t, err, recommender.ErrUpstreamUnavailable)
	assert.Equal(t, 0, f.recommenderCalls())
	assert.Equal(t, int64(0), f.count(t, &model.ChatMessage{}))
}

func TestGenerateAiResponseSwallowsMessageWriteFailures(t *testing.T) {
	f := newFixture(t, withChatFactory(failingMessages))
	ctx := context.Background()

	session := entity.ChatSession{Id: uuid.New(), Kind: constant.SessionKindMy, Topic: "집중용 재즈", CreatedAt: time.Now()}
	require.NoError(t, f.factory.NewUnitOfWork(ctx).ChatSessionRepository().Create(ctx, &session))

	res, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{SessionId: session.Id, InputText: "공부"})
	require.NoError(t, err)

	assert.Equal(t, "집중용 재즈", res.Topic)
	assert.Len(t, res.Recommendations, 3)
	assert.Equal(t, int64(0), f.count(t, &model.ChatMessage{}))
	assert.Equal(t, int64(1), f.count(t, &model.AiRecommendation{}))
}

func TestGenerateAiResponseSurvivesBundleWriteFailure(t *testing.T) {
	f := newFixture(t, withFactory(failingSongs))
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{InputText: "비가 와"})
	require.NoError(t, err)

	res, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{SessionId: session.SessionId, InputText: "재즈"})
	require.NoError(t, err)

	assert.Equal(t, session.Topic, res.Topic)
	assert.Equal(t, []string{"rainy", "jazz"}, res.Keywords)
	assert.Len(t, res.Recommendations, 3)
	assert.Equal(t, int64(3), f.count(t, &model.ChatMessage{}))
	assert.Equal(t, int64(0), f.count(t, &model.AiRecommendation{}))
	assert.Equal(t, int64(0), f.count(t, &model.AiRecommendationSong{}))
}

func TestGenerateAiResponseDropsUnstorableSongs(t *testing.T) {
	long := strings.Repeat("x", 300)
	f := newFixture(t, withRecommender(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recommendations": [
			{"title": "` + long + `", "artist": "Long"},
			{"title": "", "artist": "Blank"},
			{"title": "Kept", "artist": "Someone"}
		]}`))
	}))
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	res, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{SessionId: session.SessionId})
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 2)
	assert.Len(t, res.Recommendations[0].Title, 255)
	assert.Equal(t, "Kept", res.Recommendations[1].Title)

	bundle, err := f.recommendations.GetRecommendation(ctx, session.SessionId)
	require.NoError(t, err)
	require.Len(t, bundle.Songs, 2)
	assert.Equal(t, strings.Repeat("x", 255), bundle.Songs[0].Title)
	assert.Equal(t, "Kept", bundle.Songs[1].Title)
}

func TestGenerateAiResponseReplacesBundle(t *testing.T) {
	replies := []string{
		recommenderReply,
		`{"keywords": ["calm"], "recommendations": [{"title": "Only One", "artist": "Solo"}]}`,
	}
	call := 0
	f := newFixture(t, withRecommender(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(replies[call]))
		call++
	}))
	ctx := context.Background()

	session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
	require.NoError(t, err)

	for range replies {
		_, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{SessionId: session.SessionId})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), f.count(t, &model.AiRecommendation{}))
	assert.Equal(t, int64(1), f.count(t, &model.AiRecommendationSong{}))

	bundle, err := f.recommendations.GetRecommendation(ctx, session.SessionId)
	require.NoError(t, err)
	assert.Equal(t, recommender.DefaultAiMessage, bundle.Summary)
	assert.Equal(t, []string{"calm"}, bundle.Keywords)
	require.Len(t, bundle.Songs, 1)
	assert.Equal(t, "Only One", bundle.Songs[0].Title)
	assert.Equal(t, 1, bundle.Songs[0].Rank)
}

func TestGetHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		_, err := f.chat.GetHistory(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("empty history is a list", func(t *testing.T) {
		session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
		require.NoError(t, err)

		history, err := f.chat.GetHistory(ctx, session.SessionId)
		require.NoError(t, err)
		assert.NotNil(t, history.Messages)
		assert.Empty(t, history.Messages)
	})

	t.Run("unreadable payloads become empty lists", func(t *testing.T) {
		session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{})
		require.NoError(t, err)

		uow := f.factory.NewUnitOfWork(ctx)
		require.NoError(t, uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
			Id:                  uuid.New(),
			SessionId:           session.SessionId,
			Sender:              constant.SenderAi,
			Text:                "broken",
			KeywordsJson:        []byte(`{"not": "a list"}`),
			RecommendationsJson: []byte(`"nope"`),
			CreatedAt:           time.Now(),
		}))

		history, err := f.chat.GetHistory(ctx, session.SessionId)
		require.NoError(t, err)
		require.Len(t, history.Messages, 1)
		assert.Equal(t, []string{}, history.Messages[0].Keywords)
		assert.Equal(t, []dto.RecommendationDTO{}, history.Messages[0].Recommendations)
	})

	t.Run("messages are chronological", func(t *testing.T) {
		session, err := f.chat.StartMySession(ctx, &dto.ChatStartMyRequest{InputText: "first"})
		require.NoError(t, err)
		for _, text := range []string{"second", "third"} {
			_, err := f.chat.GenerateAiResponse(ctx, &dto.AiResponseRequest{SessionId: session.SessionId, InputText: text})
			require.NoError(t, err)
		}

		history, err := f.chat.GetHistory(ctx, session.SessionId)
		require.NoError(t, err)

		var texts []string
		for _, m := range history.Messages {
			if m.Sender == constant.SenderUser {
				texts = append(texts, m.Text)
			}
		}
		assert.Equal(t, "first,second,third", strings.Join(texts, ","))
		for i := 1; i < len(history.Messages); i++ {
			assert.False(t, history.Messages[i].Timestamp.Before(history.Messages[i-1].Timestamp))
		}
	})
}

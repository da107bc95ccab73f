package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"wink-music-be/internal/entity"
	"wink-music-be/internal/pkg/logger"
	"wink-music-be/internal/repository/contract"
	"wink-music-be/internal/repository/unitofwork"
	"wink-music-be/internal/testutil"
	"wink-music-be/pkg/llm"
	"wink-music-be/pkg/recommender"
	"wink-music-be/pkg/topic"

	"gorm.io/gorm"
)

const recommenderReply = `{
	"keywords": ["rainy", "jazz"],
	"recommendations": [
		{"songId": 11, "title": "Autumn Leaves", "artist": "Chet Baker", "albumCover": "a.jpg", "previewUrl": "a.mp3"},
		{"songId": 12, "title": "Blue in Green", "artist": "Bill Evans"},
		{"title": "Rainy Days", "artist": "V"}
	],
	"aiMessage": "비 오는 날 어울리는 재즈입니다."
}`

type fixture struct {
	db              *gorm.DB
	factory         unitofwork.RepositoryFactory
	chat            IChatService
	recommendations IRecommendationService
	playlists       IPlaylistService
	calls           *int32
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	handler  http.HandlerFunc
	provider llm.LLMProvider
	wrap     func(unitofwork.RepositoryFactory) unitofwork.RepositoryFactory
	wrapAll  func(unitofwork.RepositoryFactory) unitofwork.RepositoryFactory
}

func withRecommender(h http.HandlerFunc) fixtureOption {
	return func(c *fixtureConfig) { c.handler = h }
}

func withProvider(p llm.LLMProvider) fixtureOption {
	return func(c *fixtureConfig) { c.provider = p }
}

func withChatFactory(wrap func(unitofwork.RepositoryFactory) unitofwork.RepositoryFactory) fixtureOption {
	return func(c *fixtureConfig) { c.wrap = wrap }
}

// withFactory wraps the factory every service uses. f.factory stays unwrapped
// for seeding and assertions.
func withFactory(wrap func(unitofwork.RepositoryFactory) unitofwork.RepositoryFactory) fixtureOption {
	return func(c *fixtureConfig) { c.wrapAll = wrap }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	cfg := &fixtureConfig{
		handler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(recommenderReply))
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		cfg.handler(w, r)
	}))
	t.Cleanup(server.Close)

	db := testutil.NewTestDB(t)
	log := logger.NewNopLogger()
	factory := unitofwork.NewRepositoryFactory(db)

	shared := factory
	if cfg.wrapAll != nil {
		shared = cfg.wrapAll(factory)
	}
	chatFactory := shared
	if cfg.wrap != nil {
		chatFactory = cfg.wrap(shared)
	}

	recommendations := NewRecommendationService(shared, log)
	chat := NewChatService(
		chatFactory,
		topic.NewResolver(cfg.provider, log),
		recommender.NewClient(server.URL, time.Second),
		recommendations,
		log,
	)

	return &fixture{
		db:              db,
		factory:         factory,
		chat:            chat,
		recommendations: recommendations,
		playlists:       NewPlaylistService(shared, log),
		calls:           &calls,
	}
}

func (f *fixture) recommenderCalls() int {
	return int(atomic.LoadInt32(f.calls))
}

func (f *fixture) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

type stubProvider struct {
	text   string
	err    error
	prompt string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (s *stubProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

// failingMessages swaps the message repository for one that rejects writes.
func failingMessages(inner unitofwork.RepositoryFactory) unitofwork.RepositoryFactory {
	return failingMessageFactory{inner: inner}
}

type failingMessageFactory struct {
	inner unitofwork.RepositoryFactory
}

func (f failingMessageFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return failingMessageUnit{UnitOfWork: f.inner.NewUnitOfWork(ctx)}
}

type failingMessageUnit struct {
	unitofwork.UnitOfWork
}

func (u failingMessageUnit) ChatMessageRepository() contract.ChatMessageRepository {
	return failingMessageRepository{ChatMessageRepository: u.UnitOfWork.ChatMessageRepository()}
}

type failingMessageRepository struct {
	contract.ChatMessageRepository
}

func (failingMessageRepository) Create(context.Context, *entity.ChatMessage) error {
	return errors.New("disk full")
}

// failingSongs swaps the recommendation repository for one whose song insert fails.
func failingSongs(inner unitofwork.RepositoryFactory) unitofwork.RepositoryFactory {
	return failingSongFactory{inner: inner}
}

type failingSongFactory struct {
	inner unitofwork.RepositoryFactory
}

func (f failingSongFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return failingSongUnit{UnitOfWork: f.inner.NewUnitOfWork(ctx)}
}

type failingSongUnit struct {
	unitofwork.UnitOfWork
}

func (u failingSongUnit) AiRecommendationRepository() contract.AiRecommendationRepository {
	return failingSongRepository{AiRecommendationRepository: u.UnitOfWork.AiRecommendationRepository()}
}

type failingSongRepository struct {
	contract.AiRecommendationRepository
}

func (failingSongRepository) CreateSongs(context.Context, []*entity.AiRecommendationSong) error {
	return errors.New("value too long for type character varying(255)")
}

package bootstrap

import (
	"log"
	"time"

	"wink-music-be/internal/config"
	"wink-music-be/internal/controller"
	"wink-music-be/internal/pkg/logger"
	"wink-music-be/internal/repository/unitofwork"
	"wink-music-be/internal/service"
	"wink-music-be/pkg/llm/factory"
	"wink-music-be/pkg/recommender"
	"wink-music-be/pkg/topic"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	PlaylistController controller.IPlaylistController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	timeout := time.Duration(cfg.Ai.HTTPTimeoutSecond) * time.Second

	// 2. External clients
	baseURL := cfg.Ai.GeminiBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		APIKey:   cfg.Keys.GoogleGemini,
		BaseURL:  baseURL,
		Timeout:  timeout,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	recommenderClient := recommender.NewClient(cfg.Ai.RecommendURL, timeout)
	topicResolver := topic.NewResolver(llmProvider, sysLogger)

	// 3. Services
	recommendationService := service.NewRecommendationService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, topicResolver, recommenderClient, recommendationService, sysLogger)
	playlistService := service.NewPlaylistService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService, recommendationService),
		PlaylistController: controller.NewPlaylistController(playlistService),
		Logger:             sysLogger,
	}
}

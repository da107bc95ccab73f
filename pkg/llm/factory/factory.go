package factory

import (
	"fmt"
	"time"

	"wink-music-be/pkg/llm"
	"wink-music-be/pkg/llm/gemini"
	"wink-music-be/pkg/llm/ollama"
)

type Config struct {
	Provider string // "gemini" or "ollama"
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	switch cfg.Provider {
	case "", "gemini":
		// A missing key is not an error here; the provider reports it per call.
		return gemini.NewGeminiProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, timeout), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

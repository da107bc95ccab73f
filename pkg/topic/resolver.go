package topic

import (
	"context"
	"strings"

	"wink-music-be/internal/pkg/logger"
	"wink-music-be/pkg/llm"
)

const logModule = "TOPIC"

// maxTopicTokens caps the reply; a topic is a single short phrase.
const maxTopicTokens = 64

// Resolver derives a short session topic. It asks the LLM once and falls
// back to the rule table on any failure, so Resolve never returns "".
type Resolver struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewResolver(provider llm.LLMProvider, log logger.ILogger) *Resolver {
	return &Resolver{provider: provider, logger: log}
}

func (r *Resolver) Resolve(ctx context.Context, inputText, auxiliary string) string {
	if strings.TrimSpace(inputText) == "" {
		return UntitledTopic
	}
	if r.provider == nil {
		return Fallback(inputText)
	}

	text, err := r.provider.Generate(ctx, BuildPrompt(inputText, auxiliary), llm.WithMaxTokens(maxTopicTokens))
	if err != nil {
		r.logger.Warn(logModule, "Topic generation failed, using rule table", map[string]interface{}{
			"error": err.Error(),
		})
		return Fallback(inputText)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback(inputText)
	}
	return text
}

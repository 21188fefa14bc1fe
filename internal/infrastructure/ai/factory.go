package ai

import (
	"context"
	"fmt"

	"github.com/delivops/release-notes-generator/internal/config"
	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
)

// NewProvider creates the AI backend selected by cfg.AIProvider. An unknown
// selector fails at construction, before any network call.
func NewProvider(ctx context.Context, cfg *config.Config) (ports.AIProvider, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.AIModel), nil
	case config.ProviderClaude:
		return NewClaudeProvider(cfg.AnthropicAPIKey, cfg.AIModel), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.AIModel)
	default:
		return nil, domainerrors.NewConfigError("AI_PROVIDER",
			fmt.Sprintf("unsupported provider %q, supported providers: %s, %s, %s",
				cfg.AIProvider, config.ProviderOpenAI, config.ProviderClaude, config.ProviderGemini), nil)
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
)

// Supported AI provider selectors.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
)

// Config holds every credential and setting the pipeline needs, sourced from
// the process environment.
type Config struct {
	SlackBotToken   string `env:"SLACK_BOT_TOKEN,notEmpty"`
	SlackChannel    string `env:"SLACK_CHANNEL,notEmpty"`
	AIProvider      string `env:"AI_PROVIDER" envDefault:"openai"`
	AIModel         string `env:"AI_MODEL"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GithubToken     string `env:"GITHUB_TOKEN,notEmpty"`
	OutputFile      string `env:"OUTPUT_FILE" envDefault:"generated_message.txt"`
}

// Load reads the configuration from the environment, picking up a local .env
// file if present, and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, domainerrors.NewConfigError("env", "failed to parse environment", err)
	}
	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected provider is supported and that its API
// key is present.
func Validate(cfg *Config) error {
	switch cfg.AIProvider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return domainerrors.NewConfigError("OPENAI_API_KEY", "required for the openai provider", nil)
		}
	case ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return domainerrors.NewConfigError("ANTHROPIC_API_KEY", "required for the claude provider", nil)
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return domainerrors.NewConfigError("GEMINI_API_KEY", "required for the gemini provider", nil)
		}
	default:
		return domainerrors.NewConfigError("AI_PROVIDER",
			fmt.Sprintf("unsupported provider %q, supported providers: %s, %s, %s",
				cfg.AIProvider, ProviderOpenAI, ProviderClaude, ProviderGemini), nil)
	}
	return nil
}

// ProviderAPIKey returns the key matching the selected provider.
func (c *Config) ProviderAPIKey() string {
	switch c.AIProvider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	case ProviderClaude:
		return c.AnthropicAPIKey
	case ProviderGemini:
		return c.GeminiAPIKey
	}
	return ""
}

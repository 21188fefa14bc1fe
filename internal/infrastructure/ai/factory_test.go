package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delivops/release-notes-generator/internal/config"
	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
)

func TestNewProvider_OpenAI(t *testing.T) {
	cfg := &config.Config{AIProvider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test"}

	provider, err := NewProvider(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, config.ProviderOpenAI, provider.Name())
}

func TestNewProvider_Claude(t *testing.T) {
	cfg := &config.Config{AIProvider: config.ProviderClaude, AnthropicAPIKey: "sk-ant-test"}

	provider, err := NewProvider(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, config.ProviderClaude, provider.Name())
}

func TestNewProvider_Unsupported(t *testing.T) {
	cfg := &config.Config{AIProvider: "cohere"}

	provider, err := NewProvider(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, provider)
	var cfgErr *domainerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "AI_PROVIDER", cfgErr.Field)
	assert.Contains(t, cfgErr.Message, "cohere")
}

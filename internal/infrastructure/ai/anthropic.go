package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/delivops/release-notes-generator/internal/config"
	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
)

const defaultClaudeModel = "claude-3-haiku-20240307"

var _ ports.AIProvider = (*ClaudeProvider)(nil)

// ClaudeProvider generates summaries through the Anthropic messages API.
// System instructions are merged into the single user turn.
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

func NewClaudeProvider(apiKey, model string) *ClaudeProvider {
	if model == "" {
		model = defaultClaudeModel
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ClaudeProvider{
		client: &client,
		model:  model,
	}
}

func (p *ClaudeProvider) GenerateSummary(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	combined := systemPrompt + "\n\n" + userPrompt

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(combined)),
		},
	})
	if err != nil {
		return "", domainerrors.NewProviderError(p.Name(), "create message", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	content := strings.TrimSpace(sb.String())
	if content == "" {
		return EmptyReplySentinel, nil
	}
	return content, nil
}

func (p *ClaudeProvider) TestConnection(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx, anthropic.ModelListParams{}); err != nil {
		return domainerrors.NewProviderError(p.Name(), "list models", err)
	}
	return nil
}

func (p *ClaudeProvider) Name() string {
	return config.ProviderClaude
}

package ai

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/delivops/release-notes-generator/internal/config"
	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
)

const defaultOpenAIModel = "gpt-4o-mini"

var _ ports.AIProvider = (*OpenAIProvider)(nil)

// OpenAIProvider generates summaries through the OpenAI chat completions API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client: &client,
		model:  model,
	}
}

func (p *OpenAIProvider) GenerateSummary(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", domainerrors.NewProviderError(p.Name(), "chat completion", err)
	}

	if len(resp.Choices) == 0 {
		return EmptyReplySentinel, nil
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return EmptyReplySentinel, nil
	}
	return content, nil
}

func (p *OpenAIProvider) TestConnection(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return domainerrors.NewProviderError(p.Name(), "list models", err)
	}
	return nil
}

func (p *OpenAIProvider) Name() string {
	return config.ProviderOpenAI
}

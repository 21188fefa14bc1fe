package ai

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/delivops/release-notes-generator/internal/config"
	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
)

const defaultGeminiModel = "gemini-1.5-flash"

var _ ports.AIProvider = (*GeminiProvider)(nil)

// GeminiProvider generates summaries through the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, domainerrors.NewProviderError(config.ProviderGemini, "create client", err)
	}
	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) GenerateSummary(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   int32(maxTokens),
		Temperature:       float32Ptr(float32(temperature)),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt), genConfig)
	if err != nil {
		return "", domainerrors.NewProviderError(p.Name(), "generate content", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return EmptyReplySentinel, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	content := strings.TrimSpace(sb.String())
	if content == "" {
		return EmptyReplySentinel, nil
	}
	return content, nil
}

func (p *GeminiProvider) TestConnection(ctx context.Context) error {
	if _, err := p.client.Models.CountTokens(ctx, p.model, genai.Text("ping"), nil); err != nil {
		return domainerrors.NewProviderError(p.Name(), "count tokens", err)
	}
	return nil
}

func (p *GeminiProvider) Name() string {
	return config.ProviderGemini
}

func float32Ptr(f float32) *float32 {
	return &f
}

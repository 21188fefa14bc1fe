package ports

import "context"

// AIProvider is the uniform call surface over the interchangeable LLM
// backends. Implementations normalize their own response shape into plain
// text; an empty reply yields a fixed sentinel rather than an error.
type AIProvider interface {
	// GenerateSummary sends the system instructions plus user content to the
	// backend and returns the reply text.
	GenerateSummary(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)

	// TestConnection verifies that the backend is reachable with the
	// configured credentials.
	TestConnection(ctx context.Context) error

	// Name returns the provider selector this backend answers to.
	Name() string
}

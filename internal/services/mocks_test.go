package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/delivops/release-notes-generator/internal/domain/models"
)

type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) GenerateSummary(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, maxTokens, temperature)
	return args.String(0), args.Error(1)
}

func (m *MockAIProvider) TestConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAIProvider) Name() string {
	return "mock"
}

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) ListMergedPRs(ctx context.Context, repo string, since time.Time) ([]models.PullRequest, error) {
	args := m.Called(ctx, repo, since)
	var prs []models.PullRequest
	if args.Get(0) != nil {
		prs = args.Get(0).([]models.PullRequest)
	}
	return prs, args.Error(1)
}

func (m *MockVCSClient) CheckAuth(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PostReleaseNotes(ctx context.Context, message, dateRange string) (string, error) {
	args := m.Called(ctx, message, dateRange)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) CheckAuth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

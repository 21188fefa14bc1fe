package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/models"
)

func newTestGenerator(t *testing.T, vcs *MockVCSClient, ai *MockAIProvider, notifier *MockNotifier) (*Generator, string) {
	t.Helper()
	trans := newTestTranslations(t)
	outputFile := filepath.Join(t.TempDir(), "generated_message.txt")
	return NewGenerator(vcs, NewSummarizer(ai, trans), notifier, trans, outputFile), outputFile
}

func TestGenerator_NoRepositories(t *testing.T) {
	gen, _ := newTestGenerator(t, new(MockVCSClient), new(MockAIProvider), new(MockNotifier))

	err := gen.Generate(context.Background(), nil, 7)

	var cfgErr *domainerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestGenerator_PartialFailureIsolation(t *testing.T) {
	// Arrange: repo A fails at fetch, repo B succeeds.
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockAI := new(MockAIProvider)
	mockNotifier := new(MockNotifier)

	mockVCS.On("ListMergedPRs", mock.Anything, "acme/a", mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("boom"))
	mockVCS.On("ListMergedPRs", mock.Anything, "acme/b", mock.AnythingOfType("time.Time")).
		Return([]models.PullRequest{{Number: 1, Title: "feat: thing", MergedAt: time.Now()}}, nil)
	mockAI.On("GenerateSummary", mock.Anything, mock.Anything, mock.Anything, 500, 0.3).
		Return(`{"categories":[{"name":"Features","items":["Added thing"]}]}`, nil)

	var posted string
	mockNotifier.On("PostReleaseNotes", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			posted = args.String(1)
		}).
		Return("171234.5678", nil)

	gen, _ := newTestGenerator(t, mockVCS, mockAI, mockNotifier)

	// Act
	err := gen.Generate(ctx, []string{"acme/a", "acme/b"}, 7)

	// Assert: the run does not abort and both entries are present.
	require.NoError(t, err)
	assert.Contains(t, posted, "*acme/a*: Error processing repository - boom")
	assert.Contains(t, posted, "*acme/b*")
	assert.Contains(t, posted, "Added thing")
	mockVCS.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestGenerator_NoChangesEntrySkipsSummarizer(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockAI := new(MockAIProvider)
	mockNotifier := new(MockNotifier)

	mockVCS.On("ListMergedPRs", mock.Anything, "acme/quiet", mock.AnythingOfType("time.Time")).
		Return([]models.PullRequest{}, nil)

	var posted string
	mockNotifier.On("PostReleaseNotes", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			posted = args.String(1)
		}).
		Return("ts", nil)

	gen, _ := newTestGenerator(t, mockVCS, mockAI, mockNotifier)

	err := gen.Generate(ctx, []string{"acme/quiet"}, 7)

	require.NoError(t, err)
	assert.Equal(t, "*acme/quiet*: No changes in the specified time period.", posted)
	mockAI.AssertNotCalled(t, "GenerateSummary")
}

func TestGenerator_WritesArtifactBeforePublishFailure(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockAI := new(MockAIProvider)
	mockNotifier := new(MockNotifier)

	mockVCS.On("ListMergedPRs", mock.Anything, "acme/a", mock.AnythingOfType("time.Time")).
		Return([]models.PullRequest{}, nil)
	mockNotifier.On("PostReleaseNotes", mock.Anything, mock.Anything, mock.Anything).
		Return("", domainerrors.NewPublishError("#release-notes", errors.New("channel_not_found")))

	gen, outputFile := newTestGenerator(t, mockVCS, mockAI, mockNotifier)

	err := gen.Generate(ctx, []string{"acme/a"}, 7)

	var pubErr *domainerrors.PublishError
	require.ErrorAs(t, err, &pubErr)

	data, readErr := os.ReadFile(outputFile)
	require.NoError(t, readErr)
	assert.Equal(t, "*acme/a*: No changes in the specified time period.", string(data))
}

func TestGenerator_ArtifactWriteFailureFailsRun(t *testing.T) {
	// Arrange: an output path inside a directory that does not exist.
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockNotifier := new(MockNotifier)

	mockVCS.On("ListMergedPRs", mock.Anything, "acme/a", mock.AnythingOfType("time.Time")).
		Return([]models.PullRequest{}, nil)
	mockNotifier.On("PostReleaseNotes", mock.Anything, mock.Anything, mock.Anything).Return("ts", nil)

	trans := newTestTranslations(t)
	outputFile := filepath.Join(t.TempDir(), "missing", "generated_message.txt")
	gen := NewGenerator(mockVCS, NewSummarizer(new(MockAIProvider), trans), mockNotifier, trans, outputFile)

	// Act
	err := gen.Generate(ctx, []string{"acme/a"}, 7)

	// Assert: the post is still attempted but the run fails loudly.
	require.Error(t, err)
	assert.Contains(t, err.Error(), outputFile)
	mockNotifier.AssertNumberOfCalls(t, "PostReleaseNotes", 1)
}

func TestGenerator_ArtifactWriteFailureJoinsPublishError(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockNotifier := new(MockNotifier)

	mockVCS.On("ListMergedPRs", mock.Anything, "acme/a", mock.AnythingOfType("time.Time")).
		Return([]models.PullRequest{}, nil)
	mockNotifier.On("PostReleaseNotes", mock.Anything, mock.Anything, mock.Anything).
		Return("", domainerrors.NewPublishError("#releases", errors.New("channel_not_found")))

	trans := newTestTranslations(t)
	outputFile := filepath.Join(t.TempDir(), "missing", "generated_message.txt")
	gen := NewGenerator(mockVCS, NewSummarizer(new(MockAIProvider), trans), mockNotifier, trans, outputFile)

	err := gen.Generate(ctx, []string{"acme/a"}, 7)

	// Both failures surface in the returned error.
	require.Error(t, err)
	assert.Contains(t, err.Error(), outputFile)
	var pubErr *domainerrors.PublishError
	assert.ErrorAs(t, err, &pubErr)
}

func TestGenerator_SkipsBlankRepoEntries(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockVCSClient)
	mockNotifier := new(MockNotifier)

	mockVCS.On("ListMergedPRs", mock.Anything, "acme/a", mock.AnythingOfType("time.Time")).
		Return([]models.PullRequest{}, nil)
	mockNotifier.On("PostReleaseNotes", mock.Anything, mock.Anything, mock.Anything).Return("ts", nil)

	gen, _ := newTestGenerator(t, mockVCS, new(MockAIProvider), mockNotifier)

	err := gen.Generate(ctx, []string{"  ", "acme/a", ""}, 7)

	require.NoError(t, err)
	mockVCS.AssertNumberOfCalls(t, "ListMergedPRs", 1)
}

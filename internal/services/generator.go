package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	domainerrors "github.com/delivops/release-notes-generator/internal/domain/errors"
	"github.com/delivops/release-notes-generator/internal/domain/models"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
	"github.com/delivops/release-notes-generator/internal/i18n"
	"github.com/delivops/release-notes-generator/internal/logger"
)

// Generator runs the whole pipeline: fetch, filter, summarize per
// repository, then publish once and persist the joined text.
type Generator struct {
	vcs        ports.VCSClient
	summarizer *Summarizer
	notifier   ports.Notifier
	trans      *i18n.Translations
	outputFile string
}

func NewGenerator(vcs ports.VCSClient, summarizer *Summarizer, notifier ports.Notifier, trans *i18n.Translations, outputFile string) *Generator {
	return &Generator{
		vcs:        vcs,
		summarizer: summarizer,
		notifier:   notifier,
		trans:      trans,
		outputFile: outputFile,
	}
}

// Generate processes repos sequentially over the [now - daysBack, now]
// window. A failure inside one repository is replaced with an inline error
// sentence; the run continues with the next repository. The joined text is
// written to the output file before publishing, so a Slack rejection still
// leaves the artifact behind; a failed write is returned as an error after
// the post attempt.
func (g *Generator) Generate(ctx context.Context, repos []string, daysBack int) error {
	if len(repos) == 0 {
		return domainerrors.NewConfigError("repos", "no repositories provided", nil)
	}

	window := models.NewDateRange(time.Now().UTC(), daysBack)
	logger.Info(ctx, "looking for merged pull requests",
		"since", window.Start.Format(time.RFC3339), "repositories", len(repos))

	var summaries []string
	for _, repo := range repos {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			continue
		}
		summaries = append(summaries, g.processRepo(ctx, repo, window.Start))
	}

	if len(summaries) == 0 {
		logger.Warn(ctx, "no summaries generated")
		return errors.New("no summaries generated")
	}

	fullMessage := strings.Join(summaries, "\n\n")

	var writeErr error
	if err := os.WriteFile(g.outputFile, []byte(fullMessage), 0644); err != nil {
		logger.Error(ctx, "failed to write output artifact", err, "path", g.outputFile)
		writeErr = fmt.Errorf("write output artifact %s: %w", g.outputFile, err)
	} else {
		logger.Info(ctx, "output artifact written", "path", g.outputFile)
	}

	// The post is attempted even when the artifact write failed; both
	// failures end the run with a non-zero status.
	if _, err := g.notifier.PostReleaseNotes(ctx, fullMessage, window.Label()); err != nil {
		return errors.Join(writeErr, err)
	}
	if writeErr != nil {
		return writeErr
	}

	logger.Info(ctx, "release notes generation completed")
	return nil
}

func (g *Generator) processRepo(ctx context.Context, repo string, since time.Time) string {
	ctx = logger.With(ctx, "repo", repo)

	prs, err := g.vcs.ListMergedPRs(ctx, repo, since)
	if err != nil {
		logger.Error(ctx, "error processing repository", err, "stage", "fetch")
		return g.trans.GetMessage("error_processing_repo", 0, map[string]interface{}{
			"Repo":  repo,
			"Error": err.Error(),
		})
	}

	if len(prs) == 0 {
		return g.trans.GetMessage("no_changes", 0, map[string]interface{}{"Repo": repo})
	}

	regular, deps := SplitDependencyPRs(prs)
	logger.Info(ctx, "filtered pull requests", "regular", len(regular), "deps", len(deps))

	prsText := FormatPRsForSummary(prs)
	return g.summarizer.Summarize(ctx, repo, prsText)
}

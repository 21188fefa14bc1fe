package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/delivops/release-notes-generator/internal/domain/models"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
	"github.com/delivops/release-notes-generator/internal/i18n"
	"github.com/delivops/release-notes-generator/internal/infrastructure/ai"
	"github.com/delivops/release-notes-generator/internal/logger"
)

const (
	summaryMaxTokens   = 500
	summaryTemperature = 0.3
)

// Summarizer turns the formatted PR text of one repository into a
// release-notes section. It never fails: a provider error degrades to a
// count-only sentence and a malformed reply degrades to the raw text.
type Summarizer struct {
	provider ports.AIProvider
	trans    *i18n.Translations
}

func NewSummarizer(provider ports.AIProvider, trans *i18n.Translations) *Summarizer {
	return &Summarizer{
		provider: provider,
		trans:    trans,
	}
}

// Summarize produces the section text for repoName from the formatted PR
// block. Input matching the no-PRs sentinel short-circuits without calling
// the provider.
func (s *Summarizer) Summarize(ctx context.Context, repoName, prsText string) string {
	if prsText == "" || prsText == NoPullRequestsText {
		return s.trans.GetMessage("no_changes", 0, map[string]interface{}{"Repo": repoName})
	}

	reply, err := s.provider.GenerateSummary(ctx, ai.ReleaseNotesSystemPrompt,
		ai.BuildUserPrompt(repoName, prsText), summaryMaxTokens, summaryTemperature)
	if err != nil {
		logger.Error(ctx, "AI provider call failed, falling back to PR count", err,
			"repo", repoName, "provider", s.provider.Name())
		count := strings.Count(prsText, "PR #")
		return s.trans.GetMessage("count_only_summary", count, map[string]interface{}{
			"Repo":  repoName,
			"Count": count,
		})
	}

	doc, err := ai.ParseSummaryDocument(reply)
	if err != nil {
		logger.Warn(ctx, "failed to parse summary reply, falling back to raw text",
			"repo", repoName, "error", err)
		return fmt.Sprintf("*%s*:\n\n%s", repoName, reply)
	}

	return renderSummary(repoName, doc)
}

// renderSummary formats a parsed document: a repo-name header line, one line
// per category introducing its bulleted items, and a closing divider.
func renderSummary(repoName string, doc models.SummaryDocument) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", repoName))

	for _, category := range doc.Categories {
		if len(category.Items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n• *%s*:\n", category.Name))
		for _, item := range category.Items {
			sb.WriteString(fmt.Sprintf("  ◦ %s\n", item))
		}
	}

	sb.WriteString("\n" + models.SectionDivider + "\n")
	return sb.String()
}

package services

import (
	"fmt"
	"strings"

	"github.com/delivops/release-notes-generator/internal/domain/models"
)

// NoPullRequestsText is the fixed sentinel produced for an empty PR
// sequence. The summarizer matches against it to skip the provider call.
const NoPullRequestsText = "No pull requests found."

// FormatPRsForSummary serializes pull requests into the flat text block sent
// to the AI provider. Each PR becomes a multi-line block (title, optional
// description, optional labels, URL); blocks are joined by a blank line.
func FormatPRsForSummary(prs []models.PullRequest) string {
	if len(prs) == 0 {
		return NoPullRequestsText
	}

	blocks := make([]string, 0, len(prs))
	for _, pr := range prs {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("PR #%d: %s", pr.Number, strings.TrimSpace(pr.Title)))

		if body := strings.TrimSpace(pr.Body); body != "" {
			sb.WriteString("\nDescription: " + body)
		}
		if len(pr.Labels) > 0 {
			sb.WriteString("\nLabels: " + strings.Join(pr.Labels, ", "))
		}
		if pr.URL != "" {
			sb.WriteString("\nURL: " + pr.URL)
		}

		blocks = append(blocks, sb.String())
	}

	return strings.Join(blocks, "\n\n")
}

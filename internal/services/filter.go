package services

import (
	"regexp"

	"github.com/delivops/release-notes-generator/internal/domain/models"
)

// Dependency-update PRs are recognized by their conventional title prefix.
var depsTitlePattern = regexp.MustCompile(`(?i)^chore\(deps\)`)

// SplitDependencyPRs partitions prs into regular changes and dependency
// updates. The dependency group is reported for logging only; it does not
// affect the generated output.
func SplitDependencyPRs(prs []models.PullRequest) (regular, deps []models.PullRequest) {
	for _, pr := range prs {
		if depsTitlePattern.MatchString(pr.Title) {
			deps = append(deps, pr)
		} else {
			regular = append(regular, pr)
		}
	}
	return regular, deps
}

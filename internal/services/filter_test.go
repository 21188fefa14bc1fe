package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/delivops/release-notes-generator/internal/domain/models"
)

func TestSplitDependencyPRs(t *testing.T) {
	prs := []models.PullRequest{
		{Number: 1, Title: "feat: add webhook support"},
		{Number: 2, Title: "chore(deps): bump lodash from 4.17.20 to 4.17.21"},
		{Number: 3, Title: "CHORE(DEPS): bump actions/checkout from 3 to 4"},
		{Number: 4, Title: "fix: chore(deps) mentioned mid-title is not a dep PR"},
		{Number: 5, Title: "Chore(Deps): update go modules"},
	}

	regular, deps := SplitDependencyPRs(prs)

	assert.Len(t, deps, 3)
	assert.Len(t, regular, 2)
	for _, pr := range deps {
		assert.Contains(t, []int{2, 3, 5}, pr.Number)
	}
	for _, pr := range regular {
		assert.Contains(t, []int{1, 4}, pr.Number)
	}
}

func TestSplitDependencyPRs_Empty(t *testing.T) {
	regular, deps := SplitDependencyPRs(nil)

	assert.Empty(t, regular)
	assert.Empty(t, deps)
}

package ports

import (
	"context"
	"time"

	"github.com/delivops/release-notes-generator/internal/domain/models"
)

// VCSClient queries a source-control host for merged pull requests.
type VCSClient interface {
	// ListMergedPRs returns the pull requests of repo (owner/name form)
	// merged at or after since, in host-provided order.
	ListMergedPRs(ctx context.Context, repo string, since time.Time) ([]models.PullRequest, error)

	// CheckAuth verifies the credentials and returns the authenticated login.
	CheckAuth(ctx context.Context) (string, error)
}

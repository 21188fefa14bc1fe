package models

import "time"

// PullRequest is a merged pull request normalized from the host API response.
// Records are immutable once fetched and live for a single run.
type PullRequest struct {
	Title    string
	Body     string
	Number   int
	URL      string
	MergedAt time.Time
	Labels   []string
	RepoName string
}

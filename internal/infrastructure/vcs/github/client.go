package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/delivops/release-notes-generator/internal/domain/models"
	"github.com/delivops/release-notes-generator/internal/domain/ports"
	"github.com/delivops/release-notes-generator/internal/logger"
)

var _ ports.VCSClient = (*Client)(nil)

type SearchService interface {
	Issues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, *github.Response, error)
}

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

// Client fetches merged pull requests through the GitHub search API.
type Client struct {
	search SearchService
	prs    PullRequestsService
	users  UsersService
}

func NewClient(token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &Client{
		search: client.Search,
		prs:    client.PullRequests,
		users:  client.Users,
	}
}

func NewClientWithServices(search SearchService, prs PullRequestsService, users UsersService) *Client {
	return &Client{
		search: search,
		prs:    prs,
		users:  users,
	}
}

// CheckAuth verifies the token and returns the authenticated login.
func (c *Client) CheckAuth(ctx context.Context) (string, error) {
	user, _, err := c.users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("github authentication check: %w", err)
	}
	return user.GetLogin(), nil
}

// ListMergedPRs returns the pull requests of repoName merged at or after
// since. Results keep the host order (most-recently-updated first); records
// without a merge timestamp are dropped with a warning.
func (c *Client) ListMergedPRs(ctx context.Context, repoName string, since time.Time) ([]models.PullRequest, error) {
	owner, repo, err := splitRepoName(repoName)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("repo:%s is:pr is:merged merged:>=%s", repoName, since.Format("2006-01-02"))
	opts := &github.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	logger.Info(ctx, "fetching merged pull requests", "repo", repoName, "since", since.Format(time.RFC3339))

	var pullRequests []models.PullRequest
	for {
		result, resp, err := c.search.Issues(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("search merged PRs in %s: %w", repoName, err)
		}

		for _, issue := range result.Issues {
			pr, _, err := c.prs.Get(ctx, owner, repo, issue.GetNumber())
			if err != nil {
				return nil, fmt.Errorf("get PR #%d in %s: %w", issue.GetNumber(), repoName, err)
			}

			if pr.MergedAt == nil {
				logger.Warn(ctx, "pull request has no merge timestamp, skipping",
					"repo", repoName, "number", pr.GetNumber())
				continue
			}

			labels := make([]string, 0, len(pr.Labels))
			for _, label := range pr.Labels {
				labels = append(labels, label.GetName())
			}

			pullRequests = append(pullRequests, models.PullRequest{
				Title:    pr.GetTitle(),
				Body:     pr.GetBody(),
				Number:   pr.GetNumber(),
				URL:      pr.GetHTMLURL(),
				MergedAt: pr.GetMergedAt().Time,
				Labels:   labels,
				RepoName: repoName,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Info(ctx, "found merged pull requests", "repo", repoName, "count", len(pullRequests))
	return pullRequests, nil
}

func splitRepoName(repoName string) (owner, repo string, err error) {
	parts := strings.Split(repoName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name %q, expected owner/repo", repoName)
	}
	return parts[0], parts[1], nil
}

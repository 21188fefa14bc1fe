package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Issues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, *github.Response, error) {
	args := m.Called(ctx, query, opts)
	var result *github.IssuesSearchResult
	if args.Get(0) != nil {
		result = args.Get(0).(*github.IssuesSearchResult)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return result, resp, args.Error(2)
}

type MockPullRequestsService struct {
	mock.Mock
}

func (m *MockPullRequestsService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	var pr *github.PullRequest
	if args.Get(0) != nil {
		pr = args.Get(0).(*github.PullRequest)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return pr, resp, args.Error(2)
}

type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) Get(ctx context.Context, user string) (*github.User, *github.Response, error) {
	args := m.Called(ctx, user)
	var u *github.User
	if args.Get(0) != nil {
		u = args.Get(0).(*github.User)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return u, resp, args.Error(2)
}

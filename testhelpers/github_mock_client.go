package testhelpers

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/git"
)

// MockGitHubClient implements git.GitHubClient in memory and records every
// call, so action tests can assert on the PRs and releases they produce.
type MockGitHubClient struct {
	Owner string
	Repo  string

	// PRs maps head branch names to pull requests that already exist
	PRs map[string]*git.PullRequestInfo
	// CreatedPRs stores the options of every CreatePullRequest call
	CreatedPRs []git.CreatePROptions
	// CreatedReleases stores the options of every CreateRelease call
	CreatedReleases []git.CreateReleaseOptions

	nextNumber int
}

// NewMockGitHubClient creates a mock client for the given owner/repo
func NewMockGitHubClient() *MockGitHubClient {
	return &MockGitHubClient{
		Owner: "acme",
		Repo:  "widgets",
		PRs:   make(map[string]*git.PullRequestInfo),
	}
}

// GetOwnerRepo returns the repository owner and name
func (c *MockGitHubClient) GetOwnerRepo() (string, string) {
	return c.Owner, c.Repo
}

// WithExistingPR registers an open pull request for a head branch
func (c *MockGitHubClient) WithExistingPR(head, base string) *MockGitHubClient {
	c.nextNumber++
	c.PRs[head] = &git.PullRequestInfo{
		Number:  c.nextNumber,
		HTMLURL: c.prURL(c.nextNumber),
		State:   "open",
		Base:    base,
		Head:    head,
	}
	return c
}

// CreatePullRequest records the request and returns a synthetic PR
func (c *MockGitHubClient) CreatePullRequest(_ context.Context, opts git.CreatePROptions) (*git.PullRequestInfo, error) {
	c.CreatedPRs = append(c.CreatedPRs, opts)
	c.nextNumber++

	pr := &git.PullRequestInfo{
		Number:  c.nextNumber,
		HTMLURL: c.prURL(c.nextNumber),
		Title:   opts.Title,
		Body:    opts.Body,
		State:   "open",
		Base:    opts.Base,
		Head:    opts.Head,
	}
	c.PRs[opts.Head] = pr
	return pr, nil
}

// GetPullRequestByBranch returns a registered PR for the branch, nil if none
func (c *MockGitHubClient) GetPullRequestByBranch(_ context.Context, branchName string) (*git.PullRequestInfo, error) {
	return c.PRs[branchName], nil
}

// CreateRelease records the request and returns a synthetic release
func (c *MockGitHubClient) CreateRelease(_ context.Context, opts git.CreateReleaseOptions) (*git.ReleaseInfo, error) {
	c.CreatedReleases = append(c.CreatedReleases, opts)
	return &git.ReleaseInfo{
		ID:      int64(len(c.CreatedReleases)),
		HTMLURL: fmt.Sprintf("https://github.com/%s/%s/releases/tag/%s", c.Owner, c.Repo, opts.TagName),
		TagName: opts.TagName,
		Name:    opts.Name,
	}, nil
}

func (c *MockGitHubClient) prURL(number int) string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", c.Owner, c.Repo, number)
}

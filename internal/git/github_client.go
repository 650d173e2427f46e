package git

import "context"

// PullRequestInfo contains information about a pull request.
// This is a simplified struct to avoid coupling to the go-github library.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	Body    string
	State   string
	Base    string
	Head    string
}

// ReleaseInfo contains information about a published release
type ReleaseInfo struct {
	ID      int64
	HTMLURL string
	TagName string
	Name    string
}

// CreatePROptions holds the fields for opening a pull request
type CreatePROptions struct {
	Title string
	Head  string
	Base  string
	Body  string
	Draft bool
}

// CreateReleaseOptions holds the fields for publishing a release from a tag
type CreateReleaseOptions struct {
	TagName    string
	Name       string
	Body       string
	Prerelease bool
}

// GitHubClient is an interface for GitHub API interactions
type GitHubClient interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error)

	// GetPullRequestByBranch gets a pull request for a branch, nil if none exists
	GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// CreateRelease publishes a release for an existing tag
	CreateRelease(ctx context.Context, opts CreateReleaseOptions) (*ReleaseInfo, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}

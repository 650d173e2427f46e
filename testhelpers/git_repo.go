package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new repository with master as the initial branch,
// matching the gitflow default.
func NewGitRepo(dir string) (*GitRepo, error) {
	return NewGitRepoWithBranch(dir, "master")
}

// NewGitRepoWithBranch initializes a new repository with the given initial
// branch name.
func NewGitRepoWithBranch(dir, branch string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and keep tests fast
	cmd := exec.Command("git", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", branch)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// runGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global git config.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChange creates or updates a file with the given content
func (r *GitRepo) CreateChange(content string, fileName ...string) error {
	name := textFileName
	if len(fileName) > 0 {
		name = fileName[0]
	}
	return os.WriteFile(filepath.Join(r.Dir, name), []byte(content+"\n"), 0644)
}

// CreateChangeAndCommit creates a change and commits it
func (r *GitRepo) CreateChangeAndCommit(content, message string, fileName ...string) error {
	if err := r.CreateChange(content, fileName...); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CreateBranch creates a branch at the current HEAD without switching to it
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CreateAndCheckoutBranch creates a branch at the current HEAD and switches to it
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch switches to an existing branch
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// CurrentBranch returns the branch HEAD is on
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// BranchExists reports whether a local branch exists
func (r *GitRepo) BranchExists(name string) bool {
	return r.runGitCommand("show-ref", "--verify", "--quiet", "refs/heads/"+name) == nil
}

// TagExists reports whether a tag exists
func (r *GitRepo) TagExists(name string) bool {
	return r.runGitCommand("show-ref", "--verify", "--quiet", "refs/tags/"+name) == nil
}

// CreateTag creates a lightweight tag at HEAD
func (r *GitRepo) CreateTag(name string) error {
	return r.runGitCommand("tag", name)
}

// IsMerged reports whether branch is an ancestor of target
func (r *GitRepo) IsMerged(branch, target string) bool {
	return r.runGitCommand("merge-base", "--is-ancestor", branch, target) == nil
}

// CreateBareRemote creates a bare repository next to this one and adds it
// as the "origin" remote. Returns the bare repository path.
func (r *GitRepo) CreateBareRemote() (string, error) {
	remoteDir := r.Dir + "-remote.git"

	cmd := exec.Command("git", "init", "--bare", remoteDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to init bare remote: %w", err)
	}

	if err := r.runGitCommand("remote", "add", "origin", remoteDir); err != nil {
		return "", err
	}
	return remoteDir, nil
}

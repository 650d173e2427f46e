// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	gfmerrors "gfm.dev/gfm/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// SetWorkingDir sets the working directory for the default git runner.
func SetWorkingDir(dir string) {
	defaultRunner.workingDir = dir
}

// GetWorkingDir returns the current working directory setting for the default runner.
func GetWorkingDir() string {
	return defaultRunner.workingDir
}

// RunGitCommand executes a git command using the default runner and returns the output.
// It uses context.Background() with a default timeout.
func RunGitCommand(args ...string) (string, error) {
	return defaultRunner.Run(context.Background(), args...)
}

// RunGitCommandInDir executes a git command in a specific directory and returns the output.
func RunGitCommandInDir(dir string, args ...string) (string, error) {
	return NewCommandRunner(dir).Run(context.Background(), args...)
}

// RunGitCommandWithContext executes a git command with the given context using the default runner.
func RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return defaultRunner.Run(ctx, args...)
}

// Run executes a git command with the given context and returns the output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "", true, args...)
}

// runInternal is the internal implementation that handles directory and input
func (r *CommandRunner) runInternal(ctx context.Context, input string, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gfmerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gfmerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunGitCommandLines executes a git command using the default runner and returns output as lines
func RunGitCommandLines(args ...string) ([]string, error) {
	output, err := RunGitCommand(args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunGitCommandLinesWithContext executes a git command with context and returns output as lines
func RunGitCommandLinesWithContext(ctx context.Context, args ...string) ([]string, error) {
	output, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// Runner defines the interface for git operations used by the engine.
// This allows the engine to be used with both real git and mock implementations.
type Runner interface {
	// Repository and Config
	InitDefaultRepo() error
	GetRemote() string
	GetRepoRoot() (string, error)

	// Branch Management
	GetCurrentBranch() (string, error)
	GetAllBranchNames() ([]string, error)
	BranchExists(branchName string) bool
	CheckoutBranch(ctx context.Context, branchName string) error
	CreateAndCheckoutBranch(ctx context.Context, branchName, base string) error
	DeleteBranch(ctx context.Context, branchName string, force bool) error

	// Commit and Revision Information
	GetRevision(branchName string) (string, error)
	GetMergeBase(rev1, rev2 string) (string, error)
	IsAncestor(ancestor, descendant string) (bool, error)
	GetCommitDate(branchName string) (time.Time, error)
	GetCommitSubject(branchName string) (string, error)

	// Merge and Tag Operations
	Merge(ctx context.Context, branchName string, noFF bool, message string) error
	MergeAbort(ctx context.Context) error
	MergeInProgress() bool
	CreateTag(ctx context.Context, tagName, message string) error
	TagExists(tagName string) bool
	ListTags() ([]string, error)

	// Remote Operations
	PushBranch(ctx context.Context, remote, branchName string, setUpstream bool) error
	PushTags(ctx context.Context, remote string) error
	Fetch(ctx context.Context, remote string) error

	// Worktree state
	HasUncommittedChanges(ctx context.Context) (bool, error)
	GetUnmergedFiles(ctx context.Context) ([]string, error)

	// Runner state
	SetWorkingDir(dir string)
	GetWorkingDir() string

	// Low-level Commands
	RunGitCommand(args ...string) (string, error)
	RunGitCommandWithContext(ctx context.Context, args ...string) (string, error)
}

// NewRealRunner returns a standard implementation of Runner that calls
// the package-level git functions.
func NewRealRunner() Runner {
	return &realRunner{}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct {
	workingDir string
}

func (r *realRunner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

func (r *realRunner) GetWorkingDir() string {
	return r.workingDir
}

func (r *realRunner) RunGitCommand(args ...string) (string, error) {
	return r.RunGitCommandWithContext(context.Background(), args...)
}

func (r *realRunner) RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	if r.workingDir != "" {
		return NewCommandRunner(r.workingDir).Run(ctx, args...)
	}
	return RunGitCommandWithContext(ctx, args...)
}

func (r *realRunner) InitDefaultRepo() error {
	if r.workingDir != "" {
		_, err := RunGitCommandInDir(r.workingDir, "rev-parse", "--is-inside-work-tree")
		return err
	}
	return InitDefaultRepo()
}

func (r *realRunner) GetRemote() string {
	return GetRemote()
}

func (r *realRunner) GetRepoRoot() (string, error) {
	if r.workingDir != "" {
		return r.workingDir, nil
	}
	return GetRepoRoot()
}

func (r *realRunner) GetCurrentBranch() (string, error) {
	return GetCurrentBranch()
}

func (r *realRunner) GetAllBranchNames() ([]string, error) {
	return GetAllBranchNames()
}

func (r *realRunner) BranchExists(branchName string) bool {
	return BranchExists(branchName)
}

func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	return CheckoutBranch(ctx, branchName)
}

func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, branchName, base string) error {
	return CreateAndCheckoutBranch(ctx, branchName, base)
}

func (r *realRunner) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	return DeleteBranch(ctx, branchName, force)
}

func (r *realRunner) GetRevision(branchName string) (string, error) {
	return GetRevision(branchName)
}

func (r *realRunner) GetMergeBase(rev1, rev2 string) (string, error) {
	return GetMergeBase(rev1, rev2)
}

func (r *realRunner) IsAncestor(ancestor, descendant string) (bool, error) {
	return IsAncestor(ancestor, descendant)
}

func (r *realRunner) GetCommitDate(branchName string) (time.Time, error) {
	return GetCommitDate(branchName)
}

func (r *realRunner) GetCommitSubject(branchName string) (string, error) {
	return GetCommitSubject(branchName)
}

func (r *realRunner) Merge(ctx context.Context, branchName string, noFF bool, message string) error {
	return Merge(ctx, branchName, noFF, message)
}

func (r *realRunner) MergeAbort(ctx context.Context) error {
	return MergeAbort(ctx)
}

func (r *realRunner) MergeInProgress() bool {
	return MergeInProgress()
}

func (r *realRunner) CreateTag(ctx context.Context, tagName, message string) error {
	return CreateTag(ctx, tagName, message)
}

func (r *realRunner) TagExists(tagName string) bool {
	return TagExists(tagName)
}

func (r *realRunner) ListTags() ([]string, error) {
	return ListTags()
}

func (r *realRunner) PushBranch(ctx context.Context, remote, branchName string, setUpstream bool) error {
	return PushBranch(ctx, remote, branchName, setUpstream)
}

func (r *realRunner) PushTags(ctx context.Context, remote string) error {
	return PushTags(ctx, remote)
}

func (r *realRunner) Fetch(ctx context.Context, remote string) error {
	return Fetch(ctx, remote)
}

func (r *realRunner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	return HasUncommittedChanges(ctx)
}

func (r *realRunner) GetUnmergedFiles(ctx context.Context) ([]string, error) {
	return GetUnmergedFiles(ctx)
}

// Package errors provides sentinel errors and custom error types for gfm.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that a branch already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrTagExists indicates that a tag already exists
	ErrTagExists = errors.New("tag already exists")

	// ErrMergeConflict indicates that a merge operation encountered a conflict
	ErrMergeConflict = errors.New("merge conflict")

	// ErrNotInitialized indicates that gfm has not been initialized in the repo
	ErrNotInitialized = errors.New("gfm not initialized")

	// ErrDirtyWorktree indicates uncommitted changes where a clean tree is required
	ErrDirtyWorktree = errors.New("working tree has uncommitted changes")

	// ErrNoFinishInProgress indicates that no interrupted finish exists to resume
	ErrNoFinishInProgress = errors.New("no finish in progress")

	// ErrNoGitHubClient indicates that no GitHub token or remote is configured
	ErrNoGitHubClient = errors.New("no GitHub client configured (set GITHUB_TOKEN)")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when a branch unexpectedly exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// MergeConflictError represents an error when a merge encounters a conflict
type MergeConflictError struct {
	Source string
	Target string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge of %s into %s hit conflicts", e.Source, e.Target)
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(source, target string) *MergeConflictError {
	return &MergeConflictError{Source: source, Target: target}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

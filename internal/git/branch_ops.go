package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// CreateAndCheckoutBranch creates and checks out a new branch off base.
// An empty base branches from HEAD.
func CreateAndCheckoutBranch(ctx context.Context, branchName, base string) error {
	args := []string{"checkout", "-b", branchName}
	if base != "" {
		args = append(args, base)
	}
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateBranch creates a branch off base without checking it out
func CreateBranch(ctx context.Context, branchName, base string) error {
	args := []string{"branch", branchName}
	if base != "" {
		args = append(args, base)
	}
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a branch. Without force, git refuses to delete an
// unmerged branch.
func DeleteBranch(ctx context.Context, branchName string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := RunGitCommandWithContext(ctx, "branch", flag, branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// MergeInProgress reports whether a merge is currently in progress
func MergeInProgress() bool {
	root := defaultRunner.workingDir
	if root == "" {
		var err error
		root, err = GetRepoRoot()
		if err != nil {
			return false
		}
	}
	_, err := os.Stat(filepath.Join(root, ".git", "MERGE_HEAD"))
	return err == nil
}

// HasUncommittedChanges reports whether the worktree has staged or unstaged
// changes to tracked files.
func HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, fmt.Errorf("failed to get worktree status: %w", err)
	}
	return output != "", nil
}

// GetUnmergedFiles returns the paths that currently carry merge conflicts
func GetUnmergedFiles(ctx context.Context) ([]string, error) {
	return RunGitCommandLinesWithContext(ctx, "diff", "--name-only", "--diff-filter=U")
}

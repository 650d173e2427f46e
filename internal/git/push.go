package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to a remote. With setUpstream the branch starts
// tracking the remote branch.
func PushBranch(ctx context.Context, remote, branchName string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branchName)

	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
	}
	return nil
}

// PushTags pushes all tags to a remote
func PushTags(ctx context.Context, remote string) error {
	_, err := RunGitCommandWithContext(ctx, "push", remote, "--tags")
	if err != nil {
		return fmt.Errorf("failed to push tags to %s: %w", remote, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a branch on the remote
func DeleteRemoteBranch(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "push", remote, "--delete", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete %s on %s: %w", branchName, remote, err)
	}
	return nil
}

// Fetch fetches from a remote
func Fetch(ctx context.Context, remote string) error {
	_, err := RunGitCommandWithContext(ctx, "fetch", remote)
	if err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}

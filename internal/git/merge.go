package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gfmerrors "gfm.dev/gfm/internal/errors"
)

// Merge merges branchName into the current branch. With noFF the merge always
// produces a merge commit, which keeps topic branch history visible.
// Returns ErrMergeConflict (wrapped) when the merge stops on conflicts.
func Merge(ctx context.Context, branchName string, noFF bool, message string) error {
	args := []string{"merge"}
	if noFF {
		args = append(args, "--no-ff")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	args = append(args, branchName)

	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		var cmdErr *gfmerrors.GitCommandError
		if errors.As(err, &cmdErr) && isConflictOutput(cmdErr.Stdout+cmdErr.Stderr) {
			current, _ := GetCurrentBranch()
			return gfmerrors.NewMergeConflictError(branchName, current)
		}
		return fmt.Errorf("failed to merge %s: %w", branchName, err)
	}
	return nil
}

// MergeAbort aborts an in-progress merge
func MergeAbort(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "merge", "--abort")
	if err != nil {
		return fmt.Errorf("merge abort failed: %w", err)
	}
	return nil
}

func isConflictOutput(output string) bool {
	return strings.Contains(output, "CONFLICT") ||
		strings.Contains(output, "Automatic merge failed")
}

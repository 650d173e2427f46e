package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/config"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
)

// ContinueAction resumes a finish that stopped on a merge conflict. The
// conflicted merge must already be concluded with `git commit`.
func ContinueAction(ctx context.Context, rctx *runtime.Context) error {
	state, err := config.GetContinuationState(rctx.RepoRoot)
	if err != nil {
		return err
	}
	if state == nil {
		return gfmerrors.ErrNoFinishInProgress
	}

	if git.MergeInProgress() {
		return fmt.Errorf("a merge is still in progress; resolve conflicts and run 'git commit' first")
	}

	dirty, err := git.HasUncommittedChanges(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("%w: commit the resolved merge before continuing", gfmerrors.ErrDirtyWorktree)
	}

	// Branch state changed since the plan was persisted
	if err := rctx.Engine.Refresh(); err != nil {
		return err
	}

	rctx.Splog.Info("Resuming %s for %s", state.Command, state.Branch)

	if err := executeFinishSteps(ctx, rctx, state); err != nil {
		return err
	}

	return finalizeFinish(ctx, rctx, state)
}

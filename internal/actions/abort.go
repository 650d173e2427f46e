package actions

import (
	"context"

	"gfm.dev/gfm/internal/config"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
)

// AbortAction cancels an interrupted finish: it aborts any in-progress merge
// and discards the persisted continuation plan. Merges that already landed
// before the conflict are left in place.
func AbortAction(ctx context.Context, rctx *runtime.Context) error {
	state, err := config.GetContinuationState(rctx.RepoRoot)
	if err != nil {
		return err
	}

	inProgress := git.MergeInProgress()

	if state == nil && !inProgress {
		return gfmerrors.ErrNoFinishInProgress
	}

	if inProgress {
		if err := git.MergeAbort(ctx); err != nil {
			return err
		}
		rctx.Splog.Info("Aborted in-progress merge")
	}

	if state != nil {
		if err := config.ClearContinuationState(rctx.RepoRoot); err != nil {
			return err
		}
		rctx.Splog.Info("Abandoned %s for %s", state.Command, state.Branch)
		rctx.Splog.Tip("Merges completed before the conflict are still in place.")
	}

	return nil
}

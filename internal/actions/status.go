package actions

import (
	"context"

	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// StatusAction prints where the repository sits in the gitflow model: the
// checked-out branch, its kind and merge state, worktree cleanliness, and
// any finish waiting on conflict resolution.
func StatusAction(ctx context.Context, rctx *runtime.Context) error {
	eng := rctx.Engine
	current := eng.CurrentBranch()
	kind := eng.ClassifyBranch(current)

	rctx.Splog.Info("On branch %s (%s)",
		tui.ColorBranchName(current, true), tui.ColorKind(kind.String()))

	switch kind {
	case engine.KindFeature, engine.KindRelease, engine.KindHotfix:
		base := eng.BaseFor(kind)
		merged, err := eng.IsMergedInto(current, base)
		if err != nil {
			return err
		}
		if merged {
			rctx.Splog.Info("Already merged into %s.", tui.ColorBranchName(base, false))
		} else {
			rctx.Splog.Info("Not yet merged into %s.", tui.ColorBranchName(base, false))
			if forkPoint, err := eng.MergeBase(current, base); err == nil {
				rctx.Splog.Info("Forked from %s at %s.",
					tui.ColorBranchName(base, false), tui.ColorDim(shortHash(forkPoint)))
			}
			rctx.Splog.Tip("Finish it with 'gfm %s finish'", kind)
		}
	case engine.KindOther:
		rctx.Splog.Info("Branch is outside the gitflow naming scheme.")
	}

	dirty, err := git.HasUncommittedChanges(ctx)
	if err != nil {
		return err
	}
	if dirty {
		rctx.Splog.Warn("Working tree has uncommitted changes.")
	}

	state, err := config.GetContinuationState(rctx.RepoRoot)
	if err != nil {
		return err
	}
	if state != nil {
		rctx.Splog.Warn("A finish of %s is paused on a conflict.",
			tui.ColorBranchName(state.Branch, false))
		rctx.Splog.Tip("Resolve, 'git commit', then 'gfm continue' (or 'gfm abort')")
	}

	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

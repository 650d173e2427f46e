package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/config"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
)

// KindFromString maps a command group name to a gitflow branch kind
func KindFromString(kind string) (engine.BranchKind, error) {
	switch kind {
	case "feature":
		return engine.KindFeature, nil
	case "release":
		return engine.KindRelease, nil
	case "hotfix":
		return engine.KindHotfix, nil
	default:
		return engine.KindOther, fmt.Errorf("unknown branch kind %q", kind)
	}
}

// requireCleanWorktree returns ErrDirtyWorktree when tracked files have
// uncommitted changes. Merge-producing operations call this first.
func requireCleanWorktree(ctx context.Context) error {
	dirty, err := git.HasUncommittedChanges(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("%w; commit or stash them first", gfmerrors.ErrDirtyWorktree)
	}
	return nil
}

// requireNoFinishInProgress refuses to start new work while an interrupted
// finish is waiting for `gfm continue`.
func requireNoFinishInProgress(rctx *runtime.Context) error {
	if config.HasContinuationState(rctx.RepoRoot) {
		return fmt.Errorf("a finish is in progress; run 'gfm continue' or 'gfm abort' first")
	}
	return nil
}

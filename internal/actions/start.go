package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// StartOptions holds options for starting a gitflow branch
type StartOptions struct {
	Kind engine.BranchKind
	Name string
	// Publish pushes the new branch to the remote with an upstream
	Publish bool
}

// StartAction creates and checks out a new feature, release, or hotfix branch
func StartAction(ctx context.Context, rctx *runtime.Context, opts StartOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("missing %s name", opts.Kind)
	}
	if err := requireNoFinishInProgress(rctx); err != nil {
		return err
	}

	branchName, err := rctx.Engine.StartBranch(ctx, opts.Kind, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", opts.Kind, err)
	}

	base := rctx.Engine.BaseFor(opts.Kind)
	rctx.Splog.Info("Created %s from %s",
		tui.ColorBranchName(branchName, true),
		tui.ColorBranchName(base, false))

	if opts.Publish {
		if err := rctx.Engine.PushBranch(ctx, branchName, true); err != nil {
			return err
		}
		rctx.Splog.Info("Pushed %s to %s", branchName, rctx.Engine.Remote())
	}

	switch opts.Kind {
	case engine.KindFeature:
		rctx.Splog.Tip("When done, run 'gfm feature finish %s' to merge it back into %s",
			rctx.Engine.ShortName(branchName), base)
	case engine.KindRelease:
		rctx.Splog.Tip("Bump version files and changelog here, then run 'gfm release finish %s'",
			rctx.Engine.ShortName(branchName))
	case engine.KindHotfix:
		rctx.Splog.Tip("When done, run 'gfm hotfix finish %s' to tag and merge back",
			rctx.Engine.ShortName(branchName))
	}

	return nil
}

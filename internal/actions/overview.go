package actions

import (
	"context"

	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// OverviewOptions holds options for the overview
type OverviewOptions struct {
	// Fetch updates the remote refs before rendering
	Fetch bool
}

// OverviewAction renders the full gitflow state: master, develop, and every
// topic branch grouped by kind with its merge status.
func OverviewAction(ctx context.Context, rctx *runtime.Context, opts OverviewOptions) error {
	eng := rctx.Engine

	if opts.Fetch {
		if err := git.Fetch(ctx, eng.Remote()); err != nil {
			return err
		}
		if err := eng.Refresh(); err != nil {
			return err
		}
	}

	sections := make([]tui.OverviewSection, 0, 3)
	for _, kind := range []engine.BranchKind{engine.KindFeature, engine.KindRelease, engine.KindHotfix} {
		branches, err := eng.ListBranches(kind)
		if err != nil {
			return err
		}

		section := tui.OverviewSection{Title: kind.String()}
		for _, branch := range branches {
			section.Branches = append(section.Branches, tui.OverviewBranch{
				Name:      branch.ShortName,
				IsCurrent: branch.IsCurrent,
				Merged:    branch.MergedIntoBase,
				Subject:   branch.Subject,
			})
		}
		sections = append(sections, section)
	}

	rctx.Splog.Page(tui.RenderOverview(eng.Master(), eng.Develop(), eng.CurrentBranch(), sections))
	return nil
}

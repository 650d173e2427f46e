package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// ListAction prints the branches of one gitflow kind with their merge state
// relative to the kind's base branch.
func ListAction(ctx context.Context, rctx *runtime.Context, kind engine.BranchKind) error {
	branches, err := rctx.Engine.ListBranches(kind)
	if err != nil {
		return err
	}

	if len(branches) == 0 {
		rctx.Splog.Info("No %s branches.", kind)
		rctx.Splog.Tip("Start one with 'gfm %s start <name>'", kind)
		return nil
	}

	base := rctx.Engine.BaseFor(kind)
	rctx.Splog.Info("%s branches (base %s):",
		tui.ColorKind(kind.String()), tui.ColorBranchName(base, false))

	for _, branch := range branches {
		marker := tui.ColorPending("○")
		if branch.MergedIntoBase {
			marker = tui.ColorMerged("●")
		}

		line := fmt.Sprintf("  %s %s", marker, tui.ColorBranchName(branch.ShortName, branch.IsCurrent))
		if !branch.LastCommitDate.IsZero() {
			line += tui.ColorDim(fmt.Sprintf("  %s", branch.LastCommitDate.Format("2006-01-02")))
		}
		if branch.Subject != "" {
			line += tui.ColorDim("  " + branch.Subject)
		}
		rctx.Splog.Info("%s", line)
	}

	return nil
}

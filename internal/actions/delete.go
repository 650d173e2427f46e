package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// DeleteOptions holds options for deleting a gitflow branch
type DeleteOptions struct {
	Kind engine.BranchKind
	Name string
	// Force deletes without confirmation even when unmerged
	Force bool
}

// DeleteAction removes a topic branch without merging it. Deleting an
// unmerged branch requires --force or interactive confirmation.
func DeleteAction(ctx context.Context, rctx *runtime.Context, opts DeleteOptions) error {
	eng := rctx.Engine

	if opts.Name == "" {
		return fmt.Errorf("a branch name is required")
	}

	branchName := eng.QualifyBranchName(opts.Kind, opts.Name)
	if !eng.BranchExists(branchName) {
		return gfmerrors.NewBranchNotFoundError(branchName)
	}

	base := eng.BaseFor(opts.Kind)
	merged, err := eng.IsMergedInto(branchName, base)
	if err != nil {
		return err
	}

	force := opts.Force
	if !merged && !force {
		if !tui.IsTTY() {
			return fmt.Errorf("%s is not merged into %s; use --force to delete anyway", branchName, base)
		}
		confirmed, err := tui.PromptConfirm(
			fmt.Sprintf("%s is not merged into %s. Delete anyway?", branchName, base), false)
		if err != nil {
			return err
		}
		if !confirmed {
			rctx.Splog.Info("Kept %s", tui.ColorBranchName(branchName, false))
			return nil
		}
		force = true
	}

	// Step off the branch before deleting it
	if eng.CurrentBranch() == branchName {
		if err := eng.CheckoutBranch(ctx, eng.Develop()); err != nil {
			return err
		}
	}

	if err := eng.DeleteBranch(ctx, branchName, force); err != nil {
		return err
	}
	rctx.Splog.Info("Deleted %s", tui.ColorBranchName(branchName, false))
	return nil
}

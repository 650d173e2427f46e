package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// CheckoutOptions holds options for checking out a gitflow branch
type CheckoutOptions struct {
	Kind engine.BranchKind
	// Name is the short or full branch name; empty opens an interactive picker
	Name string
}

// CheckoutAction switches to a topic branch of the given kind. With no name
// and a TTY it presents a picker over the existing branches.
func CheckoutAction(ctx context.Context, rctx *runtime.Context, opts CheckoutOptions) error {
	eng := rctx.Engine

	branchName := ""
	if opts.Name != "" {
		branchName = eng.QualifyBranchName(opts.Kind, opts.Name)
		if !eng.BranchExists(branchName) {
			return gfmerrors.NewBranchNotFoundError(branchName)
		}
	} else {
		picked, err := pickBranch(rctx, opts.Kind)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		branchName = picked
	}

	if branchName == eng.CurrentBranch() {
		rctx.Splog.Info("Already on %s", tui.ColorBranchName(branchName, true))
		return nil
	}

	if err := eng.CheckoutBranch(ctx, branchName); err != nil {
		return err
	}
	rctx.Splog.Info("Switched to %s", tui.ColorBranchName(branchName, true))
	return nil
}

func pickBranch(rctx *runtime.Context, kind engine.BranchKind) (string, error) {
	if !tui.IsTTY() {
		return "", fmt.Errorf("no branch name given and not running interactively")
	}

	branches, err := rctx.Engine.ListBranches(kind)
	if err != nil {
		return "", err
	}
	if len(branches) == 0 {
		return "", fmt.Errorf("no %s branches exist", kind)
	}

	options := make([]tui.PickerOption, 0, len(branches))
	for _, branch := range branches {
		desc := branch.Subject
		if branch.IsCurrent {
			desc = "(current) " + desc
		}
		options = append(options, tui.PickerOption{
			Name:        branch.Name,
			Description: desc,
		})
	}

	picked, err := tui.PickBranch(fmt.Sprintf("Check out a %s branch", kind), options)
	if err != nil {
		return "", err
	}
	return picked, nil
}

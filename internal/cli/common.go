package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// runWithContext bootstraps the runtime context and invokes the action.
// Commands that require an initialized repository go through here.
func runWithContext(cmd *cobra.Command, fn func(ctx context.Context, rctx *runtime.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rctx, err := runtime.GetContext(ctx)
	if err != nil {
		return err
	}
	defer rctx.Splog.Close()

	return fn(ctx, rctx)
}

// completeTopicBranches returns short branch names of one kind for shell
// completion. Errors are swallowed so completion never breaks the shell.
func completeTopicBranches(kind string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		names, err := topicBranchNames(cmd, kind)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func topicBranchNames(cmd *cobra.Command, kind string) ([]string, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rctx, err := runtime.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rctx.Splog.Close()

	branchKind, err := actions.KindFromString(kind)
	if err != nil {
		return nil, err
	}

	branches, err := rctx.Engine.ListBranches(branchKind)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(branches))
	for _, branch := range branches {
		names = append(names, branch.ShortName)
	}
	return names, nil
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// newContinueCmd creates the continue command
func newContinueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Resume a finish that was interrupted by a merge conflict",
		Long: `Resume a finish that was interrupted by a merge conflict.

Resolve the conflicts, conclude the merge with 'git commit', then run this
command to carry out the remaining merge, tag, and cleanup steps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.ContinueAction(ctx, rctx)
			})
		},
	}
}

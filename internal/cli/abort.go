package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// newAbortCmd creates the abort command
func newAbortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abort",
		Short: "Abandon a finish that was interrupted by a merge conflict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.AbortAction(ctx, rctx)
			})
		},
	}
}

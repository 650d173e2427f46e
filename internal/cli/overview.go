package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// newOverviewCmd creates the overview command
func newOverviewCmd() *cobra.Command {
	var fetch bool

	cmd := &cobra.Command{
		Use:     "overview",
		Aliases: []string{"tree"},
		Short:   "Show all gitflow branches and their merge state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.OverviewAction(ctx, rctx, actions.OverviewOptions{Fetch: fetch})
			})
		},
	}

	cmd.Flags().BoolVar(&fetch, "fetch", false, "Fetch from the remote before rendering")

	return cmd
}

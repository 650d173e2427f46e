package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// newConfigCmd creates the config command group
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the gitflow configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
					return actions.ConfigShowAction(ctx, rctx)
				})
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration key",
			Long: `Set a configuration key.

Keys: master, develop, feature-prefix, release-prefix, hotfix-prefix,
version-prefix, remote.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
					return actions.ConfigSetAction(ctx, rctx, args[0], args[1])
				})
			},
		},
	)

	return cmd
}

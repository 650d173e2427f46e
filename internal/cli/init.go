package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/tui"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		master   string
		develop  string
		defaults bool
		reinit   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the gitflow branching model in this repository",
		Long: `Initialize the gitflow branching model in this repository.

Records which branch holds production history (master) and which holds
integration history (develop), creating the develop branch if needed.
Without flags the branch names are prompted for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			splog := tui.NewSplog()
			defer splog.Close()

			return actions.InitAction(ctx, actions.InitOptions{
				Master:      master,
				Develop:     develop,
				Defaults:    defaults,
				Reinit:      reinit,
				Interactive: tui.IsTTY(),
			}, splog)
		},
	}

	cmd.Flags().StringVar(&master, "master", "", "Production branch name")
	cmd.Flags().StringVar(&develop, "develop", "", "Integration branch name")
	cmd.Flags().BoolVarP(&defaults, "defaults", "d", false, "Use default branch names without prompting")
	cmd.Flags().BoolVar(&reinit, "reinit", false, "Reconfigure an already initialized repository")

	return cmd
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// newTagCmd creates the tag command
func newTagCmd() *cobra.Command {
	var message string
	var push bool

	cmd := &cobra.Command{
		Use:   "tag [name]",
		Short: "Create a version tag on the current commit, or list version tags",
		Long: `Create a version tag on the current commit, or list version tags
when no name is given.

The configured version tag prefix is applied unless the name already
carries it. A message produces an annotated tag; release and hotfix
finishes create their tags the same way.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				if len(args) == 0 {
					return actions.TagListAction(ctx, rctx)
				}
				return actions.TagAction(ctx, rctx, actions.TagOptions{
					Name:    args[0],
					Message: message,
					Push:    push,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Tag annotation message")
	cmd.Flags().BoolVarP(&push, "push", "p", false, "Push tags to the remote afterwards")

	return cmd
}

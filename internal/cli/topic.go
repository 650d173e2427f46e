package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/runtime"
)

// newTopicCmd builds the command tree shared by feature, release, and
// hotfix: start, finish, list, checkout, publish, and delete.
func newTopicCmd(kindName, short string, examples string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     kindName,
		Short:   short,
		Example: examples,
	}

	cmd.AddCommand(
		newTopicStartCmd(kindName),
		newTopicFinishCmd(kindName),
		newTopicListCmd(kindName),
		newTopicCheckoutCmd(kindName),
		newTopicPublishCmd(kindName),
		newTopicDeleteCmd(kindName),
	)

	return cmd
}

func newTopicStartCmd(kindName string) *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "start <name>",
		Short: "Start a new " + kindName + " branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := actions.KindFromString(kindName)
			if err != nil {
				return err
			}
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.StartAction(ctx, rctx, actions.StartOptions{
					Kind:    kind,
					Name:    args[0],
					Publish: publish,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&publish, "publish", "p", false, "Push the new branch to the remote with an upstream")

	return cmd
}

func newTopicFinishCmd(kindName string) *cobra.Command {
	var (
		message       string
		keep          bool
		forceDelete   bool
		push          bool
		githubRelease bool
	)

	cmd := &cobra.Command{
		Use:               "finish [name]",
		Short:             "Finish a " + kindName + " branch by merging it back",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTopicBranches(kindName),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := actions.KindFromString(kindName)
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.FinishAction(ctx, rctx, actions.FinishOptions{
					Kind:          kind,
					Name:          name,
					Message:       message,
					Keep:          keep,
					ForceDelete:   forceDelete,
					Push:          push,
					GitHubRelease: githubRelease,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "Keep the branch after merging")
	cmd.Flags().BoolVarP(&forceDelete, "force-delete", "D", false, "Force delete the branch even if git considers it unmerged")
	cmd.Flags().BoolVarP(&push, "push", "p", false, "Push the affected branches and tags after finishing")

	if kindName == "release" || kindName == "hotfix" {
		cmd.Flags().StringVarP(&message, "message", "m", "", "Tag annotation message")
		cmd.Flags().BoolVar(&githubRelease, "github-release", false, "Publish a GitHub release from the new tag")
	}

	return cmd
}

func newTopicListCmd(kindName string) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List " + kindName + " branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := actions.KindFromString(kindName)
			if err != nil {
				return err
			}
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.ListAction(ctx, rctx, kind)
			})
		},
	}
}

func newTopicCheckoutCmd(kindName string) *cobra.Command {
	return &cobra.Command{
		Use:               "checkout [name]",
		Aliases:           []string{"co"},
		Short:             "Check out a " + kindName + " branch",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTopicBranches(kindName),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := actions.KindFromString(kindName)
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.CheckoutAction(ctx, rctx, actions.CheckoutOptions{
					Kind: kind,
					Name: name,
				})
			})
		},
	}
}

func newTopicPublishCmd(kindName string) *cobra.Command {
	var (
		createPR bool
		draft    bool
	)

	cmd := &cobra.Command{
		Use:               "publish [name]",
		Short:             "Push a " + kindName + " branch to the remote",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTopicBranches(kindName),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := actions.KindFromString(kindName)
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.PublishAction(ctx, rctx, actions.PublishOptions{
					Kind:     kind,
					Name:     name,
					CreatePR: createPR,
					Draft:    draft,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&createPR, "pr", false, "Open a pull request into the base branch")
	cmd.Flags().BoolVar(&draft, "draft", false, "Open the pull request as a draft")

	return cmd
}

func newTopicDeleteCmd(kindName string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "delete <name>",
		Aliases:           []string{"rm"},
		Short:             "Delete a " + kindName + " branch without merging",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopicBranches(kindName),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := actions.KindFromString(kindName)
			if err != nil {
				return err
			}
			return runWithContext(cmd, func(ctx context.Context, rctx *runtime.Context) error {
				return actions.DeleteAction(ctx, rctx, actions.DeleteOptions{
					Kind:  kind,
					Name:  args[0],
					Force: force,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation even when unmerged")

	return cmd
}

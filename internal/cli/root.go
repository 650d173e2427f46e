package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gfm",
		Short:         "gfm manages the gitflow branching model over git",
		SilenceUsage:  true,
		SilenceErrors: false,
		Long: `gfm manages the gitflow branching model over git.

Features branch from develop and merge back into develop. Releases and
hotfixes merge into master, get an annotated version tag, and merge back
into develop. Conflicted finishes can be resumed with 'gfm continue'.`,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newFeatureCmd(),
		newReleaseCmd(),
		newHotfixCmd(),
		newOverviewCmd(),
		newStatusCmd(),
		newTagCmd(),
		newContinueCmd(),
		newAbortCmd(),
		newConfigCmd(),
		newVersionCmd(version, commit, date),
	)

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gfm %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

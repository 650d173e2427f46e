package cli

import (
	"github.com/spf13/cobra"
)

// newReleaseCmd creates the release command group
func newReleaseCmd() *cobra.Command {
	return newTopicCmd("release",
		"Manage release branches (branched from develop, merged into master and develop)",
		`  gfm release start 1.2.0
  gfm release finish 1.2.0 --push
  gfm release finish 1.2.0 --push --github-release`)
}

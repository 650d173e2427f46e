package cli

import (
	"github.com/spf13/cobra"
)

// newFeatureCmd creates the feature command group
func newFeatureCmd() *cobra.Command {
	return newTopicCmd("feature",
		"Manage feature branches (branched from and merged back into develop)",
		`  gfm feature start user-auth
  gfm feature publish --pr
  gfm feature finish user-auth`)
}

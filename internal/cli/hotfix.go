package cli

import (
	"github.com/spf13/cobra"
)

// newHotfixCmd creates the hotfix command group
func newHotfixCmd() *cobra.Command {
	return newTopicCmd("hotfix",
		"Manage hotfix branches (branched from master, merged into master and develop)",
		`  gfm hotfix start 1.2.1
  gfm hotfix finish 1.2.1 --push`)
}

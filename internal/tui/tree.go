package tui

import (
	"fmt"
	"strings"
)

// OverviewBranch is a branch row in the overview tree
type OverviewBranch struct {
	Name      string
	IsCurrent bool
	Merged    bool
	Subject   string
}

// OverviewSection is a gitflow kind grouping in the overview tree
type OverviewSection struct {
	Title    string
	Branches []OverviewBranch
}

// RenderOverview renders the gitflow overview: the two long-lived branches
// followed by one section per topic kind.
func RenderOverview(master, develop, current string, sections []OverviewSection) string {
	var b strings.Builder

	b.WriteString(renderTrunkLine(master, current))
	b.WriteString("\n")
	b.WriteString(renderTrunkLine(develop, current))
	b.WriteString("\n")

	for _, section := range sections {
		if len(section.Branches) == 0 {
			continue
		}

		b.WriteString("\n")
		b.WriteString(ColorKind(section.Title))
		b.WriteString("\n")

		for i, branch := range section.Branches {
			connector := "├─"
			if i == len(section.Branches)-1 {
				connector = "└─"
			}

			marker := "◯"
			if branch.IsCurrent {
				marker = "◉"
			}

			state := ColorPending("pending")
			if branch.Merged {
				state = ColorMerged("merged")
			}

			line := fmt.Sprintf("  %s %s %s %s",
				ColorDim(connector),
				marker,
				ColorBranchName(branch.Name, branch.IsCurrent),
				state)
			if branch.Subject != "" {
				line += " " + ColorDim(branch.Subject)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTrunkLine(branchName, current string) string {
	marker := "◯"
	if branchName == current {
		marker = "◉"
	}
	return fmt.Sprintf("%s %s", marker, ColorBranchName(branchName, branchName == current))
}

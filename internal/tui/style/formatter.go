// Package style provides lipgloss-based color helpers for gfm output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorKind colors a gitflow kind heading
func ColorKind(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("5")).
		Bold(true).
		Render(text)
}

// ColorMerged colors the merged marker (green)
func ColorMerged(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorPending colors the unmerged marker (yellow)
func ColorPending(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorTag colors a tag name (yellow)
func ColorTag(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorError colors error text (red)
func ColorError(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

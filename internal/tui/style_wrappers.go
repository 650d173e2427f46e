package tui

import (
	"gfm.dev/gfm/internal/tui/style"
)

// Forward style functions for convenience

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	return style.ColorBranchName(branchName, isCurrent)
}

// ColorKind colors a gitflow kind heading
func ColorKind(text string) string { return style.ColorKind(text) }

// ColorMerged colors the merged marker
func ColorMerged(text string) string { return style.ColorMerged(text) }

// ColorPending colors the unmerged marker
func ColorPending(text string) string { return style.ColorPending(text) }

// ColorTag colors a tag name
func ColorTag(text string) string { return style.ColorTag(text) }

// ColorDim makes text dim/gray
func ColorDim(text string) string { return style.ColorDim(text) }

// ColorError colors error text
func ColorError(text string) string { return style.ColorError(text) }

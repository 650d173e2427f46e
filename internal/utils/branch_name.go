// Package utils provides small shared helpers.
package utils

import (
	"regexp"
	"strings"
)

// MaxBranchNameByteLength caps generated branch names well under git's ref
// name limit.
const MaxBranchNameByteLength = 200

var (
	// branchNameReplaceRegex matches characters that are not valid in branch names.
	// Valid characters: letters, numbers, -, _, /, .
	branchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// branchNameIgnoreRegex matches trailing slashes and dots that should be removed
	branchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRegex = regexp.MustCompile(`-+`)
)

// SanitizeBranchName sanitizes a branch name by replacing invalid characters
func SanitizeBranchName(name string) string {
	name = branchNameIgnoreRegex.ReplaceAllString(name, "")
	name = branchNameReplaceRegex.ReplaceAllString(name, "-")
	name = hyphenRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > MaxBranchNameByteLength {
		name = name[:MaxBranchNameByteLength]
		name = strings.TrimSuffix(name, "-")
	}

	return name
}

package git

import (
	"context"
	"fmt"
)

// CreateTag creates a tag on the current commit. A non-empty message produces
// an annotated tag.
func CreateTag(ctx context.Context, tagName, message string) error {
	args := []string{"tag"}
	if message != "" {
		args = append(args, "-a", tagName, "-m", message)
	} else {
		args = append(args, tagName)
	}
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tagName, err)
	}
	return nil
}

// TagExists returns true if a tag with the given name exists
func TagExists(tagName string) bool {
	repo, err := GetDefaultRepo()
	if err != nil {
		_, cmdErr := RunGitCommand("show-ref", "--verify", "--quiet", "refs/tags/"+tagName)
		return cmdErr == nil
	}
	return repo.HasTag(tagName)
}

// ListTags returns all tag names in the repository
func ListTags() ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}
	return repo.GetTagNames()
}

// GetTagMessage returns the annotation message of a tag, or the empty string
// for lightweight tags.
func GetTagMessage(tagName string) (string, error) {
	output, err := RunGitCommand("tag", "-l", "--format=%(contents:subject)", tagName)
	if err != nil {
		return "", fmt.Errorf("failed to read tag %s: %w", tagName, err)
	}
	return output, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FinishStep is a single remaining step of an interrupted finish
type FinishStep struct {
	// Kind is one of "merge", "tag", "delete", "checkout"
	Kind string `json:"kind"`
	// Source is the branch being merged (merge) or deleted (delete)
	Source string `json:"source,omitempty"`
	// Target is the branch being merged into or checked out
	Target string `json:"target,omitempty"`
	// Tag and Message apply to tag steps
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message,omitempty"`
	// Force applies to delete steps
	Force bool `json:"force,omitempty"`
}

// ContinuationState represents the state of a finish that was interrupted by
// a merge conflict. The remaining steps run in order on `gfm continue`.
type ContinuationState struct {
	Command        string       `json:"command"` // "feature finish", "release finish", "hotfix finish"
	Branch         string       `json:"branch"`  // topic branch being finished
	RemainingSteps []FinishStep `json:"remainingSteps,omitempty"`
	Push           bool         `json:"push,omitempty"`
	Remote         string       `json:"remote,omitempty"`
	DeleteOnRemote bool         `json:"deleteOnRemote,omitempty"`
	Tag            string       `json:"tag,omitempty"`
	GitHubRelease  bool         `json:"githubRelease,omitempty"`
}

func continuationPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".gfm_continue")
}

// GetContinuationState reads the continuation state from disk. A missing
// file yields nil without error.
func GetContinuationState(repoRoot string) (*ContinuationState, error) {
	data, err := os.ReadFile(continuationPath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read continuation state: %w", err)
	}

	var state ContinuationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse continuation state: %w", err)
	}
	return &state, nil
}

// HasContinuationState reports whether an interrupted finish exists
func HasContinuationState(repoRoot string) bool {
	_, err := os.Stat(continuationPath(repoRoot))
	return err == nil
}

// PersistContinuationState writes the continuation state to disk
func PersistContinuationState(repoRoot string, state *ContinuationState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal continuation state: %w", err)
	}
	return os.WriteFile(continuationPath(repoRoot), data, 0600)
}

// ClearContinuationState removes the continuation state file
func ClearContinuationState(repoRoot string) error {
	err := os.Remove(continuationPath(repoRoot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear continuation state: %w", err)
	}
	return nil
}

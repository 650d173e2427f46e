package testhelpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gfm.dev/gfm/internal/git"
)

// Scene is a test scene: a temporary directory holding an initialized git
// repository with master, develop, and an initial commit.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene
type SceneSetup func(*Scene) error

// NewScene creates a test scene, changes into it, and registers cleanup.
// The repository starts on develop with gfm already initialized.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gfm-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// macOS returns symlinked temp paths; resolve so repo root comparisons hold
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := scene.initGitflow(); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to initialize gitflow: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	// The default repo singleton is bound to whatever directory opened it
	git.ResetDefaultRepo()

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		git.ResetDefaultRepo()
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// initGitflow seeds an initial commit, creates develop, and writes the gfm
// config so actions see an initialized repository.
func (s *Scene) initGitflow() error {
	if err := s.Repo.CreateChangeAndCommit("initial", "initial commit"); err != nil {
		return err
	}
	if err := s.Repo.CreateBranch("develop"); err != nil {
		return err
	}
	if err := s.Repo.CheckoutBranch("develop"); err != nil {
		return err
	}

	cfg := map[string]string{
		"master":  "master",
		"develop": "develop",
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, ".git", ".gfm_config"), data, 0600)
}

// BasicSceneSetup creates one extra commit on develop
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "commit 1")
}

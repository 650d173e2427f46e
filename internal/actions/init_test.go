package actions_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/tui"
	"gfm.dev/gfm/testhelpers"
)

// newUninitializedRepo creates a repo with one commit on the given branch
// and changes into it. Unlike Scene it does not write a gfm config.
func newUninitializedRepo(t *testing.T, branch string) *testhelpers.GitRepo {
	t.Helper()
	t.Setenv("GFM_NON_INTERACTIVE", "true")

	tmpDir, err := os.MkdirTemp("", "gfm-test-*")
	require.NoError(t, err)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	oldDir, err := os.Getwd()
	require.NoError(t, err)

	repo, err := testhelpers.NewGitRepoWithBranch(tmpDir, branch)
	require.NoError(t, err)
	require.NoError(t, repo.CreateChangeAndCommit("initial", "initial commit"))

	require.NoError(t, os.Chdir(tmpDir))
	git.ResetDefaultRepo()

	t.Cleanup(func() {
		os.Chdir(oldDir)
		git.ResetDefaultRepo()
		os.RemoveAll(tmpDir)
	})

	return repo
}

func TestInitAction(t *testing.T) {
	t.Run("records branches and creates develop", func(t *testing.T) {
		repo := newUninitializedRepo(t, "master")
		splog := tui.NewSplog()
		defer splog.Close()

		err := actions.InitAction(context.Background(), actions.InitOptions{Defaults: true}, splog)
		require.NoError(t, err)

		require.True(t, repo.BranchExists("develop"))

		cfg, err := config.LoadConfig(repo.Dir)
		require.NoError(t, err)
		require.True(t, cfg.IsInitialized())
		require.Equal(t, "master", cfg.GetMaster())
		require.Equal(t, "develop", cfg.GetDevelop())
	})

	t.Run("infers main as the production branch", func(t *testing.T) {
		repo := newUninitializedRepo(t, "main")
		splog := tui.NewSplog()
		defer splog.Close()

		err := actions.InitAction(context.Background(), actions.InitOptions{Defaults: true}, splog)
		require.NoError(t, err)

		cfg, err := config.LoadConfig(repo.Dir)
		require.NoError(t, err)
		require.Equal(t, "main", cfg.GetMaster())
	})

	t.Run("rejects a missing production branch", func(t *testing.T) {
		newUninitializedRepo(t, "master")
		splog := tui.NewSplog()
		defer splog.Close()

		err := actions.InitAction(context.Background(), actions.InitOptions{Master: "trunk"}, splog)
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})

	t.Run("rejects identical branch names", func(t *testing.T) {
		newUninitializedRepo(t, "master")
		splog := tui.NewSplog()
		defer splog.Close()

		err := actions.InitAction(context.Background(), actions.InitOptions{
			Master:  "master",
			Develop: "master",
		}, splog)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must differ")
	})

	t.Run("is a no-op when already initialized", func(t *testing.T) {
		repo := newUninitializedRepo(t, "master")
		splog := tui.NewSplog()
		defer splog.Close()

		require.NoError(t, actions.InitAction(context.Background(), actions.InitOptions{Defaults: true}, splog))

		// Second run keeps the existing configuration
		err := actions.InitAction(context.Background(), actions.InitOptions{
			Master:   "develop",
			Defaults: true,
		}, splog)
		require.NoError(t, err)

		cfg, err := config.LoadConfig(repo.Dir)
		require.NoError(t, err)
		require.Equal(t, "master", cfg.GetMaster())
	})

	t.Run("reinit reconfigures", func(t *testing.T) {
		repo := newUninitializedRepo(t, "master")
		require.NoError(t, repo.CreateBranch("trunk"))
		splog := tui.NewSplog()
		defer splog.Close()

		require.NoError(t, actions.InitAction(context.Background(), actions.InitOptions{Defaults: true}, splog))

		err := actions.InitAction(context.Background(), actions.InitOptions{
			Master:   "trunk",
			Reinit:   true,
			Defaults: true,
		}, splog)
		require.NoError(t, err)

		cfg, err := config.LoadConfig(repo.Dir)
		require.NoError(t, err)
		require.Equal(t, "trunk", cfg.GetMaster())
	})
}

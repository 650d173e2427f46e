package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/testhelpers"
	"gfm.dev/gfm/testhelpers/scenario"
)

func TestFinishFeature(t *testing.T) {
	t.Run("merges into develop and deletes the branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "user-auth")
		require.NoError(t, err)
		s.WithCommit("auth work", "auth work", "auth.txt")

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
		})
		require.NoError(t, err)

		current, err := s.Scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "develop", current)

		require.False(t, s.Scene.Repo.BranchExists("feature/user-auth"))

		// The feature work landed on develop through a merge commit
		subject, err := s.Scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s", "develop")
		require.NoError(t, err)
		require.Contains(t, subject, "Merge branch 'feature/user-auth'")
	})

	t.Run("keeps the branch with Keep", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "kept")
		require.NoError(t, err)
		s.WithCommit("kept work", "kept work", "kept.txt")

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
			Keep: true,
		})
		require.NoError(t, err)

		require.True(t, s.Scene.Repo.BranchExists("feature/kept"))

		current, err := s.Scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "develop", current)
	})

	t.Run("resolves the branch by name from elsewhere", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "named")
		require.NoError(t, err)
		s.WithCommit("named work", "named work", "named.txt")
		s.OnBranch("master")

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
			Name: "named",
		})
		require.NoError(t, err)
		require.False(t, s.Scene.Repo.BranchExists("feature/named"))
	})

	t.Run("errors when not on a branch of the kind", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
		})
		require.Error(t, err)
	})

	t.Run("errors on a missing name", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
			Name: "ghost",
		})
		require.ErrorIs(t, err, gfmerrors.ErrBranchNotFound)
	})

	t.Run("errors on a dirty worktree", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "dirty")
		require.NoError(t, err)
		s.WithCommit("dirty work", "dirty work", "dirty.txt")
		require.NoError(t, s.Scene.Repo.CreateChange("uncommitted", "dirty.txt"))

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
		})
		require.ErrorIs(t, err, gfmerrors.ErrDirtyWorktree)
	})
}

func TestFinishRelease(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

	_, err := s.Engine.StartBranch(context.Background(), engine.KindRelease, "1.2.0")
	require.NoError(t, err)
	s.WithCommit("release prep", "release prep", "changelog.txt")

	err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
		Kind:    engine.KindRelease,
		Message: "release 1.2.0",
	})
	require.NoError(t, err)

	// Tagged on master, merged into both long-lived branches, branch gone
	require.True(t, s.Scene.Repo.TagExists("v1.2.0"))
	require.False(t, s.Scene.Repo.BranchExists("release/1.2.0"))

	masterSubject, err := s.Scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s", "master")
	require.NoError(t, err)
	require.Contains(t, masterSubject, "Merge branch 'release/1.2.0'")

	// The release work landed on both long-lived branches
	for _, branch := range []string{"master", "develop"} {
		files, err := s.Scene.Repo.RunGitCommandAndGetOutput("ls-tree", "--name-only", branch)
		require.NoError(t, err)
		require.Contains(t, files, "changelog.txt")
	}

	current, err := s.Scene.Repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "develop", current)

	// The tag is annotated with the given message
	tagMessage, err := s.Scene.Repo.RunGitCommandAndGetOutput("tag", "-l", "-n1", "v1.2.0")
	require.NoError(t, err)
	require.Contains(t, tagMessage, "release 1.2.0")
}

func TestFinishGitHubRelease(t *testing.T) {
	t.Run("publishes a release from the new tag", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindRelease, "1.5.0")
		require.NoError(t, err)
		s.WithCommit("notes", "prepare 1.5.0", "changelog.txt")

		mock := testhelpers.NewMockGitHubClient()
		s.Context.GitHubClient = mock

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind:          engine.KindRelease,
			GitHubRelease: true,
		})
		require.NoError(t, err)

		require.Len(t, mock.CreatedReleases, 1)
		require.Equal(t, "v1.5.0", mock.CreatedReleases[0].TagName)
		require.Equal(t, "v1.5.0", mock.CreatedReleases[0].Name)
	})

	t.Run("finishes with a warning when no client is available", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindHotfix, "1.5.1")
		require.NoError(t, err)
		s.WithCommit("fix", "urgent fix", "fix.txt")

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind:          engine.KindHotfix,
			GitHubRelease: true,
		})
		require.NoError(t, err)
		require.True(t, s.Scene.Repo.TagExists("v1.5.1"))
	})
}

func TestFinishHotfix(t *testing.T) {
	s := scenario.NewScenario(t, nil)

	// develop has moved ahead of master
	s.WithCommit("develop work", "develop work", "develop.txt")

	_, err := s.Engine.StartBranch(context.Background(), engine.KindHotfix, "1.0.1")
	require.NoError(t, err)
	s.WithCommit("urgent fix", "urgent fix", "fix.txt")

	err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
		Kind: engine.KindHotfix,
	})
	require.NoError(t, err)

	require.True(t, s.Scene.Repo.TagExists("v1.0.1"))
	require.False(t, s.Scene.Repo.BranchExists("hotfix/1.0.1"))

	// The fix landed on both long-lived branches, but master got only the
	// fix, not develop's work
	masterFiles, err := s.Scene.Repo.RunGitCommandAndGetOutput("ls-tree", "--name-only", "master")
	require.NoError(t, err)
	require.Contains(t, masterFiles, "fix.txt")
	require.NotContains(t, masterFiles, "develop.txt")

	developFiles, err := s.Scene.Repo.RunGitCommandAndGetOutput("ls-tree", "--name-only", "develop")
	require.NoError(t, err)
	require.Contains(t, developFiles, "fix.txt")
	require.Contains(t, developFiles, "develop.txt")
}

func TestFinishConflictAndContinue(t *testing.T) {
	s := scenario.NewScenario(t, nil)

	_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "clash")
	require.NoError(t, err)
	s.WithCommit("feature side", "feature side")

	s.OnBranch("develop")
	s.WithCommit("develop side", "develop side")
	s.OnBranch("feature/clash")

	err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
		Kind: engine.KindFeature,
	})
	require.ErrorIs(t, err, gfmerrors.ErrMergeConflict)

	// The plan survived for gfm continue
	require.True(t, config.HasContinuationState(s.Context.RepoRoot))

	// Finishing something else while a finish is pending is refused
	err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
		Kind: engine.KindFeature,
		Name: "clash",
	})
	require.Error(t, err)

	// Resolve the conflict and conclude the merge
	require.NoError(t, s.Scene.Repo.CreateChange("resolved"))
	require.NoError(t, s.Scene.Repo.RunGitCommand("add", "-A"))
	require.NoError(t, s.Scene.Repo.RunGitCommand("commit", "--no-edit"))

	err = actions.ContinueAction(context.Background(), s.Context)
	require.NoError(t, err)

	require.False(t, config.HasContinuationState(s.Context.RepoRoot))
	require.False(t, s.Scene.Repo.BranchExists("feature/clash"))

	current, err := s.Scene.Repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "develop", current)
}

func TestContinueGuards(t *testing.T) {
	t.Run("errors with nothing to continue", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.ContinueAction(context.Background(), s.Context)
		require.ErrorIs(t, err, gfmerrors.ErrNoFinishInProgress)
	})

	t.Run("refuses while the merge is unresolved", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "stuck")
		require.NoError(t, err)
		s.WithCommit("feature side", "feature side")
		s.OnBranch("develop")
		s.WithCommit("develop side", "develop side")

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
			Name: "stuck",
		})
		require.ErrorIs(t, err, gfmerrors.ErrMergeConflict)

		err = actions.ContinueAction(context.Background(), s.Context)
		require.Error(t, err)
		require.Contains(t, err.Error(), "merge is still in progress")
	})
}

func TestAbort(t *testing.T) {
	t.Run("aborts the merge and clears the plan", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "clash")
		require.NoError(t, err)
		s.WithCommit("feature side", "feature side")
		s.OnBranch("develop")
		s.WithCommit("develop side", "develop side")

		err = actions.FinishAction(context.Background(), s.Context, actions.FinishOptions{
			Kind: engine.KindFeature,
			Name: "clash",
		})
		require.ErrorIs(t, err, gfmerrors.ErrMergeConflict)

		err = actions.AbortAction(context.Background(), s.Context)
		require.NoError(t, err)

		require.False(t, config.HasContinuationState(s.Context.RepoRoot))
		require.True(t, s.Scene.Repo.BranchExists("feature/clash"))

		// The worktree is clean again
		status, err := s.Scene.Repo.RunGitCommandAndGetOutput("status", "--porcelain")
		require.NoError(t, err)
		require.Empty(t, status)
	})

	t.Run("errors with nothing to abort", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.AbortAction(context.Background(), s.Context)
		require.ErrorIs(t, err, gfmerrors.ErrNoFinishInProgress)
	})
}

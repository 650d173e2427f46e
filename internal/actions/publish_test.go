package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/testhelpers"
	"gfm.dev/gfm/testhelpers/scenario"
)

func TestPublishAction(t *testing.T) {
	t.Run("pushes and opens a pull request", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		_, err := s.Scene.Repo.CreateBareRemote()
		require.NoError(t, err)

		_, err = s.Engine.StartBranch(context.Background(), engine.KindFeature, "ship")
		require.NoError(t, err)
		s.WithCommit("shipping", "add shipping", "ship.txt")

		mock := testhelpers.NewMockGitHubClient()
		s.Context.GitHubClient = mock

		err = actions.PublishAction(context.Background(), s.Context, actions.PublishOptions{
			Kind:     engine.KindFeature,
			CreatePR: true,
		})
		require.NoError(t, err)

		out, err := s.Scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin", "feature/ship")
		require.NoError(t, err)
		require.Contains(t, out, "feature/ship")

		require.Len(t, mock.CreatedPRs, 1)
		pr := mock.CreatedPRs[0]
		require.Equal(t, "ship", pr.Title)
		require.Equal(t, "feature/ship", pr.Head)
		require.Equal(t, "develop", pr.Base)
		require.Contains(t, pr.Body, "Test User")
	})

	t.Run("opens release pull requests as drafts into develop", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		_, err := s.Scene.Repo.CreateBareRemote()
		require.NoError(t, err)

		_, err = s.Engine.StartBranch(context.Background(), engine.KindRelease, "2.0.0")
		require.NoError(t, err)
		s.WithCommit("notes", "prepare 2.0.0", "changelog.txt")

		mock := testhelpers.NewMockGitHubClient()
		s.Context.GitHubClient = mock

		err = actions.PublishAction(context.Background(), s.Context, actions.PublishOptions{
			Kind:     engine.KindRelease,
			CreatePR: true,
			Draft:    true,
		})
		require.NoError(t, err)

		require.Len(t, mock.CreatedPRs, 1)
		require.Equal(t, "develop", mock.CreatedPRs[0].Base)
		require.True(t, mock.CreatedPRs[0].Draft)
	})

	t.Run("short-circuits when a pull request exists", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		_, err := s.Scene.Repo.CreateBareRemote()
		require.NoError(t, err)

		_, err = s.Engine.StartBranch(context.Background(), engine.KindFeature, "dup")
		require.NoError(t, err)
		s.WithCommit("dup", "dup work", "dup.txt")

		mock := testhelpers.NewMockGitHubClient().WithExistingPR("feature/dup", "develop")
		s.Context.GitHubClient = mock

		err = actions.PublishAction(context.Background(), s.Context, actions.PublishOptions{
			Kind:     engine.KindFeature,
			CreatePR: true,
		})
		require.NoError(t, err)
		require.Empty(t, mock.CreatedPRs)
	})

	t.Run("requires a GitHub client for a pull request", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		_, err := s.Scene.Repo.CreateBareRemote()
		require.NoError(t, err)

		_, err = s.Engine.StartBranch(context.Background(), engine.KindFeature, "noclient")
		require.NoError(t, err)
		s.WithCommit("noclient", "noclient work", "noclient.txt")

		err = actions.PublishAction(context.Background(), s.Context, actions.PublishOptions{
			Kind:     engine.KindFeature,
			CreatePR: true,
		})
		require.ErrorIs(t, err, gfmerrors.ErrNoGitHubClient)
	})

	t.Run("requires a remote", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "lonely")
		require.NoError(t, err)
		s.WithCommit("lonely", "lonely work", "lonely.txt")

		err = actions.PublishAction(context.Background(), s.Context, actions.PublishOptions{
			Kind: engine.KindFeature,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "no remote configured")
	})
}

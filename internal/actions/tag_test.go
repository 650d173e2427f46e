package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gfm.dev/gfm/internal/actions"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/testhelpers"
	"gfm.dev/gfm/testhelpers/scenario"
)

func TestTagAction(t *testing.T) {
	t.Run("applies the version prefix", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := actions.TagAction(context.Background(), s.Context, actions.TagOptions{
			Name: "1.0.0",
		})
		require.NoError(t, err)
		require.True(t, s.Scene.Repo.TagExists("v1.0.0"))
	})

	t.Run("accepts an already prefixed name", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := actions.TagAction(context.Background(), s.Context, actions.TagOptions{
			Name: "v2.0.0",
		})
		require.NoError(t, err)
		require.True(t, s.Scene.Repo.TagExists("v2.0.0"))
		require.False(t, s.Scene.Repo.TagExists("vv2.0.0"))
	})

	t.Run("annotates when given a message", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := actions.TagAction(context.Background(), s.Context, actions.TagOptions{
			Name:    "3.0.0",
			Message: "third release",
		})
		require.NoError(t, err)

		out, err := s.Scene.Repo.RunGitCommandAndGetOutput("tag", "-l", "-n1", "v3.0.0")
		require.NoError(t, err)
		require.Contains(t, out, "third release")
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		opts := actions.TagOptions{Name: "1.0.0"}
		require.NoError(t, actions.TagAction(context.Background(), s.Context, opts))

		err := actions.TagAction(context.Background(), s.Context, opts)
		require.ErrorIs(t, err, gfmerrors.ErrTagExists)
	})

	t.Run("requires a name", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.TagAction(context.Background(), s.Context, actions.TagOptions{})
		require.Error(t, err)
	})
}

func TestTagListAction(t *testing.T) {
	t.Run("handles an empty repository", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		require.NoError(t, actions.TagListAction(context.Background(), s.Context))
	})

	t.Run("lists existing version tags", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		require.NoError(t, actions.TagAction(context.Background(), s.Context, actions.TagOptions{
			Name:    "1.0.0",
			Message: "first release",
		}))

		require.NoError(t, actions.TagListAction(context.Background(), s.Context))
	})
}

func TestStatusAction(t *testing.T) {
	t.Run("reports from a topic branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		require.NoError(t, s.Scene.Repo.CreateAndCheckoutBranch("feature/login"))
		require.NoError(t, s.Engine.Refresh())

		require.NoError(t, actions.StatusAction(context.Background(), s.Context))
	})

	t.Run("reports an unmerged topic branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)
		require.NoError(t, s.Scene.Repo.CreateAndCheckoutBranch("feature/diverged"))
		require.NoError(t, s.Scene.Repo.CreateChangeAndCommit("work", "diverging work", "diverged.txt"))
		require.NoError(t, s.Engine.Refresh())

		require.NoError(t, actions.StatusAction(context.Background(), s.Context))
	})

	t.Run("reports from develop", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		require.NoError(t, actions.StatusAction(context.Background(), s.Context))
	})
}

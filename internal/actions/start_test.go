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

func TestStartAction(t *testing.T) {
	t.Run("starts a feature branch", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		err := actions.StartAction(context.Background(), s.Context, actions.StartOptions{
			Kind: engine.KindFeature,
			Name: "user-auth",
		})
		require.NoError(t, err)

		current, err := s.Scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feature/user-auth", current)
	})

	t.Run("requires a name", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.StartAction(context.Background(), s.Context, actions.StartOptions{
			Kind: engine.KindFeature,
		})
		require.Error(t, err)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		opts := actions.StartOptions{Kind: engine.KindRelease, Name: "2.0.0"}
		require.NoError(t, actions.StartAction(context.Background(), s.Context, opts))

		err := actions.StartAction(context.Background(), s.Context, opts)
		require.ErrorIs(t, err, gfmerrors.ErrBranchExists)
	})
}

func TestKindFromString(t *testing.T) {
	kind, err := actions.KindFromString("feature")
	require.NoError(t, err)
	require.Equal(t, engine.KindFeature, kind)

	kind, err = actions.KindFromString("release")
	require.NoError(t, err)
	require.Equal(t, engine.KindRelease, kind)

	kind, err = actions.KindFromString("hotfix")
	require.NoError(t, err)
	require.Equal(t, engine.KindHotfix, kind)

	_, err = actions.KindFromString("trunk")
	require.Error(t, err)
}

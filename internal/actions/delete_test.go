package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gfm.dev/gfm/internal/actions"
	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/testhelpers/scenario"
)

func TestDeleteAction(t *testing.T) {
	t.Run("deletes a merged branch", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "done")
		require.NoError(t, err)
		s.OnBranch("develop")

		err = actions.DeleteAction(context.Background(), s.Context, actions.DeleteOptions{
			Kind: engine.KindFeature,
			Name: "done",
		})
		require.NoError(t, err)
		require.False(t, s.Scene.Repo.BranchExists("feature/done"))
	})

	t.Run("steps off the branch before deleting", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "here")
		require.NoError(t, err)

		err = actions.DeleteAction(context.Background(), s.Context, actions.DeleteOptions{
			Kind: engine.KindFeature,
			Name: "here",
		})
		require.NoError(t, err)

		current, err := s.Scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "develop", current)
		require.False(t, s.Scene.Repo.BranchExists("feature/here"))
	})

	t.Run("refuses an unmerged branch without force", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "wip")
		require.NoError(t, err)
		s.WithCommit("wip work", "wip work", "wip.txt")
		s.OnBranch("develop")

		// Non-interactive, so there is no confirmation prompt to fall back to
		err = actions.DeleteAction(context.Background(), s.Context, actions.DeleteOptions{
			Kind: engine.KindFeature,
			Name: "wip",
		})
		require.Error(t, err)
		require.True(t, s.Scene.Repo.BranchExists("feature/wip"))

		err = actions.DeleteAction(context.Background(), s.Context, actions.DeleteOptions{
			Kind:  engine.KindFeature,
			Name:  "wip",
			Force: true,
		})
		require.NoError(t, err)
		require.False(t, s.Scene.Repo.BranchExists("feature/wip"))
	})

	t.Run("errors on a missing branch", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.DeleteAction(context.Background(), s.Context, actions.DeleteOptions{
			Kind: engine.KindFeature,
			Name: "ghost",
		})
		require.ErrorIs(t, err, gfmerrors.ErrBranchNotFound)
	})
}

func TestCheckoutAction(t *testing.T) {
	t.Run("checks out by short name", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		_, err := s.Engine.StartBranch(context.Background(), engine.KindFeature, "target")
		require.NoError(t, err)
		s.OnBranch("develop")

		err = actions.CheckoutAction(context.Background(), s.Context, actions.CheckoutOptions{
			Kind: engine.KindFeature,
			Name: "target",
		})
		require.NoError(t, err)

		current, err := s.Scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feature/target", current)
	})

	t.Run("errors without a name when not interactive", func(t *testing.T) {
		s := scenario.NewScenario(t, nil)

		err := actions.CheckoutAction(context.Background(), s.Context, actions.CheckoutOptions{
			Kind: engine.KindFeature,
		})
		require.Error(t, err)
	})
}

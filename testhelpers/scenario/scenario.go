// Package scenario provides a high-level test scenario that combines a Scene,
// an Engine, and a runtime Context to provide a terse API for integration tests.
package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/testhelpers"
)

// Scenario combines a Scene, an Engine, and a runtime Context
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Engine  engine.Engine
	Context *runtime.Context
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: not safe for parallel tests, it uses t.Setenv and chdir via NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	// Force non-interactive mode for tests
	t.Setenv("GFM_NON_INTERACTIVE", "true")

	scene := testhelpers.NewScene(t, setup)

	eng, err := engine.NewEngine(scene.Dir)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(scene.Dir)
	require.NoError(t, err)

	return &Scenario{
		T:       t,
		Scene:   scene,
		Engine:  eng,
		Context: runtime.NewContext(eng, cfg, scene.Dir),
	}
}

// OnBranch checks out an existing branch
func (s *Scenario) OnBranch(name string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CheckoutBranch(name))
	require.NoError(s.T, s.Engine.Refresh())
	return s
}

// WithCommit creates a commit on the current branch
func (s *Scenario) WithCommit(content, message string, fileName ...string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateChangeAndCommit(content, message, fileName...))
	return s
}

// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	stdcontext "context"
	"fmt"

	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/engine"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/tui"
)

// Context provides access to engine, config, and output for commands
type Context struct {
	Engine       engine.Engine
	Config       *config.RepoConfig
	Splog        *tui.Splog
	RepoRoot     string
	GitHubClient git.GitHubClient
}

// NewContext creates a new context with the given engine and config
func NewContext(eng engine.Engine, cfg *config.RepoConfig, repoRoot string) *Context {
	return &Context{
		Engine:   eng,
		Config:   cfg,
		Splog:    tui.NewSplog(),
		RepoRoot: repoRoot,
	}
}

// GetContext builds the runtime context for the current repository.
// It requires gfm to have been initialized.
func GetContext(ctx stdcontext.Context) (*Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	cfg, err := config.LoadConfig(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.IsInitialized() {
		return nil, fmt.Errorf("gfm not initialized. Run 'gfm init' first")
	}

	eng, err := engine.NewEngine(repoRoot)
	if err != nil {
		return nil, err
	}

	rctx := NewContext(eng, cfg, repoRoot)

	// GitHub access is optional; commands that need it check for nil
	if ghClient, err := git.NewRealGitHubClient(ctx); err == nil {
		rctx.GitHubClient = ghClient
	}

	return rctx, nil
}

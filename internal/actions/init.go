package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/tui"
	"gfm.dev/gfm/internal/utils"
)

// InitOptions holds options for the init action
type InitOptions struct {
	Master      string
	Develop     string
	Defaults    bool
	Reinit      bool
	Interactive bool
}

// InitAction initializes gfm in the current repository: records the
// production and integration branch names and creates the integration
// branch when it does not exist yet.
func InitAction(ctx context.Context, opts InitOptions, splog *tui.Splog) error {
	if err := git.InitDefaultRepo(); err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return fmt.Errorf("failed to get repo root: %w", err)
	}

	cfg, err := config.LoadConfig(repoRoot)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.IsInitialized() && !opts.Reinit {
		splog.Info("gfm already initialized (master: %s, develop: %s)",
			tui.ColorBranchName(cfg.GetMaster(), false),
			tui.ColorBranchName(cfg.GetDevelop(), false))
		return nil
	}

	branchNames, err := git.GetAllBranchNames()
	if err != nil {
		return fmt.Errorf("failed to get branches: %w", err)
	}
	if len(branchNames) == 0 {
		return fmt.Errorf("no branches found in current repo; create your first commit and re-run gfm init")
	}

	master := opts.Master
	if master == "" {
		master = inferMaster(branchNames)
		if opts.Interactive && !opts.Defaults && tui.IsTTY() {
			// Production branch must already exist, so pick from the list
			master, err = tui.PromptSelect("Branch name for production releases:", branchNames)
			if err != nil {
				return err
			}
		}
	}
	if !utils.ContainsString(branchNames, master) {
		return fmt.Errorf("branch '%s' not found; gfm needs an existing production branch", master)
	}

	develop := opts.Develop
	if develop == "" {
		develop = config.DefaultDevelop
		if opts.Interactive && !opts.Defaults && tui.IsTTY() {
			develop, err = tui.PromptInput("Branch name for development:", develop)
			if err != nil {
				return err
			}
		}
	}
	if develop == master {
		return fmt.Errorf("production and development branches must differ")
	}

	cfg.SetMaster(master)
	cfg.SetDevelop(develop)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if !utils.ContainsString(branchNames, develop) {
		if err := git.CreateBranch(ctx, develop, master); err != nil {
			return fmt.Errorf("failed to create %s: %w", develop, err)
		}
		splog.Info("Created branch %s from %s",
			tui.ColorBranchName(develop, false),
			tui.ColorBranchName(master, false))
	}

	splog.Info("gfm initialized (master: %s, develop: %s)",
		tui.ColorBranchName(master, false),
		tui.ColorBranchName(develop, false))

	return nil
}

// inferMaster picks the most likely production branch from existing branches
func inferMaster(branchNames []string) string {
	for _, candidate := range []string{"master", "main"} {
		if utils.ContainsString(branchNames, candidate) {
			return candidate
		}
	}
	return branchNames[0]
}

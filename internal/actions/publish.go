package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// PublishOptions holds options for publishing a gitflow branch
type PublishOptions struct {
	Kind engine.BranchKind
	// Name is the short or full branch name; empty means the current branch
	Name string
	// CreatePR opens a pull request into the branch's base after pushing
	CreatePR bool
	// Draft opens the pull request as a draft
	Draft bool
}

// PublishAction pushes a topic branch to the remote with an upstream and
// optionally opens a pull request into its base branch.
func PublishAction(ctx context.Context, rctx *runtime.Context, opts PublishOptions) error {
	eng := rctx.Engine

	branchName, err := resolveTopicBranch(rctx, opts.Kind, opts.Name)
	if err != nil {
		return err
	}

	if !git.HasRemote() {
		return fmt.Errorf("no remote configured; add one with 'git remote add %s <url>'", eng.Remote())
	}

	if err := eng.PushBranch(ctx, branchName, true); err != nil {
		return err
	}
	rctx.Splog.Info("Pushed %s to %s",
		tui.ColorBranchName(branchName, false), eng.Remote())

	if !opts.CreatePR {
		return nil
	}

	if rctx.GitHubClient == nil {
		return fmt.Errorf("%w: cannot open a pull request", gfmerrors.ErrNoGitHubClient)
	}

	base := eng.BaseFor(opts.Kind)

	existing, err := rctx.GitHubClient.GetPullRequestByBranch(ctx, branchName)
	if err != nil {
		return err
	}
	if existing != nil {
		rctx.Splog.Info("Pull request already open: %s", existing.HTMLURL)
		return nil
	}

	body := ""
	if author, err := git.GetUserName(ctx); err == nil && author != "" {
		body = fmt.Sprintf("Finishing `%s` will merge it into `%s`.\n\nOpened by %s via gfm.", branchName, base, author)
	}

	pr, err := rctx.GitHubClient.CreatePullRequest(ctx, git.CreatePROptions{
		Title: eng.ShortName(branchName),
		Head:  branchName,
		Base:  base,
		Body:  body,
		Draft: opts.Draft,
	})
	if err != nil {
		return fmt.Errorf("failed to open pull request: %w", err)
	}

	rctx.Splog.Info("Opened pull request #%d into %s: %s",
		pr.Number, tui.ColorBranchName(base, false), pr.HTMLURL)
	return nil
}

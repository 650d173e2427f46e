package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/config"
	"gfm.dev/gfm/internal/engine"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// FinishOptions holds options for finishing a gitflow branch
type FinishOptions struct {
	Kind engine.BranchKind
	// Name is the short or full branch name; empty means the current branch
	Name string
	// Message is the tag annotation for release/hotfix finishes
	Message string
	// Keep leaves the topic branch in place after merging
	Keep bool
	// ForceDelete deletes the branch even if git considers it unmerged
	ForceDelete bool
	// Push pushes the affected branches (and tags) after finishing
	Push bool
	// GitHubRelease publishes a GitHub release from the new tag
	GitHubRelease bool
}

// FinishAction merges a topic branch back per the gitflow model:
// features merge into develop; releases and hotfixes merge into master,
// get a version tag, and back-merge into develop. The topic branch is
// deleted unless Keep is set. A conflicted merge persists the remaining
// steps for `gfm continue`.
func FinishAction(ctx context.Context, rctx *runtime.Context, opts FinishOptions) error {
	if err := requireNoFinishInProgress(rctx); err != nil {
		return err
	}
	if err := requireCleanWorktree(ctx); err != nil {
		return err
	}

	branchName, err := resolveTopicBranch(rctx, opts.Kind, opts.Name)
	if err != nil {
		return err
	}

	state := planFinish(rctx.Engine, opts, branchName)

	if err := executeFinishSteps(ctx, rctx, state); err != nil {
		return err
	}

	return finalizeFinish(ctx, rctx, state)
}

// resolveTopicBranch resolves an optional short name to an existing branch
// of the given kind, falling back to the current branch.
func resolveTopicBranch(rctx *runtime.Context, kind engine.BranchKind, name string) (string, error) {
	eng := rctx.Engine

	if name == "" {
		current := eng.CurrentBranch()
		if current == "" {
			return "", gfmerrors.ErrNotOnBranch
		}
		if eng.ClassifyBranch(current) != kind {
			return "", fmt.Errorf("current branch %s is not a %s branch; pass a name", current, kind)
		}
		return current, nil
	}

	branchName := eng.QualifyBranchName(kind, name)
	if !eng.BranchExists(branchName) {
		return "", gfmerrors.NewBranchNotFoundError(branchName)
	}
	return branchName, nil
}

// planFinish lays out the ordered steps of a finish so that an interrupted
// run can resume from where it stopped.
func planFinish(eng engine.Engine, opts FinishOptions, branchName string) *config.ContinuationState {
	master := eng.Master()
	develop := eng.Develop()
	short := eng.ShortName(branchName)

	state := &config.ContinuationState{
		Command: fmt.Sprintf("%s finish", opts.Kind),
		Branch:  branchName,
		Push:    opts.Push,
		Remote:  eng.Remote(),
	}

	var steps []config.FinishStep

	if opts.Kind == engine.KindRelease || opts.Kind == engine.KindHotfix {
		tag := eng.VersionTag(short)
		message := opts.Message
		if message == "" {
			message = fmt.Sprintf("%s %s", opts.Kind, short)
		}
		state.Tag = tag
		state.GitHubRelease = opts.GitHubRelease

		steps = append(steps,
			config.FinishStep{Kind: "merge", Source: branchName, Target: master,
				Message: fmt.Sprintf("Merge branch '%s'", branchName)},
			config.FinishStep{Kind: "tag", Target: master, Tag: tag, Message: message},
			config.FinishStep{Kind: "merge", Source: branchName, Target: develop,
				Message: fmt.Sprintf("Merge branch '%s' into %s", branchName, develop)},
		)
	} else {
		steps = append(steps,
			config.FinishStep{Kind: "merge", Source: branchName, Target: develop,
				Message: fmt.Sprintf("Merge branch '%s' into %s", branchName, develop)},
		)
	}

	if !opts.Keep {
		state.DeleteOnRemote = opts.Push
		steps = append(steps, config.FinishStep{
			Kind: "delete", Source: branchName, Target: develop, Force: opts.ForceDelete,
		})
	} else {
		steps = append(steps, config.FinishStep{Kind: "checkout", Target: develop})
	}

	state.RemainingSteps = steps
	return state
}

// executeFinishSteps runs the remaining steps in order. On a merge conflict
// it persists the rest of the plan and returns ErrMergeConflict.
func executeFinishSteps(ctx context.Context, rctx *runtime.Context, state *config.ContinuationState) error {
	eng := rctx.Engine

	for i, step := range state.RemainingSteps {
		switch step.Kind {
		case "merge":
			result, err := eng.MergeBranch(ctx, step.Source, step.Target, step.Message)
			if err != nil {
				return err
			}
			switch result {
			case engine.MergeConflicted:
				state.RemainingSteps = state.RemainingSteps[i+1:]
				if err := config.PersistContinuationState(rctx.RepoRoot, state); err != nil {
					return fmt.Errorf("failed to persist continuation: %w", err)
				}
				printConflictStatus(ctx, rctx, step)
				return gfmerrors.NewMergeConflictError(step.Source, step.Target)
			case engine.MergeUnneeded:
				rctx.Splog.Info("%s already contains %s",
					tui.ColorBranchName(step.Target, false),
					tui.ColorBranchName(step.Source, false))
			default:
				rctx.Splog.Info("Merged %s into %s",
					tui.ColorBranchName(step.Source, false),
					tui.ColorBranchName(step.Target, false))
			}

		case "tag":
			if err := eng.CheckoutBranch(ctx, step.Target); err != nil {
				return err
			}
			if err := eng.TagRelease(ctx, step.Tag, step.Message); err != nil {
				return err
			}
			rctx.Splog.Info("Tagged %s as %s",
				tui.ColorBranchName(step.Target, false), tui.ColorTag(step.Tag))

		case "delete":
			if err := eng.CheckoutBranch(ctx, step.Target); err != nil {
				return err
			}
			if err := eng.DeleteBranch(ctx, step.Source, step.Force); err != nil {
				return err
			}
			rctx.Splog.Info("Deleted branch %s", step.Source)

		case "checkout":
			if err := eng.CheckoutBranch(ctx, step.Target); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unknown finish step %q", step.Kind)
		}
	}

	return nil
}

// finalizeFinish pushes branches/tags and publishes the GitHub release, then
// clears any continuation state.
func finalizeFinish(ctx context.Context, rctx *runtime.Context, state *config.ContinuationState) error {
	eng := rctx.Engine

	if state.Push {
		targets := []string{eng.Develop()}
		if state.Tag != "" {
			targets = append([]string{eng.Master()}, targets...)
		}
		for _, target := range targets {
			if err := eng.PushBranch(ctx, target, false); err != nil {
				return err
			}
			rctx.Splog.Info("Pushed %s to %s", target, state.Remote)
		}
		if state.Tag != "" {
			if err := eng.PushTags(ctx); err != nil {
				return err
			}
			rctx.Splog.Info("Pushed tags to %s", state.Remote)
		}
		if state.DeleteOnRemote {
			// Best effort: the topic branch may never have been published
			if err := git.DeleteRemoteBranch(ctx, state.Remote, state.Branch); err != nil {
				rctx.Splog.Debug("no remote branch %s to delete: %v", state.Branch, err)
			} else {
				rctx.Splog.Info("Deleted %s on %s", state.Branch, state.Remote)
			}
		}
	}

	if state.GitHubRelease && state.Tag != "" {
		if rctx.GitHubClient == nil {
			rctx.Splog.Warn("No GitHub client available; skipping GitHub release for %s", state.Tag)
		} else {
			release, err := rctx.GitHubClient.CreateRelease(ctx, git.CreateReleaseOptions{
				TagName: state.Tag,
				Name:    state.Tag,
			})
			if err != nil {
				return fmt.Errorf("failed to publish GitHub release: %w", err)
			}
			rctx.Splog.Info("Published GitHub release %s: %s", release.TagName, release.HTMLURL)
		}
	}

	if err := config.ClearContinuationState(rctx.RepoRoot); err != nil {
		return err
	}

	rctx.Splog.Info("Finished %s", tui.ColorBranchName(state.Branch, false))
	return nil
}

// printConflictStatus tells the user how to proceed after a conflicted merge
func printConflictStatus(ctx context.Context, rctx *runtime.Context, step config.FinishStep) {
	rctx.Splog.Warn("Merge of %s into %s hit conflicts.", step.Source, step.Target)

	files, err := git.GetUnmergedFiles(ctx)
	if err == nil && len(files) > 0 {
		rctx.Splog.Info("Conflicted files:")
		for _, file := range files {
			rctx.Splog.Info("  %s", tui.ColorError(file))
		}
	}

	rctx.Splog.Newline()
	rctx.Splog.Info("Resolve the conflicts, conclude the merge with 'git commit',")
	rctx.Splog.Info("then run 'gfm continue' (or 'gfm abort' to give up).")
}

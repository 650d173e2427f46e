package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gfm.dev/gfm/internal/config"
	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/utils"
)

// engineImpl implements Engine over a git.Runner and the repo config
type engineImpl struct {
	repoRoot      string
	cfg           *config.RepoConfig
	runner        git.Runner
	currentBranch string
	branches      []string
	mu            sync.RWMutex
}

// NewEngine creates a new engine for the repository at repoRoot
func NewEngine(repoRoot string) (Engine, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("failed to initialize git repository: %w", err)
	}

	cfg, err := config.LoadConfig(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewEngineWithRunner(repoRoot, git.NewRealRunner(), cfg)
}

// NewEngineWithRunner creates an engine with an explicit runner and config,
// skipping the default repository bootstrapping done by NewEngine.
func NewEngineWithRunner(repoRoot string, runner git.Runner, cfg *config.RepoConfig) (Engine, error) {
	e := &engineImpl{
		repoRoot: repoRoot,
		cfg:      cfg,
		runner:   runner,
	}

	if err := e.Refresh(); err != nil {
		return nil, fmt.Errorf("failed to load branch state: %w", err)
	}

	return e, nil
}

// Refresh re-reads branch names and the current branch from git
func (e *engineImpl) Refresh() error {
	branches, err := e.runner.GetAllBranchNames()
	if err != nil {
		return err
	}

	// Not being on a branch (detached HEAD) is fine for read-only queries
	current, err := e.runner.GetCurrentBranch()
	if err != nil {
		current = ""
	}

	e.mu.Lock()
	e.branches = branches
	e.currentBranch = current
	e.mu.Unlock()
	return nil
}

func (e *engineImpl) AllBranchNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.branches
}

func (e *engineImpl) CurrentBranch() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentBranch
}

func (e *engineImpl) Master() string {
	return e.cfg.GetMaster()
}

func (e *engineImpl) Develop() string {
	return e.cfg.GetDevelop()
}

func (e *engineImpl) Remote() string {
	return e.cfg.GetRemote()
}

// ClassifyBranch returns the gitflow kind of a branch name
func (e *engineImpl) ClassifyBranch(branchName string) BranchKind {
	switch {
	case branchName == e.Master():
		return KindMaster
	case branchName == e.Develop():
		return KindDevelop
	case strings.HasPrefix(branchName, e.cfg.GetFeaturePrefix()):
		return KindFeature
	case strings.HasPrefix(branchName, e.cfg.GetReleasePrefix()):
		return KindRelease
	case strings.HasPrefix(branchName, e.cfg.GetHotfixPrefix()):
		return KindHotfix
	default:
		return KindOther
	}
}

func (e *engineImpl) BranchExists(branchName string) bool {
	return e.runner.BranchExists(branchName)
}

// BaseFor returns the branch a gitflow kind is cut from. Features and
// releases base on develop, hotfixes on master.
func (e *engineImpl) BaseFor(kind BranchKind) string {
	if kind == KindHotfix {
		return e.Master()
	}
	return e.Develop()
}

// QualifyBranchName prepends the kind's prefix unless the name already
// carries it, so `feature start feature/x` and `feature start x` agree.
func (e *engineImpl) QualifyBranchName(kind BranchKind, name string) string {
	prefix := e.prefixFor(kind)
	if prefix == "" {
		return utils.SanitizeBranchName(name)
	}
	name = strings.TrimPrefix(name, prefix)
	return prefix + utils.SanitizeBranchName(name)
}

// ShortName strips the gitflow prefix from a branch name
func (e *engineImpl) ShortName(branchName string) string {
	prefix := e.prefixFor(e.ClassifyBranch(branchName))
	return strings.TrimPrefix(branchName, prefix)
}

// VersionTag returns the tag name for a release or hotfix version
func (e *engineImpl) VersionTag(version string) string {
	return e.cfg.GetVersionPrefix() + version
}

func (e *engineImpl) prefixFor(kind BranchKind) string {
	switch kind {
	case KindFeature:
		return e.cfg.GetFeaturePrefix()
	case KindRelease:
		return e.cfg.GetReleasePrefix()
	case KindHotfix:
		return e.cfg.GetHotfixPrefix()
	default:
		return ""
	}
}

// ListBranches returns info for all branches of the given kind
func (e *engineImpl) ListBranches(kind BranchKind) ([]BranchInfo, error) {
	if err := e.Refresh(); err != nil {
		return nil, err
	}

	base := e.BaseFor(kind)
	current := e.CurrentBranch()

	var infos []BranchInfo
	for _, name := range e.AllBranchNames() {
		if e.ClassifyBranch(name) != kind {
			continue
		}

		info := BranchInfo{
			Name:      name,
			ShortName: e.ShortName(name),
			Kind:      kind,
			IsCurrent: name == current,
		}

		if merged, err := e.IsMergedInto(name, base); err == nil {
			info.MergedIntoBase = merged
		}
		if date, err := e.runner.GetCommitDate(name); err == nil {
			info.LastCommitDate = date
		}
		if subject, err := e.runner.GetCommitSubject(name); err == nil {
			info.Subject = subject
		}

		infos = append(infos, info)
	}

	return infos, nil
}

func (e *engineImpl) GetCommitDate(branchName string) (time.Time, error) {
	return e.runner.GetCommitDate(branchName)
}

func (e *engineImpl) GetRevision(branchName string) (string, error) {
	return e.runner.GetRevision(branchName)
}

func (e *engineImpl) MergeBase(rev1, rev2 string) (string, error) {
	return e.runner.GetMergeBase(rev1, rev2)
}

func (e *engineImpl) IsMergedInto(branchName, target string) (bool, error) {
	return e.runner.IsAncestor(branchName, target)
}

// ListVersionTags returns the tags carrying the configured version prefix
func (e *engineImpl) ListVersionTags() ([]string, error) {
	tags, err := e.runner.ListTags()
	if err != nil {
		return nil, err
	}

	prefix := e.cfg.GetVersionPrefix()
	if prefix == "" {
		return tags, nil
	}

	versions := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.HasPrefix(tag, prefix) {
			versions = append(versions, tag)
		}
	}
	return versions, nil
}

func (e *engineImpl) TagExists(tagName string) bool {
	return e.runner.TagExists(tagName)
}

// StartBranch creates and checks out a new gitflow branch of the given kind.
// Returns the fully qualified branch name.
func (e *engineImpl) StartBranch(ctx context.Context, kind BranchKind, name string) (string, error) {
	if kind != KindFeature && kind != KindRelease && kind != KindHotfix {
		return "", fmt.Errorf("cannot start a %s branch", kind)
	}

	branchName := e.QualifyBranchName(kind, name)
	if e.BranchExists(branchName) {
		return "", gfmerrors.NewBranchExistsError(branchName)
	}

	base := e.BaseFor(kind)
	if !e.BranchExists(base) {
		return "", gfmerrors.NewBranchNotFoundError(base)
	}

	// Releases and hotfixes produce a version tag on finish; refuse to start
	// one whose tag already exists.
	if kind == KindRelease || kind == KindHotfix {
		tag := e.VersionTag(e.ShortName(branchName))
		if e.TagExists(tag) {
			return "", fmt.Errorf("tag %s: %w", tag, gfmerrors.ErrTagExists)
		}
	}

	if err := e.runner.CreateAndCheckoutBranch(ctx, branchName, base); err != nil {
		return "", err
	}

	if err := e.Refresh(); err != nil {
		return "", err
	}
	return branchName, nil
}

// MergeBranch merges source into target with --no-ff, checking target out
// first. A conflicted merge returns MergeConflicted with a nil error; the
// caller decides how to persist and resume.
func (e *engineImpl) MergeBranch(ctx context.Context, source, target, message string) (MergeResult, error) {
	if !e.BranchExists(source) {
		return MergeDone, gfmerrors.NewBranchNotFoundError(source)
	}
	if !e.BranchExists(target) {
		return MergeDone, gfmerrors.NewBranchNotFoundError(target)
	}

	merged, err := e.IsMergedInto(source, target)
	if err != nil {
		return MergeDone, err
	}
	if merged {
		return MergeUnneeded, nil
	}

	if err := e.runner.CheckoutBranch(ctx, target); err != nil {
		return MergeDone, err
	}
	_ = e.Refresh()

	if err := e.runner.Merge(ctx, source, true, message); err != nil {
		if errors.Is(err, gfmerrors.ErrMergeConflict) {
			return MergeConflicted, nil
		}
		return MergeDone, err
	}

	return MergeDone, nil
}

// TagRelease creates an annotated tag on the current commit
func (e *engineImpl) TagRelease(ctx context.Context, tagName, message string) error {
	if e.TagExists(tagName) {
		return fmt.Errorf("tag %s: %w", tagName, gfmerrors.ErrTagExists)
	}
	if message == "" {
		message = tagName
	}
	return e.runner.CreateTag(ctx, tagName, message)
}

func (e *engineImpl) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	if !e.BranchExists(branchName) {
		return gfmerrors.NewBranchNotFoundError(branchName)
	}
	if branchName == e.Master() || branchName == e.Develop() {
		return fmt.Errorf("refusing to delete %s", branchName)
	}
	if err := e.runner.DeleteBranch(ctx, branchName, force); err != nil {
		return err
	}
	return e.Refresh()
}

func (e *engineImpl) CheckoutBranch(ctx context.Context, branchName string) error {
	if !e.BranchExists(branchName) {
		return gfmerrors.NewBranchNotFoundError(branchName)
	}
	if err := e.runner.CheckoutBranch(ctx, branchName); err != nil {
		return err
	}
	return e.Refresh()
}

func (e *engineImpl) PushBranch(ctx context.Context, branchName string, setUpstream bool) error {
	return e.runner.PushBranch(ctx, e.Remote(), branchName, setUpstream)
}

func (e *engineImpl) PushTags(ctx context.Context) error {
	return e.runner.PushTags(ctx, e.Remote())
}

package engine

import "time"

// BranchKind classifies a branch within the gitflow model
type BranchKind int

const (
	// KindOther is a branch outside the gitflow naming scheme
	KindOther BranchKind = iota
	// KindMaster is the production branch
	KindMaster
	// KindDevelop is the integration branch
	KindDevelop
	// KindFeature is a feature branch cut from develop
	KindFeature
	// KindRelease is a release branch cut from develop
	KindRelease
	// KindHotfix is a hotfix branch cut from master
	KindHotfix
)

// String returns the lowercase name of the kind
func (k BranchKind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindDevelop:
		return "develop"
	case KindFeature:
		return "feature"
	case KindRelease:
		return "release"
	case KindHotfix:
		return "hotfix"
	default:
		return "other"
	}
}

// BranchInfo describes a gitflow branch
type BranchInfo struct {
	Name      string
	ShortName string // name with the kind prefix stripped
	Kind      BranchKind
	IsCurrent bool
	// MergedIntoBase reports whether the branch tip is already contained in
	// its base branch.
	MergedIntoBase bool
	LastCommitDate time.Time
	Subject        string
}

// MergeResult represents the outcome of a merge step
type MergeResult int

const (
	// MergeDone indicates the merge completed
	MergeDone MergeResult = iota
	// MergeUnneeded indicates the target already contained the source
	MergeUnneeded
	// MergeConflicted indicates the merge stopped on conflicts
	MergeConflicted
)

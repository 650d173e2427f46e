package engine

import (
	"context"
	"time"
)

// BranchReader provides read-only access to gitflow branch information.
// Thread-safe: all methods are safe for concurrent use.
type BranchReader interface {
	// State queries
	AllBranchNames() []string
	CurrentBranch() string
	Master() string
	Develop() string
	ClassifyBranch(branchName string) BranchKind
	BranchExists(branchName string) bool
	BaseFor(kind BranchKind) string

	// Naming
	QualifyBranchName(kind BranchKind, name string) string
	ShortName(branchName string) string
	VersionTag(version string) string

	// Listings
	ListBranches(kind BranchKind) ([]BranchInfo, error)
	ListVersionTags() ([]string, error)

	// Commit information
	GetCommitDate(branchName string) (time.Time, error)
	GetRevision(branchName string) (string, error)
	MergeBase(rev1, rev2 string) (string, error)
	IsMergedInto(branchName, target string) (bool, error)
	TagExists(tagName string) bool
}

// BranchWriter provides gitflow branch lifecycle operations.
// Thread-safe: all methods are safe for concurrent use.
type BranchWriter interface {
	StartBranch(ctx context.Context, kind BranchKind, name string) (string, error)
	MergeBranch(ctx context.Context, source, target string, message string) (MergeResult, error)
	TagRelease(ctx context.Context, tagName, message string) error
	DeleteBranch(ctx context.Context, branchName string, force bool) error
	CheckoutBranch(ctx context.Context, branchName string) error
	Refresh() error
}

// RemoteManager provides operations against the configured remote.
// Thread-safe: all methods are safe for concurrent use.
type RemoteManager interface {
	Remote() string
	PushBranch(ctx context.Context, branchName string, setUpstream bool) error
	PushTags(ctx context.Context) error
}

// Engine is the core interface for gitflow state management.
// It composes BranchReader, BranchWriter, and RemoteManager.
type Engine interface {
	BranchReader
	BranchWriter
	RemoteManager
}

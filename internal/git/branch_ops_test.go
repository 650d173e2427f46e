package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/testhelpers"
)

func TestBranchOperations(t *testing.T) {
	t.Run("create checkout delete", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, git.InitDefaultRepo())

		err := git.CreateAndCheckoutBranch(context.Background(), "feature/x", "develop")
		require.NoError(t, err)

		current, err := git.GetCurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feature/x", current)

		require.True(t, git.BranchExists("feature/x"))
		require.False(t, git.BranchExists("feature/y"))

		err = git.CheckoutBranch(context.Background(), "develop")
		require.NoError(t, err)

		err = git.DeleteBranch(context.Background(), "feature/x", false)
		require.NoError(t, err)
		require.False(t, scene.Repo.BranchExists("feature/x"))
	})

	t.Run("delete unmerged needs force", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/wip"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("wip", "wip", "wip.txt"))
		require.NoError(t, scene.Repo.CheckoutBranch("develop"))

		err := git.DeleteBranch(context.Background(), "feature/wip", false)
		require.Error(t, err)
		require.True(t, scene.Repo.BranchExists("feature/wip"))

		err = git.DeleteBranch(context.Background(), "feature/wip", true)
		require.NoError(t, err)
		require.False(t, scene.Repo.BranchExists("feature/wip"))
	})

	t.Run("branch listing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, scene.Repo.CreateBranch("feature/a"))
		require.NoError(t, scene.Repo.CreateBranch("release/1.0.0"))
		require.NoError(t, git.InitDefaultRepo())

		names, err := git.GetAllBranchNames()
		require.NoError(t, err)
		require.Contains(t, names, "master")
		require.Contains(t, names, "develop")
		require.Contains(t, names, "feature/a")
		require.Contains(t, names, "release/1.0.0")
	})
}

func TestWorktreeState(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	dirty, err := git.HasUncommittedChanges(context.Background())
	require.NoError(t, err)
	require.False(t, dirty)

	// Modify a tracked file
	require.NoError(t, scene.Repo.CreateChange("changed", "test.txt"))

	dirty, err = git.HasUncommittedChanges(context.Background())
	require.NoError(t, err)
	require.True(t, dirty)

	require.False(t, git.MergeInProgress())
}

func TestMerge(t *testing.T) {
	t.Run("no-ff merge creates a merge commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/x"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("x", "x work", "x.txt"))
		require.NoError(t, scene.Repo.CheckoutBranch("develop"))

		err := git.Merge(context.Background(), "feature/x", true, "Merge branch 'feature/x' into develop")
		require.NoError(t, err)

		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
		require.NoError(t, err)
		require.Equal(t, "Merge branch 'feature/x' into develop", subject)
	})

	t.Run("conflict yields ErrMergeConflict", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/clash"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("ours", "ours"))
		require.NoError(t, scene.Repo.CheckoutBranch("develop"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("theirs", "theirs"))

		err := git.Merge(context.Background(), "feature/clash", true, "")
		require.ErrorIs(t, err, gfmerrors.ErrMergeConflict)

		require.True(t, git.MergeInProgress())

		files, err := git.GetUnmergedFiles(context.Background())
		require.NoError(t, err)
		require.Contains(t, files, "test.txt")

		require.NoError(t, git.MergeAbort(context.Background()))
		require.False(t, git.MergeInProgress())
	})
}

func TestTags(t *testing.T) {
	testhelpers.NewScene(t, nil)
	require.NoError(t, git.InitDefaultRepo())

	require.False(t, git.TagExists("v1.0.0"))

	err := git.CreateTag(context.Background(), "v1.0.0", "release 1.0.0")
	require.NoError(t, err)
	require.True(t, git.TagExists("v1.0.0"))

	tags, err := git.ListTags()
	require.NoError(t, err)
	require.Contains(t, tags, "v1.0.0")

	// Annotated tag carries the message
	message, err := git.GetTagMessage("v1.0.0")
	require.NoError(t, err)
	require.Equal(t, "release 1.0.0", message)

	// Lightweight tags have none
	require.NoError(t, git.CreateTag(context.Background(), "marker", ""))
	message, err = git.GetTagMessage("marker")
	require.NoError(t, err)
	require.Empty(t, message)
}

func TestMergeBaseAndAncestor(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	require.NoError(t, git.InitDefaultRepo())

	baseRev, err := git.GetRevision("develop")
	require.NoError(t, err)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/x"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("x", "x work", "x.txt"))

	mergeBase, err := git.GetMergeBase("develop", "feature/x")
	require.NoError(t, err)
	require.Equal(t, baseRev, mergeBase)

	isAncestor, err := git.IsAncestor("develop", "feature/x")
	require.NoError(t, err)
	require.True(t, isAncestor)

	isAncestor, err = git.IsAncestor("feature/x", "develop")
	require.NoError(t, err)
	require.False(t, isAncestor)
}

func TestRemoteDetection(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	// No remotes configured yet
	require.False(t, git.HasRemote())
	require.Equal(t, "origin", git.GetRemote())

	require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "upstream", scene.Dir))
	require.True(t, git.HasRemote())
	require.Equal(t, "upstream", git.GetRemote())

	// origin wins once it exists
	require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", scene.Dir))
	require.Equal(t, "origin", git.GetRemote())
}

func TestPushToBareRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	_, err := scene.Repo.CreateBareRemote()
	require.NoError(t, err)

	require.Equal(t, "origin", git.GetRemote())

	require.NoError(t, git.PushBranch(context.Background(), "origin", "develop", true))
	require.NoError(t, git.CreateTag(context.Background(), "v0.1.0", ""))
	require.NoError(t, git.PushTags(context.Background(), "origin"))

	branches, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin")
	require.NoError(t, err)
	require.Contains(t, branches, "refs/heads/develop")

	tags, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--tags", "origin")
	require.NoError(t, err)
	require.Contains(t, tags, "refs/tags/v0.1.0")
}

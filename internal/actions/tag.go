package actions

import (
	"context"
	"fmt"
	"strings"

	gfmerrors "gfm.dev/gfm/internal/errors"
	"gfm.dev/gfm/internal/git"
	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// TagOptions control TagAction
type TagOptions struct {
	Name    string
	Message string
	Push    bool
}

// TagListAction prints the version tags with their annotation messages
func TagListAction(ctx context.Context, rctx *runtime.Context) error {
	tags, err := rctx.Engine.ListVersionTags()
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		rctx.Splog.Info("No version tags.")
		rctx.Splog.Tip("Finish a release or run 'gfm tag <name>' to create one")
		return nil
	}

	for _, tag := range tags {
		line := tui.ColorTag(tag)
		if message, err := git.GetTagMessage(tag); err == nil && message != "" {
			line += tui.ColorDim("  " + message)
		}
		rctx.Splog.Info("%s", line)
	}
	return nil
}

// TagAction creates a version tag on the current commit. The configured tag
// prefix is applied unless the name already carries it.
func TagAction(ctx context.Context, rctx *runtime.Context, opts TagOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("a tag name is required")
	}

	tagName := opts.Name
	if prefix := rctx.Config.GetVersionPrefix(); !strings.HasPrefix(tagName, prefix) {
		tagName = prefix + tagName
	}

	if rctx.Engine.TagExists(tagName) {
		return fmt.Errorf("tag %s: %w", tagName, gfmerrors.ErrTagExists)
	}
	// An empty message creates a lightweight tag; finishes always annotate.
	if err := git.CreateTag(ctx, tagName, opts.Message); err != nil {
		return err
	}
	rctx.Splog.Info("Created tag %s", tui.ColorTag(tagName))

	if opts.Push {
		if err := rctx.Engine.PushTags(ctx); err != nil {
			return err
		}
		rctx.Splog.Info("Pushed tags to %s", rctx.Engine.Remote())
	}

	return nil
}

package actions

import (
	"context"
	"fmt"

	"gfm.dev/gfm/internal/runtime"
	"gfm.dev/gfm/internal/tui"
)

// ConfigShowAction prints the effective gitflow configuration
func ConfigShowAction(ctx context.Context, rctx *runtime.Context) error {
	cfg := rctx.Config

	rows := []struct{ key, value string }{
		{"master", cfg.GetMaster()},
		{"develop", cfg.GetDevelop()},
		{"feature prefix", cfg.GetFeaturePrefix()},
		{"release prefix", cfg.GetReleasePrefix()},
		{"hotfix prefix", cfg.GetHotfixPrefix()},
		{"version tag prefix", cfg.GetVersionPrefix()},
		{"remote", cfg.GetRemote()},
	}

	for _, row := range rows {
		rctx.Splog.Info("%-20s %s", row.key, tui.ColorBranchName(row.value, false))
	}
	return nil
}

// ConfigSetAction updates one configuration key and persists it
func ConfigSetAction(ctx context.Context, rctx *runtime.Context, key, value string) error {
	cfg := rctx.Config

	switch key {
	case "master":
		cfg.SetMaster(value)
	case "develop":
		cfg.SetDevelop(value)
	case "feature-prefix":
		if err := cfg.SetPrefix("feature", value); err != nil {
			return err
		}
	case "release-prefix":
		if err := cfg.SetPrefix("release", value); err != nil {
			return err
		}
	case "hotfix-prefix":
		if err := cfg.SetPrefix("hotfix", value); err != nil {
			return err
		}
	case "version-prefix":
		cfg.VersionPrefix = &value
	case "remote":
		cfg.Remote = &value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := cfg.Save(); err != nil {
		return err
	}
	rctx.Splog.Info("Set %s = %s", key, value)
	return nil
}

// Package config provides repository configuration management,
// including reading and writing the gfm configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// configFileName is the config file stored inside .git so it never ends up
// committed to the repository.
const configFileName = ".gfm_config"

// Default branch names and prefixes following the gitflow convention
const (
	DefaultMaster        = "master"
	DefaultDevelop       = "develop"
	DefaultFeaturePrefix = "feature/"
	DefaultReleasePrefix = "release/"
	DefaultHotfixPrefix  = "hotfix/"
	DefaultVersionPrefix = "v"
)

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Master        *string `json:"master,omitempty"`
	Develop       *string `json:"develop,omitempty"`
	FeaturePrefix *string `json:"featurePrefix,omitempty"`
	ReleasePrefix *string `json:"releasePrefix,omitempty"`
	HotfixPrefix  *string `json:"hotfixPrefix,omitempty"`
	VersionPrefix *string `json:"versionTagPrefix,omitempty"`
	Remote        *string `json:"remote,omitempty"`

	repoRoot string
}

// LoadConfig reads the repository configuration. A missing file yields an
// empty config bound to repoRoot.
func LoadConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	cfg := &RepoConfig{repoRoot: repoRoot}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	cfg.repoRoot = repoRoot

	return cfg, nil
}

// Save writes the configuration back to .git/.gfm_config
func (c *RepoConfig) Save() error {
	configPath := filepath.Join(c.repoRoot, ".git", configFileName)

	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, configJSON, 0600)
}

// IsInitialized checks if gfm has been initialized in the repository
func (c *RepoConfig) IsInitialized() bool {
	return c.Master != nil && *c.Master != "" && c.Develop != nil && *c.Develop != ""
}

// GetMaster returns the production branch name
func (c *RepoConfig) GetMaster() string {
	if c.Master != nil && *c.Master != "" {
		return *c.Master
	}
	return DefaultMaster
}

// GetDevelop returns the integration branch name
func (c *RepoConfig) GetDevelop() string {
	if c.Develop != nil && *c.Develop != "" {
		return *c.Develop
	}
	return DefaultDevelop
}

// SetMaster sets the production branch name
func (c *RepoConfig) SetMaster(name string) {
	c.Master = &name
}

// SetDevelop sets the integration branch name
func (c *RepoConfig) SetDevelop(name string) {
	c.Develop = &name
}

// GetFeaturePrefix returns the feature branch prefix
func (c *RepoConfig) GetFeaturePrefix() string {
	return c.prefix(c.FeaturePrefix, DefaultFeaturePrefix)
}

// GetReleasePrefix returns the release branch prefix
func (c *RepoConfig) GetReleasePrefix() string {
	return c.prefix(c.ReleasePrefix, DefaultReleasePrefix)
}

// GetHotfixPrefix returns the hotfix branch prefix
func (c *RepoConfig) GetHotfixPrefix() string {
	return c.prefix(c.HotfixPrefix, DefaultHotfixPrefix)
}

// GetVersionPrefix returns the prefix prepended to version tags
func (c *RepoConfig) GetVersionPrefix() string {
	if c.VersionPrefix != nil {
		return *c.VersionPrefix
	}
	return DefaultVersionPrefix
}

// GetRemote returns the configured remote name, default "origin"
func (c *RepoConfig) GetRemote() string {
	if c.Remote != nil && *c.Remote != "" {
		return *c.Remote
	}
	return "origin"
}

// SetPrefix updates one of the branch prefixes by kind
func (c *RepoConfig) SetPrefix(kind, prefix string) error {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	switch kind {
	case "feature":
		c.FeaturePrefix = &prefix
	case "release":
		c.ReleasePrefix = &prefix
	case "hotfix":
		c.HotfixPrefix = &prefix
	default:
		return fmt.Errorf("unknown branch kind %q", kind)
	}
	return nil
}

func (c *RepoConfig) prefix(value *string, fallback string) string {
	if value != nil && *value != "" {
		return *value
	}
	return fallback
}

// Package config provides repository configuration management,
// including reading the branchup configuration file and run toggles.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when the config file is absent or fields are unset.
const (
	DefaultTrunk                  = "main"
	DefaultBlockedLabel           = "blocked"
	DefaultRequiredReviewDecision = "APPROVED"
	DefaultLockfile               = "package-lock.json"
)

// DefaultExcludeLabels are the PR labels that exclude a branch from updates
// when the label-exclusion override applies.
var DefaultExcludeLabels = []string{"mergequeue"}

// RepoConfig is the persisted part of the configuration, stored as JSON in
// .git/.branchup_config.
type RepoConfig struct {
	Trunk                  *string  `json:"trunk,omitempty"`
	ExcludePatterns        []string `json:"excludePatterns,omitempty"`
	ExcludeLabels          []string `json:"excludeLabels,omitempty"`
	BlockedLabel           *string  `json:"blockedLabel,omitempty"`
	RequiredReviewDecision *string  `json:"requiredReviewDecision,omitempty"`
	Lockfile               *string  `json:"lockfile,omitempty"`
	InstallDeps            *bool    `json:"installDeps,omitempty"`
}

// RunConfig is the immutable configuration for a single run
type RunConfig struct {
	Trunk           string
	ExcludePatterns []string

	// Label-exclusion override: a branch is skipped when its open PR carries
	// any ExcludeLabels label AND the review decision equals
	// RequiredReviewDecision AND the PR does not carry BlockedLabel.
	ExcludeLabels          []string
	BlockedLabel           string
	RequiredReviewDecision string

	Lockfile    string
	InstallDeps bool

	DryRun  bool
	NoPush  bool
	Verbose bool
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".branchup_config")
}

// GetRepoConfig reads the repository configuration. A missing file yields
// an empty config, not an error.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// NewRunConfig combines the repo config, the optional trunk argument, and the
// environment toggles into the immutable configuration for one run.
// Precedence for the trunk name: CLI argument, config file, "main".
func NewRunConfig(repoRoot, trunkArg string) (*RunConfig, error) {
	repoConfig, err := GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	run := &RunConfig{
		Trunk:                  DefaultTrunk,
		ExcludePatterns:        repoConfig.ExcludePatterns,
		ExcludeLabels:          DefaultExcludeLabels,
		BlockedLabel:           DefaultBlockedLabel,
		RequiredReviewDecision: DefaultRequiredReviewDecision,
		Lockfile:               DefaultLockfile,
		InstallDeps:            true,
		DryRun:                 envBool("BRANCHUP_DRY_RUN"),
		NoPush:                 envBool("BRANCHUP_NO_PUSH"),
		Verbose:                envBool("BRANCHUP_VERBOSE"),
	}

	if repoConfig.Trunk != nil && *repoConfig.Trunk != "" {
		run.Trunk = *repoConfig.Trunk
	}
	if trunkArg != "" {
		run.Trunk = trunkArg
	}
	if len(repoConfig.ExcludeLabels) > 0 {
		run.ExcludeLabels = repoConfig.ExcludeLabels
	}
	if repoConfig.BlockedLabel != nil {
		run.BlockedLabel = *repoConfig.BlockedLabel
	}
	if repoConfig.RequiredReviewDecision != nil && *repoConfig.RequiredReviewDecision != "" {
		run.RequiredReviewDecision = *repoConfig.RequiredReviewDecision
	}
	if repoConfig.Lockfile != nil && *repoConfig.Lockfile != "" {
		run.Lockfile = *repoConfig.Lockfile
	}
	if repoConfig.InstallDeps != nil {
		run.InstallDeps = *repoConfig.InstallDeps
	}

	return run, nil
}

// envBool interprets an environment toggle: set and not "0"/"false" is true
func envBool(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0" && v != "false"
}

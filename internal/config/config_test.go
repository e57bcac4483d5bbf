package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
	return root
}

func writeConfigFile(t *testing.T, root, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(configPath(root), []byte(contents), 0600))
}

func TestGetRepoConfig(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := GetRepoConfig(tempRepoRoot(t))
		require.NoError(t, err)
		require.Nil(t, cfg.Trunk)
		require.Empty(t, cfg.ExcludePatterns)
	})

	t.Run("parses fields", func(t *testing.T) {
		root := tempRepoRoot(t)
		writeConfigFile(t, root, `{
			"trunk": "develop",
			"excludePatterns": ["wip", "tmp"],
			"excludeLabels": ["queued"],
			"installDeps": false
		}`)

		cfg, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, "develop", *cfg.Trunk)
		require.Equal(t, []string{"wip", "tmp"}, cfg.ExcludePatterns)
		require.Equal(t, []string{"queued"}, cfg.ExcludeLabels)
		require.False(t, *cfg.InstallDeps)
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		root := tempRepoRoot(t)
		writeConfigFile(t, root, "{not json")

		_, err := GetRepoConfig(root)
		require.Error(t, err)
	})
}

func TestSaveRepoConfigRoundTrip(t *testing.T) {
	root := tempRepoRoot(t)
	trunk := "develop"
	require.NoError(t, SaveRepoConfig(root, &RepoConfig{
		Trunk:           &trunk,
		ExcludePatterns: []string{"wip"},
	}))

	cfg, err := GetRepoConfig(root)
	require.NoError(t, err)
	require.Equal(t, "develop", *cfg.Trunk)
	require.Equal(t, []string{"wip"}, cfg.ExcludePatterns)
}

func TestNewRunConfigDefaults(t *testing.T) {
	run, err := NewRunConfig(tempRepoRoot(t), "")
	require.NoError(t, err)
	require.Equal(t, "main", run.Trunk)
	require.Equal(t, []string{"mergequeue"}, run.ExcludeLabels)
	require.Equal(t, "blocked", run.BlockedLabel)
	require.Equal(t, "APPROVED", run.RequiredReviewDecision)
	require.Equal(t, "package-lock.json", run.Lockfile)
	require.True(t, run.InstallDeps)
	require.False(t, run.DryRun)
	require.False(t, run.NoPush)
}

func TestNewRunConfigTrunkPrecedence(t *testing.T) {
	t.Run("config file overrides default", func(t *testing.T) {
		root := tempRepoRoot(t)
		writeConfigFile(t, root, `{"trunk": "develop"}`)

		run, err := NewRunConfig(root, "")
		require.NoError(t, err)
		require.Equal(t, "develop", run.Trunk)
	})

	t.Run("argument overrides config file", func(t *testing.T) {
		root := tempRepoRoot(t)
		writeConfigFile(t, root, `{"trunk": "develop"}`)

		run, err := NewRunConfig(root, "release")
		require.NoError(t, err)
		require.Equal(t, "release", run.Trunk)
	})
}

func TestNewRunConfigEnvToggles(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "set to 1", value: "1", want: true},
		{name: "set to true", value: "true", want: true},
		{name: "set to arbitrary text", value: "yes", want: true},
		{name: "set to 0", value: "0", want: false},
		{name: "set to false", value: "false", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BRANCHUP_DRY_RUN", tt.value)
			t.Setenv("BRANCHUP_NO_PUSH", tt.value)
			t.Setenv("BRANCHUP_VERBOSE", tt.value)

			run, err := NewRunConfig(tempRepoRoot(t), "")
			require.NoError(t, err)
			require.Equal(t, tt.want, run.DryRun)
			require.Equal(t, tt.want, run.NoPush)
			require.Equal(t, tt.want, run.Verbose)
		})
	}
}

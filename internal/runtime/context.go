// Package runtime provides the context type that bundles the engine,
// configuration, and logger for a run. This avoids passing multiple
// parameters through the CLI layer.
package runtime

import (
	"context"
	"fmt"

	"branchup.dev/branchup/internal/config"
	"branchup.dev/branchup/internal/engine"
	"branchup.dev/branchup/internal/git"
	"branchup.dev/branchup/internal/github"
	"branchup.dev/branchup/internal/output"
	"branchup.dev/branchup/internal/stack"
)

// Context provides access to the engine, config, and output for a run
type Context struct {
	Engine   *engine.Engine
	Splog    *output.Splog
	Config   *config.RunConfig
	RepoRoot string
}

// Options carries the CLI-level inputs for a run. The boolean flags override
// their environment-variable counterparts when set.
type Options struct {
	Trunk   string
	DryRun  bool
	NoPush  bool
	Verbose bool
}

// GetContext initializes the repository, loads configuration, and wires the
// engine for a run. The GitHub client is best-effort; without a token or a
// GitHub remote, label-based exclusion is disabled.
func GetContext(ctx context.Context, opts Options) (*Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}
	git.SetWorkingDir(repoRoot)

	cfg, err := config.NewRunConfig(repoRoot, opts.Trunk)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		cfg.DryRun = true
	}
	if opts.NoPush {
		cfg.NoPush = true
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	splog, err := output.NewSplogWithConfig(cfg.Verbose, output.LogFilePath())
	if err != nil {
		splog = output.NewSplog(cfg.Verbose)
	}

	var host stack.PullRequestLookup
	if ghClient, err := github.NewRealClient(ctx); err == nil {
		host = ghClient
	} else {
		splog.Debug("GitHub integration unavailable: %v", err)
	}

	return &Context{
		Engine:   engine.New(engine.NewGitRunner(), host, cfg, splog),
		Splog:    splog,
		Config:   cfg,
		RepoRoot: repoRoot,
	}, nil
}

package cli

import (
	"context"

	"branchup.dev/branchup/internal/deps"
	"branchup.dev/branchup/internal/engine"
	"branchup.dev/branchup/internal/runtime"
)

// runUpdate performs the whole update run and stores the process exit code:
// 0 clean, 1 failures, 10 conflicts only.
func runUpdate(ctx context.Context, opts runtime.Options, exitCode *int) error {
	rctx, err := runtime.GetContext(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = rctx.Splog.Close() }()

	if rctx.Config.DryRun {
		rctx.Splog.Info("Dry run: no branches will be touched.")
	}

	lockfile := deps.SnapshotLockfile(rctx.RepoRoot, rctx.Config.Lockfile)

	results, err := rctx.Engine.Run(ctx)
	if err != nil {
		return err
	}

	engine.Report(results, rctx.Splog)

	// Back on the original branch: reinstall dependencies if the run
	// changed the lockfile out from under it.
	if rctx.Config.InstallDeps && !rctx.Config.DryRun && lockfile.Changed() {
		rctx.Splog.Info("%s changed; installing dependencies...", rctx.Config.Lockfile)
		if out, err := deps.Install(ctx, rctx.RepoRoot); err != nil {
			rctx.Splog.Warn("dependency install failed: %v\n%s", err, out)
		}
	}

	*exitCode = results.ExitCode()
	return nil
}

package engine

import (
	"context"
	"fmt"
)

// Dry-run mode classifies branches into the same buckets as a live run
// without any mutating git operation. Conflicts are predicted with a
// three-way merge-tree simulation against the merge base; ancestry queries
// are read-only and run as-is.

func (e *Engine) predictTrunkMerge(ctx context.Context, name string, results *Results) {
	current, err := e.git.IsAncestor(ctx, e.cfg.Trunk, name)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("ancestor check: %v", err))
		return
	}
	if current {
		results.Add(name, BucketSuccessful, fmt.Sprintf("already contains %s", e.cfg.Trunk))
		return
	}

	conflict, err := e.git.PredictMergeConflict(ctx, name, e.cfg.Trunk)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("merge simulation: %v", err))
		return
	}
	if conflict {
		results.Add(name, BucketMergeConflict, fmt.Sprintf("would conflict merging %s", e.cfg.Trunk))
		return
	}
	results.Add(name, BucketSuccessful, fmt.Sprintf("would merge %s", e.cfg.Trunk))
}

func (e *Engine) predictStacked(ctx context.Context, name, parent string, results *Results) {
	merged, err := e.git.IsMergedInto(ctx, parent, e.cfg.Trunk)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("failed to inspect parent %s: %v", parent, err))
		return
	}
	if merged {
		e.predictTrunkMerge(ctx, name, results)
		return
	}

	conflict, err := e.git.PredictMergeConflict(ctx, name, parent)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("rebase simulation: %v", err))
		return
	}
	if conflict {
		results.Add(name, BucketRebaseConflict, fmt.Sprintf("would conflict rebasing onto %s", parent))
		return
	}
	results.Add(name, BucketRebased, fmt.Sprintf("would rebase onto %s", parent))
}

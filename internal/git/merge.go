package git

import (
	"context"
	"fmt"

	branchuperrors "branchup.dev/branchup/internal/errors"
)

// MergeResult represents the result of a merge operation
type MergeResult int

const (
	// MergeDone indicates the merge completed (or was a no-op)
	MergeDone MergeResult = iota
	// MergeConflict indicates the merge conflicted and was aborted
	MergeConflict
)

// MergeBranch merges ref into the currently checked-out branch without
// opening an editor. On conflict the merge is aborted and the working tree is
// verified clean; an unclean tree after abort is returned as
// ErrAbortUnclean rather than MergeConflict.
func MergeBranch(ctx context.Context, ref string) (MergeResult, error) {
	_, err := RunGitCommandWithContext(ctx, "merge", "--no-edit", ref)
	if err == nil {
		return MergeDone, nil
	}

	// Conflict (or refusal). Abort and restore the pre-merge state.
	_, _ = RunGitCommandWithContext(ctx, "merge", "--abort")

	clean, statusErr := IsWorkingTreeClean(ctx)
	if statusErr != nil {
		return MergeConflict, fmt.Errorf("failed to verify working tree after merge abort: %w", statusErr)
	}
	if !clean {
		return MergeConflict, fmt.Errorf("merge of %s aborted: %w", ref, branchuperrors.ErrAbortUnclean)
	}

	return MergeConflict, nil
}

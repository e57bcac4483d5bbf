package git

import (
	"context"
	"fmt"

	branchuperrors "branchup.dev/branchup/internal/errors"
)

// RebaseResult represents the result of a rebase operation
type RebaseResult int

const (
	// RebaseDone indicates the rebase was successful
	RebaseDone RebaseResult = iota
	// RebaseConflict indicates a conflict occurred and the rebase was aborted
	RebaseConflict
)

// RebaseOnto replays the currently checked-out branch's commits onto the tip
// of onto. On conflict the rebase is aborted and the working tree is verified
// clean; an unclean tree after abort is returned as ErrAbortUnclean.
func RebaseOnto(ctx context.Context, onto string) (RebaseResult, error) {
	_, err := RunGitCommandWithContext(ctx, "rebase", onto)
	if err == nil {
		return RebaseDone, nil
	}

	if IsRebaseInProgress(ctx) {
		if _, abortErr := RunGitCommandWithContext(ctx, "rebase", "--abort"); abortErr != nil {
			return RebaseConflict, fmt.Errorf("failed to abort rebase onto %s: %w", onto, abortErr)
		}
	}

	clean, statusErr := IsWorkingTreeClean(ctx)
	if statusErr != nil {
		return RebaseConflict, fmt.Errorf("failed to verify working tree after rebase abort: %w", statusErr)
	}
	if !clean {
		return RebaseConflict, fmt.Errorf("rebase onto %s aborted: %w", onto, branchuperrors.ErrAbortUnclean)
	}

	return RebaseConflict, nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func IsRebaseInProgress(ctx context.Context) bool {
	// Check for .git/rebase-merge or .git/rebase-apply directories.
	// This is more reliable than checking REBASE_HEAD which can persist after rebase
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}

	return fileExists(gitDir+"/rebase-merge") || fileExists(gitDir+"/rebase-apply")
}

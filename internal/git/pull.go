package git

import (
	"context"
	"fmt"
)

// PullResult represents the result of a pull operation
type PullResult int

const (
	// PullDone indicates the pull fast-forwarded the branch
	PullDone PullResult = iota
	// PullUnneeded indicates the branch was already up to date
	PullUnneeded
	// PullFailed indicates the branch could not be fast-forwarded
	// (diverged history or fetch failure)
	PullFailed
)

// PullBranch updates the currently checked-out branch from its remote
// counterpart. Only this branch is integrated (fetch + ff-only merge), never
// the trunk. The caller must have checked the branch out already.
func PullBranch(ctx context.Context, remote, branchName string) (PullResult, error) {
	if _, err := RunGitCommandWithContext(ctx, "fetch", remote, branchName); err != nil {
		return PullFailed, fmt.Errorf("failed to fetch %s/%s: %w", remote, branchName, err)
	}

	oldRev, err := RunGitCommandWithContext(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullFailed, fmt.Errorf("failed to read HEAD before pull: %w", err)
	}

	_, err = RunGitCommandWithContext(ctx, "merge", "--ff-only", fmt.Sprintf("%s/%s", remote, branchName))
	if err != nil {
		// Not fast-forwardable: local and remote have diverged
		return PullFailed, fmt.Errorf("cannot fast-forward %s from %s: %w", branchName, remote, err)
	}

	newRev, err := RunGitCommandWithContext(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullFailed, fmt.Errorf("failed to read HEAD after pull: %w", err)
	}

	if oldRev == newRev {
		return PullUnneeded, nil
	}
	return PullDone, nil
}

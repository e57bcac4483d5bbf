package git

import (
	"context"
	"fmt"
)

// GetRevision returns the commit SHA a branch points at
func GetRevision(ctx context.Context, branchName string) (string, error) {
	output, err := RunGitCommandWithContext(ctx, "rev-parse", branchName)
	if err != nil {
		return "", fmt.Errorf("failed to get revision for %s: %w", branchName, err)
	}
	return output, nil
}

// IsAncestor checks whether ancestor is reachable from descendant.
// git merge-base --is-ancestor exits 1 for "no", which is not an error.
func IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	_, err := RunGitCommandWithContext(ctx, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	if exitCode(err) == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed ancestor check %s..%s: %w", ancestor, descendant, err)
}

// IsMergedInto reports whether branchName has been strictly subsumed by
// target: the branch tip is an ancestor of target while target is not an
// ancestor of the branch. A branch that simply contains target (or equals it)
// is not "merged" in this sense.
func IsMergedInto(ctx context.Context, branchName, target string) (bool, error) {
	branchInTarget, err := IsAncestor(ctx, branchName, target)
	if err != nil {
		return false, err
	}
	if !branchInTarget {
		return false, nil
	}

	targetInBranch, err := IsAncestor(ctx, target, branchName)
	if err != nil {
		return false, err
	}
	return !targetInBranch, nil
}

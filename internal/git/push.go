package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to its remote counterpart with a normal
// (non-forced) push. Rewritten history is deliberately not pushable through
// this path; a rebased branch requires a force-push the user must review.
func PushBranch(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}

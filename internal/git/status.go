package git

import (
	"context"
)

// HasUncommittedChanges checks if there are staged or unstaged changes in the
// working tree. Untracked files do not count as uncommitted changes here,
// matching what merge and rebase refuse to run over.
func HasUncommittedChanges(ctx context.Context) bool {
	output, err := RunGitCommandWithContext(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false
	}
	return output != ""
}

// IsWorkingTreeClean reports whether the working tree has no staged or
// unstaged changes. Unlike HasUncommittedChanges, a git failure is surfaced,
// since callers use this to verify the tree after aborting a merge or rebase.
func IsWorkingTreeClean(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, err
	}
	return output == "", nil
}

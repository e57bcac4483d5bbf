package git

import (
	"context"
	"fmt"
)

// PredictMergeConflict simulates a three-way merge of theirs into ours
// against their merge base, without touching the working tree or index.
// git merge-tree --write-tree exits 0 for a clean merge and 1 for conflicts;
// it computes the merge base itself.
func PredictMergeConflict(ctx context.Context, ours, theirs string) (bool, error) {
	_, err := RunGitCommandWithContext(ctx, "merge-tree", "--write-tree", ours, theirs)
	if err == nil {
		return false, nil
	}
	if exitCode(err) == 1 {
		return true, nil
	}
	return false, fmt.Errorf("failed to simulate merge of %s into %s: %w", theirs, ours, err)
}

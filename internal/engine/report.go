package engine

import (
	"branchup.dev/branchup/internal/output"
)

// Report prints the categorized end-of-run summary: one section per
// non-empty bucket, each branch with its detail line.
func Report(results *Results, splog *output.Splog) {
	splog.Newline()

	sections := []struct {
		bucket Bucket
		title  string
		color  func(string) string
	}{
		{BucketSuccessful, "Updated", output.Success},
		{BucketRebased, "Rebased (not pushed)", output.Success},
		{BucketMergeConflict, "Merge conflicts", output.Conflict},
		{BucketRebaseConflict, "Rebase conflicts", output.Conflict},
		{BucketFailed, "Failed", output.Failed},
		{BucketIgnored, "Ignored", output.Dim},
	}

	for _, section := range sections {
		outcomes := results.InBucket(section.bucket)
		if len(outcomes) == 0 {
			continue
		}
		splog.Info("%s:", section.color(section.title))
		for _, o := range outcomes {
			splog.Info("  %s %s", output.BranchName(o.Branch), output.Dim(o.Detail))
		}
	}

	if results.HasFailures() {
		splog.Error("some branches failed to update")
	} else if results.HasConflicts() {
		splog.Warn("some branches have conflicts to resolve")
	}
}

package engine

// Bucket is the terminal classification of a processed branch. Every branch
// lands in exactly one bucket by the end of a run.
type Bucket int

const (
	// BucketIgnored holds branches excluded from the run
	BucketIgnored Bucket = iota
	// BucketSuccessful holds branches merged (or already current) and pushed
	BucketSuccessful
	// BucketRebased holds branches rebased onto their parent; never pushed
	BucketRebased
	// BucketMergeConflict holds branches whose trunk merge conflicted
	BucketMergeConflict
	// BucketRebaseConflict holds branches whose rebase conflicted
	BucketRebaseConflict
	// BucketFailed holds branches that failed outright (checkout, pull,
	// push, dirty tree, malformed name, bad parent)
	BucketFailed
)

func (b Bucket) String() string {
	switch b {
	case BucketIgnored:
		return "ignored"
	case BucketSuccessful:
		return "successful"
	case BucketRebased:
		return "rebased"
	case BucketMergeConflict:
		return "merge conflict"
	case BucketRebaseConflict:
		return "rebase conflict"
	case BucketFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsConflict reports whether the bucket is one of the two conflict buckets
func (b Bucket) IsConflict() bool {
	return b == BucketMergeConflict || b == BucketRebaseConflict
}

// Outcome records where one branch ended up and why
type Outcome struct {
	Branch string
	Bucket Bucket
	Detail string
}

// Results accumulates per-branch outcomes over a run. It replaces the
// globals of earlier incarnations of this tool: one instance per run, owned
// by the caller.
type Results struct {
	outcomes []Outcome
	byBranch map[string]Bucket
}

// NewResults creates an empty accumulator
func NewResults() *Results {
	return &Results{byBranch: make(map[string]Bucket)}
}

// Add records a branch's terminal bucket
func (r *Results) Add(branch string, bucket Bucket, detail string) {
	r.outcomes = append(r.outcomes, Outcome{Branch: branch, Bucket: bucket, Detail: detail})
	r.byBranch[branch] = bucket
}

// BucketOf returns the bucket a branch ended in, if it has been processed
func (r *Results) BucketOf(branch string) (Bucket, bool) {
	b, ok := r.byBranch[branch]
	return b, ok
}

// InBucket returns the outcomes recorded in a bucket, in processing order
func (r *Results) InBucket(bucket Bucket) []Outcome {
	var out []Outcome
	for _, o := range r.outcomes {
		if o.Bucket == bucket {
			out = append(out, o)
		}
	}
	return out
}

// Count returns the number of branches in a bucket
func (r *Results) Count(bucket Bucket) int {
	n := 0
	for _, o := range r.outcomes {
		if o.Bucket == bucket {
			n++
		}
	}
	return n
}

// HasFailures reports whether any branch failed outright
func (r *Results) HasFailures() bool {
	return r.Count(BucketFailed) > 0
}

// HasConflicts reports whether any branch ended in a conflict bucket
func (r *Results) HasConflicts() bool {
	return r.Count(BucketMergeConflict)+r.Count(BucketRebaseConflict) > 0
}

// Exit codes distinguishing conflicts from hard failures at the process level
const (
	ExitOK       = 0
	ExitFailed   = 1
	ExitConflict = 10
)

// ExitCode maps the worst category encountered to the process exit code:
// failed outranks conflict outranks success.
func (r *Results) ExitCode() int {
	if r.HasFailures() {
		return ExitFailed
	}
	if r.HasConflicts() {
		return ExitConflict
	}
	return ExitOK
}

package stack

import (
	"context"
	"regexp"
	"strings"

	"branchup.dev/branchup/internal/github"
)

// Kind is the classification of a local branch, computed once so the rest of
// the run never re-parses branch names.
type Kind int

const (
	// KindRegular is a branch updated by merging the trunk into it
	KindRegular Kind = iota
	// KindStacked is a stacked/<ticket>/<rest> branch rebased onto its parent
	KindStacked
	// KindIgnored is a branch excluded from the run
	KindIgnored
	// KindMalformed is a branch under stacked/ that fails name validation
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindStacked:
		return "stacked"
	case KindIgnored:
		return "ignored"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// stackedRegex matches the three-segment stacked branch shape.
// The middle segment is the parent ticket.
var stackedRegex = regexp.MustCompile(`^stacked/([^/]+)/(.+)$`)

const stackedPrefix = "stacked/"

// Branch is a classified local branch
type Branch struct {
	Name string
	Kind Kind

	// Ticket is the branch's own normalized ticket ("" if none). For a
	// stacked branch it comes from the <rest> segment. Ignored branches keep
	// their ticket: exclusion governs what gets updated, not what can serve
	// as a parent.
	Ticket string

	// ParentTicket is the normalized parent ticket (stacked branches only)
	ParentTicket string

	// IgnoreReason explains why an ignored branch was skipped
	IgnoreReason string
}

// PullRequestLookup is the slice of the code-review host the classifier
// needs. github.Client satisfies it.
type PullRequestLookup interface {
	OpenPullRequestForBranch(ctx context.Context, branchName string) (*github.PullRequestInfo, error)
}

// Rules configures classification for a run
type Rules struct {
	Trunk           string
	ExcludePatterns []string

	// Label-exclusion override terms, all three required to skip a branch
	ExcludeLabels          []string
	BlockedLabel           string
	RequiredReviewDecision string
}

// Classify partitions branch names into regular, stacked, ignored, and
// malformed branches. Order of the input is preserved. The host lookup is
// optional; any lookup failure leaves the branch un-excluded.
func Classify(ctx context.Context, names []string, rules Rules, host PullRequestLookup) []Branch {
	branches := make([]Branch, 0, len(names))
	for _, name := range names {
		branches = append(branches, classifyOne(ctx, name, rules, host))
	}
	return branches
}

func classifyOne(ctx context.Context, name string, rules Rules, host PullRequestLookup) Branch {
	if name == rules.Trunk {
		return Branch{Name: name, Kind: KindIgnored, Ticket: NormalizedTicket(name), IgnoreReason: "trunk"}
	}

	for _, pattern := range rules.ExcludePatterns {
		if pattern != "" && strings.Contains(name, pattern) {
			return Branch{Name: name, Kind: KindIgnored, Ticket: NormalizedTicket(name), IgnoreReason: "matches exclusion pattern " + pattern}
		}
	}

	if host != nil && len(rules.ExcludeLabels) > 0 {
		if reason, excluded := hostExcluded(ctx, name, rules, host); excluded {
			return Branch{Name: name, Kind: KindIgnored, Ticket: NormalizedTicket(name), IgnoreReason: reason}
		}
	}

	if m := stackedRegex.FindStringSubmatch(name); m != nil {
		parent := NormalizeTicket(m[1])
		if parent == "" {
			return Branch{Name: name, Kind: KindMalformed, Ticket: NormalizedTicket(m[2])}
		}
		return Branch{
			Name:         name,
			Kind:         KindStacked,
			Ticket:       NormalizedTicket(m[2]),
			ParentTicket: parent,
		}
	}
	if strings.HasPrefix(name, stackedPrefix) {
		return Branch{Name: name, Kind: KindMalformed}
	}

	return Branch{Name: name, Kind: KindRegular, Ticket: NormalizedTicket(name)}
}

// hostExcluded applies the label-exclusion override: the branch's open PR
// carries an exclusion label, the review decision matches the required one,
// and the blocked label is absent. Lookup failures never exclude.
func hostExcluded(ctx context.Context, name string, rules Rules, host PullRequestLookup) (string, bool) {
	pr, err := host.OpenPullRequestForBranch(ctx, name)
	if err != nil || pr == nil {
		return "", false
	}

	if !pr.HasAnyLabel(rules.ExcludeLabels) {
		return "", false
	}
	if pr.ReviewDecision != rules.RequiredReviewDecision {
		return "", false
	}
	if rules.BlockedLabel != "" && pr.HasLabel(rules.BlockedLabel) {
		// Blocked mergequeue candidates still get processed
		return "", false
	}
	return "open PR is labeled for exclusion and approved", true
}

package stack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"branchup.dev/branchup/internal/github"
)

func testRules() Rules {
	return Rules{
		Trunk:                  "main",
		ExcludePatterns:        []string{"wip"},
		ExcludeLabels:          []string{"mergequeue"},
		BlockedLabel:           "blocked",
		RequiredReviewDecision: github.ReviewApproved,
	}
}

// fakeLookup maps branch names to canned PRs; unlisted branches have none
type fakeLookup struct {
	prs map[string]*github.PullRequestInfo
	err error
}

func (f *fakeLookup) OpenPullRequestForBranch(_ context.Context, branchName string) (*github.PullRequestInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.prs[branchName], nil
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		branch       string
		kind         Kind
		ticket       string
		parentTicket string
	}{
		{
			name:   "trunk is ignored",
			branch: "main",
			kind:   KindIgnored,
		},
		{
			name:   "exclusion pattern is ignored",
			branch: "wip-experiment",
			kind:   KindIgnored,
		},
		{
			name:   "excluded branch keeps its ticket",
			branch: "BR-1-wip-base",
			kind:   KindIgnored,
			ticket: "br1",
		},
		{
			name:   "plain branch is regular",
			branch: "BR-1234-add-feature",
			kind:   KindRegular,
			ticket: "br1234",
		},
		{
			name:   "regular branch without ticket",
			branch: "spike",
			kind:   KindRegular,
		},
		{
			name:         "stacked branch",
			branch:       "stacked/br1234/BR-5555-child",
			kind:         KindStacked,
			ticket:       "br5555",
			parentTicket: "br1234",
		},
		{
			name:         "stacked branch with separators in parent segment",
			branch:       "stacked/BR-1234/BR-5555-child",
			kind:         KindStacked,
			ticket:       "br5555",
			parentTicket: "br1234",
		},
		{
			name:   "stacked prefix without rest segment is malformed",
			branch: "stacked/br1234",
			kind:   KindMalformed,
		},
		{
			name:   "bare stacked prefix is malformed",
			branch: "stacked/",
			kind:   KindMalformed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(context.Background(), []string{tt.branch}, testRules(), nil)
			require.Len(t, got, 1)
			require.Equal(t, tt.kind, got[0].Kind)
			require.Equal(t, tt.ticket, got[0].Ticket)
			require.Equal(t, tt.parentTicket, got[0].ParentTicket)
		})
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	t.Parallel()

	names := []string{"zeta", "main", "alpha", "stacked/br1/x-2-y"}
	got := Classify(context.Background(), names, testRules(), nil)
	require.Len(t, got, len(names))
	for i, name := range names {
		require.Equal(t, name, got[i].Name)
	}
}

func TestClassifyLabelExclusion(t *testing.T) {
	t.Parallel()

	t.Run("excluded when labeled and approved", func(t *testing.T) {
		t.Parallel()
		host := &fakeLookup{prs: map[string]*github.PullRequestInfo{
			"BR-1-feature": {
				Number:         7,
				Labels:         []string{"mergequeue"},
				ReviewDecision: github.ReviewApproved,
			},
		}}
		got := Classify(context.Background(), []string{"BR-1-feature"}, testRules(), host)
		require.Equal(t, KindIgnored, got[0].Kind)
	})

	t.Run("not excluded without approval", func(t *testing.T) {
		t.Parallel()
		host := &fakeLookup{prs: map[string]*github.PullRequestInfo{
			"BR-1-feature": {
				Labels:         []string{"mergequeue"},
				ReviewDecision: github.ReviewRequired,
			},
		}}
		got := Classify(context.Background(), []string{"BR-1-feature"}, testRules(), host)
		require.Equal(t, KindRegular, got[0].Kind)
	})

	t.Run("blocked label overrides exclusion", func(t *testing.T) {
		t.Parallel()
		host := &fakeLookup{prs: map[string]*github.PullRequestInfo{
			"BR-1-feature": {
				Labels:         []string{"mergequeue", "blocked"},
				ReviewDecision: github.ReviewApproved,
			},
		}}
		got := Classify(context.Background(), []string{"BR-1-feature"}, testRules(), host)
		require.Equal(t, KindRegular, got[0].Kind)
	})

	t.Run("lookup failure never excludes", func(t *testing.T) {
		t.Parallel()
		host := &fakeLookup{err: errors.New("network down")}
		got := Classify(context.Background(), []string{"BR-1-feature"}, testRules(), host)
		require.Equal(t, KindRegular, got[0].Kind)
	})

	t.Run("no open PR never excludes", func(t *testing.T) {
		t.Parallel()
		host := &fakeLookup{}
		got := Classify(context.Background(), []string{"BR-1-feature"}, testRules(), host)
		require.Equal(t, KindRegular, got[0].Kind)
	})
}

// Package github provides a client for interacting with the GitHub API.
package github

import (
	"context"
)

// Review decisions as reported for an open pull request.
const (
	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
	ReviewRequired         = "REVIEW_REQUIRED"
)

// PullRequestInfo contains information about a pull request.
// This is a simplified struct to avoid coupling to the go-github library.
type PullRequestInfo struct {
	Number         int
	HTMLURL        string
	Title          string
	State          string
	Draft          bool
	Labels         []string
	ReviewDecision string
}

// HasLabel reports whether the pull request carries the given label
func (pr *PullRequestInfo) HasLabel(label string) bool {
	for _, l := range pr.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether the pull request carries any of the given labels
func (pr *PullRequestInfo) HasAnyLabel(labels []string) bool {
	for _, l := range labels {
		if pr.HasLabel(l) {
			return true
		}
	}
	return false
}

// Client is an interface for GitHub API interactions
type Client interface {
	// OpenPullRequestForBranch returns the open pull request whose head is
	// the given branch, or nil if there is none.
	OpenPullRequestForBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}

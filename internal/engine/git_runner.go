package engine

import (
	"context"

	"branchup.dev/branchup/internal/git"
)

// GitRunner is the set of version-control verbs the engine needs. Keeping it
// an interface lets the engine run against a fake repository in tests.
type GitRunner interface {
	CurrentBranch() (string, error)
	LocalBranches() ([]string, error)
	Remote() string

	IsWorkingTreeClean(ctx context.Context) (bool, error)
	Checkout(ctx context.Context, branchName string) error
	HasRemoteBranch(ctx context.Context, remote, branchName string) (bool, error)
	Pull(ctx context.Context, remote, branchName string) (git.PullResult, error)

	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)
	IsMergedInto(ctx context.Context, branchName, target string) (bool, error)

	Merge(ctx context.Context, ref string) (git.MergeResult, error)
	Rebase(ctx context.Context, onto string) (git.RebaseResult, error)
	Push(ctx context.Context, remote, branchName string) error

	PredictMergeConflict(ctx context.Context, ours, theirs string) (bool, error)
}

// NewGitRunner returns the standard GitRunner backed by the git package
func NewGitRunner() GitRunner {
	return &realGitRunner{}
}

type realGitRunner struct{}

func (r *realGitRunner) CurrentBranch() (string, error) {
	return git.GetCurrentBranch()
}

func (r *realGitRunner) LocalBranches() ([]string, error) {
	return git.GetAllBranchNames()
}

func (r *realGitRunner) Remote() string {
	return git.GetRemote()
}

func (r *realGitRunner) IsWorkingTreeClean(ctx context.Context) (bool, error) {
	return git.IsWorkingTreeClean(ctx)
}

func (r *realGitRunner) Checkout(ctx context.Context, branchName string) error {
	return git.CheckoutBranch(ctx, branchName)
}

func (r *realGitRunner) HasRemoteBranch(ctx context.Context, remote, branchName string) (bool, error) {
	return git.HasRemoteBranch(ctx, remote, branchName)
}

func (r *realGitRunner) Pull(ctx context.Context, remote, branchName string) (git.PullResult, error) {
	return git.PullBranch(ctx, remote, branchName)
}

func (r *realGitRunner) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	return git.IsAncestor(ctx, ancestor, descendant)
}

func (r *realGitRunner) IsMergedInto(ctx context.Context, branchName, target string) (bool, error) {
	return git.IsMergedInto(ctx, branchName, target)
}

func (r *realGitRunner) Merge(ctx context.Context, ref string) (git.MergeResult, error) {
	return git.MergeBranch(ctx, ref)
}

func (r *realGitRunner) Rebase(ctx context.Context, onto string) (git.RebaseResult, error) {
	return git.RebaseOnto(ctx, onto)
}

func (r *realGitRunner) Push(ctx context.Context, remote, branchName string) error {
	return git.PushBranch(ctx, remote, branchName)
}

func (r *realGitRunner) PredictMergeConflict(ctx context.Context, ours, theirs string) (bool, error) {
	return git.PredictMergeConflict(ctx, ours, theirs)
}

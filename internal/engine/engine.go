// Package engine drives the per-branch update protocol: checkout, pull,
// merge-or-rebase, push, with every branch ending in exactly one result
// bucket. Processing is strictly sequential because the working tree can
// only hold one branch at a time.
package engine

import (
	"context"
	"fmt"

	"branchup.dev/branchup/internal/config"
	branchuperrors "branchup.dev/branchup/internal/errors"
	"branchup.dev/branchup/internal/git"
	"branchup.dev/branchup/internal/output"
	"branchup.dev/branchup/internal/stack"
)

// Engine updates local branches against the trunk
type Engine struct {
	git   GitRunner
	host  stack.PullRequestLookup
	cfg   *config.RunConfig
	splog *output.Splog
}

// New creates an engine. host may be nil, which disables label-based
// exclusion.
func New(gitRunner GitRunner, host stack.PullRequestLookup, cfg *config.RunConfig, splog *output.Splog) *Engine {
	return &Engine{
		git:   gitRunner,
		host:  host,
		cfg:   cfg,
		splog: splog,
	}
}

// Run processes every local branch: regular branches first, then stacked
// branches in dependency order. One branch's failure never aborts the run;
// a dirty working tree before the run does.
func (e *Engine) Run(ctx context.Context) (*Results, error) {
	clean, err := e.git.IsWorkingTreeClean(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean {
		return nil, branchuperrors.ErrDirtyWorkingTree
	}

	originalBranch, err := e.git.CurrentBranch()
	if err != nil {
		// Detached HEAD: nothing to restore to afterwards
		e.splog.Warn("not on a branch; will not restore HEAD after the run")
		originalBranch = ""
	}

	names, err := e.git.LocalBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	branches := stack.Classify(ctx, names, stack.Rules{
		Trunk:                  e.cfg.Trunk,
		ExcludePatterns:        e.cfg.ExcludePatterns,
		ExcludeLabels:          e.cfg.ExcludeLabels,
		BlockedLabel:           e.cfg.BlockedLabel,
		RequiredReviewDecision: e.cfg.RequiredReviewDecision,
	}, e.host)

	results := NewResults()

	var regular, stacked []stack.Branch
	for _, b := range branches {
		switch b.Kind {
		case stack.KindIgnored:
			e.splog.Debug("ignoring %s (%s)", b.Name, b.IgnoreReason)
			results.Add(b.Name, BucketIgnored, b.IgnoreReason)
		case stack.KindMalformed:
			results.Add(b.Name, BucketFailed, branchuperrors.NewMalformedStackedNameError(b.Name).Error())
		case stack.KindRegular:
			regular = append(regular, b)
		case stack.KindStacked:
			stacked = append(stacked, b)
		}
	}

	// Regular branches are fully processed before any stacked branch, so a
	// stacked branch always knows its parent's outcome.
	for _, b := range regular {
		e.splog.Info("Updating %s...", output.BranchName(b.Name))
		e.updateFromTrunk(ctx, b.Name, results)
	}

	parentOf := e.resolveParents(stacked, branches)

	ordered := stack.TopologicalSort(stacked, parentOf, func(name string) {
		e.splog.Warn("dependency cycle through %s; updating it without its parent constraint", name)
	})

	for _, b := range ordered {
		e.splog.Info("Updating %s...", output.BranchName(b.Name))
		parent := parentOf[b.Name]
		if parent != "" {
			if bucket, done := results.BucketOf(parent); done && (bucket == BucketFailed || bucket.IsConflict()) {
				results.Add(b.Name, BucketFailed, fmt.Sprintf("parent %s was not updated cleanly (%s)", parent, bucket))
				continue
			}
		}
		e.updateStacked(ctx, b, parent, results)
	}

	e.restoreOriginalBranch(ctx, originalBranch)

	return results, nil
}

// resolveParents maps each stacked branch to its parent branch name, warning
// about ambiguous matches. Unresolvable parents are simply absent from the
// map; those branches fall back to the merge-from-trunk path.
func (e *Engine) resolveParents(stacked, all []stack.Branch) map[string]string {
	parentOf := make(map[string]string, len(stacked))
	for _, b := range stacked {
		parent, ambiguous, found := stack.ResolveParent(b, all)
		if !found {
			e.splog.Warn("no local branch matches ticket %s for %s; merging %s instead",
				b.ParentTicket, b.Name, e.cfg.Trunk)
			continue
		}
		if ambiguous {
			e.splog.Warn("multiple stacked branches match ticket %s; using %s as parent of %s",
				b.ParentTicket, parent, b.Name)
		}
		parentOf[b.Name] = parent
	}
	return parentOf
}

func (e *Engine) restoreOriginalBranch(ctx context.Context, originalBranch string) {
	if originalBranch == "" || e.cfg.DryRun {
		return
	}
	current, err := e.git.CurrentBranch()
	if err == nil && current == originalBranch {
		return
	}
	if err := e.git.Checkout(ctx, originalBranch); err != nil {
		e.splog.Warn("failed to return to %s: %v", originalBranch, err)
	}
}

// updateFromTrunk runs the regular-branch protocol: checkout, pull, then
// merge the trunk in and push, short-circuiting when the branch already
// contains the trunk tip.
func (e *Engine) updateFromTrunk(ctx context.Context, name string, results *Results) {
	if e.cfg.DryRun {
		e.predictTrunkMerge(ctx, name, results)
		return
	}

	hasRemote, ok := e.checkoutAndPull(ctx, name, results)
	if !ok {
		return
	}
	e.mergeTrunk(ctx, name, hasRemote, results)
}

// updateStacked runs the stacked-branch protocol: rebase onto the parent
// while the parent is still active, merge the trunk once the parent has been
// merged away, and fall back to the regular path when no parent resolves.
func (e *Engine) updateStacked(ctx context.Context, b stack.Branch, parent string, results *Results) {
	if parent == "" {
		e.updateFromTrunk(ctx, b.Name, results)
		return
	}

	if e.cfg.DryRun {
		e.predictStacked(ctx, b.Name, parent, results)
		return
	}

	hasRemote, ok := e.checkoutAndPull(ctx, b.Name, results)
	if !ok {
		return
	}

	merged, err := e.git.IsMergedInto(ctx, parent, e.cfg.Trunk)
	if err != nil {
		results.Add(b.Name, BucketFailed, fmt.Sprintf("failed to inspect parent %s: %v", parent, err))
		return
	}

	if merged {
		// Parent is fully in the trunk; rebasing onto it would replay
		// history the trunk already has. Merge the trunk like a regular
		// branch instead.
		e.splog.Debug("parent %s of %s is merged into %s", parent, b.Name, e.cfg.Trunk)
		e.mergeTrunk(ctx, b.Name, hasRemote, results)
		return
	}

	result, err := e.git.Rebase(ctx, parent)
	if err != nil {
		results.Add(b.Name, BucketFailed, fmt.Sprintf("rebase onto %s: %v", parent, err))
		return
	}
	if result == git.RebaseConflict {
		results.Add(b.Name, BucketRebaseConflict, fmt.Sprintf("conflicts rebasing onto %s", parent))
		return
	}

	// Rewritten history needs a force-push the user must review; never
	// pushed automatically.
	results.Add(b.Name, BucketRebased, fmt.Sprintf("rebased onto %s; review and force-push manually", parent))
}

// checkoutAndPull performs the CHECKOUT and PULL states. Returns ok=false
// after recording a failed outcome.
func (e *Engine) checkoutAndPull(ctx context.Context, name string, results *Results) (hasRemote, ok bool) {
	if err := e.git.Checkout(ctx, name); err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("checkout: %v", err))
		return false, false
	}

	remote := e.git.Remote()
	hasRemote, err := e.git.HasRemoteBranch(ctx, remote, name)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("remote query: %v", err))
		return false, false
	}

	if !hasRemote {
		e.splog.Warn("%s has no remote counterpart; skipping pull", name)
		return false, true
	}

	if _, err := e.git.Pull(ctx, remote, name); err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("pull: %v", err))
		return true, false
	}
	return true, true
}

// mergeTrunk performs the DECIDE/MERGE/PUSH states of the regular path for
// an already checked-out branch.
func (e *Engine) mergeTrunk(ctx context.Context, name string, hasRemote bool, results *Results) {
	current, err := e.git.IsAncestor(ctx, e.cfg.Trunk, name)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("ancestor check: %v", err))
		return
	}
	if current {
		results.Add(name, BucketSuccessful, fmt.Sprintf("already contains %s", e.cfg.Trunk))
		return
	}

	result, err := e.git.Merge(ctx, e.cfg.Trunk)
	if err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("merge %s: %v", e.cfg.Trunk, err))
		return
	}
	if result == git.MergeConflict {
		results.Add(name, BucketMergeConflict, fmt.Sprintf("conflicts merging %s", e.cfg.Trunk))
		return
	}

	if e.cfg.NoPush {
		results.Add(name, BucketSuccessful, fmt.Sprintf("merged %s (push skipped)", e.cfg.Trunk))
		return
	}
	if !hasRemote {
		results.Add(name, BucketSuccessful, fmt.Sprintf("merged %s (no remote counterpart)", e.cfg.Trunk))
		return
	}

	if err := e.git.Push(ctx, e.git.Remote(), name); err != nil {
		results.Add(name, BucketFailed, fmt.Sprintf("push: %v", err))
		return
	}
	results.Add(name, BucketSuccessful, fmt.Sprintf("merged %s and pushed", e.cfg.Trunk))
}

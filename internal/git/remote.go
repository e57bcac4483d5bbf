package git

import (
	"context"
	"fmt"
)

// GetRemote returns the default remote name (usually "origin")
func GetRemote() string {
	remote, err := RunGitCommand("config", "--get", "remote.pushDefault")
	if err == nil && remote != "" {
		return remote
	}
	return "origin"
}

// HasRemoteBranch reports whether a branch exists on the remote.
// Asks the remote directly; falls back to the local remote-tracking ref when
// the remote is unreachable.
func HasRemoteBranch(ctx context.Context, remote, branchName string) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-remote", "--heads", remote, branchName)
	if err == nil {
		return output != "", nil
	}

	// Offline fallback: trust the last-fetched remote-tracking ref
	ref := fmt.Sprintf("refs/remotes/%s/%s", remote, branchName)
	_, refErr := RunGitCommandWithContext(ctx, "show-ref", "--verify", "--quiet", ref)
	if refErr == nil {
		return true, nil
	}
	if exitCode(refErr) == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed to query remote branch %s/%s: %w", remote, branchName, err)
}

// GetRemoteURL returns the fetch URL configured for a remote
func GetRemoteURL(remote string) (string, error) {
	url, err := RunGitCommand("remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get URL for remote %s: %w", remote, err)
	}
	return url, nil
}

// Package errors provides sentinel errors and custom error types for the branchup application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrDirtyWorkingTree indicates uncommitted changes in the working tree
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")

	// ErrAbortUnclean indicates that aborting a merge or rebase left the
	// working tree with staged or unstaged changes
	ErrAbortUnclean = errors.New("abort left working tree unclean")

	// ErrMalformedStackedName indicates a branch under stacked/ that does not
	// have the stacked/<ticket>/<rest> shape
	ErrMalformedStackedName = errors.New("malformed stacked branch name")
)

// MalformedStackedNameError reports a stacked branch name that fails validation
type MalformedStackedNameError struct {
	BranchName string
}

func (e *MalformedStackedNameError) Error() string {
	return fmt.Sprintf("branch %s does not match stacked/<ticket>/<rest>", e.BranchName)
}

// Is returns true if the target error is ErrMalformedStackedName
func (e *MalformedStackedNameError) Is(target error) bool {
	return target == ErrMalformedStackedName
}

// NewMalformedStackedNameError creates a new MalformedStackedNameError
func NewMalformedStackedNameError(branchName string) *MalformedStackedNameError {
	return &MalformedStackedNameError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMalformedStackedNameError(t *testing.T) {
	t.Parallel()

	err := NewMalformedStackedNameError("stacked/br1")
	require.ErrorIs(t, err, ErrMalformedStackedName)
	require.Contains(t, err.Error(), "stacked/br1")
	require.Contains(t, err.Error(), "stacked/<ticket>/<rest>")
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("exit status 128")
	err := NewGitCommandError("git", []string{"merge", "main"}, "", "fatal: not something we can merge", underlying)

	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "merge")
	require.Contains(t, err.Error(), "fatal: not something we can merge")

	var gitErr *GitCommandError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &gitErr))
	require.Equal(t, "git", gitErr.Command)
}

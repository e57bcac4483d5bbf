package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockfileSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("unchanged lockfile", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "package-lock.json"), []byte(`{"v":1}`), 0600))

		snapshot := SnapshotLockfile(root, "package-lock.json")
		require.False(t, snapshot.Changed())
	})

	t.Run("modified lockfile", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		path := filepath.Join(root, "package-lock.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"v":1}`), 0600))

		snapshot := SnapshotLockfile(root, "package-lock.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"v":2}`), 0600))
		require.True(t, snapshot.Changed())
	})

	t.Run("missing lockfile stays unchanged", func(t *testing.T) {
		t.Parallel()
		snapshot := SnapshotLockfile(t.TempDir(), "package-lock.json")
		require.False(t, snapshot.Changed())
	})

	t.Run("lockfile appearing counts as changed", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		snapshot := SnapshotLockfile(root, "package-lock.json")
		require.NoError(t, os.WriteFile(filepath.Join(root, "package-lock.json"), []byte(`{}`), 0600))
		require.True(t, snapshot.Changed())
	})
}

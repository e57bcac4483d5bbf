// Package deps reinstalls package-manager dependencies when the lockfile
// changed over the course of a run.
package deps

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
)

// LockfileSnapshot captures the content hash of a lockfile at a point in time
type LockfileSnapshot struct {
	path string
	hash string
}

// SnapshotLockfile hashes the lockfile on the current branch. A missing
// lockfile is a valid snapshot (empty hash), so repos without one are a
// no-op end to end.
func SnapshotLockfile(repoRoot, lockfile string) LockfileSnapshot {
	path := filepath.Join(repoRoot, lockfile)
	return LockfileSnapshot{path: path, hash: hashFile(path)}
}

// Changed re-hashes the lockfile and reports whether it differs from the
// snapshot
func (s LockfileSnapshot) Changed() bool {
	return hashFile(s.path) != s.hash
}

func hashFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Install runs npm install in the repository root
func Install(ctx context.Context, repoRoot string) (string, error) {
	cmd := exec.CommandContext(ctx, "npm", "install")
	cmd.Dir = repoRoot

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

// Package git wraps git for branchup: read-only repository queries go through
// go-git, everything that mutates the working tree or talks to a remote
// shells out to the git binary through CommandRunner.
package git

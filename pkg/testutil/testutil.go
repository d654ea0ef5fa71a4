// Package testutil provides helpers for setting up isolated
// bootstrapper environments in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericsmacedo/dotfiles/pkg/paths"
)

// Env is an isolated home + repository pair for a test.
type Env struct {
	Home     string
	RepoRoot string
	Paths    *paths.Paths
}

// NewEnv creates a temporary home and repository and resolves Paths
// against them. HOME and SHELL are redirected for the duration of the
// test so nothing touches the real user environment.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	home := t.TempDir()
	repo := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/zsh")

	p, err := paths.New(repo)
	require.NoError(t, err)
	// keep download staging inside the sandbox as well
	p.StagingDir = filepath.Join(t.TempDir(), "staging")

	return &Env{Home: home, RepoRoot: repo, Paths: p}
}

// WriteConfig creates a file under the repo's configs directory.
func (e *Env) WriteConfig(t *testing.T, relPath, content string) string {
	t.Helper()

	path := filepath.Join(e.Paths.ConfigsDir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteBin creates an executable script under the repo's bin directory.
func (e *Env) WriteBin(t *testing.T, name string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(e.Paths.BinDir, 0o755))
	path := filepath.Join(e.Paths.BinDir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

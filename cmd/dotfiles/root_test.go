package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericsmacedo/dotfiles/pkg/testutil"
)

func TestCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"link", "path", "bins", "install", "plugins",
		"configure", "install-all", "setup", "config", "version",
	} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestLinkCmdAgainstEmptyRepo(t *testing.T) {
	// Default entries whose sources are absent are skipped, so a bare
	// repository links cleanly.
	env := testutil.NewEnv(t)

	rootCmd.SetArgs([]string{"link", "--repo", env.RepoRoot})
	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestConfigInitCmd(t *testing.T) {
	env := testutil.NewEnv(t)

	rootCmd.SetArgs([]string{"config", "init", "--repo", env.RepoRoot})
	err := rootCmd.Execute()
	require.NoError(t, err)

	// A second init must refuse to overwrite.
	rootCmd.SetArgs([]string{"config", "init", "--repo", env.RepoRoot})
	err = rootCmd.Execute()
	require.Error(t, err)
}

package plugins_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ericsmacedo/dotfiles/pkg/commands/plugins"
	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/executor"
	"github.com/ericsmacedo/dotfiles/pkg/filesystem"
	"github.com/ericsmacedo/dotfiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallTmuxMissingTmux(t *testing.T) {
	env := testutil.NewEnv(t)

	// empty PATH: tmux cannot be found
	t.Setenv("PATH", env.Home)

	err := plugins.InstallTmux(context.Background(), plugins.Options{
		FS:    filesystem.NewOS(),
		Paths: env.Paths,
		Exec:  executor.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolMissing))
	assert.Contains(t, err.Error(), "tmux")

	// nothing was cloned
	_, serr := os.Stat(filepath.Join(env.Home, ".tmux"))
	assert.True(t, os.IsNotExist(serr))
}

func TestInstallTmuxMissingGit(t *testing.T) {
	env := testutil.NewEnv(t)

	// a PATH with a fake tmux but no git
	binDir := filepath.Join(env.Home, "fakebin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "tmux"), []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", binDir)

	err := plugins.InstallTmux(context.Background(), plugins.Options{
		FS:    filesystem.NewOS(),
		Paths: env.Paths,
		Exec:  executor.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolMissing))
	assert.Contains(t, err.Error(), "git")
}

package install_test

import (
	"context"
	"os"
	"testing"

	"github.com/ericsmacedo/dotfiles/pkg/commands/install"
	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/executor"
	"github.com/ericsmacedo/dotfiles/pkg/filesystem"
	"github.com/ericsmacedo/dotfiles/pkg/getter"
	"github.com/ericsmacedo/dotfiles/pkg/platform"
	"github.com/ericsmacedo/dotfiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallUnsupportedComboFailsFast(t *testing.T) {
	env := testutil.NewEnv(t)

	opts := install.Options{
		FS:       filesystem.NewOS(),
		Paths:    env.Paths,
		Platform: platform.Platform{OS: platform.OSLinux, Arch: platform.ArchARM64},
		Exec:     executor.New(),
		Getter:   getter.New(),
	}

	err := install.Install(context.Background(), install.Ripgrep, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))

	// no download, no placement, no directories created
	_, serr := os.Stat(env.Paths.LocalBin)
	assert.True(t, os.IsNotExist(serr), "no mutation before the platform check")
	_, serr = os.Stat(env.Paths.StagingDir)
	assert.True(t, os.IsNotExist(serr))
}

func TestInstallUnsupportedDarwinIntel(t *testing.T) {
	env := testutil.NewEnv(t)

	// darwin/x86_64 without brew on PATH: ripgrep and neovim resolve to
	// unsupported before any download is attempted.
	t.Setenv("PATH", env.Home)

	opts := install.Options{
		FS:       filesystem.NewOS(),
		Paths:    env.Paths,
		Platform: platform.Platform{OS: platform.OSDarwin, Arch: platform.ArchX8664},
		Exec:     executor.New(),
		Getter:   getter.New(),
	}

	err := install.Install(context.Background(), install.Ripgrep, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))

	err = install.Install(context.Background(), install.Neovim, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))
}

package path_test

import (
	"os"
	"strings"
	"testing"

	pathcmd "github.com/ericsmacedo/dotfiles/pkg/commands/path"
	"github.com/ericsmacedo/dotfiles/pkg/filesystem"
	"github.com/ericsmacedo/dotfiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	env := testutil.NewEnv(t)

	result, err := pathcmd.Ensure(pathcmd.Options{FS: filesystem.NewOS(), Paths: env.Paths})
	require.NoError(t, err)
	assert.True(t, result.Appended)

	info, err := os.Stat(env.Paths.LocalBin)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(env.Paths.Profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), env.Paths.LocalBin)
}

func TestEnsureIdempotent(t *testing.T) {
	env := testutil.NewEnv(t)
	opts := pathcmd.Options{FS: filesystem.NewOS(), Paths: env.Paths}

	first, err := pathcmd.Ensure(opts)
	require.NoError(t, err)
	assert.True(t, first.Appended)

	second, err := pathcmd.Ensure(opts)
	require.NoError(t, err)
	assert.False(t, second.Appended)

	data, err := os.ReadFile(env.Paths.Profile)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), first.Line))
}

func TestEnsureDryRun(t *testing.T) {
	env := testutil.NewEnv(t)

	result, err := pathcmd.Ensure(pathcmd.Options{FS: filesystem.NewOS(), Paths: env.Paths, DryRun: true})
	require.NoError(t, err)
	assert.False(t, result.Appended)

	_, err = os.Stat(env.Paths.LocalBin)
	assert.True(t, os.IsNotExist(err), "dry run must not mutate")
	_, err = os.Stat(env.Paths.Profile)
	assert.True(t, os.IsNotExist(err))
}

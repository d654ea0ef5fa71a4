package bins_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ericsmacedo/dotfiles/pkg/commands/bins"
	"github.com/ericsmacedo/dotfiles/pkg/filesystem"
	"github.com/ericsmacedo/dotfiles/pkg/operations"
	"github.com/ericsmacedo/dotfiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExecutables(t *testing.T) {
	env := testutil.NewEnv(t)
	script := env.WriteBin(t, "sync-notes")

	results, err := bins.Link(bins.Options{FS: filesystem.NewOS(), Paths: env.Paths})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, operations.StatusLinked, results[0].Status)

	target, err := os.Readlink(filepath.Join(env.Paths.LocalBin, "sync-notes"))
	require.NoError(t, err)
	assert.Equal(t, script, target)
}

func TestLinkSkipsNonExecutables(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteBin(t, "runme")
	require.NoError(t, os.WriteFile(filepath.Join(env.Paths.BinDir, "README.md"), []byte("docs"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(env.Paths.BinDir, "subdir"), 0o755))

	results, err := bins.Link(bins.Options{FS: filesystem.NewOS(), Paths: env.Paths})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "runme", results[0].Name)
}

func TestLinkMissingBinDir(t *testing.T) {
	env := testutil.NewEnv(t)

	results, err := bins.Link(bins.Options{FS: filesystem.NewOS(), Paths: env.Paths})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLinkDryRun(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteBin(t, "runme")

	results, err := bins.Link(bins.Options{FS: filesystem.NewOS(), Paths: env.Paths, DryRun: true})
	require.NoError(t, err)
	require.Len(t, results, 1)

	_, err = os.Lstat(filepath.Join(env.Paths.LocalBin, "runme"))
	assert.True(t, os.IsNotExist(err))
}

func TestLinkIdempotent(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteBin(t, "runme")
	opts := bins.Options{FS: filesystem.NewOS(), Paths: env.Paths}

	_, err := bins.Link(opts)
	require.NoError(t, err)

	results, err := bins.Link(opts)
	require.NoError(t, err)
	assert.Equal(t, operations.StatusAlreadyLinked, results[0].Status)
}

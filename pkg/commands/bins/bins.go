// Package bins symlinks every executable file in the repository's bin
// directory into the managed binary directory.
package bins

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/operations"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// Options defines the inputs for Link.
type Options struct {
	FS     types.FS
	Paths  *paths.Paths
	DryRun bool

	// Now stamps backup names; the zero value means time.Now.
	Now time.Time
}

// Result describes one linked script.
type Result struct {
	Name   string
	Source string
	Dest   string
	Status operations.LinkStatus
}

// Link symlinks every regular executable file directly under the repo's
// bin directory into the managed binary directory. A missing bin
// directory is a no-op.
func Link(opts Options) ([]Result, error) {
	log := logging.GetLogger("commands.bins")

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	entries, err := opts.FS.ReadDir(opts.Paths.BinDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("binDir", opts.Paths.BinDir).Msg("No bin directory, nothing to link")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "reading %s", opts.Paths.BinDir)
	}

	if !opts.DryRun {
		if err := operations.EnsureDir(opts.FS, opts.Paths.LocalBin); err != nil {
			return nil, err
		}
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return results, errors.Wrapf(err, errors.ErrFileAccess, "inspecting %s", entry.Name())
		}
		if info.Mode()&0o111 == 0 {
			log.Debug().Str("name", entry.Name()).Msg("Not executable, skipping")
			continue
		}

		source := filepath.Join(opts.Paths.BinDir, entry.Name())
		dest := filepath.Join(opts.Paths.LocalBin, entry.Name())

		if opts.DryRun {
			results = append(results, Result{Name: entry.Name(), Source: source, Dest: dest, Status: operations.StatusLinked})
			continue
		}

		linkResult, err := operations.Symlink(opts.FS, source, dest, opts.Paths.BackupRoot, now)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Name: entry.Name(), Source: source, Dest: dest, Status: linkResult.Status})
	}

	log.Info().Int("linked", len(results)).Msg("Linked repository executables")
	return results, nil
}

// Package link implements the declarative link reconciler: it walks the
// links document, filters entries by the current platform and applies
// each applicable entry through the filesystem primitives.
package link

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ericsmacedo/dotfiles/pkg/config"
	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/operations"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/platform"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// EntryStatus describes what happened to a single entry.
type EntryStatus string

const (
	// StatusLinked means a fresh symlink was created.
	StatusLinked EntryStatus = "linked"

	// StatusAlreadyLinked means the destination was already correct.
	StatusAlreadyLinked EntryStatus = "already-linked"

	// StatusBackedUp means a conflicting destination was displaced first.
	StatusBackedUp EntryStatus = "backed-up"

	// StatusSkipped means the entry's source does not exist; the entry
	// is passed over without failing the run.
	StatusSkipped EntryStatus = "skipped"

	// StatusFailed means the symlink or append operation errored.
	StatusFailed EntryStatus = "failed"
)

// EntryResult is the per-entry outcome of a reconciliation pass.
type EntryResult struct {
	Entry      config.LinkEntry
	Source     string
	Dest       string
	Status     EntryStatus
	BackupPath string
	Appended   bool
	Err        error
}

// Options defines the inputs for Run.
type Options struct {
	FS       types.FS
	Paths    *paths.Paths
	Platform platform.Platform
	Document *config.Document
	DryRun   bool

	// Now stamps backup names; the zero value means time.Now.
	Now time.Time
}

// Run reconciles every entry applicable to the current platform.
// Entries are independent: a failing entry is recorded and the pass
// continues, leaving a mixed state that is safe to re-run. The first
// entry error (if any) is returned after the full pass.
func Run(opts Options) ([]EntryResult, error) {
	log := logging.GetLogger("commands.link")

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var results []EntryResult
	var firstErr error

	for _, entry := range opts.Document.Links {
		if !opts.Platform.Matches(entry.Platform) {
			log.Debug().Str("src", entry.Src).Strs("platform", entry.Platform).
				Msg("Entry not applicable to this platform")
			continue
		}

		result := apply(opts, entry, now)
		if result.Err != nil && firstErr == nil {
			firstErr = result.Err
		}
		results = append(results, result)
	}

	log.Info().Int("entries", len(results)).Bool("dryRun", opts.DryRun).Msg("Reconciliation pass finished")
	return results, firstErr
}

func apply(opts Options, entry config.LinkEntry, now time.Time) EntryResult {
	log := logging.GetLogger("commands.link")

	source := filepath.Join(opts.Paths.ConfigsDir, entry.Src)
	dest := opts.Paths.ExpandHome(entry.Dst)
	result := EntryResult{Entry: entry, Source: source, Dest: dest}

	if _, err := opts.FS.Stat(source); err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("src", source).Msg("Source missing, skipping entry")
			result.Status = StatusSkipped
			return result
		}
		result.Status = StatusFailed
		result.Err = errors.Wrapf(err, errors.ErrFileAccess, "inspecting %s", source)
		return result
	}

	if opts.DryRun {
		result.Status = preview(opts, source, dest)
		log.Info().Str("dest", dest).Str("status", string(result.Status)).Msg("Would reconcile entry")
		return result
	}

	linkResult, err := operations.Symlink(opts.FS, source, dest, opts.Paths.BackupRoot, now)
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return result
	}
	result.Status = EntryStatus(linkResult.Status)
	result.BackupPath = linkResult.BackupPath

	if entry.Append != nil {
		file := opts.Paths.ExpandHome(entry.Append.File)
		appended, err := operations.AppendUniqueLine(opts.FS, file, entry.Append.Line)
		if err != nil {
			result.Status = StatusFailed
			result.Err = err
			return result
		}
		result.Appended = appended
	}

	return result
}

// preview computes the status a real run would report without mutating
// anything.
func preview(opts Options, source, dest string) EntryStatus {
	info, err := opts.FS.Lstat(dest)
	if err != nil {
		return StatusLinked
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := opts.FS.Readlink(dest); err == nil {
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(dest), target)
			}
			if filepath.Clean(target) == filepath.Clean(source) {
				return StatusAlreadyLinked
			}
		}
	}
	return StatusBackedUp
}

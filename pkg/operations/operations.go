// Package operations implements the filesystem primitives every command
// builds on: directory creation, backup-then-replace, idempotent
// symlinks and idempotent profile appends. All functions take an
// explicit types.FS and explicit paths and return outcome values, so
// callers can report exactly what happened.
package operations

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// TimestampFormat names backup copies: <name>.<timestamp>
const TimestampFormat = "20060102-150405"

// LinkStatus describes the outcome of a Symlink call.
type LinkStatus string

const (
	// StatusLinked means a new symlink was created at a previously empty path.
	StatusLinked LinkStatus = "linked"

	// StatusAlreadyLinked means the destination already pointed at the source.
	StatusAlreadyLinked LinkStatus = "already-linked"

	// StatusBackedUp means a conflicting destination was moved to the
	// backup root before the symlink was created.
	StatusBackedUp LinkStatus = "backed-up"
)

// LinkResult is the outcome of a Symlink call.
type LinkResult struct {
	Status     LinkStatus
	BackupPath string
}

// EnsureDir creates path and all missing ancestors. Pre-existing
// directories are a no-op.
func EnsureDir(fsys types.FS, path string) error {
	if err := fsys.MkdirAll(path, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating directory %s", path)
	}
	return nil
}

// Backup moves path into backupRoot under a timestamped name and
// returns the new location. It returns "" when path does not exist,
// checked with lstat so broken symlinks still count as existing.
// Whatever sat at path is always preserved, never deleted.
func Backup(fsys types.FS, path, backupRoot string, now time.Time) (string, error) {
	if _, err := fsys.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "inspecting %s", path)
	}

	if err := EnsureDir(fsys, backupRoot); err != nil {
		return "", err
	}

	dest := filepath.Join(backupRoot, fmt.Sprintf("%s.%s", filepath.Base(path), now.Format(TimestampFormat)))
	if err := fsys.Rename(path, dest); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "moving %s to %s", path, dest)
	}

	log := logging.GetLogger("operations")
	log.Info().Str("path", path).Str("backup", dest).Msg("Backed up existing path")
	return dest, nil
}

// Symlink links dest to source. A dest that already resolves to source
// is a no-op; anything else at dest is moved to the backup root first.
// Missing ancestor directories of dest are created on demand.
func Symlink(fsys types.FS, source, dest, backupRoot string, now time.Time) (LinkResult, error) {
	log := logging.GetLogger("operations")

	if err := EnsureDir(fsys, filepath.Dir(dest)); err != nil {
		return LinkResult{}, err
	}

	result := LinkResult{Status: StatusLinked}

	if info, err := fsys.Lstat(dest); err == nil {
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, rerr := fsys.Readlink(dest); rerr == nil && sameTarget(source, dest, target) {
				log.Debug().Str("dest", dest).Str("source", source).Msg("Symlink already correct")
				return LinkResult{Status: StatusAlreadyLinked}, nil
			}
		}

		backupPath, berr := Backup(fsys, dest, backupRoot, now)
		if berr != nil {
			return LinkResult{}, berr
		}
		result.Status = StatusBackedUp
		result.BackupPath = backupPath
	}

	if err := fsys.Symlink(source, dest); err != nil {
		return LinkResult{}, errors.Wrapf(err, errors.ErrSymlinkCreate, "linking %s to %s", dest, source)
	}

	log.Info().Str("dest", dest).Str("source", source).Msg("Created symlink")
	return result, nil
}

// sameTarget reports whether an existing link target resolves to the
// same location as source. Relative targets are resolved against the
// link's own directory.
func sameTarget(source, dest, target string) bool {
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(dest), target)
	}
	return filepath.Clean(target) == filepath.Clean(source)
}

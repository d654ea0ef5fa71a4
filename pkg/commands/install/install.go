// Package install downloads and installs the supported CLI tools for
// the current platform, preferring Homebrew on macOS when present.
package install

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/executor"
	"github.com/ericsmacedo/dotfiles/pkg/getter"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/operations"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/platform"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// fzf's brew formula ships a post-install hook that wires key bindings.
var fzfBrewHooks = []string{
	"/opt/homebrew/opt/fzf/install",
	"/usr/local/opt/fzf/install",
}

// Options defines the shared inputs for tool installation.
type Options struct {
	FS       types.FS
	Paths    *paths.Paths
	Platform platform.Platform
	Exec     *executor.Executor
	Getter   *getter.Client
}

// Install installs a single tool. The strategy is resolved before any
// filesystem mutation, so unsupported combinations fail fast without
// leaving anything behind.
func Install(ctx context.Context, tool Tool, opts Options) error {
	log := logging.GetLogger("commands.install")
	log.Info().Str("tool", string(tool)).Str("platform", opts.Platform.String()).Msg("Installing tool")

	if url := tool.scriptURL(); url != "" {
		if err := opts.Exec.RunShell(ctx, fmt.Sprintf("curl -LsSf %s | sh", url)); err != nil {
			return errors.Wrapf(err, errors.ErrInstallFailed, "install script for %s", tool)
		}
		return nil
	}

	if opts.Platform.OS == platform.OSDarwin && opts.Exec.LookPath("brew") {
		return installBrew(ctx, tool, opts)
	}

	pl, err := tool.downloadPlan(opts.Platform)
	if err != nil {
		return err
	}

	if err := operations.EnsureDir(opts.FS, opts.Paths.LocalBin); err != nil {
		return err
	}

	staging := filepath.Join(opts.Paths.StagingDir, string(tool))
	if err := operations.EnsureDir(opts.FS, staging); err != nil {
		return err
	}
	defer func() {
		// cleanup is best effort
		if err := opts.FS.RemoveAll(staging); err != nil {
			log.Warn().Err(err).Str("staging", staging).Msg("Failed to clean up staging directory")
		}
	}()

	dest := filepath.Join(opts.Paths.LocalBin, tool.Binary())

	switch pl.Method {
	case methodBinary:
		if err := opts.Getter.FetchFile(ctx, pl.URL, dest); err != nil {
			return errors.Wrapf(err, errors.ErrDownloadFailed, "downloading %s", tool)
		}
		if err := opts.FS.Chmod(dest, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrPlacementFailed, "marking %s executable", dest)
		}

	case methodArchive:
		extracted, err := fetchAndExtract(ctx, tool, pl, staging, opts)
		if err != nil {
			return err
		}
		if err := place(opts.FS, filepath.Join(extracted, pl.Inner), dest); err != nil {
			return errors.Wrapf(err, errors.ErrPlacementFailed, "placing %s", tool.Binary())
		}

	case methodTree:
		extracted, err := fetchAndExtract(ctx, tool, pl, staging, opts)
		if err != nil {
			return err
		}
		installRoot := filepath.Join(opts.Paths.Home, ".local", string(tool))
		if err := opts.FS.RemoveAll(installRoot); err != nil {
			return errors.Wrapf(err, errors.ErrPlacementFailed, "clearing %s", installRoot)
		}
		if err := opts.FS.Rename(filepath.Join(extracted, pl.TreeDir), installRoot); err != nil {
			return errors.Wrapf(err, errors.ErrPlacementFailed, "moving tree to %s", installRoot)
		}
		if _, err := operations.Symlink(opts.FS,
			filepath.Join(installRoot, pl.Inner), dest,
			opts.Paths.BackupRoot, time.Now()); err != nil {
			return errors.Wrapf(err, errors.ErrPlacementFailed, "linking %s", dest)
		}
	}

	log.Info().Str("tool", string(tool)).Str("binary", dest).Msg("Tool installed")
	return nil
}

// fetchAndExtract downloads the plan's archive into staging and unpacks
// it, keeping download and extraction failures distinguishable.
func fetchAndExtract(ctx context.Context, tool Tool, pl *plan, staging string, opts Options) (string, error) {
	archive := filepath.Join(staging, pl.Archive)
	if err := opts.Getter.FetchFile(ctx, pl.URL, archive); err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "downloading %s", tool)
	}

	extracted := filepath.Join(staging, "extracted")
	if err := opts.Getter.ExtractTarGz(archive, extracted); err != nil {
		return "", errors.Wrapf(err, errors.ErrExtractFailed, "extracting %s", pl.Archive)
	}
	return extracted, nil
}

// place moves an extracted executable to its destination, replacing any
// previous installation of the same binary.
func place(fsys types.FS, src, dest string) error {
	if _, err := fsys.Lstat(dest); err == nil {
		if err := fsys.Remove(dest); err != nil {
			return err
		}
	}
	if err := fsys.Rename(src, dest); err != nil {
		return err
	}
	return fsys.Chmod(dest, 0o755)
}

// installBrew defers to Homebrew for the tool.
func installBrew(ctx context.Context, tool Tool, opts Options) error {
	log := logging.GetLogger("commands.install")
	formula := tool.formula()

	if err := opts.Exec.Run(ctx, "brew", "install", formula); err != nil {
		return errors.Wrapf(err, errors.ErrInstallFailed, "brew install %s", formula)
	}

	if tool == Fzf {
		for _, hook := range fzfBrewHooks {
			if _, err := opts.FS.Stat(hook); err == nil {
				opts.Exec.BestEffort(ctx, "sh", "-c", "yes | "+hook)
				break
			}
		}
	}

	log.Info().Str("formula", formula).Msg("Installed via Homebrew")
	return nil
}

// InstallAll installs every supported tool. One tool's failure does not
// abort the others; failures are collected and reported at the end.
func InstallAll(ctx context.Context, opts Options) error {
	log := logging.GetLogger("commands.install")

	var failed int
	var firstErr error
	for _, tool := range All() {
		if err := Install(ctx, tool, opts); err != nil {
			log.Error().Err(err).Str("tool", string(tool)).Msg("Tool installation failed")
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if failed > 0 {
		return errors.Wrapf(firstErr, errors.ErrInstallFailed,
			"%d of %d tools failed to install", failed, len(All()))
	}
	return nil
}

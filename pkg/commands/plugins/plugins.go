// Package plugins bootstraps the tmux plugin manager: clone tpm if it
// is not present, then run its installer inside a throwaway session.
package plugins

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/executor"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

const (
	tpmRepo = "https://github.com/tmux-plugins/tpm"

	// installSession is the detached session tpm's installer runs in.
	installSession = "dotfiles-tpm-install"
)

// Options defines the inputs for InstallTmux.
type Options struct {
	FS    types.FS
	Paths *paths.Paths
	Exec  *executor.Executor
}

// InstallTmux clones tpm into ~/.tmux/plugins/tpm and runs its plugin
// installer. Both tmux and git must be present; their absence is fatal
// with a remediation hint, raised before anything is mutated.
func InstallTmux(ctx context.Context, opts Options) error {
	log := logging.GetLogger("commands.plugins")

	if !opts.Exec.LookPath("tmux") {
		return errors.New(errors.ErrToolMissing,
			"tmux not found on PATH; install tmux first (e.g. via your package manager), then re-run")
	}
	if !opts.Exec.LookPath("git") {
		return errors.New(errors.ErrToolMissing,
			"git not found on PATH; install git first, then re-run")
	}

	tpmDir := filepath.Join(opts.Paths.Home, ".tmux", "plugins", "tpm")
	if _, err := opts.FS.Stat(tpmDir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "inspecting %s", tpmDir)
		}
		if err := opts.Exec.Run(ctx, "git", "clone", "--depth", "1", tpmRepo, tpmDir); err != nil {
			return err
		}
		log.Info().Str("dir", tpmDir).Msg("Cloned tmux plugin manager")
	} else {
		log.Debug().Str("dir", tpmDir).Msg("tpm already present")
	}

	// tpm's installer needs a running server; use a throwaway session
	// and tear it down best-effort afterwards.
	if err := opts.Exec.Run(ctx, "tmux", "new-session", "-d", "-s", installSession); err != nil {
		return err
	}
	defer opts.Exec.BestEffort(ctx, "tmux", "kill-session", "-t", installSession)

	if err := opts.Exec.Run(ctx, filepath.Join(tpmDir, "bin", "install_plugins")); err != nil {
		return err
	}

	log.Info().Msg("tmux plugins installed")
	return nil
}

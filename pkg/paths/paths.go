// Package paths provides centralized path handling for the bootstrapper.
// Every location the commands touch is resolved here exactly once per
// run and passed down, so no command reaches for ambient process state
// beyond the home directory and the repository root.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Directory and file names fixed by convention
const (
	// ConfigsDirName is the repository subdirectory holding config sources
	ConfigsDirName = "configs"

	// BinDirName is the repository subdirectory holding local executables
	BinDirName = "bin"

	// BackupDirName is the backup root under the home directory
	BackupDirName = ".dotfiles_backup"

	// LinksFileTOML is the preferred name of the links document
	LinksFileTOML = "links.toml"

	// LinksFileYAML is the YAML fallback name of the links document
	LinksFileYAML = "links.yaml"
)

// Paths holds every location used by the commands.
type Paths struct {
	// Home is the user's home directory.
	Home string

	// RepoRoot is the root of the dotfiles repository.
	RepoRoot string

	// ConfigsDir is <RepoRoot>/configs, the root for link entry sources.
	ConfigsDir string

	// BinDir is <RepoRoot>/bin, holding repo-local executables.
	BinDir string

	// LocalBin is the managed binary directory (~/.local/bin).
	LocalBin string

	// BackupRoot receives timestamped copies of displaced files.
	BackupRoot string

	// Profile is the shell profile file chosen from $SHELL.
	Profile string

	// StagingDir is the scratch area for tool downloads.
	StagingDir string
}

// New resolves all paths for this run. repoRoot may be empty, in which
// case the current working directory is used.
func New(repoRoot string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	if repoRoot == "" {
		repoRoot, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}
	repoRoot, err = filepath.Abs(repoRoot)
	if err != nil {
		return nil, err
	}

	return &Paths{
		Home:       home,
		RepoRoot:   repoRoot,
		ConfigsDir: filepath.Join(repoRoot, ConfigsDirName),
		BinDir:     filepath.Join(repoRoot, BinDirName),
		LocalBin:   filepath.Join(home, ".local", "bin"),
		BackupRoot: filepath.Join(home, BackupDirName),
		Profile:    ProfileFor(os.Getenv("SHELL"), home),
		StagingDir: filepath.Join(xdg.CacheHome, "dotfiles", "staging"),
	}, nil
}

// ProfileFor picks the shell profile file for the given $SHELL value.
// zsh gets ~/.zshrc, everything else falls back to ~/.bashrc.
func ProfileFor(shell, home string) string {
	if strings.HasSuffix(shell, "zsh") {
		return filepath.Join(home, ".zshrc")
	}
	return filepath.Join(home, ".bashrc")
}

// ExpandHome expands a leading "~" or "~/" in path to the home directory.
func (p *Paths) ExpandHome(path string) string {
	if path == "~" {
		return p.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.Home, path[2:])
	}
	return path
}

package install

import (
	"fmt"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/platform"
)

// Tool enumerates the supported tools. The set is closed: installation
// strategies are resolved through exhaustive switches, never through a
// lookup table that can silently miss a case.
type Tool string

const (
	Fzf      Tool = "fzf"
	Fd       Tool = "fd"
	Ripgrep  Tool = "ripgrep"
	Neovim   Tool = "neovim"
	Starship Tool = "starship"
	Sheldon  Tool = "sheldon"
	Uv       Tool = "uv"
	Ruff     Tool = "ruff"
)

// Pinned release versions. Stated exactly as each project tags them,
// which is why some carry the leading v and some do not.
const (
	fzfVersion      = "0.66.0"
	fdVersion       = "v10.3.0"
	ripgrepVersion  = "15.0.0"
	neovimVersion   = "v0.11.3"
	starshipVersion = "v1.23.0"
	sheldonVersion  = "0.8.5"
)

// All returns every supported tool in install order.
func All() []Tool {
	return []Tool{Fzf, Fd, Ripgrep, Neovim, Starship, Sheldon, Uv, Ruff}
}

// Parse resolves a user-supplied name, accepting the binary names as
// aliases (rg, nvim).
func Parse(name string) (Tool, error) {
	switch name {
	case "fzf":
		return Fzf, nil
	case "fd":
		return Fd, nil
	case "ripgrep", "rg":
		return Ripgrep, nil
	case "neovim", "nvim":
		return Neovim, nil
	case "starship":
		return Starship, nil
	case "sheldon":
		return Sheldon, nil
	case "uv":
		return Uv, nil
	case "ruff":
		return Ruff, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown tool: %s", name)
}

// Binary returns the executable name the tool installs.
func (t Tool) Binary() string {
	switch t {
	case Fzf:
		return "fzf"
	case Fd:
		return "fd"
	case Ripgrep:
		return "rg"
	case Neovim:
		return "nvim"
	case Starship:
		return "starship"
	case Sheldon:
		return "sheldon"
	case Uv:
		return "uv"
	case Ruff:
		return "ruff"
	}
	return string(t)
}

// formula returns the Homebrew formula name.
func (t Tool) formula() string {
	switch t {
	case Neovim:
		return "neovim"
	case Ripgrep:
		return "ripgrep"
	default:
		return string(t)
	}
}

// scriptURL returns the official install-script URL for tools that are
// installed by piping a script to sh, or "" for download-based tools.
func (t Tool) scriptURL() string {
	switch t {
	case Uv:
		return "https://astral.sh/uv/install.sh"
	case Ruff:
		return "https://astral.sh/ruff/install.sh"
	}
	return ""
}

// method describes how a downloaded artifact is turned into a binary.
type method int

const (
	// methodArchive extracts a tar.gz and moves one executable out of it.
	methodArchive method = iota

	// methodBinary downloads a single executable directly.
	methodBinary

	// methodTree extracts a tar.gz and keeps the whole tree, symlinking
	// the executable out of it.
	methodTree
)

// plan is the resolved download strategy for one (tool, platform) pair.
type plan struct {
	Method method

	// URL of the artifact.
	URL string

	// Archive is the artifact's file name in the staging directory.
	Archive string

	// Inner is the executable's relative path inside the extracted tree
	// (methodArchive), or inside the installed tree (methodTree).
	Inner string

	// TreeDir is the extracted top-level directory kept as the install
	// root (methodTree only).
	TreeDir string
}

// unsupported builds the fail-fast error for a combination outside the
// tool's build matrix.
func unsupported(t Tool, p platform.Platform) error {
	return errors.Newf(errors.ErrUnsupportedPlatform, "%s has no build for %s", t, p).
		WithDetail("tool", string(t)).
		WithDetail("os", p.OS).
		WithDetail("arch", p.Arch)
}

// rustTriple maps the platform onto the target triples used by fd,
// starship and sheldon release assets. libc selects the linux flavor
// ("gnu" or "musl").
func rustTriple(p platform.Platform, libc string) string {
	arch := "x86_64"
	if p.Arch == platform.ArchARM64 {
		arch = "aarch64"
	}
	if p.OS == platform.OSDarwin {
		return arch + "-apple-darwin"
	}
	return fmt.Sprintf("%s-unknown-linux-%s", arch, libc)
}

// downloadPlan resolves the artifact for this tool on this platform,
// failing fast for combinations outside the support matrix. Script
// tools have no download plan.
func (t Tool) downloadPlan(p platform.Platform) (*plan, error) {
	switch t {
	case Fzf:
		arch := "amd64"
		if p.Arch == platform.ArchARM64 {
			arch = "arm64"
		}
		archive := fmt.Sprintf("fzf-%s-%s_%s.tar.gz", fzfVersion, p.OS, arch)
		return &plan{
			Method:  methodArchive,
			URL:     fmt.Sprintf("https://github.com/junegunn/fzf/releases/download/v%s/%s", fzfVersion, archive),
			Archive: archive,
			Inner:   "fzf",
		}, nil

	case Fd:
		dir := fmt.Sprintf("fd-%s-%s", fdVersion, rustTriple(p, "gnu"))
		return &plan{
			Method:  methodArchive,
			URL:     fmt.Sprintf("https://github.com/sharkdp/fd/releases/download/%s/%s.tar.gz", fdVersion, dir),
			Archive: dir + ".tar.gz",
			Inner:   dir + "/fd",
		}, nil

	case Ripgrep:
		var triple string
		switch {
		case p.OS == platform.OSLinux && p.Arch == platform.ArchX8664:
			triple = "x86_64-unknown-linux-musl"
		case p.OS == platform.OSDarwin && p.Arch == platform.ArchARM64:
			triple = "aarch64-apple-darwin"
		default:
			return nil, unsupported(t, p)
		}
		dir := fmt.Sprintf("ripgrep-%s-%s", ripgrepVersion, triple)
		return &plan{
			Method:  methodArchive,
			URL:     fmt.Sprintf("https://github.com/BurntSushi/ripgrep/releases/download/%s/%s.tar.gz", ripgrepVersion, dir),
			Archive: dir + ".tar.gz",
			Inner:   dir + "/rg",
		}, nil

	case Neovim:
		switch {
		case p.OS == platform.OSLinux && p.Arch == platform.ArchX8664:
			return &plan{
				Method: methodBinary,
				URL: fmt.Sprintf(
					"https://github.com/neovim/neovim-releases/releases/download/%s/nvim-linux-x86_64.appimage",
					neovimVersion),
			}, nil
		case p.OS == platform.OSDarwin && p.Arch == platform.ArchARM64:
			return &plan{
				Method:  methodTree,
				URL:     "https://github.com/neovim/neovim/releases/latest/download/nvim-macos-arm64.tar.gz",
				Archive: "nvim-macos-arm64.tar.gz",
				TreeDir: "nvim-macos-arm64",
				Inner:   "bin/nvim",
			}, nil
		default:
			return nil, unsupported(t, p)
		}

	case Starship:
		archive := fmt.Sprintf("starship-%s.tar.gz", rustTriple(p, "gnu"))
		return &plan{
			Method:  methodArchive,
			URL:     fmt.Sprintf("https://github.com/starship/starship/releases/download/%s/%s", starshipVersion, archive),
			Archive: archive,
			Inner:   "starship",
		}, nil

	case Sheldon:
		archive := fmt.Sprintf("sheldon-%s-%s.tar.gz", sheldonVersion, rustTriple(p, "musl"))
		return &plan{
			Method:  methodArchive,
			URL:     fmt.Sprintf("https://github.com/rossmacarthur/sheldon/releases/download/%s/%s", sheldonVersion, archive),
			Archive: archive,
			Inner:   "sheldon",
		}, nil
	}

	return nil, errors.Newf(errors.ErrInvalidInput, "no download plan for %s", t)
}

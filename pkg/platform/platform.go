// Package platform normalizes the host operating system and CPU
// architecture into the closed support matrix used to gate link entries
// and select tool installation strategies.
package platform

import (
	"runtime"
	"strings"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
)

// Canonical operating system names
const (
	OSDarwin = "darwin"
	OSLinux  = "linux"
)

// Canonical architecture names
const (
	ArchX8664 = "x86_64"
	ArchARM64 = "arm64"
)

// Platform is the canonical (operating system, architecture) pair.
// It is computed once per run and passed down; it is never persisted.
type Platform struct {
	OS   string
	Arch string
}

// Detect normalizes the host's reported OS and architecture.
// Hosts outside the {darwin, linux} x {x86_64, arm64} matrix are
// rejected before any filesystem mutation happens.
func Detect() (Platform, error) {
	return Normalize(runtime.GOOS, runtime.GOARCH)
}

// Normalize folds known aliases into the canonical pair.
func Normalize(osName, arch string) (Platform, error) {
	var p Platform

	switch strings.ToLower(osName) {
	case OSDarwin:
		p.OS = OSDarwin
	case OSLinux:
		p.OS = OSLinux
	default:
		return Platform{}, errors.Newf(errors.ErrUnsupportedPlatform,
			"unsupported operating system: %s", osName).
			WithDetail("os", osName)
	}

	switch strings.ToLower(arch) {
	case ArchX8664, "amd64":
		p.Arch = ArchX8664
	case ArchARM64, "aarch64":
		p.Arch = ArchARM64
	default:
		return Platform{}, errors.Newf(errors.ErrUnsupportedPlatform,
			"unsupported architecture: %s", arch).
			WithDetail("arch", arch)
	}

	return p, nil
}

// Matches reports whether the platform's OS component appears in the
// given list of platform names. Comparison is case-insensitive.
func (p Platform) Matches(names []string) bool {
	for _, name := range names {
		if strings.EqualFold(name, p.OS) {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

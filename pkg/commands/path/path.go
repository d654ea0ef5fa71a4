// Package path ensures the managed binary directory exists and is on
// the user's PATH via their shell profile.
package path

import (
	"fmt"

	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/operations"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// Options defines the inputs for Ensure.
type Options struct {
	FS     types.FS
	Paths  *paths.Paths
	DryRun bool
}

// Result reports what Ensure did.
type Result struct {
	Profile  string
	Line     string
	Appended bool
}

// Ensure creates the managed binary directory and appends the PATH
// export line to the shell profile. Repeated runs are no-ops.
func Ensure(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.path")

	line := fmt.Sprintf(`export PATH="%s:$PATH"`, opts.Paths.LocalBin)
	result := &Result{Profile: opts.Paths.Profile, Line: line}

	if opts.DryRun {
		log.Info().Str("profile", opts.Paths.Profile).Str("line", line).Msg("Would ensure PATH entry")
		return result, nil
	}

	if err := operations.EnsureDir(opts.FS, opts.Paths.LocalBin); err != nil {
		return nil, err
	}

	appended, err := operations.AppendUniqueLine(opts.FS, opts.Paths.Profile, line)
	if err != nil {
		return nil, err
	}
	result.Appended = appended

	log.Info().
		Str("localBin", opts.Paths.LocalBin).
		Str("profile", opts.Paths.Profile).
		Bool("appended", appended).
		Msg("Ensured managed binary directory on PATH")
	return result, nil
}

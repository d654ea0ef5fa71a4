package operations

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// AppendUniqueLine appends line (plus a newline) to file unless an
// existing line already matches it after whitespace trimming. A missing
// file is treated as empty. It reports whether the line was appended.
func AppendUniqueLine(fsys types.FS, file, line string) (bool, error) {
	log := logging.GetLogger("operations")

	if err := EnsureDir(fsys, filepath.Dir(file)); err != nil {
		return false, err
	}

	var content string
	data, err := fsys.ReadFile(file)
	switch {
	case err == nil:
		content = string(data)
	case os.IsNotExist(err):
		// missing file is empty
	default:
		return false, errors.Wrapf(err, errors.ErrProfileAppend, "reading %s", file)
	}

	want := strings.TrimSpace(line)
	for _, existing := range strings.Split(content, "\n") {
		if strings.TrimSpace(existing) == want {
			log.Debug().Str("file", file).Str("line", want).Msg("Line already present")
			return false, nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"

	if err := fsys.WriteFile(file, []byte(content), 0o644); err != nil {
		return false, errors.Wrapf(err, errors.ErrProfileAppend, "writing %s", file)
	}

	log.Info().Str("file", file).Str("line", want).Msg("Appended line")
	return true, nil
}

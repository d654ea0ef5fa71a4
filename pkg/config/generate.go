package config

import (
	"os"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
)

const sampleHeader = `# Declarative link configuration.
#
# Each [[links]] entry maps a source under ./configs to a destination,
# gated by platform. Destinations may use a leading ~ for the home
# directory. An optional [links.append] adds an export line to a
# profile file when the entry is applied.
#
# Uncomment and adjust the entries below to get started.

`

// Sample returns the starter document mirrored by the embedded defaults.
func Sample() *Document {
	return &Document{
		Settings: Settings{
			BackupRoot: "~/.dotfiles_backup",
			LocalBin:   "~/.local/bin",
		},
		Links: []LinkEntry{
			{Src: "nvim", Dst: "~/.config/nvim", Platform: []string{"darwin", "linux"}},
			{Src: "tmux/tmux.conf", Dst: "~/.tmux.conf", Platform: []string{"darwin", "linux"}},
			{Src: "zsh/.zshrc", Dst: "~/.zshrc", Platform: []string{"darwin", "linux"}},
			{Src: "alacritty", Dst: "~/.config/alacritty", Platform: []string{"darwin", "linux"}},
			{
				Src:      "python/.pythonrc.py",
				Dst:      "~/.pythonrc.py",
				Platform: []string{"darwin", "linux"},
				Append: &AppendSpec{
					Line: `export PYTHONSTARTUP="$HOME/.pythonrc.py"`,
					File: "~/.zshrc",
				},
			},
		},
	}
}

// GenerateSampleContent renders the sample document as TOML with every
// value line commented out, so a fresh file changes nothing until the
// user opts in.
func GenerateSampleContent() (string, error) {
	data, err := gotoml.Marshal(Sample())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigInvalid, "marshaling sample document")
	}
	return sampleHeader + commentOutValues(string(data)), nil
}

// WriteSample writes the sample document to path. It refuses to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigInvalid, "%s already exists", path)
	}

	content, err := GenerateSampleContent()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "writing %s", path)
	}
	return nil
}

// commentOutValues comments every assignment line, keeping blank lines,
// existing comments and section headers untouched.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

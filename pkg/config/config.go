// Package config loads the declarative links document that drives
// reconciliation. Loading is layered: embedded defaults first, then the
// repository's links.toml (or links.yaml), then DOTFILES_* environment
// overrides for the settings.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "DOTFILES_"

// AppendSpec declares a profile line that accompanies a link entry.
type AppendSpec struct {
	Line string `koanf:"line" toml:"line"`
	File string `koanf:"file" toml:"file"`
}

// LinkEntry is one declarative rule mapping a source under the configs
// root to a destination path, gated by platform.
type LinkEntry struct {
	Src      string      `koanf:"src" toml:"src"`
	Dst      string      `koanf:"dst" toml:"dst"`
	Platform []string    `koanf:"platform" toml:"platform"`
	Append   *AppendSpec `koanf:"append" toml:"append,omitempty"`
}

// Settings are the user-tunable locations. Each may also be set through
// DOTFILES_BACKUP_ROOT, DOTFILES_LOCAL_BIN and DOTFILES_PROFILE.
type Settings struct {
	BackupRoot string `koanf:"backup_root" toml:"backup_root"`
	LocalBin   string `koanf:"local_bin" toml:"local_bin"`
	Profile    string `koanf:"profile" toml:"profile,omitempty"`
}

// Document is the full links configuration.
type Document struct {
	Settings Settings    `koanf:"settings" toml:"settings"`
	Links    []LinkEntry `koanf:"links" toml:"links"`
}

// Load reads the links document for the given repository root.
func Load(repoRoot string) (*Document, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultLinks}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading embedded defaults")
	}

	for _, name := range []string{paths.LinksFileTOML, paths.LinksFileYAML} {
		path := filepath.Join(repoRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(name, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path)
		}
		log.Debug().Str("path", path).Msg("Loaded links document")
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling links document")
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// envKey maps DOTFILES_BACKUP_ROOT style variables onto settings keys.
// Unknown variables are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch key {
	case "backup_root", "local_bin", "profile":
		return "settings." + key
	}
	return ""
}

// Validate checks structural requirements on every entry.
func (d *Document) Validate() error {
	for i, entry := range d.Links {
		if entry.Src == "" {
			return errors.Newf(errors.ErrConfigInvalid, "links[%d]: src is required", i)
		}
		if entry.Dst == "" {
			return errors.Newf(errors.ErrConfigInvalid, "links[%d] (%s): dst is required", i, entry.Src)
		}
		if entry.Append != nil && (entry.Append.Line == "" || entry.Append.File == "") {
			return errors.Newf(errors.ErrConfigInvalid,
				"links[%d] (%s): append requires both line and file", i, entry.Src)
		}
	}
	return nil
}

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	home := t.TempDir()
	repo := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/usr/bin/zsh")

	p, err := New(repo)
	require.NoError(t, err)

	assert.Equal(t, home, p.Home)
	assert.Equal(t, repo, p.RepoRoot)
	assert.Equal(t, filepath.Join(repo, "configs"), p.ConfigsDir)
	assert.Equal(t, filepath.Join(repo, "bin"), p.BinDir)
	assert.Equal(t, filepath.Join(home, ".local", "bin"), p.LocalBin)
	assert.Equal(t, filepath.Join(home, ".dotfiles_backup"), p.BackupRoot)
	assert.Equal(t, filepath.Join(home, ".zshrc"), p.Profile)
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/zsh", ".zshrc"},
		{"/usr/local/bin/zsh", ".zshrc"},
		{"/bin/bash", ".bashrc"},
		{"/bin/sh", ".bashrc"},
		{"", ".bashrc"},
	}

	for _, tt := range tests {
		got := ProfileFor(tt.shell, "/home/u")
		assert.Equal(t, filepath.Join("/home/u", tt.want), got, "shell %q", tt.shell)
	}
}

func TestExpandHome(t *testing.T) {
	p := &Paths{Home: "/home/u"}

	assert.Equal(t, "/home/u", p.ExpandHome("~"))
	assert.Equal(t, "/home/u/.config/nvim", p.ExpandHome("~/.config/nvim"))
	assert.Equal(t, "/etc/hosts", p.ExpandHome("/etc/hosts"))
	assert.Equal(t, "relative/path", p.ExpandHome("relative/path"))
}

package platform

import (
	"testing"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		osName  string
		arch    string
		want    Platform
		wantErr bool
	}{
		{"linux amd64", "linux", "amd64", Platform{OSLinux, ArchX8664}, false},
		{"linux x86_64", "linux", "x86_64", Platform{OSLinux, ArchX8664}, false},
		{"linux aarch64", "linux", "aarch64", Platform{OSLinux, ArchARM64}, false},
		{"darwin arm64", "darwin", "arm64", Platform{OSDarwin, ArchARM64}, false},
		{"mixed case", "Darwin", "ARM64", Platform{OSDarwin, ArchARM64}, false},
		{"windows", "windows", "amd64", Platform{}, true},
		{"weird arch", "linux", "mips64", Platform{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.osName, tt.arch)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedPlatform))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect(t *testing.T) {
	// The test host is one of the supported platforms, otherwise the
	// whole suite would not be running here in the first place.
	p, err := Detect()
	require.NoError(t, err)
	assert.NotEmpty(t, p.OS)
	assert.NotEmpty(t, p.Arch)
}

func TestMatches(t *testing.T) {
	p := Platform{OS: OSLinux, Arch: ArchX8664}

	assert.True(t, p.Matches([]string{"linux"}))
	assert.True(t, p.Matches([]string{"darwin", "Linux"}))
	assert.False(t, p.Matches([]string{"darwin"}))
	assert.False(t, p.Matches(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "darwin/arm64", Platform{OSDarwin, ArchARM64}.String())
}

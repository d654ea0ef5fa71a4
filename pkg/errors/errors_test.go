package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrUnsupportedPlatform, "no build for this host")
	assert.Equal(t, ErrUnsupportedPlatform, err.Code)
	assert.Equal(t, "[UNSUPPORTED_PLATFORM] no build for this host", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrDownloadFailed, "fetching %s", "fzf")
	assert.Equal(t, "[DOWNLOAD_FAILED] fetching fzf", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("connection reset")
	err := Wrap(inner, ErrDownloadFailed, "fetching archive")

	require.NotNil(t, err)
	assert.Equal(t, inner, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrDownloadFailed, "fetching archive"))
	assert.Nil(t, Wrapf(nil, ErrDownloadFailed, "fetching %s", "fzf"))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrExtractFailed, "bad archive")
	wrapped := fmt.Errorf("install: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrExtractFailed))
	assert.False(t, IsErrorCode(wrapped, ErrDownloadFailed))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrExtractFailed))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrPlacementFailed, GetErrorCode(New(ErrPlacementFailed, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestErrorsIs(t *testing.T) {
	a := New(ErrToolMissing, "tmux not found")
	b := New(ErrToolMissing, "different message")
	assert.True(t, errors.Is(a, b))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrUnsupportedPlatform, "combo").
		WithDetail("os", "plan9").
		WithDetail("arch", "mips")
	assert.Equal(t, "plan9", err.Details["os"])
	assert.Equal(t, "mips", err.Details["arch"])
}

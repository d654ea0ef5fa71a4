package executor

import (
	"context"
	"testing"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuietSuccess(t *testing.T) {
	e := New()
	require.NoError(t, e.RunQuiet(context.Background(), "true"))
}

func TestRunQuietFailure(t *testing.T) {
	e := New()
	err := e.RunQuiet(context.Background(), "false")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	assert.Contains(t, err.Error(), "false")
}

func TestRunShell(t *testing.T) {
	e := New()
	require.NoError(t, e.RunShell(context.Background(), "exit 0"))
	require.Error(t, e.RunShell(context.Background(), "exit 3"))
}

func TestBestEffortSwallowsFailure(t *testing.T) {
	e := New()
	// must not panic or propagate
	e.BestEffort(context.Background(), "false")
}

func TestLookPath(t *testing.T) {
	e := New()
	assert.True(t, e.LookPath("sh"))
	assert.False(t, e.LookPath("definitely-not-a-real-binary-name"))
}

// Package executor wraps external process invocation. Every command the
// bootstrapper shells out to (brew, git, tmux, install scripts) goes
// through here so invocations are logged uniformly and failures carry
// the originating command in a structured error.
package executor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
)

// Executor runs external commands sequentially, blocking until each
// completes.
type Executor struct {
	log zerolog.Logger
}

// New creates an Executor.
func New() *Executor {
	return &Executor{log: logging.GetLogger("executor")}
}

// Run executes the command, streaming its output to the user's
// terminal. A non-zero exit is returned as a COMMAND_FAILED error.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s %s", name, strings.Join(args, " "))
	}
	return nil
}

// RunQuiet executes the command with its combined output captured. On
// failure the output is attached to the error for diagnosis.
func (e *Executor) RunQuiet(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s %s", name, strings.Join(args, " ")).
			WithDetail("output", strings.TrimSpace(string(output)))
	}

	e.log.Debug().Str("command", name).Str("output", strings.TrimSpace(string(output))).Msg("Command finished")
	return nil
}

// RunShell executes a shell pipeline via sh -c, streaming output.
func (e *Executor) RunShell(ctx context.Context, script string) error {
	return e.Run(ctx, "sh", "-c", script)
}

// BestEffort runs the command and logs a warning instead of failing.
// Used for non-critical hooks like installer post-install scripts and
// session teardown.
func (e *Executor) BestEffort(ctx context.Context, name string, args ...string) {
	if err := e.RunQuiet(ctx, name, args...); err != nil {
		e.log.Warn().Err(err).Str("command", name).Msg("Best-effort command failed, continuing")
	}
}

// LookPath reports whether name is available on PATH.
func (e *Executor) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

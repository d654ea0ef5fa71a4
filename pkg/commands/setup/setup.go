// Package setup provides the composite entry points. A Runner executes
// named tasks strictly in declared order and guarantees each task runs
// at most once per invocation, even when reachable through several
// composites.
package setup

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ericsmacedo/dotfiles/pkg/commands/bins"
	"github.com/ericsmacedo/dotfiles/pkg/commands/install"
	"github.com/ericsmacedo/dotfiles/pkg/commands/link"
	pathcmd "github.com/ericsmacedo/dotfiles/pkg/commands/path"
	"github.com/ericsmacedo/dotfiles/pkg/commands/plugins"
	"github.com/ericsmacedo/dotfiles/pkg/config"
	"github.com/ericsmacedo/dotfiles/pkg/errors"
	"github.com/ericsmacedo/dotfiles/pkg/executor"
	"github.com/ericsmacedo/dotfiles/pkg/getter"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/platform"
	"github.com/ericsmacedo/dotfiles/pkg/types"
)

// Task is one named unit of work within a composite.
type Task struct {
	Name string
	Run  func() error
}

// Runner executes tasks sequentially, each at most once.
type Runner struct {
	log  zerolog.Logger
	done map[string]bool
}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{
		log:  logging.GetLogger("commands.setup"),
		done: make(map[string]bool),
	}
}

// Run executes the given tasks in order. A task already run by this
// Runner is skipped. The first failure halts the remaining tasks.
func (r *Runner) Run(tasks ...Task) error {
	for _, task := range tasks {
		if r.done[task.Name] {
			r.log.Debug().Str("task", task.Name).Msg("Task already ran this invocation, skipping")
			continue
		}
		r.done[task.Name] = true

		r.log.Info().Str("task", task.Name).Msg("Running task")
		if err := task.Run(); err != nil {
			return errors.Wrapf(err, errors.ErrTaskFailed, "task %s", task.Name)
		}
	}
	return nil
}

// Options carries the shared dependencies for the composites.
type Options struct {
	FS       types.FS
	Paths    *paths.Paths
	Platform platform.Platform
	Document *config.Document
	Exec     *executor.Executor
	Getter   *getter.Client
	DryRun   bool
}

func ensurePathTask(opts Options) Task {
	return Task{Name: "ensure-path", Run: func() error {
		_, err := pathcmd.Ensure(pathcmd.Options{FS: opts.FS, Paths: opts.Paths, DryRun: opts.DryRun})
		return err
	}}
}

func linkConfigsTask(opts Options) Task {
	return Task{Name: "link-configs", Run: func() error {
		_, err := link.Run(link.Options{
			FS:       opts.FS,
			Paths:    opts.Paths,
			Platform: opts.Platform,
			Document: opts.Document,
			DryRun:   opts.DryRun,
		})
		return err
	}}
}

func linkBinsTask(opts Options) Task {
	return Task{Name: "link-bins", Run: func() error {
		_, err := bins.Link(bins.Options{FS: opts.FS, Paths: opts.Paths, DryRun: opts.DryRun})
		return err
	}}
}

func installTask(ctx context.Context, tool install.Tool, opts Options) Task {
	return Task{Name: "install-" + string(tool), Run: func() error {
		return install.Install(ctx, tool, install.Options{
			FS:       opts.FS,
			Paths:    opts.Paths,
			Platform: opts.Platform,
			Exec:     opts.Exec,
			Getter:   opts.Getter,
		})
	}}
}

func tmuxPluginsTask(ctx context.Context, opts Options) Task {
	return Task{Name: "tmux-plugins", Run: func() error {
		return plugins.InstallTmux(ctx, plugins.Options{FS: opts.FS, Paths: opts.Paths, Exec: opts.Exec})
	}}
}

// installAllTasks is the ordered task list behind `install --all`.
func installAllTasks(ctx context.Context, opts Options) []Task {
	tasks := []Task{ensurePathTask(opts)}
	for _, tool := range install.All() {
		tasks = append(tasks, installTask(ctx, tool, opts))
	}
	return append(tasks, linkBinsTask(opts))
}

// Configure links configs only: ensure-path then link-configs.
func Configure(opts Options) error {
	r := NewRunner()
	return r.Run(ensurePathTask(opts), linkConfigsTask(opts))
}

// InstallAll installs every tool and links repo executables.
func InstallAll(ctx context.Context, opts Options) error {
	r := NewRunner()
	return r.Run(installAllTasks(ctx, opts)...)
}

// Setup is the full bootstrap: install everything, then link configs
// and tmux plugins. ensure-path is reachable through both composites
// but runs exactly once.
func Setup(ctx context.Context, opts Options) error {
	r := NewRunner()
	if err := r.Run(installAllTasks(ctx, opts)...); err != nil {
		return err
	}
	return r.Run(ensurePathTask(opts), linkConfigsTask(opts), tmuxPluginsTask(ctx, opts))
}

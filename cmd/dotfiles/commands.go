package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ericsmacedo/dotfiles/pkg/commands/bins"
	"github.com/ericsmacedo/dotfiles/pkg/commands/install"
	"github.com/ericsmacedo/dotfiles/pkg/commands/link"
	pathcmd "github.com/ericsmacedo/dotfiles/pkg/commands/path"
	"github.com/ericsmacedo/dotfiles/pkg/commands/plugins"
	"github.com/ericsmacedo/dotfiles/pkg/commands/setup"
	"github.com/ericsmacedo/dotfiles/pkg/config"
	"github.com/ericsmacedo/dotfiles/pkg/executor"
	"github.com/ericsmacedo/dotfiles/pkg/filesystem"
	"github.com/ericsmacedo/dotfiles/pkg/getter"
	"github.com/ericsmacedo/dotfiles/pkg/paths"
	"github.com/ericsmacedo/dotfiles/pkg/platform"
	"github.com/ericsmacedo/dotfiles/pkg/types"
	"github.com/ericsmacedo/dotfiles/pkg/ui/styles"
)

// runtime bundles the dependencies every subcommand needs: a concrete
// filesystem, resolved paths with settings overrides applied, the
// detected platform, the loaded link document, and the process/getter
// helpers.
type runtime struct {
	fs       types.FS
	paths    *paths.Paths
	platform platform.Platform
	document *config.Document
	exec     *executor.Executor
	getter   *getter.Client
}

func newRuntime() (*runtime, error) {
	plat, err := platform.Detect()
	if err != nil {
		return nil, err
	}

	p, err := paths.New(repoRoot)
	if err != nil {
		return nil, err
	}

	doc, err := config.Load(p.RepoRoot)
	if err != nil {
		return nil, err
	}
	applySettings(p, doc.Settings)

	return &runtime{
		fs:       filesystem.NewOS(),
		paths:    p,
		platform: plat,
		document: doc,
		exec:     executor.New(),
		getter:   getter.New(),
	}, nil
}

// applySettings folds the [settings] section of the link document onto
// the default path layout. Empty values keep the defaults.
func applySettings(p *paths.Paths, s config.Settings) {
	if s.BackupRoot != "" {
		p.BackupRoot = p.ExpandHome(s.BackupRoot)
	}
	if s.LocalBin != "" {
		p.LocalBin = p.ExpandHome(s.LocalBin)
	}
	if s.Profile != "" {
		p.Profile = p.ExpandHome(s.Profile)
	}
}

func (r *runtime) setupOptions() setup.Options {
	return setup.Options{
		FS:       r.fs,
		Paths:    r.paths,
		Platform: r.platform,
		Document: r.document,
		Exec:     r.exec,
		Getter:   r.getter,
		DryRun:   dryRun,
	}
}

func (r *runtime) installOptions() install.Options {
	return install.Options{
		FS:       r.fs,
		Paths:    r.paths,
		Platform: r.platform,
		Exec:     r.exec,
		Getter:   r.getter,
	}
}

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Symlink configuration files into place",
		Long: `Reconcile the link entries declared in links.toml: create each
symlink, back up whatever was in the way, and skip entries whose
source is missing or whose platform does not match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			results, err := link.Run(link.Options{
				FS:       rt.fs,
				Paths:    rt.paths,
				Platform: rt.platform,
				Document: rt.document,
				DryRun:   dryRun,
			})
			printLinkResults(cmd, results)
			return err
		},
	}
}

func printLinkResults(cmd *cobra.Command, results []link.EntryResult) {
	pathStyle := styles.GetStyle("Path")
	for _, res := range results {
		switch res.Status {
		case link.StatusFailed:
			fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s (%v)\n", res.Status, pathStyle.Render(res.Dest), res.Err)
		case link.StatusBackedUp:
			fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s (backup: %s)\n", res.Status, pathStyle.Render(res.Dest), res.BackupPath)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s\n", res.Status, pathStyle.Render(res.Dest))
		}
	}
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Ensure ~/.local/bin is on the shell PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			result, err := pathcmd.Ensure(pathcmd.Options{FS: rt.fs, Paths: rt.paths, DryRun: dryRun})
			if err != nil {
				return err
			}
			if result.Appended {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", result.Line, result.Profile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exports %s\n", result.Profile, rt.paths.LocalBin)
			}
			return nil
		},
	}
}

func newBinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bins",
		Short: "Symlink repository scripts into ~/.local/bin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			results, err := bins.Link(bins.Options{FS: rt.fs, Paths: rt.paths, DryRun: dryRun})
			if err != nil {
				return err
			}
			pathStyle := styles.GetStyle("Path")
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s\n", res.Status, pathStyle.Render(res.Dest))
			}
			return nil
		},
	}
}

func newInstallCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "install [tool]",
		Short: "Install a terminal tool",
		Long: `Install one of the managed tools (fzf, fd, ripgrep, neovim, starship,
sheldon, uv, ruff) into ~/.local/bin. On macOS, Homebrew is preferred
when available. The --dry-run flag has no effect here.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if all {
				return install.InstallAll(cmd.Context(), rt.installOptions())
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			tool, err := install.Parse(args[0])
			if err != nil {
				return err
			}
			if err := install.Install(cmd.Context(), tool, rt.installOptions()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.GetStyle("Success").Render(fmt.Sprintf("Installed %s", tool)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Install every managed tool")
	return cmd
}

func newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "Install tmux plugins via tpm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			return plugins.InstallTmux(cmd.Context(), plugins.Options{FS: rt.fs, Paths: rt.paths, Exec: rt.exec})
		},
	}
}

func newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Link configs and wire up the shell profile",
		Long:  `Run the configuration tasks only: ensure ~/.local/bin is on PATH and symlink the configuration files.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := setup.Configure(rt.setupOptions()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.GetStyle("Success").Render("Configuration complete"))
			return nil
		},
	}
}

func newInstallAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install-all",
		Short: "Install every managed tool and link repository scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := setup.InstallAll(cmd.Context(), rt.setupOptions()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.GetStyle("Success").Render("All tools installed"))
			return nil
		},
	}
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the full environment",
		Long: `Run everything: install the managed tools, link local scripts,
symlink configuration files, wire the shell profile, and install
tmux plugins. Each task runs at most once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := setup.Setup(cmd.Context(), rt.setupOptions()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.GetStyle("Success").Render("Environment ready"))
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the link document",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented sample links.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New(repoRoot)
			if err != nil {
				return err
			}
			target := filepath.Join(p.RepoRoot, paths.LinksFileTOML)
			if err := config.WriteSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", styles.GetStyle("Path").Render(target))
			return nil
		},
	})

	return cmd
}

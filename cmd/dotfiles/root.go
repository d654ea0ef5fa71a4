package main

import (
	"fmt"

	"github.com/ericsmacedo/dotfiles/internal/version"
	"github.com/ericsmacedo/dotfiles/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	dryRun    bool
	repoRoot  string

	rootCmd = &cobra.Command{
		Use:   "dotfiles",
		Short: "Bootstrap a personal environment from a dotfiles repository",
		Long: `dotfiles links configuration files and local binaries into place,
keeps your shell profile pointed at ~/.local/bin, and installs the
terminal tools a working environment needs. Anything it would clobber
is moved aside into a timestamped backup first.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Verbosity flag for logging
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// Dry-run flag
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	// Repository root flag
	rootCmd.PersistentFlags().StringVar(&repoRoot, "repo", "", "Dotfiles repository root (default: current directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newBinsCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newPluginsCmd())
	rootCmd.AddCommand(newConfigureCmd())
	rootCmd.AddCommand(newInstallAllCmd())
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newConfigCmd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for dotfiles`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dotfiles version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(dotfiles completion bash)

Zsh:
  $ dotfiles completion zsh > "${fpath[1]}/_dotfiles"

Fish:
  $ dotfiles completion fish | source

PowerShell:
  PS> dotfiles completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

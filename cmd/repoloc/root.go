package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/repoloc/internal/version"
	"github.com/arthur-debert/repoloc/pkg/config"
	"github.com/arthur-debert/repoloc/pkg/logging"
)

var (
	verbosity int
	cfgFile   string
	noColor   bool

	rootCmd = &cobra.Command{
		Use:   "repoloc",
		Short: "Resolve repository source locations",
		Long: `repoloc resolves a location string - an HTTP(S) URL, an absolute
filesystem path, or a path relative to a base location - into its kind,
its canonical absolute form, and optionally whether it is reachable.

It is the location layer used by installer tooling to find repository
manifests and payloads before fetching them.`,
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
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/repoloc/repoloc.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(resolveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for repoloc`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("repoloc version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(repoloc completion bash)

Zsh:
  $ repoloc completion zsh > "${fpath[1]}/_repoloc"

Fish:
  $ repoloc completion fish | source

PowerShell:
  PS> repoloc completion powershell | Out-String | Invoke-Expression
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

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Write a default config file to stdout",
	Long: `Write a config file populated with the built-in defaults to stdout,
suitable as a starting point for customization:

  repoloc genconfig > ~/.config/repoloc/repoloc.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Generate(cmd.OutOrStdout())
	},
}

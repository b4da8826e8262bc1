package cmd

import (
	"github.com/spf13/cobra"

	"github.com/whirl-cli/whirl/internal/build"
)

var (
	// cfgFile parameter
	cfgFile string

	// quiet and debug override the corresponding config keys.
	quiet bool
	debug bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:           build.Slug,
		Short:         "Terminal spinner toolkit.",
		Long:          `Terminal spinner toolkit: list, preview and run commands with configurable loading spinners.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func registerCommands() {
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(
			&cfgFile, "config", "",
			"config file (default is $XDG_CONFIG_HOME/whirl/config.yaml)",
		)
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress log output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	registerCommands()
}

// Package cmd implements the CLI commands for flare.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flare/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flare",
	Short: "Leveled console log emitter",
	Long: `Flare formats and emits severity-leveled log lines to the standard output
streams, with configurable timestamps, message templates, ANSI colour, and
an abort-or-prompt policy for error-level entries.

Debug and info lines go to stdout; warn and error lines go to stderr. An
error-level line may prompt on the terminal before aborting the process.`,
	Version: version.Version,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

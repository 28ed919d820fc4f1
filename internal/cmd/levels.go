package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/flare"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List known severities",
	Long: `List the severities flare understands, least to most severe. These are the
values accepted by the --level and --threshold flags of 'flare emit'.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) {
	for _, s := range []flare.Severity{flare.Debug, flare.Info, flare.Warn, flare.Error} {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
}

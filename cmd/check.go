package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	checkQuiet   bool
	checkExclude []string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check INPUT",
	Short: "Check that a plugin document resolves",
	Long: `Load and resolve the plugin document at INPUT without writing anything.

The exit code is 0 when the document resolves, 2 on a merge or namespace
conflict and 3 when a file cannot be decoded.

Examples:
  oboro check plugins.yaml
  oboro check plugins/ --quiet`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveInput(cmd.Context(), args[0], checkExclude)
	if err != nil {
		return err
	}
	if !checkQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s resolves: %d start, %d on-demand, %d bundles\n",
			text.FgGreen.Sprint("✓"), args[0],
			len(cfg.StartPlugins), len(cfg.LazyPlugins), len(cfg.Bundles))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Suppress non-essential output")
	checkCmd.Flags().StringSliceVar(&checkExclude, "exclude", nil, "Glob pattern of input files to skip (repeatable)")
}

package cmd

import (
	"github.com/spf13/cobra"

	"oboro/internal/formatting"
)

var (
	listOutputFormat string
	listQuiet        bool
	listExclude      []string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list INPUT",
	Short: "Print the resolved configuration",
	Long: `Resolve the plugin document at INPUT and print the merged entities and
trigger registries.

Examples:
  oboro list plugins.yaml
  oboro list plugins/ -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter(cmd, listOutputFormat, listQuiet)
	if err != nil {
		return err
	}
	cfg, err := resolveInput(cmd.Context(), args[0], listExclude)
	if err != nil {
		return err
	}
	return formatter.FormatConfig(cmd.OutOrStdout(), cfg)
}

// newFormatter picks the output format from the flag when given, otherwise
// from the settings.
func newFormatter(cmd *cobra.Command, flagValue string, quiet bool) (formatting.Formatter, error) {
	name := settings.Output.Format
	if cmd.Flags().Changed("output") {
		name = flagValue
	}
	format, err := formatting.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return formatting.NewFactory().CreateFormatter(formatting.Options{
		Format: format,
		Quiet:  quiet,
		Color:  isTerminal(cmd.OutOrStdout()),
	}), nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Suppress non-essential output")
	listCmd.Flags().StringSliceVar(&listExclude, "exclude", nil, "Glob pattern of input files to skip (repeatable)")
}

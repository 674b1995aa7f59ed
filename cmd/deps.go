package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"oboro/internal/dependency"
)

var (
	depsOutputFormat string
	depsExclude      []string
)

// depsCmd represents the deps command
var depsCmd = &cobra.Command{
	Use:   "deps INPUT [ID]",
	Short: "Show dependencies between plugins and bundles",
	Long: `Resolve the plugin document at INPUT and print, for every entity or only
for ID, what it depends on, what depends on it and which bundles contain it.

Examples:
  oboro deps plugins/
  oboro deps plugins/ telescope -o yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDeps,
}

func runDeps(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter(cmd, depsOutputFormat, false)
	if err != nil {
		return err
	}
	cfg, err := resolveInput(cmd.Context(), args[0], depsExclude)
	if err != nil {
		return err
	}

	g := dependency.FromConfig(cfg)
	var ids []dependency.NodeID
	if len(args) == 2 {
		id := dependency.NodeID(args[1])
		if g.Get(id) == nil {
			return fmt.Errorf("no plugin or bundle with id %q", id)
		}
		ids = append(ids, id)
	}
	return formatter.FormatDependencies(cmd.OutOrStdout(), g, ids...)
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().StringVarP(&depsOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	depsCmd.Flags().StringSliceVar(&depsExclude, "exclude", nil, "Glob pattern of input files to skip (repeatable)")
}

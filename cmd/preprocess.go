package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"oboro/internal/preprocess"
)

// preprocessCmd represents the preprocess command
var preprocessCmd = &cobra.Command{
	Use:   "preprocess normal|optimized FILE...",
	Short: "Select the normal or optimized variant of Lua files in place",
	Long: `Rewrite each Lua FILE in place, keeping the code between the
"-- BEGIN_NORMAL" / "-- END_NORMAL" or "-- BEGIN_OPTIMIZED" / "-- END_OPTIMIZED"
fences of the selected mode and dropping the other variant. Optimized output
is also stripped of comment and blank lines.

Examples:
  oboro preprocess normal lua/*.lua
  oboro preprocess optimized init.lua`,
	Args: cobra.MinimumNArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{"normal", "optimized"}, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveDefault
	},
	RunE: runPreprocess,
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	mode, err := preprocess.ParseMode(args[0])
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(max(settings.Generate.Concurrency, 1))
	for _, path := range args[1:] {
		g.Go(func() error {
			if err := preprocess.ApplyFile(mode, path); err != nil {
				return fmt.Errorf("preprocessing %s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied %s mode to %s\n", mode, strings.Join(args[1:], ", "))
	return nil
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

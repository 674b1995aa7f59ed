package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"oboro/internal/source"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of plugin documents",
	Long: `Print the JSON Schema that JSON and YAML plugin documents are validated
against. Point your editor's YAML or JSON language server at it for
completion and inline validation.

Example:
  oboro schema > oboro.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := source.JSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

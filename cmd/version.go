package cmd

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// parseVersion parses the build version. Development builds ("dev", empty
// or any non-semver string) return an error.
func parseVersion(v string) (*semver.Version, error) {
	if v == "" {
		return nil, fmt.Errorf("no version set")
	}
	return semver.NewVersion(v)
}

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of oboro",
		Long:  `All software has versions. This is oboro's.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			v, err := parseVersion(rootCmd.Version)
			if err != nil {
				fmt.Fprintf(out, "oboro version %s (development build)\n", rootCmd.Version)
				return
			}
			fmt.Fprintf(out, "oboro version %s\n", v)
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"oboro/pkg/logging"
)

var selfUpdateForce bool

// newSelfUpdateCmd creates the Cobra command for the self-update functionality.
// This allows the application to update itself to the latest version from GitHub.
func newSelfUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self-update",
		Short: "Update oboro to the latest version",
		Long: `Checks for the latest release of oboro on GitHub and
updates the current binary if a newer version is found.

The repository is read from the selfUpdate.repository setting (owner/name).
Development builds are not updated unless --force is given.`,
		RunE: runSelfUpdate,
	}
	cmd.Flags().BoolVar(&selfUpdateForce, "force", false, "Update even when running a development build")
	return cmd
}

// runSelfUpdate performs the self-update logic.
// It checks the current version against the latest GitHub release and updates if necessary.
func runSelfUpdate(cmd *cobra.Command, args []string) error {
	repo := settings.SelfUpdate.Repository
	if repo == "" {
		return fmt.Errorf("self-update is disabled: set selfUpdate.repository (owner/name) in config.yaml")
	}

	out := cmd.OutOrStdout()
	current, err := parseVersion(rootCmd.Version)
	if err != nil {
		if !selfUpdateForce {
			return fmt.Errorf("cannot self-update a development version %q (use --force)", rootCmd.Version)
		}
		logging.Warn("SelfUpdate", "Running development build %q, any release counts as newer", rootCmd.Version)
	}

	fmt.Fprintf(out, "Current version: %s\n", rootCmd.Version)
	fmt.Fprintln(out, "Checking for updates...")

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	ctx := cmd.Context()
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest release for %s could not be found", repo)
	}

	if current != nil && !latest.GreaterThan(current.String()) {
		fmt.Fprintln(out, "Current version is the latest.")
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s (published at %s)\n", latest.Version(), latest.PublishedAt)
	fmt.Fprintf(out, "Release notes:\n%s\n", latest.ReleaseNotes)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating %s to version %s...\n", exe, latest.Version())
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}

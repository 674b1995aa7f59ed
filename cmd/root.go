package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"oboro/internal/config"
	"oboro/internal/resolver"
	"oboro/internal/source"
	"oboro/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConflict indicates the plugin document could not be resolved.
	ExitCodeConflict = 2
	// ExitCodeDecode indicates the plugin document could not be read or decoded.
	ExitCodeDecode = 3
)

var (
	rootConfigPath string
	rootLogLevel   string
	rootLogFormat  string

	// settings holds the tool configuration loaded before every command.
	settings = config.GetDefaultConfig()
)

// rootCmd represents the base command for the oboro application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "oboro",
	Short: "Resolve plugin declarations into a lazy-loading configuration",
	Long: `oboro reads plugin declarations (start plugins, on-demand plugins and
bundles) from JSON, YAML, TOML, CUE or HCL documents, merges fragments that
share an id, validates the id namespaces and writes the result as Lua files
for the editor's plugin loader.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main() and exits the process with a code derived from the error.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "oboro version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var decodeErr *source.DecodeError
	if errors.As(err, &decodeErr) {
		return ExitCodeDecode
	}

	if resolver.IsConflict(err) {
		return ExitCodeConflict
	}

	// Default to general error
	return ExitCodeError
}

// loadSettings reads the tool configuration and sets up logging. Flags given
// on the command line take precedence over the configuration file.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		var settingsErr *config.SettingsError
		if errors.As(err, &settingsErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), settingsErr.DetailedError())
		}
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = rootLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = rootLogFormat
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return err
	}
	logging.Init(logging.Options{Level: level, Format: format}, cmd.ErrOrStderr())

	settings = cfg
	logging.Debug("CLI", "Loaded settings from %s", rootConfigPath)
	return nil
}

// newResolver builds a resolver whose loader skips the configured exclude
// patterns plus any given on the command line.
func newResolver(extraExcludes []string) (*resolver.Resolver, *source.Loader, error) {
	loader := source.NewLoader()
	patterns := append(append([]string{}, settings.Input.Exclude...), extraExcludes...)
	if err := loader.Exclude(patterns...); err != nil {
		return nil, nil, err
	}
	return resolver.New(loader), loader, nil
}

// resolveInput loads and resolves the plugin document at path.
func resolveInput(ctx context.Context, path string, excludes []string) (*resolver.Config, error) {
	r, _, err := newResolver(excludes)
	if err != nil {
		return nil, err
	}
	return r.ResolvePath(ctx, path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "text", "Log format (text, json, logfmt)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

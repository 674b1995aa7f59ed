package config

import "time"

// OboroConfig holds the tool settings. It does not describe plugins; those
// come from the plugin document passed on the command line.
type OboroConfig struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Input      InputConfig      `mapstructure:"input" yaml:"input"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Generate   GenerateConfig   `mapstructure:"generate" yaml:"generate"`
	Watch      WatchConfig      `mapstructure:"watch" yaml:"watch"`
	SelfUpdate SelfUpdateConfig `mapstructure:"selfUpdate" yaml:"selfUpdate"`
}

// LogConfig configures pkg/logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn or error
	Format string `mapstructure:"format" yaml:"format"` // text, json or logfmt
}

// InputConfig configures how plugin documents are read.
type InputConfig struct {
	Exclude []string `mapstructure:"exclude" yaml:"exclude"` // glob patterns relative to the input directory
}

// OutputConfig configures how resolved configs are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // table, json or yaml
}

// GenerateConfig configures the Lua generator.
type GenerateConfig struct {
	Concurrency int  `mapstructure:"concurrency" yaml:"concurrency"` // parallel file writes
	Clean       bool `mapstructure:"clean" yaml:"clean"`             // wipe the output directory first
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// SelfUpdateConfig configures the self-update command.
type SelfUpdateConfig struct {
	Repository string `mapstructure:"repository" yaml:"repository"` // owner/name on GitHub
}

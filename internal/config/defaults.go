package config

import "time"

const (
	// DefaultConcurrency is the default number of files written in parallel.
	DefaultConcurrency = 4

	// DefaultDebounce is how long watch mode waits for changes to settle.
	DefaultDebounce = 500 * time.Millisecond
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() OboroConfig {
	return OboroConfig{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Input: InputConfig{
			Exclude: []string{},
		},
		Output: OutputConfig{
			Format: "table",
		},
		Generate: GenerateConfig{
			Concurrency: DefaultConcurrency,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

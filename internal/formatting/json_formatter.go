package formatting

import (
	"encoding/json"
	"io"

	"oboro/internal/dependency"
	"oboro/internal/resolver"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatConfig writes cfg as indented JSON.
func (f *JSONFormatter) FormatConfig(w io.Writer, cfg *resolver.Config) error {
	if cfg == nil {
		return errNilConfig
	}
	return f.encode(w, cfg)
}

// FormatDependencies writes the graph entries as a JSON array.
func (f *JSONFormatter) FormatDependencies(w io.Writer, g *dependency.Graph, ids ...dependency.NodeID) error {
	return f.encode(w, DependencyEntries(g, ids...))
}

func (f *JSONFormatter) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

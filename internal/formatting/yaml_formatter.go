package formatting

import (
	"io"

	"gopkg.in/yaml.v3"

	"oboro/internal/dependency"
	"oboro/internal/resolver"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatConfig writes cfg as a YAML document.
func (f *YAMLFormatter) FormatConfig(w io.Writer, cfg *resolver.Config) error {
	if cfg == nil {
		return errNilConfig
	}
	return f.encode(w, cfg)
}

// FormatDependencies writes the graph entries as a YAML sequence.
func (f *YAMLFormatter) FormatDependencies(w io.Writer, g *dependency.Graph, ids ...dependency.NodeID) error {
	return f.encode(w, DependencyEntries(g, ids...))
}

func (f *YAMLFormatter) encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

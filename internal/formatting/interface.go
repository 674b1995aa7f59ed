// Package formatting renders resolved plugin configurations and their
// dependency graphs for the command line.
//
// Three output formats are supported: a human readable table, JSON and
// YAML. Formatters are obtained from a Factory so that commands only deal
// with the Formatter interface.
package formatting

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"oboro/internal/dependency"
	"oboro/internal/resolver"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// errNilConfig is returned when a formatter is handed a nil configuration.
var errNilConfig = errors.New("no configuration to format")

// ParseFormat converts a user supplied format name into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
	Color  bool // Enable colored output
}

// Formatter renders resolver output to a writer.
type Formatter interface {
	// FormatConfig writes the resolved configuration.
	FormatConfig(w io.Writer, cfg *resolver.Config) error
	// FormatDependencies writes one entry per node of the graph, or only
	// for ids when any are given.
	FormatDependencies(w io.Writer, g *dependency.Graph, ids ...dependency.NodeID) error

	// Configuration
	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}

// DependencyEntry is the serialisable view of one dependency graph node.
type DependencyEntry struct {
	ID         string   `json:"id" yaml:"id"`
	Kind       string   `json:"kind" yaml:"kind"`
	DependsOn  []string `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Members    []string `json:"members,omitempty" yaml:"members,omitempty"`
	Dependents []string `json:"dependents,omitempty" yaml:"dependents,omitempty"`
	Bundles    []string `json:"bundles,omitempty" yaml:"bundles,omitempty"`
}

// DependencyEntries flattens g into entries sorted by id. When ids are
// given only those nodes are included, in the given order; unknown ids are
// skipped.
func DependencyEntries(g *dependency.Graph, ids ...dependency.NodeID) []DependencyEntry {
	if g == nil {
		return []DependencyEntry{}
	}
	if len(ids) == 0 {
		ids = g.IDs()
	}
	entries := make([]DependencyEntry, 0, len(ids))
	for _, id := range ids {
		n := g.Get(id)
		if n == nil {
			continue
		}
		entries = append(entries, DependencyEntry{
			ID:         string(id),
			Kind:       n.Kind.String(),
			DependsOn:  toStrings(n.DependsOn),
			Members:    toStrings(n.Members),
			Dependents: toStrings(g.Dependents(id)),
			Bundles:    toStrings(g.Bundles(id)),
		})
	}
	return entries
}

func toStrings(ids []dependency.NodeID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

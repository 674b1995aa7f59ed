package source

import (
	"fmt"
	"strings"
)

// StartPlugin is a plugin loaded when the editor starts.
type StartPlugin struct {
	ID      string `json:"id" yaml:"id" toml:"id" jsonschema:"minLength=1"`
	Plugin  string `json:"plugin,omitempty" yaml:"plugin,omitempty" toml:"plugin,omitempty"`
	Startup string `json:"startup,omitempty" yaml:"startup,omitempty" toml:"startup,omitempty"`
}

// OptPlugin is a plugin loaded on demand.
type OptPlugin struct {
	ID      string `json:"id" yaml:"id" toml:"id" jsonschema:"minLength=1"`
	Plugin  string `json:"plugin,omitempty" yaml:"plugin,omitempty" toml:"plugin,omitempty"`
	Startup string `json:"startup,omitempty" yaml:"startup,omitempty" toml:"startup,omitempty"`
	// PreConfig runs right before the plugin is loaded.
	PreConfig string `json:"preConfig,omitempty" yaml:"preConfig,omitempty" toml:"preConfig,omitempty"`
	// Config runs right after the plugin is loaded.
	Config     string   `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
	Deps       []string `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
	DepBundles []string `json:"depBundles,omitempty" yaml:"depBundles,omitempty" toml:"depBundles,omitempty"`
	Mods       []string `json:"mods,omitempty" yaml:"mods,omitempty" toml:"mods,omitempty"`
	Evs        []string `json:"evs,omitempty" yaml:"evs,omitempty" toml:"evs,omitempty"`
	Fts        []string `json:"fts,omitempty" yaml:"fts,omitempty" toml:"fts,omitempty"`
	Cmds       []string `json:"cmds,omitempty" yaml:"cmds,omitempty" toml:"cmds,omitempty"`
	Lazy       bool     `json:"lazy,omitempty" yaml:"lazy,omitempty" toml:"lazy,omitempty"`
}

// Bundle is a named group of plugins loaded together.
type Bundle struct {
	ID         string   `json:"id" yaml:"id" toml:"id" jsonschema:"minLength=1"`
	Plugins    []string `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty"`
	Startup    string   `json:"startup,omitempty" yaml:"startup,omitempty" toml:"startup,omitempty"`
	PreConfig  string   `json:"preConfig,omitempty" yaml:"preConfig,omitempty" toml:"preConfig,omitempty"`
	Config     string   `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
	Deps       []string `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
	DepBundles []string `json:"depBundles,omitempty" yaml:"depBundles,omitempty" toml:"depBundles,omitempty"`
	Mods       []string `json:"mods,omitempty" yaml:"mods,omitempty" toml:"mods,omitempty"`
	Evs        []string `json:"evs,omitempty" yaml:"evs,omitempty" toml:"evs,omitempty"`
	Fts        []string `json:"fts,omitempty" yaml:"fts,omitempty" toml:"fts,omitempty"`
	Cmds       []string `json:"cmds,omitempty" yaml:"cmds,omitempty" toml:"cmds,omitempty"`
	Lazy       bool     `json:"lazy,omitempty" yaml:"lazy,omitempty" toml:"lazy,omitempty"`
}

// Document is one decoded plugin document.
type Document struct {
	StartPlugins []StartPlugin `json:"startPlugins,omitempty" yaml:"startPlugins,omitempty" toml:"startPlugins,omitempty"`
	OptPlugins   []OptPlugin   `json:"optPlugins,omitempty" yaml:"optPlugins,omitempty" toml:"optPlugins,omitempty"`
	Bundles      []Bundle      `json:"bundles,omitempty" yaml:"bundles,omitempty" toml:"bundles,omitempty"`
}

// Append adds the records of other after the records of d.
func (d *Document) Append(other *Document) {
	if other == nil {
		return
	}
	d.StartPlugins = append(d.StartPlugins, other.StartPlugins...)
	d.OptPlugins = append(d.OptPlugins, other.OptPlugins...)
	d.Bundles = append(d.Bundles, other.Bundles...)
}

// Len returns the total number of records.
func (d *Document) Len() int {
	return len(d.StartPlugins) + len(d.OptPlugins) + len(d.Bundles)
}

// Validate checks that every record carries an id.
func (d *Document) Validate() error {
	var missing []string
	for i, p := range d.StartPlugins {
		if strings.TrimSpace(p.ID) == "" {
			missing = append(missing, fmt.Sprintf("startPlugins[%d]", i))
		}
	}
	for i, p := range d.OptPlugins {
		if strings.TrimSpace(p.ID) == "" {
			missing = append(missing, fmt.Sprintf("optPlugins[%d]", i))
		}
	}
	for i, b := range d.Bundles {
		if strings.TrimSpace(b.ID) == "" {
			missing = append(missing, fmt.Sprintf("bundles[%d]", i))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("id is required: %s", strings.Join(missing, ", "))
	}
	return nil
}

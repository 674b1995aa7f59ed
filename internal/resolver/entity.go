package resolver

import "errors"

// Mergeable is an entity that can be grouped by id and folded.
type Mergeable[T any] interface {
	// Key returns the grouping id.
	Key() string
	// Merge combines the receiver with other. On error the receiver is
	// returned unchanged.
	Merge(other T) (T, error)
}

// StartPlugin is loaded unconditionally at editor start.
type StartPlugin struct {
	ID      string `json:"id" yaml:"id"`
	Plugin  string `json:"plugin,omitempty" yaml:"plugin,omitempty"`
	Startup string `json:"startup,omitempty" yaml:"startup,omitempty"`
}

// LazyPlugin is loaded on demand when one of its triggers fires.
type LazyPlugin struct {
	ID         string   `json:"id" yaml:"id"`
	Plugin     string   `json:"plugin,omitempty" yaml:"plugin,omitempty"`
	Startup    string   `json:"startup,omitempty" yaml:"startup,omitempty"`
	PreConfig  string   `json:"preConfig,omitempty" yaml:"preConfig,omitempty"`
	Config     string   `json:"config,omitempty" yaml:"config,omitempty"`
	Deps       []string `json:"deps,omitempty" yaml:"deps,omitempty"`
	DepBundles []string `json:"depBundles,omitempty" yaml:"depBundles,omitempty"`
	Lazy       bool     `json:"lazy,omitempty" yaml:"lazy,omitempty"`
}

// Bundle groups plugins that are loaded together.
type Bundle struct {
	ID         string   `json:"id" yaml:"id"`
	Plugins    []string `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Startup    string   `json:"startup,omitempty" yaml:"startup,omitempty"`
	PreConfig  string   `json:"preConfig,omitempty" yaml:"preConfig,omitempty"`
	Config     string   `json:"config,omitempty" yaml:"config,omitempty"`
	Deps       []string `json:"deps,omitempty" yaml:"deps,omitempty"`
	DepBundles []string `json:"depBundles,omitempty" yaml:"depBundles,omitempty"`
	Lazy       bool     `json:"lazy,omitempty" yaml:"lazy,omitempty"`
}

func (p StartPlugin) Key() string { return p.ID }
func (p LazyPlugin) Key() string  { return p.ID }
func (b Bundle) Key() string      { return b.ID }

// IsZero reports whether no field is set.
func (p StartPlugin) IsZero() bool {
	return p == StartPlugin{}
}

// IsZero reports whether no field is set.
func (p LazyPlugin) IsZero() bool {
	return p.ID == "" && p.Plugin == "" && p.Startup == "" && p.PreConfig == "" && p.Config == "" &&
		len(p.Deps) == 0 && len(p.DepBundles) == 0 && !p.Lazy
}

// IsZero reports whether no field is set.
func (b Bundle) IsZero() bool {
	return b.ID == "" && len(b.Plugins) == 0 && b.Startup == "" && b.PreConfig == "" && b.Config == "" &&
		len(b.Deps) == 0 && len(b.DepBundles) == 0 && !b.Lazy
}

// Merge implements Mergeable.
func (p StartPlugin) Merge(other StartPlugin) (StartPlugin, error) {
	if !p.IsZero() && p.ID != other.ID {
		return p, identityConflict(p.ID, other.ID)
	}
	m := fieldMerger{id: other.ID}
	merged := StartPlugin{
		ID:      m.scalar("id", p.ID, other.ID),
		Plugin:  m.scalar("plugin", p.Plugin, other.Plugin),
		Startup: m.scalar("startup", p.Startup, other.Startup),
	}
	if m.err != nil {
		return p, m.err
	}
	return merged, nil
}

// Merge implements Mergeable.
func (p LazyPlugin) Merge(other LazyPlugin) (LazyPlugin, error) {
	if !p.IsZero() && p.ID != other.ID {
		return p, identityConflict(p.ID, other.ID)
	}
	m := fieldMerger{id: other.ID}
	merged := LazyPlugin{
		ID:         m.scalar("id", p.ID, other.ID),
		Plugin:     m.scalar("plugin", p.Plugin, other.Plugin),
		Startup:    m.scalar("startup", p.Startup, other.Startup),
		PreConfig:  m.scalar("preConfig", p.PreConfig, other.PreConfig),
		Config:     m.scalar("config", p.Config, other.Config),
		Deps:       m.list("deps", p.Deps, other.Deps),
		DepBundles: m.list("depBundles", p.DepBundles, other.DepBundles),
		Lazy:       mergeFlag(p.Lazy, other.Lazy),
	}
	if m.err != nil {
		return p, m.err
	}
	return merged, nil
}

// Merge implements Mergeable.
func (b Bundle) Merge(other Bundle) (Bundle, error) {
	if !b.IsZero() && b.ID != other.ID {
		return b, identityConflict(b.ID, other.ID)
	}
	m := fieldMerger{id: other.ID}
	merged := Bundle{
		ID:         m.scalar("id", b.ID, other.ID),
		Plugins:    m.list("plugins", b.Plugins, other.Plugins),
		Startup:    m.scalar("startup", b.Startup, other.Startup),
		PreConfig:  m.scalar("preConfig", b.PreConfig, other.PreConfig),
		Config:     m.scalar("config", b.Config, other.Config),
		Deps:       m.list("deps", b.Deps, other.Deps),
		DepBundles: m.list("depBundles", b.DepBundles, other.DepBundles),
		Lazy:       mergeFlag(b.Lazy, other.Lazy),
	}
	if m.err != nil {
		return b, m.err
	}
	return merged, nil
}

// fieldMerger applies strategies in sequence and keeps only the first
// conflict; later calls are no-ops once err is set.
type fieldMerger struct {
	id  string
	err error
}

func (m *fieldMerger) scalar(field, a, b string) string {
	if m.err != nil {
		return ""
	}
	v, err := mergeScalar(field, a, b)
	m.fail(err)
	return v
}

func (m *fieldMerger) list(field string, a, b []string) []string {
	if m.err != nil {
		return nil
	}
	v, err := mergeList(field, a, b)
	m.fail(err)
	return v
}

func (m *fieldMerger) fail(err error) {
	if err == nil {
		return
	}
	var c *ConflictError
	if errors.As(err, &c) && c.ID == "" {
		c.ID = m.id
	}
	m.err = err
}

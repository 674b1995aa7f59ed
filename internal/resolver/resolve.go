package resolver

import (
	"context"
	"fmt"

	"oboro/internal/source"
	"oboro/pkg/logging"
)

// Config is a fully resolved plugin configuration.
type Config struct {
	StartPlugins []StartPlugin `json:"startPlugins" yaml:"startPlugins"`
	LazyPlugins  []LazyPlugin  `json:"lazyPlugins" yaml:"lazyPlugins"`
	Bundles      []Bundle      `json:"bundles" yaml:"bundles"`

	// Tag registries, sorted.
	Mods []string `json:"mods" yaml:"mods"`
	Evs  []string `json:"evs" yaml:"evs"`
	Fts  []string `json:"fts" yaml:"fts"`
	Cmds []string `json:"cmds" yaml:"cmds"`

	ModIndex Index `json:"modIndex" yaml:"modIndex"`
	EvIndex  Index `json:"evIndex" yaml:"evIndex"`
	FtIndex  Index `json:"ftIndex" yaml:"ftIndex"`
	CmdIndex Index `json:"cmdIndex" yaml:"cmdIndex"`

	Lazys []string `json:"lazys" yaml:"lazys"`
}

// Resolve maps, validates and merges doc. On any conflict it returns a nil
// config and the error.
func Resolve(doc *source.Document) (*Config, error) {
	frags := Map(doc)

	if err := ValidateNamespaces(frags.IDs()); err != nil {
		return nil, err
	}

	cfg := &Config{
		ModIndex: frags.ModIndex.Dedup(),
		EvIndex:  frags.EvIndex.Dedup(),
		FtIndex:  frags.FtIndex.Dedup(),
		CmdIndex: frags.CmdIndex.Dedup(),
	}
	cfg.Mods = cfg.ModIndex.Tags()
	cfg.Evs = cfg.EvIndex.Tags()
	cfg.Fts = cfg.FtIndex.Tags()
	cfg.Cmds = cfg.CmdIndex.Tags()

	var err error
	if cfg.StartPlugins, err = Derive(frags.StartPlugins); err != nil {
		return nil, err
	}
	if cfg.LazyPlugins, err = Derive(frags.LazyPlugins); err != nil {
		return nil, err
	}
	if cfg.Bundles, err = Derive(frags.Bundles); err != nil {
		return nil, err
	}

	cfg.Lazys = unique(frags.Lazys)
	return cfg, nil
}

// IDs returns every resolved id with its category.
func (c *Config) IDs() map[string]string {
	ids := make(map[string]string, len(c.StartPlugins)+len(c.LazyPlugins)+len(c.Bundles))
	for _, p := range c.StartPlugins {
		ids[p.ID] = CategoryStart
	}
	for _, p := range c.LazyPlugins {
		ids[p.ID] = CategoryLazy
	}
	for _, b := range c.Bundles {
		ids[b.ID] = CategoryBundle
	}
	return ids
}

// Resolver loads plugin documents from disk and resolves them.
type Resolver struct {
	loader *source.Loader
}

// New creates a resolver reading input through loader. A nil loader
// selects source.NewLoader().
func New(loader *source.Loader) *Resolver {
	if loader == nil {
		loader = source.NewLoader()
	}
	return &Resolver{loader: loader}
}

// ResolvePath loads the file or directory at path and resolves it.
func (r *Resolver) ResolvePath(ctx context.Context, path string) (*Config, error) {
	doc, err := r.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	cfg, err := Resolve(doc)
	if err != nil {
		logging.Error("Resolver", err, "Failed to resolve %s", path)
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	logging.Info("Resolver", "Resolved %d start plugins, %d lazy plugins and %d bundles",
		len(cfg.StartPlugins), len(cfg.LazyPlugins), len(cfg.Bundles))
	return cfg, nil
}

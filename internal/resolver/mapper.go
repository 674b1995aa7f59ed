package resolver

import (
	"slices"
	"sort"

	"oboro/internal/source"
	"oboro/pkg/logging"
)

// Index maps a trigger tag to the ids that own it.
type Index map[string][]string

func (idx Index) add(tag, owner string) {
	idx[tag] = append(idx[tag], owner)
}

// Tags returns the keys of the index, sorted.
func (idx Index) Tags() []string {
	tags := make([]string, 0, len(idx))
	for tag := range idx {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Dedup returns a copy of the index with duplicate owners removed from
// every bucket. The first occurrence of each owner keeps its position.
func (idx Index) Dedup() Index {
	out := make(Index, len(idx))
	for tag, owners := range idx {
		out[tag] = unique(owners)
	}
	return out
}

func unique(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Fragments is the raw projection of a document, before any merging.
// Entity slices may hold several fragments per id; indices and Lazys may
// hold duplicates.
type Fragments struct {
	StartPlugins []StartPlugin
	LazyPlugins  []LazyPlugin
	Bundles      []Bundle

	ModIndex Index
	EvIndex  Index
	FtIndex  Index
	CmdIndex Index

	Lazys []string
}

func newFragments() *Fragments {
	return &Fragments{
		ModIndex: Index{},
		EvIndex:  Index{},
		FtIndex:  Index{},
		CmdIndex: Index{},
	}
}

// Map projects every record of doc into an entity fragment and registers
// its triggers. Start plugins have no triggers.
func Map(doc *source.Document) *Fragments {
	f := newFragments()
	if doc == nil {
		return f
	}

	for _, p := range doc.StartPlugins {
		logging.Debug("Mapper", "map start plugin: %s", p.ID)
		f.StartPlugins = append(f.StartPlugins, StartPlugin{
			ID:      p.ID,
			Plugin:  p.Plugin,
			Startup: p.Startup,
		})
	}

	for _, p := range doc.OptPlugins {
		logging.Debug("Mapper", "map opt plugin: %s", p.ID)
		f.LazyPlugins = append(f.LazyPlugins, LazyPlugin{
			ID:         p.ID,
			Plugin:     p.Plugin,
			Startup:    p.Startup,
			PreConfig:  p.PreConfig,
			Config:     p.Config,
			Deps:       slices.Clone(p.Deps),
			DepBundles: slices.Clone(p.DepBundles),
			Lazy:       p.Lazy,
		})
		f.register(p.ID, p.Mods, p.Evs, p.Fts, p.Cmds, p.Lazy)
	}

	for _, b := range doc.Bundles {
		logging.Debug("Mapper", "map bundle: %s", b.ID)
		f.Bundles = append(f.Bundles, Bundle{
			ID:         b.ID,
			Plugins:    slices.Clone(b.Plugins),
			Startup:    b.Startup,
			PreConfig:  b.PreConfig,
			Config:     b.Config,
			Deps:       slices.Clone(b.Deps),
			DepBundles: slices.Clone(b.DepBundles),
			Lazy:       b.Lazy,
		})
		f.register(b.ID, b.Mods, b.Evs, b.Fts, b.Cmds, b.Lazy)
	}

	return f
}

func (f *Fragments) register(owner string, mods, evs, fts, cmds []string, lazy bool) {
	for _, tag := range mods {
		f.ModIndex.add(tag, owner)
	}
	for _, tag := range evs {
		f.EvIndex.add(tag, owner)
	}
	for _, tag := range fts {
		f.FtIndex.add(tag, owner)
	}
	for _, tag := range cmds {
		f.CmdIndex.add(tag, owner)
	}
	if lazy {
		f.Lazys = append(f.Lazys, owner)
	}
}

// IDs returns the raw id of every fragment of each kind.
func (f *Fragments) IDs() (start, lazy, bundle []string) {
	for _, p := range f.StartPlugins {
		start = append(start, p.ID)
	}
	for _, p := range f.LazyPlugins {
		lazy = append(lazy, p.ID)
	}
	for _, b := range f.Bundles {
		bundle = append(bundle, b.ID)
	}
	return start, lazy, bundle
}

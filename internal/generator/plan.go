package generator

import (
	"fmt"
	"path"
	"strings"

	"oboro/internal/resolver"
	"oboro/internal/template"
)

// Subdirectories created in every output directory.
var subdirs = []string{"pre_cfgs", "cfgs", "deps", "plugin", "plugins", "mods", "evs", "fts", "cmds"}

// File is one generated file. Path is slash-separated and relative to the
// output directory.
type File struct {
	Path    string
	Content string
}

// fragment is the template view of one entity.
type fragment struct {
	ID         string
	Startup    string
	PreConfig  string
	Config     string
	Bundle     bool
	Plugins    []string
	Deps       []string
	DepBundles []string
}

type planner struct {
	engine *template.Engine
	files  []File
}

// Plan renders every file for cfg without touching the filesystem.
func Plan(engine *template.Engine, cfg *resolver.Config) ([]File, error) {
	p := &planner{engine: engine}
	if err := p.plan(cfg); err != nil {
		return nil, err
	}
	return p.files, nil
}

func (p *planner) plan(cfg *resolver.Config) error {
	var all []fragment
	for _, s := range cfg.StartPlugins {
		all = append(all, fragment{ID: s.ID, Startup: s.Startup})
	}

	var onDemand []fragment
	for _, l := range cfg.LazyPlugins {
		onDemand = append(onDemand, fragment{
			ID: l.ID, Startup: l.Startup, PreConfig: l.PreConfig, Config: l.Config,
			Deps: l.Deps, DepBundles: l.DepBundles,
		})
	}
	for _, b := range cfg.Bundles {
		onDemand = append(onDemand, fragment{
			ID: b.ID, Startup: b.Startup, PreConfig: b.PreConfig, Config: b.Config,
			Bundle: true, Plugins: b.Plugins, Deps: b.Deps, DepBundles: b.DepBundles,
		})
	}
	all = append(all, onDemand...)

	if err := p.render("startup", template.Startup, all); err != nil {
		return err
	}

	for _, f := range onDemand {
		if err := validName("id", f.ID); err != nil {
			return err
		}
		p.add(path.Join("pre_cfgs", f.ID), f.PreConfig)
		p.add(path.Join("cfgs", f.ID), f.Config)
		if err := p.render(path.Join("deps", f.ID), template.Deps, f); err != nil {
			return err
		}
		if err := p.render(path.Join("plugin", f.ID), template.Plugin, f); err != nil {
			return err
		}
		if err := p.render(path.Join("plugins", f.ID), template.Plugins, f); err != nil {
			return err
		}
	}

	triggers := []struct {
		table, dir string
		tags       []string
		index      resolver.Index
	}{
		{"mod_tbl", "mods", cfg.Mods, cfg.ModIndex},
		{"ev_tbl", "evs", cfg.Evs, cfg.EvIndex},
		{"ft_tbl", "fts", cfg.Fts, cfg.FtIndex},
		{"cmd_tbl", "cmds", cfg.Cmds, cfg.CmdIndex},
	}
	for _, t := range triggers {
		if err := p.render(t.table, template.Table, t.tags); err != nil {
			return err
		}
		for _, tag := range t.tags {
			if err := validName("tag", tag); err != nil {
				return err
			}
			if err := p.render(path.Join(t.dir, tag), template.Table, t.index[tag]); err != nil {
				return err
			}
		}
	}

	return p.render("lazy", template.Table, cfg.Lazys)
}

func (p *planner) add(name, content string) {
	p.files = append(p.files, File{Path: name, Content: content})
}

func (p *planner) render(name, tmpl string, data interface{}) error {
	content, err := p.engine.Render(tmpl, data)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	p.add(name, content)
	return nil
}

// validName rejects ids and tags that cannot be used as a file name.
func validName(kind, name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%s %q cannot be used as a file name", kind, name)
	}
	return nil
}

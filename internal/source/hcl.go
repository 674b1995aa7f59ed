package source

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclDocument is the block layout of an HCL plugin document:
//
//	start_plugin "foo" { plugin = "..." }
//	opt_plugin "bar" { mods = ["bar_mod"] lazy = true }
//	bundle "hoge" { plugins = ["bar", "baz"] }
type hclDocument struct {
	StartPlugins []hclStartPlugin `hcl:"start_plugin,block"`
	OptPlugins   []hclOptPlugin   `hcl:"opt_plugin,block"`
	Bundles      []hclBundle      `hcl:"bundle,block"`
}

type hclStartPlugin struct {
	ID      string `hcl:"id,label"`
	Plugin  string `hcl:"plugin,optional"`
	Startup string `hcl:"startup,optional"`
}

type hclOptPlugin struct {
	ID         string   `hcl:"id,label"`
	Plugin     string   `hcl:"plugin,optional"`
	Startup    string   `hcl:"startup,optional"`
	PreConfig  string   `hcl:"pre_config,optional"`
	Config     string   `hcl:"config,optional"`
	Deps       []string `hcl:"deps,optional"`
	DepBundles []string `hcl:"dep_bundles,optional"`
	Mods       []string `hcl:"mods,optional"`
	Evs        []string `hcl:"evs,optional"`
	Fts        []string `hcl:"fts,optional"`
	Cmds       []string `hcl:"cmds,optional"`
	Lazy       bool     `hcl:"lazy,optional"`
}

type hclBundle struct {
	ID         string   `hcl:"id,label"`
	Plugins    []string `hcl:"plugins,optional"`
	Startup    string   `hcl:"startup,optional"`
	PreConfig  string   `hcl:"pre_config,optional"`
	Config     string   `hcl:"config,optional"`
	Deps       []string `hcl:"deps,optional"`
	DepBundles []string `hcl:"dep_bundles,optional"`
	Mods       []string `hcl:"mods,optional"`
	Evs        []string `hcl:"evs,optional"`
	Fts        []string `hcl:"fts,optional"`
	Cmds       []string `hcl:"cmds,optional"`
	Lazy       bool     `hcl:"lazy,optional"`
}

type hclDecoder struct{}

func (hclDecoder) Name() string { return "hcl" }

func (hclDecoder) Decode(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var parsed hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}

	doc := &Document{}
	for _, p := range parsed.StartPlugins {
		doc.StartPlugins = append(doc.StartPlugins, StartPlugin(p))
	}
	for _, p := range parsed.OptPlugins {
		doc.OptPlugins = append(doc.OptPlugins, OptPlugin(p))
	}
	for _, b := range parsed.Bundles {
		doc.Bundles = append(doc.Bundles, Bundle(b))
	}
	return doc, nil
}

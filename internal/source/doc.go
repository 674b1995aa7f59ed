// Package source reads plugin documents from disk.
//
// A plugin document has three top-level arrays: startPlugins (loaded when
// the editor starts), optPlugins (loaded on demand) and bundles (groups of
// plugins loaded together). Records are fragments: the same id may appear
// several times, in one file or across files, and the resolver package
// merges them later. This package only decodes; it never merges.
//
// # Formats
//
// The decoder is picked by file extension:
//   - .json: strict JSON through sigs.k8s.io/yaml
//   - .yaml, .yml: gopkg.in/yaml.v3 with known-field checking
//   - .toml: github.com/pelletier/go-toml/v2 with unknown-field checking
//   - .cue: cuelang.org/go, unified with a closed #Document schema
//   - .hcl: github.com/hashicorp/hcl/v2 blocks labelled with the id
//
// All formats reject unknown fields. Fields that are absent take their
// unset value (empty string, empty list, false).
//
// # Directories
//
// When the input path is a directory, every supported file below it is
// decoded in lexical path order and the documents are concatenated. Files
// and directories starting with a dot are skipped.
package source

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"oboro/pkg/logging"
)

// Loader reads plugin documents from files or directories.
type Loader struct {
	decoders map[string]Decoder
	excludes []glob.Glob
}

// NewLoader creates a loader with every built-in format registered.
func NewLoader() *Loader {
	l := &Loader{decoders: make(map[string]Decoder)}
	l.Register(jsonDecoder{}, ".json")
	l.Register(yamlDecoder{}, ".yaml", ".yml")
	l.Register(tomlDecoder{}, ".toml")
	l.Register(cueDecoder{}, ".cue")
	l.Register(hclDecoder{}, ".hcl")
	return l
}

// Register associates a decoder with one or more file extensions.
// Extensions include the leading dot and are matched case-insensitively.
func (l *Loader) Register(d Decoder, extensions ...string) {
	for _, ext := range extensions {
		l.decoders[strings.ToLower(ext)] = d
	}
}

// Exclude skips files below an input directory whose slash-separated
// path relative to that directory matches one of patterns. Patterns use
// glob syntax where * stops at / and ** does not.
func (l *Loader) Exclude(patterns ...string) error {
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		l.excludes = append(l.excludes, g)
	}
	return nil
}

func (l *Loader) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, g := range l.excludes {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Supports reports whether path has a registered extension.
func (l *Loader) Supports(path string) bool {
	_, ok := l.decoderFor(path)
	return ok
}

// Includes reports whether path would be loaded when root is the input:
// it has a registered extension, no hidden element below root, and is
// not excluded.
func (l *Loader) Includes(root, path string) bool {
	if !l.Supports(path) {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return err == nil
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return false
		}
	}
	return !l.excluded(rel)
}

// Extensions returns the registered extensions, sorted.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.decoders))
	for ext := range l.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (l *Loader) decoderFor(path string) (Decoder, bool) {
	d, ok := l.decoders[strings.ToLower(filepath.Ext(path))]
	return d, ok
}

// Load reads the plugin document at path. A directory is read as the
// concatenation of every supported file below it, in lexical order.
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newDecodeError(path, "", err, "Check that the input path exists and is readable")
	}

	if !info.IsDir() {
		return l.LoadFile(path)
	}

	files, err := l.collect(path)
	if err != nil {
		return nil, newDecodeError(path, "", err)
	}
	if len(files) == 0 {
		logging.Warn("Loader", "No plugin documents found in %s", path)
	}

	doc := &Document{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("loading %s canceled: %w", path, err)
		}
		part, err := l.LoadFile(file)
		if err != nil {
			return nil, err
		}
		doc.Append(part)
	}
	logging.Info("Loader", "Loaded %d records from %d files in %s", doc.Len(), len(files), path)
	return doc, nil
}

// LoadFile decodes a single file, choosing the decoder by extension.
func (l *Loader) LoadFile(path string) (*Document, error) {
	dec, ok := l.decoderFor(path)
	if !ok {
		return nil, newDecodeError(path, "", fmt.Errorf("unsupported file extension %q", filepath.Ext(path)),
			fmt.Sprintf("Use one of: %s", strings.Join(l.Extensions(), ", ")))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newDecodeError(path, dec.Name(), err, "Check that the file exists and is readable")
	}

	doc, err := dec.Decode(data, path)
	if err != nil {
		return nil, newDecodeError(path, dec.Name(), err,
			"Check the file syntax",
			"Only startPlugins, optPlugins and bundles are allowed at the top level",
			"Remove fields that are not part of the plugin document schema")
	}
	if err := doc.Validate(); err != nil {
		return nil, newDecodeError(path, dec.Name(), err, "Give every record a non-empty id")
	}

	logging.Debug("Loader", "Decoded %s as %s (%d records)", path, dec.Name(), doc.Len())
	return doc, nil
}

// collect returns the supported files below root in lexical order.
func (l *Loader) collect(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !l.Supports(path) {
			return nil
		}
		if rel, err := filepath.Rel(root, path); err == nil && l.excluded(rel) {
			logging.Debug("Loader", "Excluded %s", path)
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

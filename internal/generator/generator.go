package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"

	"oboro/internal/resolver"
	"oboro/internal/template"
	"oboro/pkg/logging"
)

// DigestFile is the name of the file recording which configuration the
// output directory was generated from.
const DigestFile = ".oboro-digest"

// Options configures a Generator.
type Options struct {
	// Clean removes the output directory before writing.
	Clean bool
	// Force writes even when the digest on disk matches.
	Force bool
	// Concurrency bounds parallel file writes. Values below 1 mean 1.
	Concurrency int
}

// Result describes one generation run.
type Result struct {
	Dir     string
	Files   int
	Digest  digest.Digest
	Skipped bool
}

// Generator writes resolved configurations to disk.
type Generator struct {
	engine *template.Engine
	opts   Options
}

// New creates a generator with the built-in templates.
func New(opts Options) (*Generator, error) {
	engine, err := template.New()
	if err != nil {
		return nil, err
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Generator{engine: engine, opts: opts}, nil
}

// Plan renders every file for cfg without writing anything.
func (g *Generator) Plan(cfg *resolver.Config) ([]File, error) {
	return Plan(g.engine, cfg)
}

// Generate writes cfg below dir.
func (g *Generator) Generate(ctx context.Context, cfg *resolver.Config, dir string) (*Result, error) {
	sum, err := Digest(cfg)
	if err != nil {
		return nil, err
	}
	result := &Result{Dir: dir, Digest: sum}

	if !g.opts.Clean && !g.opts.Force && upToDate(dir, sum) {
		logging.Info("Generator", "%s is up to date (%s)", dir, sum.Encoded()[:12])
		result.Skipped = true
		return result, nil
	}

	files, err := g.Plan(cfg)
	if err != nil {
		return nil, err
	}

	if err := g.prepare(dir); err != nil {
		return nil, err
	}
	if err := g.write(ctx, dir, files); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, DigestFile), []byte(sum.String()+"\n"), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", DigestFile, err)
	}

	result.Files = len(files)
	logging.Info("Generator", "Wrote %d files to %s", len(files), dir)
	return result, nil
}

func (g *Generator) prepare(dir string) error {
	if g.opts.Clean {
		logging.Debug("Generator", "Removing %s", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("cleaning %s: %w", dir, err)
		}
	}
	for _, sub := range append([]string{"."}, subdirs...) {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return nil
}

func (g *Generator) write(ctx context.Context, dir string, files []File) error {
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Concurrency)
	for _, f := range files {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(dir, filepath.FromSlash(f.Path))
			if err := os.WriteFile(target, []byte(f.Content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", f.Path, err)
			}
			logging.Debug("Generator", "write: %s", target)
			return nil
		})
	}
	return eg.Wait()
}

// Digest returns the sha256 digest of the canonical JSON form of cfg.
func Digest(cfg *resolver.Config) (digest.Digest, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalizing config: %w", err)
	}
	return digest.FromBytes(canonical), nil
}

// upToDate reports whether dir was generated from sum and still holds the
// startup file and every output subdirectory.
func upToDate(dir string, sum digest.Digest) bool {
	if currentDigest(dir) != sum {
		return false
	}
	if info, err := os.Stat(filepath.Join(dir, "startup")); err != nil || info.IsDir() {
		logging.Debug("Generator", "startup missing in %s, regenerating", dir)
		return false
	}
	for _, sub := range subdirs {
		if info, err := os.Stat(filepath.Join(dir, sub)); err != nil || !info.IsDir() {
			logging.Debug("Generator", "%s missing in %s, regenerating", sub, dir)
			return false
		}
	}
	return true
}

func currentDigest(dir string) digest.Digest {
	data, err := os.ReadFile(filepath.Join(dir, DigestFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Warn("Generator", "Cannot read %s: %v", DigestFile, err)
		}
		return ""
	}
	d, err := digest.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		logging.Warn("Generator", "Ignoring malformed %s", DigestFile)
		return ""
	}
	return d
}

package source

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// Decoder turns raw file content into a Document.
type Decoder interface {
	// Name is the format name used in error messages.
	Name() string
	// Decode decodes data read from filename.
	Decode(data []byte, filename string) (*Document, error)
}

type jsonDecoder struct{}

func (jsonDecoder) Name() string { return "json" }

func (jsonDecoder) Decode(data []byte, _ string) (*Document, error) {
	var doc Document
	if len(bytes.TrimSpace(data)) == 0 {
		return &doc, nil
	}
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}
	if err := sigsyaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

type yamlDecoder struct{}

func (yamlDecoder) Name() string { return "yaml" }

func (yamlDecoder) Decode(data []byte, _ string) (*Document, error) {
	var doc Document
	if err := ValidateYAMLSchema(data); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}

type tomlDecoder struct{}

func (tomlDecoder) Name() string { return "toml" }

func (tomlDecoder) Decode(data []byte, _ string) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("unknown fields:\n%s", strictErr.String())
		}
		return nil, err
	}
	return &doc, nil
}

//go:embed document_schema.cue
var documentSchema []byte

// cueSchemaPath is the root definition every CUE document is unified with.
const cueSchemaPath = "#Document"

type cueDecoder struct{}

func (cueDecoder) Name() string { return "cue" }

func (cueDecoder) Decode(data []byte, filename string) (*Document, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(documentSchema)
	if schema.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schema.Err())
	}
	root := schema.LookupPath(cue.ParsePath(cueSchemaPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", cueSchemaPath, root.Err())
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if value.Err() != nil {
		return nil, value.Err()
	}

	unified := root.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}

	var doc Document
	if err := unified.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	jsv "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaResource = "oboro-document.schema.json"

var documentJSONSchema = sync.OnceValues(func() ([]byte, error) {
	r := &jsonschema.Reflector{Anonymous: true}
	s := r.Reflect(&Document{})
	s.Title = "oboro plugin document"
	s.Description = "Start plugins, on-demand plugins and bundles. Records may repeat an id to contribute further fields."
	return json.MarshalIndent(s, "", "  ")
})

// JSONSchema returns the JSON Schema (draft 2020-12) of a plugin document.
func JSONSchema() ([]byte, error) {
	return documentJSONSchema()
}

var compiledSchema = sync.OnceValues(func() (*jsv.Schema, error) {
	raw, err := JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to reflect schema: %w", err)
	}
	doc, err := jsv.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}
	c := jsv.NewCompiler()
	if err := c.AddResource(schemaResource, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema: %w", err)
	}
	sch, err := c.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return sch, nil
})

// ValidateSchema checks raw JSON against the document schema. Empty
// input and null are valid.
func ValidateSchema(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	v, err := jsv.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return validateValue(v)
}

// ValidateYAMLSchema checks raw YAML against the document schema. The
// document is parsed with the same YAML 1.2 rules as the decoder, so plain
// scalars such as y, yes or on stay strings.
func ValidateYAMLSchema(data []byte) error {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	// Round trip through JSON so numbers and maps take the shapes the
	// validator expects.
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("document is not representable as JSON: %w", err)
	}
	return ValidateSchema(raw)
}

func validateValue(v interface{}) error {
	if v == nil {
		return nil
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	return schema.Validate(v)
}

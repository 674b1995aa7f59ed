package source

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema(t *testing.T) {
	raw, err := JSONSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	assert.Equal(t, "oboro plugin document", schema["title"])
	assert.Contains(t, string(raw), `"startPlugins"`)
	assert.Contains(t, string(raw), `"depBundles"`)
	assert.Contains(t, string(raw), `"additionalProperties": false`)
}

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "sample json", data: sampleJSON},
		{name: "sample yaml", data: sampleYAML},
		{name: "empty", data: ""},
		{name: "comments only", data: "# nothing yet\n"},
		{name: "unknown top-level key", data: `{"plugins": []}`, wantErr: true},
		{name: "unknown record key", data: "bundles:\n  - id: a\n    members: [b]\n", wantErr: true},
		{name: "missing id", data: `{"optPlugins": [{"plugin": "x"}]}`, wantErr: true},
		{name: "empty id", data: `{"optPlugins": [{"id": ""}]}`, wantErr: true},
		{name: "wrong type", data: "optPlugins:\n  - id: a\n    lazy: sometimes\n", wantErr: true},
		{name: "list expected", data: `{"bundles": [{"id": "a", "plugins": "b"}]}`, wantErr: true},
		{name: "yaml 1.1 booleans stay strings", data: "optPlugins:\n  - id: n\n    plugin: y\n    fts: [yes, off]\n    cmds: [On]\n"},
		{name: "real boolean for string", data: "optPlugins:\n  - id: a\n    plugin: true\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYAMLSchema([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSchema_JSON(t *testing.T) {
	assert.NoError(t, ValidateSchema([]byte(sampleJSON)))
	assert.NoError(t, ValidateSchema([]byte("  \n")))
	assert.NoError(t, ValidateSchema([]byte("null")))
	assert.Error(t, ValidateSchema([]byte(`{"optPlugins": [{"id": "a", "lazy": "yes"}]}`)))
	assert.Error(t, ValidateSchema([]byte(`{"optPlugins": [`)))
}

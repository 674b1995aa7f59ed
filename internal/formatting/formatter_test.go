package formatting

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"oboro/internal/dependency"
	"oboro/internal/resolver"
)

func sampleConfig() *resolver.Config {
	return &resolver.Config{
		StartPlugins: []resolver.StartPlugin{{ID: "plenary"}},
		LazyPlugins: []resolver.LazyPlugin{
			{ID: "telescope", Deps: []string{"plenary"}, Lazy: true},
			{ID: "cmp"},
		},
		Bundles: []resolver.Bundle{
			{ID: "lsp", Plugins: []string{"cmp"}, DepBundles: []string{}},
		},
		Cmds:     []string{"Telescope"},
		CmdIndex: resolver.Index{"Telescope": {"telescope"}},
		Lazys:    []string{"telescope"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "", want: FormatTable},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory()
	assert.IsType(t, &JSONFormatter{}, f.CreateFormatter(Options{Format: FormatJSON}))
	assert.IsType(t, &YAMLFormatter{}, f.CreateFormatter(Options{Format: FormatYAML}))
	assert.IsType(t, &TableFormatter{}, f.CreateFormatter(Options{Format: FormatTable}))
	assert.IsType(t, &TableFormatter{}, f.CreateFormatter(Options{}))

	fm := f.CreateFormatter(Options{Format: FormatJSON})
	fm.SetOptions(Options{Format: FormatJSON, Quiet: true})
	assert.True(t, fm.GetOptions().Quiet)
}

func TestJSONFormatter_Config(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(Options{}).FormatConfig(&buf, sampleConfig()))

	var got resolver.Config
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "telescope", got.LazyPlugins[0].ID)
	assert.Equal(t, []string{"telescope"}, got.CmdIndex["Telescope"])
}

func TestYAMLFormatter_Config(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(Options{}).FormatConfig(&buf, sampleConfig()))
	assert.Contains(t, buf.String(), "startPlugins:\n  - id: plenary\n")

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []interface{}{"telescope"}, got["lazys"])
}

func TestFormatters_NilConfig(t *testing.T) {
	for _, format := range []OutputFormat{FormatTable, FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			err := NewFactory().CreateFormatter(Options{Format: format}).FormatConfig(&bytes.Buffer{}, nil)
			assert.ErrorIs(t, err, errNilConfig)
		})
	}
}

func TestTableFormatter_Config(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(Options{}).FormatConfig(&buf, sampleConfig()))
	out := buf.String()

	for _, want := range []string{"plenary", "startPlugins", "telescope", "optPlugins", "lsp", "bundles", "Telescope", "cmd", "Total:"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "colour disabled")
}

func TestTableFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(Options{Quiet: true}).FormatConfig(&buf, sampleConfig()))
	assert.NotContains(t, buf.String(), "Total:")

	buf.Reset()
	require.NoError(t, NewTableFormatter(Options{Quiet: true}).FormatConfig(&buf, &resolver.Config{}))
	assert.Empty(t, buf.String())
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(Options{}).FormatConfig(&buf, &resolver.Config{}))
	assert.Contains(t, buf.String(), "No plugins found")

	buf.Reset()
	require.NoError(t, NewTableFormatter(Options{}).FormatDependencies(&buf, dependency.New()))
	assert.Contains(t, buf.String(), "No dependencies found")
}

func TestDependencyEntries(t *testing.T) {
	entries := DependencyEntries(dependency.FromConfig(sampleConfig()))
	require.Len(t, entries, 4)

	byID := map[string]DependencyEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	assert.Equal(t, []string{"telescope"}, byID["plenary"].Dependents)
	assert.Equal(t, []string{"lsp"}, byID["cmp"].Bundles)
	assert.Equal(t, []string{"cmp"}, byID["lsp"].Members)
	assert.Equal(t, "bundles", byID["lsp"].Kind)

	assert.Empty(t, DependencyEntries(nil))

	only := DependencyEntries(dependency.FromConfig(sampleConfig()), "telescope", "missing")
	require.Len(t, only, 1)
	assert.Equal(t, []string{"plenary"}, only[0].DependsOn)
}

func TestFormatDependencies(t *testing.T) {
	g := dependency.FromConfig(sampleConfig())

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(Options{}).FormatDependencies(&buf, g))
	assert.Contains(t, buf.String(), "REQUIRED BY")
	assert.Contains(t, buf.String(), "telescope")

	buf.Reset()
	require.NoError(t, NewJSONFormatter(Options{}).FormatDependencies(&buf, g))
	var got []DependencyEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 4)
	assert.Equal(t, "cmp", got[0].ID)

	buf.Reset()
	require.NoError(t, NewYAMLFormatter(Options{}).FormatDependencies(&buf, g))
	assert.Contains(t, buf.String(), "- id: cmp\n")
}

func TestTableFormatter_TruncatesLongLists(t *testing.T) {
	members := make([]string, 20)
	for i := range members {
		members[i] = "plugin-with-a-long-name"
	}
	cfg := &resolver.Config{Bundles: []resolver.Bundle{{ID: "huge", Plugins: members}}}

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(Options{Quiet: true}).FormatConfig(&buf, cfg))
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("plugin-with-a-long-name, ", 5))
}

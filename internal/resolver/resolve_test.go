package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oboro/internal/source"
)

func sampleDocument() *source.Document {
	return &source.Document{
		StartPlugins: []source.StartPlugin{{ID: "foo"}},
		OptPlugins: []source.OptPlugin{
			{ID: "bar", Plugin: "bar.nvim", Mods: []string{"bar_mod"}, Lazy: true},
			{ID: "bar"},
			{ID: "baz"},
		},
		Bundles: []source.Bundle{
			{ID: "hoge", Plugins: []string{"bar", "baz"}, Lazy: true},
		},
	}
}

func TestMap(t *testing.T) {
	frags := Map(sampleDocument())

	assert.Equal(t, []StartPlugin{{ID: "foo"}}, frags.StartPlugins)
	assert.Equal(t, []LazyPlugin{{ID: "bar", Plugin: "bar.nvim", Lazy: true}, {ID: "bar"}, {ID: "baz"}}, frags.LazyPlugins)
	assert.Equal(t, []Bundle{{ID: "hoge", Plugins: []string{"bar", "baz"}, Lazy: true}}, frags.Bundles)
	assert.Equal(t, Index{"bar_mod": {"bar"}}, frags.ModIndex)
	assert.Empty(t, frags.EvIndex)
	assert.Empty(t, frags.FtIndex)
	assert.Empty(t, frags.CmdIndex)
	assert.Equal(t, []string{"bar", "hoge"}, frags.Lazys)

	start, lazy, bundle := frags.IDs()
	assert.Equal(t, []string{"foo"}, start)
	assert.Equal(t, []string{"bar", "bar", "baz"}, lazy)
	assert.Equal(t, []string{"hoge"}, bundle)
}

func TestMap_CopiesLists(t *testing.T) {
	doc := &source.Document{OptPlugins: []source.OptPlugin{{ID: "a", Deps: []string{"b"}}}}
	frags := Map(doc)
	doc.OptPlugins[0].Deps[0] = "changed"
	assert.Equal(t, []string{"b"}, frags.LazyPlugins[0].Deps)
}

func TestMap_Nil(t *testing.T) {
	frags := Map(nil)
	assert.Empty(t, frags.StartPlugins)
	assert.NotNil(t, frags.ModIndex)
}

func TestIndex_Dedup(t *testing.T) {
	doc := &source.Document{
		OptPlugins: []source.OptPlugin{
			{ID: "id1", Mods: []string{"foo", "foo"}, Evs: []string{"BufRead"}},
			{ID: "id2", Mods: []string{"foo"}, Evs: []string{"BufRead", "InsertEnter"}},
		},
		Bundles: []source.Bundle{
			{ID: "b", Cmds: []string{"Telescope"}, Fts: []string{"go", "go"}},
		},
	}

	cfg, err := Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, Index{"foo": {"id1", "id2"}}, cfg.ModIndex)
	assert.Equal(t, Index{"BufRead": {"id1", "id2"}, "InsertEnter": {"id2"}}, cfg.EvIndex)
	assert.Equal(t, Index{"go": {"b"}}, cfg.FtIndex)
	assert.Equal(t, Index{"Telescope": {"b"}}, cfg.CmdIndex)
	assert.Equal(t, []string{"BufRead", "InsertEnter"}, cfg.Evs)
	assert.Equal(t, []string{"foo"}, cfg.Mods)
}

func TestIndex_Tags(t *testing.T) {
	idx := Index{"c": nil, "a": nil, "b": nil}
	assert.Equal(t, []string{"a", "b", "c"}, idx.Tags())
	assert.Equal(t, []string{}, Index{}.Tags())
}

func TestResolve_RoundTrip(t *testing.T) {
	cfg, err := Resolve(sampleDocument())
	require.NoError(t, err)

	want := &Config{
		StartPlugins: []StartPlugin{{ID: "foo"}},
		LazyPlugins: []LazyPlugin{
			{ID: "bar", Plugin: "bar.nvim", Lazy: true},
			{ID: "baz"},
		},
		Bundles:  []Bundle{{ID: "hoge", Plugins: []string{"bar", "baz"}, Lazy: true}},
		Mods:     []string{"bar_mod"},
		Evs:      []string{},
		Fts:      []string{},
		Cmds:     []string{},
		ModIndex: Index{"bar_mod": {"bar"}},
		EvIndex:  Index{},
		FtIndex:  Index{},
		CmdIndex: Index{},
		Lazys:    []string{"bar", "hoge"},
	}

	sortLazy := cmpopts.SortSlices(func(a, b LazyPlugin) bool { return a.ID < b.ID })
	if diff := cmp.Diff(want, cfg, sortLazy); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Empty(t *testing.T) {
	cfg, err := Resolve(&source.Document{})
	require.NoError(t, err)
	assert.Empty(t, cfg.StartPlugins)
	assert.Empty(t, cfg.LazyPlugins)
	assert.Empty(t, cfg.Bundles)
	assert.Empty(t, cfg.Mods)
	assert.Empty(t, cfg.Evs)
	assert.Empty(t, cfg.Fts)
	assert.Empty(t, cfg.Cmds)
	assert.Empty(t, cfg.ModIndex)
	assert.Empty(t, cfg.Lazys)
}

func TestResolve_Lazys(t *testing.T) {
	cfg, err := Resolve(&source.Document{
		OptPlugins: []source.OptPlugin{{ID: "a", Lazy: true}, {ID: "a", Lazy: true}, {ID: "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cfg.Lazys)
	assert.Equal(t, []LazyPlugin{{ID: "a", Lazy: true}, {ID: "b"}}, cfg.LazyPlugins)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      *source.Document
		wantKind ConflictKind
	}{
		{
			name: "namespace collision",
			doc: &source.Document{
				StartPlugins: []source.StartPlugin{{ID: "foo"}},
				Bundles:      []source.Bundle{{ID: "foo"}},
			},
			wantKind: ConflictNamespace,
		},
		{
			name: "start plugin field conflict",
			doc: &source.Document{
				StartPlugins: []source.StartPlugin{{ID: "foo", Plugin: "a"}, {ID: "foo", Plugin: "b"}},
			},
			wantKind: ConflictField,
		},
		{
			name: "duplicate lazy plugin disagreeing",
			doc: &source.Document{
				OptPlugins: []source.OptPlugin{{ID: "bar", Deps: []string{"x"}}, {ID: "bar", Deps: []string{"x"}}},
			},
			wantKind: ConflictField,
		},
		{
			name: "bundle field conflict",
			doc: &source.Document{
				Bundles: []source.Bundle{{ID: "hoge", Config: "a"}, {ID: "hoge", Config: "b"}},
			},
			wantKind: ConflictField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.doc)
			assert.Nil(t, cfg)
			var c *ConflictError
			require.True(t, errors.As(err, &c))
			assert.Equal(t, tt.wantKind, c.Kind)
		})
	}
}

func TestResolver_ResolvePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(`
startPlugins:
  - id: foo
optPlugins:
  - id: bar
    mods: [bar_mod]
    lazy: true
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"optPlugins": [{"id": "bar", "plugin": "bar.nvim"}]}`), 0644))

	cfg, err := New(nil).ResolvePath(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []LazyPlugin{{ID: "bar", Plugin: "bar.nvim", Lazy: true}}, cfg.LazyPlugins)
	assert.Equal(t, map[string]string{"foo": CategoryStart, "bar": CategoryLazy}, cfg.IDs())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte(`{"bundles": [{"id": "foo"}]}`), 0644))
	_, err = New(source.NewLoader()).ResolvePath(context.Background(), dir)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = New(nil).ResolvePath(context.Background(), filepath.Join(dir, "missing"))
	var decodeErr *source.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

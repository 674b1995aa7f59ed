package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFlag(t *testing.T) {
	tests := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mergeFlag(tt.a, tt.b), "mergeFlag(%v, %v)", tt.a, tt.b)
	}
}

func TestMergeScalar(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    string
		wantErr bool
	}{
		{name: "both unset", a: "", b: "", want: ""},
		{name: "left set", a: "foo", b: "", want: "foo"},
		{name: "right set", a: "", b: "foo", want: "foo"},
		{name: "equal", a: "foo", b: "foo", want: "foo"},
		{name: "different", a: "foo", b: "bar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mergeScalar("plugin", tt.a, tt.b)
			if tt.wantErr {
				var c *ConflictError
				require.True(t, errors.As(err, &c))
				assert.Equal(t, ConflictField, c.Kind)
				assert.Equal(t, StrategyScalar, c.Strategy)
				assert.Equal(t, "plugin", c.Field)
				assert.Equal(t, [2]string{tt.a, tt.b}, c.Values)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeList(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []string
		want    []string
		wantErr bool
	}{
		{name: "both empty", a: nil, b: []string{}, want: nil},
		{name: "left set", a: []string{"a", "b"}, b: nil, want: []string{"a", "b"}},
		{name: "right set", a: []string{}, b: []string{"c"}, want: []string{"c"}},
		{name: "both set", a: []string{"a"}, b: []string{"b"}, wantErr: true},
		{name: "both set and equal", a: []string{"a"}, b: []string{"a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mergeList("deps", tt.a, tt.b)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConflict)
				var c *ConflictError
				require.True(t, errors.As(err, &c))
				assert.Equal(t, StrategyList, c.Strategy)
				assert.Equal(t, "deps", c.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "scalar", StrategyScalar.String())
	assert.Equal(t, "list", StrategyList.String())
	assert.Equal(t, "flag", StrategyFlag.String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestConflictError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *ConflictError
		want string
	}{
		{
			name: "field",
			err:  &ConflictError{Kind: ConflictField, ID: "foo", Field: "plugin", Strategy: StrategyScalar, Values: [2]string{"a", "b"}},
			want: `scalar conflict on foo.plugin: "a" vs "b"`,
		},
		{
			name: "identity",
			err:  identityConflict("foo", "bar"),
			want: `cannot merge "bar" into "foo": ids differ`,
		},
		{
			name: "namespace",
			err:  namespaceConflict("foo", CategoryStart, CategoryBundle),
			want: `id "foo" is declared in both startPlugins and bundles`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrConflict)
			assert.True(t, IsConflict(tt.err))
		})
	}
	assert.False(t, IsConflict(errors.New("other")))
}

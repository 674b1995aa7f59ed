package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{
			name:     "simple object",
			input:    map[string]interface{}{"id": "telescope", "lazy": true},
			expected: "{\n  \"id\": \"telescope\",\n  \"lazy\": true\n}",
		},
		{
			name:     "array",
			input:    []string{"a", "b"},
			expected: "[\n  \"a\",\n  \"b\"\n]",
		},
		{
			name:     "string",
			input:    "hello",
			expected: "\"hello\"",
		},
		{
			name:     "nil",
			input:    nil,
			expected: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJSON(tt.input))
		})
	}
}

func TestPrettyJSON_Unmarshalable(t *testing.T) {
	ch := make(chan int)
	result := PrettyJSON(ch)
	assert.NotEmpty(t, result)
	assert.Contains(t, result, "0x")
}

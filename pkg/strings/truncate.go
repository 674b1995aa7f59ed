// Package strings holds small text helpers shared by the output formatters.
package strings

import (
	"strings"
)

// DefaultColumnWidth is the widest a list column may grow in table output.
const DefaultColumnWidth = 60

// MinTruncateLen is the smallest maxLen Truncate honours; smaller values
// leave no room for content plus "...".
const MinTruncateLen = 4

// Truncate collapses all whitespace in s to single spaces and cuts the
// result to maxLen runes, ending it with "..." when anything was dropped.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

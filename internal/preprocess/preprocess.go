// Package preprocess selects between the normal and optimized variants of
// Lua sources.
//
// Variant code is marked with comment fences:
//
//	-- BEGIN_NORMAL
//	require('foo').setup()
//	-- END_NORMAL
//	-- BEGIN_OPTIMIZED
//	require('foo.compiled')
//	-- END_OPTIMIZED
//
// The selected variant is unwrapped and the other removed. Optimized output
// is additionally stripped of line comments and blank lines.
package preprocess

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"oboro/pkg/logging"
)

// Mode selects which variant is kept.
type Mode int

const (
	Normal Mode = iota
	Optimized
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "normal" or "optimized" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "normal":
		return Normal, nil
	case "optimized":
		return Optimized, nil
	default:
		return Normal, fmt.Errorf("unknown mode %q (expected normal or optimized)", s)
	}
}

// The rest of the BEGIN line and its line break belong to the fence; the
// line break after END stays.
var (
	normalBlock    = regexp.MustCompile(`--\sBEGIN_NORMAL.*\s((?s:.*?))--\sEND_NORMAL`)
	optimizedBlock = regexp.MustCompile(`--\sBEGIN_OPTIMIZED.*\s((?s:.*?))--\sEND_OPTIMIZED`)
)

// Apply returns content with mode applied.
func Apply(mode Mode, content string) string {
	if mode == Optimized {
		content = normalBlock.ReplaceAllString(content, "")
		content = optimizedBlock.ReplaceAllString(content, "${1}")
		return stripLines(content)
	}
	content = normalBlock.ReplaceAllString(content, "${1}")
	return optimizedBlock.ReplaceAllString(content, "")
}

// stripLines drops blank lines and lines holding only a comment.
func stripLines(content string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// ApplyFile rewrites the file at path in place, keeping its permissions.
func ApplyFile(mode Mode, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out := Apply(mode, string(data))
	if out == string(data) {
		logging.Debug("Preprocess", "%s unchanged", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logging.Debug("Preprocess", "Applied %s to %s", mode, path)
	return nil
}

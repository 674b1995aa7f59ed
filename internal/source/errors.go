package source

import (
	"fmt"
	"strings"
)

// DecodeError reports a plugin document that could not be read or decoded.
type DecodeError struct {
	Path        string   // file that caused the error
	Format      string   // decoder name, empty when the extension is unknown
	Err         error    // underlying error
	Suggestions []string // actionable hints for the user
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DetailedError returns the error together with its suggestions.
func (e *DecodeError) DetailedError() string {
	if len(e.Suggestions) == 0 {
		return e.Error()
	}
	parts := []string{e.Error(), "  Suggestions:"}
	for _, s := range e.Suggestions {
		parts = append(parts, "    - "+s)
	}
	return strings.Join(parts, "\n")
}

func newDecodeError(path, format string, err error, suggestions ...string) *DecodeError {
	return &DecodeError{
		Path:        path,
		Format:      format,
		Err:         err,
		Suggestions: suggestions,
	}
}

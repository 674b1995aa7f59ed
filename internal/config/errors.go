package config

import (
	"errors"
	"fmt"
	"strings"
)

// Stages at which reading config.yaml can fail.
const (
	StageRead     = "read"     // the file exists but is not valid YAML
	StageDecode   = "decode"   // a value has the wrong type for its key
	StageValidate = "validate" // a value is out of range for its key
)

// SettingsError reports a config.yaml that could not be turned into
// OboroConfig. Keys names the offending settings keys when they are known,
// e.g. "generate.concurrency".
type SettingsError struct {
	Path  string
	Stage string
	Keys  []string
	Err   error
	Hints []string
}

func (e *SettingsError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("settings %s (%s): %v", e.Path, e.Stage, e.Err)
	}
	return fmt.Sprintf("settings %s (%s) %s: %v", e.Path, e.Stage, strings.Join(e.Keys, ", "), e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// DetailedError returns the error followed by hints and the environment
// variables that override the offending keys.
func (e *SettingsError) DetailedError() string {
	lines := []string{e.Error()}
	for _, key := range e.Keys {
		lines = append(lines, fmt.Sprintf("  %s can also be set with %s", key, EnvVar(key)))
	}
	if len(e.Hints) > 0 {
		lines = append(lines, "  Hints:")
		for _, h := range e.Hints {
			lines = append(lines, "    - "+h)
		}
	}
	return strings.Join(lines, "\n")
}

// EnvVar returns the environment variable overriding a settings key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func newSettingsError(path, stage string, err error, hints ...string) *SettingsError {
	se := &SettingsError{Path: path, Stage: stage, Err: err, Hints: hints}
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			se.Keys = append(se.Keys, ve.Field)
		}
	}
	return se
}

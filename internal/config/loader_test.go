package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	loaded, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	expected := GetDefaultConfig()
	assert.Empty(t, loaded.Input.Exclude)
	loaded.Input.Exclude, expected.Input.Exclude = nil, nil
	assert.Equal(t, expected, loaded)
}

func TestLoadConfig_FileOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
log:
  level: debug
input:
  exclude: ["drafts/**", "*.bak.yaml"]
output:
  format: json
generate:
  concurrency: 8
  clean: true
watch:
  debounce: 2s
selfUpdate:
  repository: someone/oboro
`)

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)

	expected := GetDefaultConfig()
	expected.Log.Level = "debug"
	expected.Input.Exclude = []string{"drafts/**", "*.bak.yaml"}
	expected.Output.Format = "json"
	expected.Generate = GenerateConfig{Concurrency: 8, Clean: true}
	expected.Watch.Debounce = 2 * time.Second
	expected.SelfUpdate.Repository = "someone/oboro"
	assert.Equal(t, expected, loaded)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  level: warn\n")

	t.Setenv("OBORO_LOG_LEVEL", "error")
	t.Setenv("OBORO_LOG_FORMAT", "json")
	t.Setenv("OBORO_GENERATE_CONCURRENCY", "2")
	t.Setenv("OBORO_WATCH_DEBOUNCE", "100ms")

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.Log.Level)
	assert.Equal(t, "json", loaded.Log.Format)
	assert.Equal(t, 2, loaded.Generate.Concurrency)
	assert.Equal(t, 100*time.Millisecond, loaded.Watch.Debounce)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log: [unterminated\n")

	_, err := LoadConfig(dir)
	var settingsErr *SettingsError
	require.True(t, errors.As(err, &settingsErr))
	assert.Equal(t, StageRead, settingsErr.Stage)
	assert.Equal(t, configFileName, filepath.Base(settingsErr.Path))
	assert.Empty(t, settingsErr.Keys)
	assert.Contains(t, settingsErr.DetailedError(), "Hints:")
}

func TestLoadConfig_WrongType(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "watch:\n  debounce:\n    value: 1\n")

	_, err := LoadConfig(dir)
	var settingsErr *SettingsError
	require.True(t, errors.As(err, &settingsErr))
	assert.Equal(t, StageDecode, settingsErr.Stage)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
output:
  format: xml
generate:
  concurrency: 0
`)

	_, err := LoadConfig(dir)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "output.format", verrs[0].Field)
	assert.Equal(t, "generate.concurrency", verrs[1].Field)

	var settingsErr *SettingsError
	require.True(t, errors.As(err, &settingsErr))
	assert.Equal(t, StageValidate, settingsErr.Stage)
	assert.Equal(t, []string{"output.format", "generate.concurrency"}, settingsErr.Keys)
	assert.Contains(t, settingsErr.Error(), "output.format, generate.concurrency")
	assert.Contains(t, settingsErr.DetailedError(), "generate.concurrency can also be set with OBORO_GENERATE_CONCURRENCY")
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "OBORO_LOG_LEVEL", EnvVar("log.level"))
	assert.Equal(t, "OBORO_SELFUPDATE_REPOSITORY", EnvVar("selfUpdate.repository"))
}

func TestGetDefaultConfigPathOrPanic(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()

	osUserHomeDir = func() (string, error) { return "/home/test", nil }
	assert.Equal(t, filepath.Join("/home/test", ".config", "oboro"), GetDefaultConfigPathOrPanic())

	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }
	assert.Panics(t, func() { GetDefaultConfigPathOrPanic() })
}

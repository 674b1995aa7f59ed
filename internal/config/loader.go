package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"oboro/pkg/logging"
)

const (
	userConfigDir  = ".config/oboro"
	configFileName = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. OBORO_LOG_LEVEL.
	EnvPrefix = "OBORO"
)

var osUserHomeDir = os.UserHomeDir

// GetDefaultConfigPathOrPanic returns the directory holding config.yaml.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := osUserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads config.yaml from configPath on top of the defaults and
// applies OBORO_* environment overrides. A missing file is not an error.
func LoadConfig(configPath string) (OboroConfig, error) {
	v := newViper()

	configFilePath := filepath.Join(configPath, configFileName)
	v.SetConfigFile(configFilePath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
		} else {
			return OboroConfig{}, newSettingsError(configFilePath, StageRead, err,
				"Check that the file is valid YAML",
				"Run 'oboro version' with --log-level=debug to see which file is read")
		}
	} else {
		logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	}

	var config OboroConfig
	if err := v.Unmarshal(&config); err != nil {
		return OboroConfig{}, newSettingsError(configFilePath, StageDecode, err,
			"Check the value types, e.g. watch.debounce: 500ms")
	}

	if err := config.Validate(); err != nil {
		return OboroConfig{}, newSettingsError(configFilePath, StageValidate, err)
	}
	return config, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := GetDefaultConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("input.exclude", defaults.Input.Exclude)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("generate.concurrency", defaults.Generate.Concurrency)
	v.SetDefault("generate.clean", defaults.Generate.Clean)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
	v.SetDefault("selfUpdate.repository", defaults.SelfUpdate.Repository)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

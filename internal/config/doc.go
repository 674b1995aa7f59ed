// Package config loads oboro's own settings.
//
// Settings live in config.yaml inside the configuration directory
// (~/.config/oboro by default, or --config-path). Every key has a default,
// so the file is optional, and every key can be overridden from the
// environment with the OBORO_ prefix and dots replaced by underscores:
//
//	log:
//	  level: debug         # OBORO_LOG_LEVEL
//	  format: json         # OBORO_LOG_FORMAT
//	input:
//	  exclude: ["drafts/**"] # OBORO_INPUT_EXCLUDE="a b"
//	output:
//	  format: yaml         # OBORO_OUTPUT_FORMAT
//	generate:
//	  concurrency: 8       # OBORO_GENERATE_CONCURRENCY
//	  clean: true          # OBORO_GENERATE_CLEAN
//	watch:
//	  debounce: 1s         # OBORO_WATCH_DEBOUNCE
//	selfUpdate:
//	  repository: owner/oboro
//
// Loading is done with viper. Every failure is a *SettingsError carrying
// the stage (read, decode or validate); invalid values are collected as
// ValidationErrors underneath it and their keys listed in Keys.
package config

package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidatePositive checks that an integer setting is at least 1
func ValidatePositive(field string, value int) error {
	if value < 1 {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: "must be at least 1",
		}
	}
	return nil
}

// ValidateRepositorySlug checks an optional owner/name pair
func ValidateRepositorySlug(field, value string) error {
	if value == "" {
		return nil
	}
	owner, name, ok := strings.Cut(value, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: "must have the form owner/name",
		}
	}
	return nil
}

// Validate checks every setting and reports all problems at once.
func (c OboroConfig) Validate() error {
	var errs ValidationErrors

	collect := func(err error) {
		if ve, ok := err.(ValidationError); ok {
			errs = append(errs, ve)
		}
	}

	collect(ValidateOneOf("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "warning", "error"}))
	collect(ValidateOneOf("log.format", c.Log.Format, []string{"text", "json", "logfmt"}))
	collect(ValidateOneOf("output.format", c.Output.Format, []string{"table", "json", "yaml"}))
	collect(ValidatePositive("generate.concurrency", c.Generate.Concurrency))
	if c.Watch.Debounce < 0 {
		errs.Add("watch.debounce", "must not be negative", c.Watch.Debounce)
	}
	collect(ValidateRepositorySlug("selfUpdate.repository", c.SelfUpdate.Repository))

	if errs.HasErrors() {
		return errs
	}
	return nil
}

package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/subtext/pkg/config"
	"github.com/yaklabco/subtext/pkg/textenc"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "encoding").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	// Validate encoding by probing the charset resolver; names outside
	// the curated table are fine as long as they resolve.
	if cfg.Encoding != "" {
		if _, err := textenc.NewDecoder(cfg.Encoding, false); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "encoding",
				Value:   cfg.Encoding,
				Message: fmt.Sprintf("unknown encoding %q; see 'subtext encodings' for the supported names", cfg.Encoding),
			})
		} else if _, known := textenc.Describe(cfg.Encoding); !known {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "encoding",
				Value:   cfg.Encoding,
				Message: fmt.Sprintf("encoding %q is not in the curated list but resolves; proceeding", cfg.Encoding),
			})
		}
	}

	// Validate justification
	if !cfg.Justify.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "justify",
			Value:   cfg.Justify,
			Message: fmt.Sprintf("invalid justification %q; must be one of: center, left, right", cfg.Justify),
		})
	}

	// Validate format
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, pretty", cfg.Format),
		})
	}

	// Validate log level
	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidLogLevel returns true if the log level string is valid.
func IsValidLogLevel(level string) bool {
	return knownLogLevels[level]
}

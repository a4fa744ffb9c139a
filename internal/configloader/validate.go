package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/docgate/pkg/config"
)

// ErrConfig marks every configuration failure so callers can map it to a
// single exit code with errors.Is.
var ErrConfig = errors.New("configuration error")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the invalid key or environment variable (e.g. "format").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Is makes every ValidationError match ErrConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrConfig
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown keys).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the first error, or nil when the result is valid.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &r.Errors[0]
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

// Validate checks a resolved configuration.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	if !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	return result
}

// validateLayer checks the enum values a layer sets, attributing errors to
// the layer's source and line.
func validateLayer(layer *Layer) *ValidationResult {
	result := &ValidationResult{}
	if layer == nil {
		return result
	}

	filePath := ""
	if layer.Source != SourceEnvironment && layer.Source != SourceFlags {
		filePath = layer.Source
	}

	if layer.Format != nil {
		if _, err := config.ParseFormat(*layer.Format); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:    layer.fieldName("format"),
				Value:    *layer.Format,
				Message:  err.Error(),
				FilePath: filePath,
				Line:     layer.line("format"),
			})
		}
	}

	if layer.Color != nil {
		if _, err := config.ParseColorMode(*layer.Color); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:    layer.fieldName("color"),
				Value:    *layer.Color,
				Message:  err.Error(),
				FilePath: filePath,
				Line:     layer.line("color"),
			})
		}
	}

	return result
}

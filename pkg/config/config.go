// Package config defines core configuration types for docgate.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
//
// Configuration only affects presentation and optional informational
// enrichment. The check set, severities and thresholds are fixed.
package config

// Severity is the category of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the report output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ColorMode controls colorized text output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the root configuration structure for docgate.
type Config struct {
	// Format selects the report renderer ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// Color controls terminal styling of the text report.
	Color ColorMode `yaml:"color"`

	// Suggestions renders hints under findings that carry one.
	Suggestions bool `yaml:"suggestions"`

	// ResolveAnchors annotates anchor references that match no heading or HTML anchor.
	ResolveAnchors bool `yaml:"resolve_anchors"`
}

// NewConfig returns a Config with defaults that reproduce the plain report.
func NewConfig() *Config {
	return &Config{
		Format:         FormatText,
		Color:          ColorAuto,
		Suggestions:    false,
		ResolveAnchors: false,
	}
}

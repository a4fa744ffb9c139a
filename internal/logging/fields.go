package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldSource = "source"

	// Configuration fields.
	FieldConfig         = "config"
	FieldFormat         = "format"
	FieldColor          = "color"
	FieldSuggestions    = "suggestions"
	FieldResolveAnchors = "resolve_anchors"

	// Validation fields.
	FieldLines    = "lines"
	FieldSection  = "section"
	FieldErrors   = "errors"
	FieldWarnings = "warnings"
	FieldAnchors  = "anchors"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all docgate environment variables.
const envVarPrefix = "DOCGATE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":          {field: "format", typ: envTypeString},
	"COLOR":           {field: "color", typ: envTypeString},
	"SUGGESTIONS":     {field: "suggestions", typ: envTypeBool},
	"RESOLVE_ANCHORS": {field: "resolve_anchors", typ: envTypeBool},
}

// LoadFromEnv reads DOCGATE_* variables into a layer. Empty variables are
// treated as unset.
func LoadFromEnv() (*Layer, error) {
	layer := &Layer{Source: SourceEnvironment}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := strings.TrimSpace(os.Getenv(envVar))
		if value == "" {
			continue
		}

		if err := applyEnvValue(layer, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	return layer, nil
}

// applyEnvValue applies a single environment variable value to the layer.
func applyEnvValue(layer *Layer, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(layer, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{
				Field:   envVar,
				Value:   value,
				Message: fmt.Sprintf("invalid boolean %q (expected true/false/1/0)", value),
			}
		}
		return setBoolField(layer, mapping.field, b)
	default:
		return fmt.Errorf("%w: unknown field type for %s", ErrConfig, envVar)
	}
}

func setStringField(layer *Layer, field, value string) error {
	switch field {
	case "format":
		layer.Format = &value
	case "color":
		layer.Color = &value
	default:
		return fmt.Errorf("%w: unknown string field: %s", ErrConfig, field)
	}
	return nil
}

func setBoolField(layer *Layer, field string, value bool) error {
	switch field {
	case "suggestions":
		layer.Suggestions = &value
	case "resolve_anchors":
		layer.ResolveAnchors = &value
	default:
		return fmt.Errorf("%w: unknown boolean field: %s", ErrConfig, field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

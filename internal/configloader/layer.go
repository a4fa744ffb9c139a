package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/docgate/pkg/fsutil"
)

// Layer is the configuration contributed by one source. A nil field means
// the source did not set it, so an explicit false in a file can still turn
// an option off.
type Layer struct {
	Format         *string `yaml:"format"          toml:"format"`
	Color          *string `yaml:"color"           toml:"color"`
	Suggestions    *bool   `yaml:"suggestions"     toml:"suggestions"`
	ResolveAnchors *bool   `yaml:"resolve_anchors" toml:"resolve_anchors"`

	// Source names where the layer came from: a file path, "environment"
	// or "flags".
	Source string `yaml:"-" toml:"-"`

	// lines maps keys to their line in Source, for file layers.
	lines map[string]int
}

// Layer sources that are not files.
const (
	SourceEnvironment = "environment"
	SourceFlags       = "flags"
)

// knownKeys lists the top-level keys a config file may contain.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string]bool{
	"format":          true,
	"color":           true,
	"suggestions":     true,
	"resolve_anchors": true,
}

// line returns the line where key was set, or 0.
func (l *Layer) line(key string) int {
	if l == nil || l.lines == nil {
		return 0
	}
	return l.lines[key]
}

// fieldName names key the way the user spelled it in this source.
func (l *Layer) fieldName(key string) string {
	if l != nil && l.Source == SourceEnvironment {
		return GetEnvVarName(key)
	}
	return key
}

// IsEmpty reports whether the layer sets nothing.
func (l *Layer) IsEmpty() bool {
	return l == nil ||
		(l.Format == nil && l.Color == nil && l.Suggestions == nil && l.ResolveAnchors == nil)
}

// loadLayerFile parses a YAML or TOML config file, chosen by extension.
// Unknown keys come back as warnings; malformed files and wrongly typed
// values are errors.
func loadLayerFile(ctx context.Context, path string) (*Layer, []ValidationError, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	layer := &Layer{Source: path, lines: make(map[string]int)}

	var warnings []ValidationError
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		warnings, err = decodeTOML(path, content, layer)
	} else {
		warnings, err = decodeYAML(path, content, layer)
	}
	if err != nil {
		return nil, nil, err
	}
	return layer, warnings, nil
}

func decodeYAML(path string, content []byte, layer *Layer) ([]ValidationError, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, &ValidationError{FilePath: path, Message: fmt.Sprintf("parse YAML: %v", err)}
	}

	// An empty file is a valid, empty layer.
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &ValidationError{
			FilePath: path,
			Line:     doc.Line,
			Message:  "top level must be a mapping of option names to values",
		}
	}

	var warnings []ValidationError
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if !knownKeys[key.Value] {
			warnings = append(warnings, unknownKey(path, key.Value, key.Line))
			continue
		}
		layer.lines[key.Value] = key.Line
	}

	if err := doc.Decode(layer); err != nil {
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}
	return warnings, nil
}

// decodeTOML fills layer from TOML content. A strict pass over a scratch
// layer locates unknown keys; the lenient pass does the real decoding.
// Known keys carry no line numbers.
func decodeTOML(path string, content []byte, layer *Layer) ([]ValidationError, error) {
	var warnings []ValidationError

	var scratch Layer
	err := toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields().Decode(&scratch)

	var missing *toml.StrictMissingError
	switch {
	case errors.As(err, &missing):
		for _, derr := range missing.Errors {
			row, _ := derr.Position()
			warnings = append(warnings, unknownKey(path, strings.Join(derr.Key(), "."), row))
		}
	case err != nil:
		return nil, tomlError(path, err)
	}

	if err := toml.Unmarshal(content, layer); err != nil {
		return nil, tomlError(path, err)
	}
	return warnings, nil
}

func tomlError(path string, err error) error {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, _ := derr.Position()
		return &ValidationError{FilePath: path, Line: row, Message: "parse TOML: " + derr.Error()}
	}
	return &ValidationError{FilePath: path, Message: "parse TOML: " + err.Error()}
}

func unknownKey(path, key string, line int) ValidationError {
	return ValidationError{
		Field:    key,
		FilePath: path,
		Line:     line,
		Message:  fmt.Sprintf("unknown key %q; it will be ignored", key),
	}
}

package config

import "fmt"

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string selects the text format.
func ParseFormat(formatStr string) (OutputFormat, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json", formatStr)
	}
}

// IsValid returns true if the format is a known valid format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f OutputFormat) String() string {
	return string(f)
}

// ParseColorMode parses a color mode string. The empty string selects auto.
func ParseColorMode(mode string) (ColorMode, error) {
	switch mode {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unknown color mode %q; valid modes: auto, always, never", mode)
	}
}

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

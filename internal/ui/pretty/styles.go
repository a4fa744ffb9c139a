// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/yaklabco/docgate/pkg/config"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Report components
	AllClear   lipgloss.Style
	Reference  lipgloss.Style
	Title      lipgloss.Style
	Section    lipgloss.Style
	Suggestion lipgloss.Style
	Unresolved lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	enabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// Enabled reports whether the styles emit ANSI sequences.
func (s *Styles) Enabled() bool {
	return s != nil && s.enabled
}

// Paint applies style to text when color is enabled and returns text
// unchanged otherwise.
func (s *Styles) Paint(style lipgloss.Style, text string) string {
	return s.render(style, text)
}

// render applies style only when color is enabled, so plain output is
// byte-for-byte the input text.
func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.Enabled() || text == "" {
		return text
	}
	return style.Render(text)
}

// newColorStyles creates styles with ANSI 256 colors.
// The renderer's profile is pinned because the caller has already decided
// color is wanted, even when stdout is a pipe.
func newColorStyles() *Styles {
	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(termenv.ANSI256)

	base := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Styles{
		Error:   base.Foreground(lipgloss.Color("9")).Bold(true),
		Warning: base.Foreground(lipgloss.Color("11")).Bold(true),
		Info:    base.Foreground(lipgloss.Color("12")),

		AllClear:   base.Foreground(lipgloss.Color("10")),
		Reference:  base.Foreground(lipgloss.Color("8")),
		Title:      base.Bold(true),
		Section:    base.Foreground(lipgloss.Color("14")).Bold(true),
		Suggestion: base.Foreground(lipgloss.Color("10")).Italic(true),
		Unresolved: base.Foreground(lipgloss.Color("11")),

		SummaryTitle: base.Bold(true),
		Success:      base.Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      base.Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    base.Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: base.Foreground(lipgloss.Color("8")),

		Dim:  base.Foreground(lipgloss.Color("8")),
		Bold: base.Bold(true),

		enabled: true,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Info:           plain,
		AllClear:       plain,
		Reference:      plain,
		Title:          plain,
		Section:        plain,
		Suggestion:     plain,
		Unresolved:     plain,
		SummaryTitle:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
// Unknown modes behave like auto.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

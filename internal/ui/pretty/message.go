package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/lint"
)

// suggestionIndent lines a suggestion up under the finding text.
const suggestionIndent = "    "

// FormatTitle renders the report title line for a document.
func (s *Styles) FormatTitle(name string) string {
	return s.render(s.Title, "=== MARKDOWN VALIDATION: "+name+" ===")
}

// FormatSectionHeader renders a section header such as "--- CODE BLOCKS ---".
func (s *Styles) FormatSectionHeader(section lint.Section) string {
	return s.render(s.Section, section.Header())
}

// FormatMessage renders one report line, styled by its glyph.
func (s *Styles) FormatMessage(msg lint.Message) string {
	return s.render(s.glyphStyle(msg.Glyph), msg.String())
}

// FormatSuggestion renders the hint printed under a finding.
func (s *Styles) FormatSuggestion(text string) string {
	return suggestionIndent + s.render(s.Suggestion, "Suggestion: "+text)
}

// FormatUnresolved renders the suffix listing fragments that match no anchor.
// It returns "" when every fragment resolved.
func (s *Styles) FormatUnresolved(fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}
	return " " + s.render(s.Unresolved, "(unresolved: "+strings.Join(fragments, ", ")+")")
}

// FormatSeverity renders a severity name in its color.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	return s.render(s.severityStyle(sev), string(sev))
}

func (s *Styles) glyphStyle(glyph lint.Glyph) lipgloss.Style {
	switch glyph {
	case lint.GlyphError:
		return s.Error
	case lint.GlyphWarning:
		return s.Warning
	case lint.GlyphAllClear:
		return s.AllClear
	case lint.GlyphReference:
		return s.Reference
	default:
		return s.Info
	}
}

func (s *Styles) severityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityWarning:
		return s.Warning
	default:
		return s.Info
	}
}

// Package lint provides the docgate check engine: four independent line
// scanners and the aggregator that turns their results into a verdict.
//
// Everything in this package is pure. Checks read a document.Document and
// return fresh values; nothing is cached between calls and nothing performs
// I/O, so the checks may run in any order or concurrently.
package lint

import (
	"strconv"

	"github.com/yaklabco/docgate/pkg/config"
)

// Finding is one observation produced by a check.
type Finding struct {
	// Category is the severity of the observation.
	Category config.Severity

	// Line is the 1-based line the finding refers to.
	// Zero means the finding applies to the whole document.
	Line int

	// Message is the human-readable description.
	Message string

	// Suggestion is an optional hint. It never affects counts.
	Suggestion string

	// Anchors lists the fragment references found on the line, in order
	// (anchor findings only).
	Anchors []string
}

// IsDocumentWide reports whether the finding has no line number.
func (f Finding) IsDocumentWide() bool {
	return f.Line <= 0
}

// Glyph prefixes a rendered report message.
type Glyph string

const (
	GlyphError     Glyph = "❌"
	GlyphWarning   Glyph = "!"
	GlyphInfo      Glyph = "i"
	GlyphAllClear  Glyph = "✅"
	GlyphReference Glyph = ""
)

// referenceIndent replaces the glyph on anchor reference lines.
const referenceIndent = "   "

// GlyphFor returns the glyph that introduces a finding of the given severity.
func GlyphFor(sev config.Severity) Glyph {
	switch sev {
	case config.SeverityError:
		return GlyphError
	case config.SeverityWarning:
		return GlyphWarning
	default:
		return GlyphInfo
	}
}

// Message is one line of a section's report stream.
type Message struct {
	Glyph Glyph

	// Line is the 1-based line number, or 0 for document-wide messages.
	Line int

	Text string
}

// String renders the message exactly as it appears in the text report.
func (m Message) String() string {
	var prefix string
	if m.Glyph == GlyphReference {
		prefix = referenceIndent
	} else {
		prefix = string(m.Glyph) + " "
	}

	if m.Line > 0 {
		return prefix + "Line " + strconv.Itoa(m.Line) + ": " + m.Text
	}
	return prefix + m.Text
}

// messageFor renders a finding as its report message.
func messageFor(f Finding) Message {
	return Message{Glyph: GlyphFor(f.Category), Line: f.Line, Text: f.Message}
}

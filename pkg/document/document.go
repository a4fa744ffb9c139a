// Package document provides the immutable line view of a Markdown file
// that every docgate check scans.
package document

import "strings"

const byteOrderMark = "\uFEFF"

// Document is an ordered, 1-indexed sequence of lines plus a display name.
// It is never mutated after construction and is safe to share between
// goroutines.
type Document struct {
	// Name is the display name used in report headers (typically the file base name).
	Name string

	// Lines holds the decoded lines without their terminators.
	Lines []string
}

// New creates a Document from already-split lines.
// The slice is copied so later changes by the caller are not observed.
func New(name string, lines []string) *Document {
	owned := make([]string, len(lines))
	copy(owned, lines)
	return &Document{Name: name, Lines: owned}
}

// FromString splits text into lines and wraps them in a Document.
func FromString(name, text string) *Document {
	return &Document{Name: name, Lines: Split(text)}
}

// FromBytes is FromString for raw file content.
func FromBytes(name string, content []byte) *Document {
	return FromString(name, string(content))
}

// Split breaks text on LF. A leading UTF-8 byte order mark is dropped and a
// trailing CR is removed from each line so CRLF files produce the same lines
// as LF files.
//
// Splitting is exact: "a\n" yields ["a", ""] and "" yields [""], so line
// numbers always match what an editor shows.
func Split(text string) []string {
	text = strings.TrimPrefix(text, byteOrderMark)
	lines := strings.Split(text, "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Len returns the number of lines.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Line returns the content of a 1-based line number.
// Returns ("", false) if the line number is out of range.
func (d *Document) Line(num int) (string, bool) {
	if d == nil || num < 1 || num > len(d.Lines) {
		return "", false
	}
	return d.Lines[num-1], true
}

// Text joins the lines back together with LF terminators.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Lines, "\n")
}

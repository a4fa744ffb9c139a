package refs

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AnchorSource indicates the origin of an anchor.
type AnchorSource int

const (
	// AnchorFromHeading is generated from a Markdown heading.
	AnchorFromHeading AnchorSource = iota

	// AnchorFromHTMLID is from an HTML element's id attribute.
	AnchorFromHTMLID

	// AnchorFromHTMLName is from an HTML anchor's name attribute.
	AnchorFromHTMLName
)

// String returns the lowercase name of the source.
func (s AnchorSource) String() string {
	switch s {
	case AnchorFromHeading:
		return "heading"
	case AnchorFromHTMLID:
		return "html-id"
	case AnchorFromHTMLName:
		return "html-name"
	default:
		return "unknown"
	}
}

// Anchor is a valid link target within the document.
type Anchor struct {
	// ID is the NFC-normalized anchor identifier (e.g. "heading-name").
	ID string

	Source AnchorSource

	// Line is the 1-based line of the heading or HTML element.
	Line int

	// Text is the heading text the ID was derived from.
	Text string
}

// AnchorMap provides anchor lookup by ID.
// Keys are NFC-normalized so composed and decomposed spellings of the same
// heading resolve to the same anchor.
type AnchorMap struct {
	anchors map[string][]*Anchor

	// order preserves insertion order for All.
	order []*Anchor

	// anchorLower maps lowercase IDs to their canonical spelling.
	anchorLower map[string]string

	// seenCounts tracks how many times each base slug has been generated.
	seenCounts map[string]int
}

// NewAnchorMap creates an empty AnchorMap.
func NewAnchorMap() *AnchorMap {
	return &AnchorMap{
		anchors:     make(map[string][]*Anchor),
		anchorLower: make(map[string]string),
		seenCounts:  make(map[string]int),
	}
}

// Add adds an anchor to the map. The ID is normalized before insertion.
func (m *AnchorMap) Add(anchor *Anchor) {
	anchor.ID = norm.NFC.String(anchor.ID)
	id := anchor.ID
	m.anchors[id] = append(m.anchors[id], anchor)
	m.order = append(m.order, anchor)
	m.anchorLower[strings.ToLower(id)] = id
}

// AddFromHeading generates and adds an anchor from heading text.
// It returns the generated ID.
func (m *AnchorMap) AddFromHeading(text string, line int) string {
	id := m.GenerateAnchor(text)
	m.Add(&Anchor{
		ID:     id,
		Source: AnchorFromHeading,
		Line:   line,
		Text:   text,
	})
	return id
}

// GenerateAnchor converts heading text to a GitHub-compatible anchor,
// appending -1, -2, ... for repeated headings.
func (m *AnchorMap) GenerateAnchor(text string) string {
	base := Slug(text)

	count := m.seenCounts[base]
	m.seenCounts[base] = count + 1

	if count == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}

// Slug converts heading text to its base anchor ID without duplicate
// handling. Letters are lowercased, spaces become hyphens, and punctuation
// other than hyphen and underscore is dropped.
func Slug(text string) string {
	text = norm.NFC.String(text)

	var buf strings.Builder
	buf.Grow(len(text))

	for _, ch := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsNumber(ch) || unicode.Is(unicode.Mn, ch):
			buf.WriteRune(ch)
		case ch == '-' || ch == '_':
			buf.WriteRune(ch)
		case ch == ' ':
			_ = buf.WriteByte('-') // strings.Builder.WriteByte never fails
		}
	}

	return strings.Trim(buf.String(), "-")
}

// Has reports whether the anchor ID exists.
func (m *AnchorMap) Has(id string) bool {
	_, ok := m.anchors[norm.NFC.String(id)]
	return ok
}

// HasIgnoreCase reports whether the anchor ID exists, ignoring case.
func (m *AnchorMap) HasIgnoreCase(id string) bool {
	_, ok := m.anchorLower[strings.ToLower(norm.NFC.String(id))]
	return ok
}

// Lookup returns the first anchor with the given ID, or nil.
func (m *AnchorMap) Lookup(id string) *Anchor {
	anchors := m.anchors[norm.NFC.String(id)]
	if len(anchors) == 0 {
		return nil
	}
	return anchors[0]
}

// LookupIgnoreCase returns the first anchor matching case-insensitively.
func (m *AnchorMap) LookupIgnoreCase(id string) *Anchor {
	canonicalID, ok := m.anchorLower[strings.ToLower(norm.NFC.String(id))]
	if !ok {
		return nil
	}
	return m.Lookup(canonicalID)
}

// All returns every anchor in insertion order.
func (m *AnchorMap) All() []*Anchor {
	out := make([]*Anchor, len(m.order))
	copy(out, m.order)
	return out
}

// Count returns the number of unique anchor IDs.
func (m *AnchorMap) Count() int {
	return len(m.anchors)
}

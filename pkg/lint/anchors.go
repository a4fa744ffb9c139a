package lint

import (
	"regexp"
	"strings"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
)

// anchorLinkPattern matches [text](#fragment). Group 1 is the fragment.
var anchorLinkPattern = regexp.MustCompile(`\[.*?\]\((#.*?)\)`)

// CollectAnchors lists lines containing in-document anchor links.
// It is informational only: it never adds errors or warnings, and it does
// not check that the fragment points at a real heading.
func CollectAnchors(doc *document.Document) ValidationResult {
	var res ValidationResult
	var refs []Finding

	for idx, line := range doc.Lines {
		matches := anchorLinkPattern.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}

		fragments := make([]string, 0, len(matches))
		for _, match := range matches {
			fragments = append(fragments, match[1])
		}

		refs = append(refs, Finding{
			Category: config.SeverityInfo,
			Line:     idx + 1,
			Message:  strings.TrimSpace(line),
			Anchors:  fragments,
		})
	}

	if len(refs) == 0 {
		res.note(GlyphAllClear, "No anchor links found")
		return res
	}

	res.note(GlyphInfo, "Found anchor links - manual verification recommended:")
	for _, ref := range refs {
		res.Findings = append(res.Findings, ref)
		res.Messages = append(res.Messages, Message{Glyph: GlyphReference, Line: ref.Line, Text: ref.Message})
	}

	return res
}

package lint

import (
	"strings"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
	"github.com/yaklabco/docgate/pkg/langdetect"
)

// fenceMarker opens and closes a fenced code block.
const fenceMarker = "```"

// CheckCodeBlocks warns about fences opened without a language tag.
//
// Only a bare fence can close a block. A block still open at the end of the
// document is not reported.
func CheckCodeBlocks(doc *document.Document) ValidationResult {
	var res ValidationResult

	inside := false
	pending := -1 // index of the finding whose block body is being collected
	var body []string

	for idx, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == fenceMarker && !inside:
			res.add(Finding{
				Category: config.SeverityWarning,
				Line:     idx + 1,
				Message:  "Specify language for code blocks",
			})
			pending = len(res.Findings) - 1
			body = body[:0]
			inside = true
		case strings.HasPrefix(trimmed, fenceMarker) && !inside:
			inside = true
		case trimmed == fenceMarker && inside:
			res.suggestLanguage(pending, body)
			pending = -1
			inside = false
		default:
			if pending >= 0 {
				body = append(body, line)
			}
		}
	}

	res.suggestLanguage(pending, body)

	if res.Warnings == 0 {
		res.note(GlyphAllClear, "All code blocks specify languages")
	}

	return res
}

// suggestLanguage attaches a detected-language hint to the finding at idx.
func (r *ValidationResult) suggestLanguage(idx int, body []string) {
	if idx < 0 || len(body) == 0 {
		return
	}

	lang := langdetect.Detect([]byte(strings.Join(body, "\n")))
	if lang == langdetect.Unknown {
		return
	}
	r.Findings[idx].Suggestion = "Detected language: " + lang
}

package lint

import (
	"regexp"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
)

// asteriskItemPattern matches an asterisk bullet at any indentation.
var asteriskItemPattern = regexp.MustCompile(`^\s*\* `)

// CheckLists warns about unordered list items that use asterisks.
func CheckLists(doc *document.Document) ValidationResult {
	var res ValidationResult

	for idx, line := range doc.Lines {
		if !asteriskItemPattern.MatchString(line) {
			continue
		}
		res.add(Finding{
			Category: config.SeverityWarning,
			Line:     idx + 1,
			Message:  "Use hyphens (-) for unordered lists instead of asterisks (*)",
		})
	}

	if res.Warnings == 0 {
		res.note(GlyphAllClear, "List formatting is consistent")
	}

	return res
}

package lint

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
)

// headingPattern matches ATX markers at column 1 followed by whitespace.
var headingPattern = regexp.MustCompile(`^(#+)\s`)

// CheckHeadings flags headings that skip a level relative to the previous
// heading. Every transition is judged on its own: after a bad jump the new
// depth becomes the baseline for the next heading.
func CheckHeadings(doc *document.Document) ValidationResult {
	var res ValidationResult
	previous := 0

	for idx, line := range doc.Lines {
		match := headingPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		depth := len(match[1])
		if previous > 0 && depth > previous+1 {
			res.add(Finding{
				Category: config.SeverityError,
				Line:     idx + 1,
				Message: fmt.Sprintf("Heading level H%d jumps from H%d (should increment by 1)",
					depth, previous),
				Suggestion: fmt.Sprintf("Use H%d instead", previous+1),
			})
		}

		previous = depth
	}

	if res.Errors == 0 {
		res.note(GlyphAllClear, "Heading hierarchy is correct")
	}

	return res
}

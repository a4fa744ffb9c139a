package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/docgate/pkg/lint"
)

// FormatSummary renders the closing summary block: title, counts, verdict.
// Each line ends in a newline.
func (s *Styles) FormatSummary(total lint.AggregateResult) string {
	var builder strings.Builder

	builder.WriteString(s.render(s.SummaryTitle, "=== SUMMARY ==="))
	builder.WriteString("\n")
	builder.WriteString("Errors: " + strconv.Itoa(total.Errors) + "\n")
	builder.WriteString("Warnings: " + strconv.Itoa(total.Warnings) + "\n")

	if total.Failed() {
		builder.WriteString(s.render(s.Failure, total.Verdict()))
	} else {
		builder.WriteString(s.render(s.Success, total.Verdict()))
	}
	builder.WriteString("\n")

	return builder.String()
}

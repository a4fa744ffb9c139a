package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docgate/pkg/lint"
)

// Table formatting constants.
const (
	tablePadding        = 2
	tableColumnCount    = 4 // ID, SECTION, SEVERITY, DESCRIPTION
	minDescriptionWidth = 20
	heavySeparator      = "="
	defaultTermWidth    = 100
)

// TableFormatter formats the section catalog as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
// A non-positive termWidth selects a default of 100 columns.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	id          int
	title       int
	severity    int
	description int
}

// FormatSections renders one row per section, in order.
func (t *TableFormatter) FormatSections(sections []lint.Section) string {
	if len(sections) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(sections)
	total := widths.id + widths.title + widths.severity + widths.description + tablePadding*(tableColumnCount-1)

	var builder strings.Builder

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %s",
		widths.id, "ID",
		widths.title, "SECTION",
		widths.severity, "SEVERITY",
		"DESCRIPTION")
	builder.WriteString(t.styles.render(t.styles.TableHeader, strings.TrimRight(header, " ")))
	builder.WriteString("\n")
	builder.WriteString(t.styles.render(t.styles.TableSeparator, strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for _, section := range sections {
		builder.WriteString(t.formatRow(section, widths))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (t *TableFormatter) formatRow(section lint.Section, widths columnWidths) string {
	// Pad before styling so ANSI sequences do not skew the columns.
	severity := fmt.Sprintf("%-*s", widths.severity, string(section.Severity))
	severity = t.styles.render(t.styles.severityStyle(section.Severity), severity)

	return fmt.Sprintf("%-*s  %-*s  %s  %s",
		widths.id, string(section.ID),
		widths.title, section.Title,
		severity,
		truncateString(section.Description, widths.description))
}

func (t *TableFormatter) calculateColumnWidths(sections []lint.Section) columnWidths {
	widths := columnWidths{
		id:       len("ID"),
		title:    len("SECTION"),
		severity: len("SEVERITY"),
	}

	for _, section := range sections {
		widths.id = max(widths.id, len(section.ID))
		widths.title = max(widths.title, len(section.Title))
		widths.severity = max(widths.severity, len(section.Severity))
		widths.description = max(widths.description, len(section.Description))
	}

	fixed := widths.id + widths.title + widths.severity + tablePadding*(tableColumnCount-1)
	if fixed+widths.description > t.termWidth {
		widths.description = max(minDescriptionWidth, t.termWidth-fixed)
	}

	return widths
}

// truncateString shortens str to maxLen runes, marking the cut with "...".
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

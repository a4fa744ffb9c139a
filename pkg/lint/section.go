package lint

import (
	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
)

// SectionID identifies a check and its report section.
type SectionID string

const (
	SectionHeadings   SectionID = "heading-hierarchy"
	SectionLists      SectionID = "list-formatting"
	SectionCodeBlocks SectionID = "code-blocks"
	SectionAnchors    SectionID = "anchor-links"
)

// Section describes one fixed check.
type Section struct {
	// ID is the stable identifier (used in JSON output).
	ID SectionID

	// Title is the report header text, e.g. "HEADING HIERARCHY".
	Title string

	// Description summarizes what the check looks for.
	Description string

	// Severity is the category of the findings the check emits.
	Severity config.Severity
}

// Header renders the section header line.
func (s Section) Header() string {
	return "--- " + s.Title + " ---"
}

// check pairs a section with the function that scans for it.
type check struct {
	section Section
	run     func(doc *document.Document) ValidationResult
}

// checks returns the fixed check table in report order.
func checks() []check {
	return []check{
		{
			section: Section{
				ID:          SectionHeadings,
				Title:       "HEADING HIERARCHY",
				Description: "Heading levels must increase by at most one at a time",
				Severity:    config.SeverityError,
			},
			run: CheckHeadings,
		},
		{
			section: Section{
				ID:          SectionLists,
				Title:       "LIST FORMATTING",
				Description: "Unordered list items must use hyphens, not asterisks",
				Severity:    config.SeverityWarning,
			},
			run: CheckLists,
		},
		{
			section: Section{
				ID:          SectionCodeBlocks,
				Title:       "CODE BLOCKS",
				Description: "Fenced code blocks must declare a language",
				Severity:    config.SeverityWarning,
			},
			run: CheckCodeBlocks,
		},
		{
			section: Section{
				ID:          SectionAnchors,
				Title:       "ANCHOR LINKS",
				Description: "In-document anchor links are listed for manual review",
				Severity:    config.SeverityInfo,
			},
			run: CollectAnchors,
		},
	}
}

// Sections returns the checks in report order. The set is fixed.
func Sections() []Section {
	table := checks()
	sections := make([]Section, 0, len(table))
	for _, chk := range table {
		sections = append(sections, chk.section)
	}
	return sections
}

// Validate runs every check against doc and aggregates the results.
// It never fails: any content, including an empty document, yields a Report.
func Validate(doc *document.Document) *Report {
	if doc == nil {
		doc = document.New("", nil)
	}

	table := checks()
	report := &Report{
		Name:    doc.Name,
		Results: make([]ValidationResult, 0, len(table)),
	}

	for _, chk := range table {
		res := chk.run(doc)
		res.Section = chk.section
		report.Results = append(report.Results, res)
	}

	report.Total = Aggregate(report.Results...)
	return report
}

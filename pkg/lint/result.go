package lint

import "github.com/yaklabco/docgate/pkg/config"

// ValidationResult is the output of one check.
type ValidationResult struct {
	// Section is the report section the result belongs to.
	Section Section

	// Errors is the number of error findings.
	Errors int

	// Warnings is the number of warning findings.
	Warnings int

	// Findings holds every observation, in document order.
	Findings []Finding

	// Messages is the rendered stream for the section, including the
	// all-clear or header lines that are not findings.
	Messages []Message
}

// add records a finding and its message, keeping the counts in step.
func (r *ValidationResult) add(f Finding) {
	switch f.Category {
	case config.SeverityError:
		r.Errors++
	case config.SeverityWarning:
		r.Warnings++
	}
	r.Findings = append(r.Findings, f)
	r.Messages = append(r.Messages, messageFor(f))
}

// note appends a presentation-only message.
func (r *ValidationResult) note(glyph Glyph, text string) {
	r.Messages = append(r.Messages, Message{Glyph: glyph, Text: text})
}

// Lines returns the rendered message stream.
func (r *ValidationResult) Lines() []string {
	lines := make([]string, 0, len(r.Messages))
	for _, msg := range r.Messages {
		lines = append(lines, msg.String())
	}
	return lines
}

// AggregateResult holds the totals across every check.
type AggregateResult struct {
	Errors   int
	Warnings int
}

// Failed reports whether the run must fail. Only errors gate; warnings
// never fail a run regardless of how many there are.
func (a AggregateResult) Failed() bool {
	return a.Errors > 0
}

// Passed is the negation of Failed.
func (a AggregateResult) Passed() bool {
	return !a.Failed()
}

// Verdict returns the final line of the text report.
func (a AggregateResult) Verdict() string {
	if a.Failed() {
		return string(GlyphError) + " Validation failed"
	}
	return string(GlyphAllClear) + " Validation passed"
}

// Aggregate sums the counts of the given results.
func Aggregate(results ...ValidationResult) AggregateResult {
	var total AggregateResult
	for _, res := range results {
		total.Errors += res.Errors
		total.Warnings += res.Warnings
	}
	return total
}

// Report is the complete outcome of validating one document.
type Report struct {
	// Name is the document display name.
	Name string

	// Results holds one entry per section, in report order.
	Results []ValidationResult

	// Total is the aggregate of Results.
	Total AggregateResult
}

// Result returns the result for the given section.
func (r *Report) Result(id SectionID) (ValidationResult, bool) {
	for _, res := range r.Results {
		if res.Section.ID == id {
			return res, true
		}
	}
	return ValidationResult{}, false
}

package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/docgate/pkg/lint"
)

// jsonSchemaVersion is bumped when the JSON layout changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version  string        `json:"version"`
	Document string        `json:"document"`
	Sections []JSONSection `json:"sections"`
	Summary  JSONSummary   `json:"summary"`
}

// JSONSection is one check's result.
type JSONSection struct {
	Name     string        `json:"name"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Findings []JSONFinding `json:"findings"`
	Messages []string      `json:"messages"`
}

// JSONFinding is a single finding.
type JSONFinding struct {
	Category   string       `json:"category"`
	Line       int          `json:"line"`
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion,omitempty"`
	Anchors    []JSONAnchor `json:"anchors,omitempty"`
}

// JSONAnchor is an anchor fragment referenced by a finding.
// Resolved is present only when anchor resolution is enabled.
type JSONAnchor struct {
	Fragment string `json:"fragment"`
	Resolved *bool  `json:"resolved,omitempty"`
}

// JSONSummary contains the aggregate verdict.
type JSONSummary struct {
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Passed   bool `json:"passed"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, report *lint.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil {
		return nil
	}

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(report)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONReporter) buildOutput(report *lint.Report) *JSONOutput {
	output := &JSONOutput{
		Version:  jsonSchemaVersion,
		Document: report.Name,
		Sections: make([]JSONSection, 0, len(report.Results)),
		Summary: JSONSummary{
			Errors:   report.Total.Errors,
			Warnings: report.Total.Warnings,
			Passed:   report.Total.Passed(),
		},
	}

	for _, res := range report.Results {
		section := JSONSection{
			Name:     res.Section.Title,
			Errors:   res.Errors,
			Warnings: res.Warnings,
			Findings: make([]JSONFinding, 0, len(res.Findings)),
			Messages: res.Lines(),
		}
		for _, finding := range res.Findings {
			section.Findings = append(section.Findings, r.buildFinding(finding))
		}
		output.Sections = append(output.Sections, section)
	}

	return output
}

func (r *JSONReporter) buildFinding(finding lint.Finding) JSONFinding {
	out := JSONFinding{
		Category:   string(finding.Category),
		Line:       finding.Line,
		Message:    finding.Message,
		Suggestion: finding.Suggestion,
	}

	for _, fragment := range finding.Anchors {
		anchor := JSONAnchor{Fragment: fragment}
		if r.opts.Anchors != nil {
			resolved := r.opts.Anchors.Resolve(fragment).Resolved
			anchor.Resolved = &resolved
		}
		out.Anchors = append(out.Anchors, anchor)
	}

	return out
}

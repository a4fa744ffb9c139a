package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/docgate/internal/ui/pretty"
	"github.com/yaklabco/docgate/pkg/lint"
)

// TextReporter writes the human-readable report: a title, one block per
// section, then the summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, report *lint.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil {
		return nil
	}

	fmt.Fprintln(r.bw, r.styles.FormatTitle(report.Name))
	fmt.Fprintln(r.bw)

	for _, res := range report.Results {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		r.writeSection(res)
		fmt.Fprintln(r.bw)
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(report.Total))

	return nil
}

// writeSection writes a section header and its message stream. Findings
// and messages are walked together so extras land under the right line.
func (r *TextReporter) writeSection(res lint.ValidationResult) {
	fmt.Fprintln(r.bw, r.styles.FormatSectionHeader(res.Section))

	findings := findingsByLine(res.Findings)

	for _, msg := range res.Messages {
		line := r.styles.FormatMessage(msg)

		finding, ok := findings.take(msg)
		if ok && msg.Glyph == lint.GlyphReference {
			line += r.styles.FormatUnresolved(unresolved(r.opts.Anchors, finding.Anchors))
		}
		fmt.Fprintln(r.bw, line)

		if ok && r.opts.Suggestions && finding.Suggestion != "" {
			fmt.Fprintln(r.bw, r.styles.FormatSuggestion(finding.Suggestion))
		}
	}
}

// findingQueue matches messages back to the findings they render.
type findingQueue map[int][]lint.Finding

func findingsByLine(findings []lint.Finding) findingQueue {
	queue := make(findingQueue, len(findings))
	for _, finding := range findings {
		if finding.IsDocumentWide() {
			continue
		}
		queue[finding.Line] = append(queue[finding.Line], finding)
	}
	return queue
}

// take pops the next finding rendered by msg, if any.
func (q findingQueue) take(msg lint.Message) (lint.Finding, bool) {
	if msg.Line <= 0 {
		return lint.Finding{}, false
	}
	pending := q[msg.Line]
	if len(pending) == 0 {
		return lint.Finding{}, false
	}
	q[msg.Line] = pending[1:]
	return pending[0], true
}

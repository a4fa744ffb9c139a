// Package reporter renders a lint.Report as text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/lint"
)

// Reporter formats and writes a validation report.
type Reporter interface {
	// Report writes formatted output for the given report.
	Report(ctx context.Context, report *lint.Report) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// unresolved returns the fragments the resolver cannot place.
// It returns nil when resolution is disabled.
func unresolved(resolver AnchorResolver, fragments []string) []string {
	if resolver == nil {
		return nil
	}
	var out []string
	for _, fragment := range fragments {
		if !resolver.Resolve(fragment).Resolved {
			out = append(out, fragment)
		}
	}
	return out
}

package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/lint/refs"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// AnchorResolver answers whether an anchor fragment points at a target in
// the document. *refs.AnchorMap implements it.
type AnchorResolver interface {
	Resolve(fragment string) refs.Target
}

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized text output. JSON is never colored.
	Color config.ColorMode

	// Suggestions renders finding suggestions in text output.
	// JSON always includes them.
	Suggestions bool

	// Anchors resolves anchor fragments. Nil disables resolution.
	Anchors AnchorResolver

	// Compact emits single-line JSON.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: config.FormatText,
		Color:  config.ColorAuto,
	}
}

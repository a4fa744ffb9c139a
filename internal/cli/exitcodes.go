package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/docgate/internal/configloader"
	"github.com/yaklabco/docgate/pkg/fsutil"
)

// Exit codes for docgate.
const (
	// ExitSuccess indicates the document passed, or the command succeeded.
	ExitSuccess = 0

	// ExitValidationFailed indicates the document has at least one error.
	ExitValidationFailed = 1

	// ExitFileNotFound indicates the document to check does not exist.
	ExitFileNotFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrValidationFailed is returned by check when the report has errors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUsage marks command-line usage errors.
	ErrUsage = errors.New("invalid usage")

	// ErrReported marks errors whose message was already written to stderr.
	ErrReported = errors.New("error already reported")
)

// ExitCodeFromError maps an error returned by a command to a process exit
// code. Configuration errors win over the file errors they may wrap.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound):
		return ExitFileNotFound
	case errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrPermissionDenied):
		return ExitIOError
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}
	return ExitInternalError
}

// IsReported reports whether err needs no further message: either the
// command already printed one, or the report itself is the message.
func IsReported(err error) bool {
	return errors.Is(err, ErrReported) || errors.Is(err, ErrValidationFailed)
}

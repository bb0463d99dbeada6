package cli

import (
	"errors"

	"github.com/yaklabco/gomdview/pkg/fsutil"
)

// Exit codes for gomdview.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRenderError indicates the preview could not be produced.
	ExitRenderError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to classify command failures.
var (
	// ErrInvalidUsage marks errors caused by bad flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks errors caused by an unreadable or invalid config file.
	ErrConfig = errors.New("configuration")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge):
		return ExitIOError
	default:
		return ExitRenderError
	}
}

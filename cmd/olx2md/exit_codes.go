package main

import (
	"errors"
	"os"

	olx2md "github.com/Traeelyn/xml-html-to-markdown"
	"github.com/Traeelyn/xml-html-to-markdown/internal/archive"
	"github.com/Traeelyn/xml-html-to-markdown/internal/config"
)

// Exit codes for olx2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrWriteMarkdown) ||
		errors.Is(err, ErrWritePreview) ||
		errors.Is(err, olx2md.ErrCourseNotFound) ||
		errors.Is(err, archive.ErrOpenArchive) ||
		errors.Is(err, archive.ErrReadArchive) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, olx2md.ErrEmptyCoursePath) ||
		errors.Is(err, archive.ErrUnsafePath) {
		return ExitUsage
	}

	return ExitGeneral
}

package olx2md

import "go.uber.org/zap"

// Input contains conversion parameters.
type Input struct {
	// CoursePath is the export root directory, or the course pointer file
	// itself. When it names a directory, the first .xml file under its
	// course/ subdirectory is used as the root pointer.
	CoursePath string

	// HTMLPreview also renders Result.HTML from the generated Markdown.
	HTMLPreview bool
}

// Result contains conversion output.
type Result struct {
	Markdown string // the final UTF-8 Markdown document
	HTML     string // standalone HTML preview; empty unless requested
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for stage progress and skipped-reference
// diagnostics. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

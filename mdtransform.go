package olx2md

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// markdownPostprocessor defines the contract for final document cleanup.
type markdownPostprocessor interface {
	PostprocessMarkdown(ctx context.Context, content string) string
}

// documentCleaner normalizes the assembled Markdown document.
type documentCleaner struct{}

// PostprocessMarkdown applies all cleanup passes to the rendered document.
func (documentCleaner) PostprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	return content + "\n"
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

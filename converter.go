package olx2md

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Traeelyn/xml-html-to-markdown/internal/olx"
	"github.com/Traeelyn/xml-html-to-markdown/internal/preview"
	"github.com/Traeelyn/xml-html-to-markdown/internal/render"
	"github.com/Traeelyn/xml-html-to-markdown/internal/transform"
)

// Compile-time interface implementation checks.
var (
	_ transform.Node        = (*olx.Node)(nil)
	_ transform.Node        = (*olx.Question)(nil)
	_ markdownPostprocessor = documentCleaner{}
)

// Converter orchestrates the course-to-Markdown pipeline.
// Create with NewConverter and use Convert per course export.
type Converter struct {
	log      *zap.Logger
	builder  *olx.Builder
	renderer *render.Renderer
	preview  *preview.Renderer
	post     markdownPostprocessor
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithLogger).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		log:  zap.NewNop(),
		post: documentCleaner{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.builder = olx.NewBuilder(c.log)
	c.renderer = render.New(c.log)
	c.preview = preview.New()

	return c
}

// Convert runs the full pipeline and returns the Markdown document.
// The context is used for cancellation between stages. A structurally
// empty course yields an empty document, not an error.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.CoursePath == "" {
		return nil, ErrEmptyCoursePath
	}

	rootFile, err := findCourseFile(input.CoursePath)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.log.Debug("building course tree", zap.String("file", rootFile))
	root, ok := c.builder.Build(rootFile, olx.KindCourse)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a readable course file", ErrCourseNotFound, rootFile)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.log.Debug("rendering course tree", zap.String("course", root.Title()))
	markdown := c.renderer.Render(root)
	markdown = c.post.PostprocessMarkdown(ctx, markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result := &Result{Markdown: markdown}

	if input.HTMLPreview {
		html, err := c.preview.ToHTML(ctx, markdown)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
		}
		result.HTML = html
	}

	return result, nil
}

// findCourseFile resolves the root course pointer: the path itself when it
// names an .xml file, otherwise the first .xml file in <path>/course/.
func findCourseFile(coursePath string) (string, error) {
	info, err := os.Stat(coursePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCourseNotFound, coursePath)
	}
	if !info.IsDir() {
		if filepath.Ext(coursePath) == ".xml" {
			return coursePath, nil
		}
		return "", fmt.Errorf("%w: %s is not an xml file", ErrCourseNotFound, coursePath)
	}

	courseDir := filepath.Join(coursePath, "course")
	entries, err := os.ReadDir(courseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %s has no course/ directory", ErrCourseNotFound, coursePath)
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".xml" {
			return filepath.Join(courseDir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: no xml pointer file in %s", ErrCourseNotFound, courseDir)
}

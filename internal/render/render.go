// Package render walks a resolved course tree and emits the final Markdown
// document: headings for structural nodes, quiz Markdown for problems,
// converted prose for html fragments, and image and video embeds.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Traeelyn/xml-html-to-markdown/internal/fileutil"
	"github.com/Traeelyn/xml-html-to-markdown/internal/htmlconv"
	"github.com/Traeelyn/xml-html-to-markdown/internal/olx"
	"github.com/Traeelyn/xml-html-to-markdown/internal/quiz"
	"github.com/Traeelyn/xml-html-to-markdown/internal/transform"
)

// Markdown caps headings at six hashes.
const maxHeadingLevel = 6

// problemSeparator delimits problems in the output, whether or not the
// problem produced visible content.
const problemSeparator = "\n\n---\n\n"

// Renderer turns a course tree into one Markdown document. Rendering is a
// pure function of the tree plus the files it references; traversal order
// is depth-first in child order and determines section order.
type Renderer struct {
	table *transform.Table
	quiz  *quiz.Renderer
	html  *htmlconv.Converter
	log   *zap.Logger
}

// New creates a Renderer. A nil logger disables diagnostics.
func New(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		quiz: quiz.NewRenderer(),
		html: htmlconv.New(),
		log:  log,
	}
	r.table = transform.New(map[string]transform.Handler{
		string(olx.KindAbout):      r.renderHeading,
		string(olx.KindCourse):     r.renderHeading,
		string(olx.KindChapter):    r.renderHeading,
		string(olx.KindSequential): r.renderHeading,

		// Transparent containers: children render at the same depth.
		string(olx.KindVertical):          r.renderContainer,
		string(olx.KindVerticalContainer): r.renderContainer,
		string(olx.KindHTML):              r.renderContainer,

		string(olx.KindProblem):     r.renderProblem,
		string(olx.KindHTMLContent): r.renderHTMLContent,
		string(olx.KindImage):       r.renderImage,
		string(olx.KindVideo):       r.renderVideo,
	}, r.renderChildren)
	return r
}

// Render renders the whole tree starting at depth 0.
func (r *Renderer) Render(root *olx.Node) string {
	return r.table.Transform(root, 0)
}

func (r *Renderer) renderHeading(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	level := depth + 1
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", level))
	sb.WriteString(" ")
	sb.WriteString(node.Title())
	sb.WriteString("\n\n")
	for _, c := range node.Children {
		sb.WriteString(recurse(c, depth+1))
	}
	return sb.String()
}

func (r *Renderer) renderContainer(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	var sb strings.Builder
	for _, c := range node.Children {
		sb.WriteString(recurse(c, depth))
	}
	return sb.String()
}

// renderChildren is the fallback: unknown container kinds degrade to
// rendering their children one depth deeper rather than vanishing.
func (r *Renderer) renderChildren(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	var sb strings.Builder
	for _, c := range node.Children {
		sb.WriteString(recurse(c, depth+1))
	}
	return sb.String()
}

func (r *Renderer) renderProblem(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	var body string
	switch {
	case node.Question != nil:
		body = r.quiz.Render(node.Question)
	case strings.HasSuffix(node.File, ".html"):
		if data, err := os.ReadFile(node.File); err == nil {
			body = r.html.Convert(string(data))
		} else {
			r.log.Debug("problem content unreadable", zap.String("path", node.File), zap.Error(err))
		}
	}
	// The separator follows every problem, even an empty one, so problems
	// are always visually delimited.
	return strings.TrimSpace(body) + problemSeparator
}

func (r *Renderer) renderHTMLContent(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	data, err := os.ReadFile(node.File)
	if err != nil {
		r.log.Debug("html content missing", zap.String("path", node.File))
		return ""
	}
	out := r.html.Convert(string(data))
	if out == "" {
		return ""
	}
	return out + "\n\n"
}

func (r *Renderer) renderImage(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	if node.File == "" || !fileutil.Exists(node.File) {
		r.log.Debug("image missing", zap.String("path", node.File))
		return ""
	}
	alt := node.DisplayName
	if alt == "" {
		alt = fileutil.Stem(node.File)
	}
	return fmt.Sprintf("![%s](../images/%s)\n\n", alt, filepath.Base(node.File))
}

func (r *Renderer) renderVideo(n transform.Node, recurse transform.Recurse, depth int) string {
	node := n.(*olx.Node)
	if node.Video == nil || node.Video.YouTubeID == "" {
		return ""
	}
	name := node.Video.DisplayName
	if name == "" {
		name = node.Title()
	}
	return fmt.Sprintf("!?[%s](https://www.youtube.com/watch?v=%s)\n\n", name, node.Video.YouTubeID)
}

// Package quiz renders a parsed problem question subtree into quiz Markdown:
// single-choice and checkbox lists, fill-in-the-blank answers, dropdowns,
// and hints. Unrecognized elements render as a visible banner so content
// loss is never silent.
package quiz

import (
	"strings"

	"github.com/Traeelyn/xml-html-to-markdown/internal/olx"
	"github.com/Traeelyn/xml-html-to-markdown/internal/transform"
)

// Choice and option markers.
const (
	markerChoiceOn    = "[(x)]"
	markerChoiceOff   = "[( )]"
	markerCheckboxOn  = "[[x]]"
	markerCheckboxOff = "[[ ]]"
	markerHint        = "[[?]]"
)

// templateMarkers flag scaffold paragraphs emitted by the authoring tool's
// problem templates; they are not question content.
var templateMarkers = []string{
	"You can use this template",
	"Add the question text, or prompt, here",
}

// Renderer turns question subtrees into quiz Markdown.
type Renderer struct {
	table *transform.Table
}

// NewRenderer builds the handler table.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.table = transform.New(map[string]transform.Handler{
		olx.QProblem:           r.renderProblem,
		olx.QMultipleChoice:    r.renderPassthrough,
		olx.QChoiceResponse:    r.renderPassthrough,
		olx.QOptionResponse:    r.renderPassthrough,
		olx.QStringResponse:    r.renderAnswerBlank,
		olx.QNumericalResponse: r.renderAnswerBlank,
		olx.QChoiceGroup:       r.renderChoiceGroup,
		olx.QCheckboxGroup:     r.renderCheckboxGroup,
		olx.QOptionInput:       r.renderOptionInput,
		olx.QDemandHint:        r.renderDemandHint,

		// Only meaningful inside the group that renders them directly.
		olx.QChoice:           renderNothing,
		olx.QOption:           renderNothing,
		olx.QChoiceHint:       renderNothing,
		olx.QCompoundHint:     renderNothing,
		olx.QResponseParam:    renderNothing,
		olx.QTextline:         renderNothing,
		olx.QAdditionalAnswer: renderNothing,
	}, renderUnsupported)
	return r
}

// Render renders one problem subtree. An empty problem renders to the
// empty string; it is the renderer of non-empty unrecognized content that
// emits banners, never the problem root itself.
func (r *Renderer) Render(q *olx.Question) string {
	if q == nil {
		return ""
	}
	return r.table.Transform(q, 0)
}

func (r *Renderer) renderProblem(n transform.Node, recurse transform.Recurse, depth int) string {
	q := n.(*olx.Question)
	var sb strings.Builder
	for _, c := range q.Children {
		if isTemplateParagraph(c) {
			continue
		}
		sb.WriteString(recurse(c, depth))
	}
	return sb.String()
}

// renderPassthrough handles the response containers: recurse over children
// with the two editorial filters applied.
func (r *Renderer) renderPassthrough(n transform.Node, recurse transform.Recurse, depth int) string {
	q := n.(*olx.Question)
	var sb strings.Builder
	if q.Text != "" && q.Text != q.Kind {
		sb.WriteString(q.Text)
	}
	for _, c := range q.Children {
		if isTemplateParagraph(c) {
			continue
		}
		sb.WriteString(recurse(c, depth))
	}
	return sb.String()
}

func (r *Renderer) renderChoiceGroup(n transform.Node, recurse transform.Recurse, depth int) string {
	lines := choiceLines(n.(*olx.Question), markerChoiceOn, markerChoiceOff)
	if lines == "" {
		return ""
	}
	// Blank separator before, blank line after.
	return "\n\n" + lines + "\n"
}

func (r *Renderer) renderCheckboxGroup(n transform.Node, recurse transform.Recurse, depth int) string {
	lines := choiceLines(n.(*olx.Question), markerCheckboxOn, markerCheckboxOff)
	if lines == "" {
		return ""
	}
	// Checkbox blocks are rendered tighter than choice blocks: no trailing
	// blank line.
	return "\n\n" + lines
}

// choiceLines renders each choice of a group as "- <marker> <text>\n".
func choiceLines(group *olx.Question, on, off string) string {
	var sb strings.Builder
	for _, c := range group.Children {
		if c.Kind != olx.QChoice {
			continue
		}
		marker := off
		if c.Correct {
			marker = on
		}
		sb.WriteString("- ")
		sb.WriteString(marker)
		sb.WriteString(" ")
		sb.WriteString(c.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderAnswerBlank handles string and numerical responses: the filtered
// prompt, a blank line, and the canonical answer as [[answer]]. Alternate
// answers are not rendered.
func (r *Renderer) renderAnswerBlank(n transform.Node, recurse transform.Recurse, depth int) string {
	q := n.(*olx.Question)
	var sb strings.Builder
	if q.Text != "" && q.Text != q.Kind {
		sb.WriteString(q.Text)
	}
	for _, c := range q.Children {
		if isTemplateParagraph(c) {
			continue
		}
		sb.WriteString(recurse(c, depth))
	}
	prompt := strings.TrimRight(sb.String(), " \t\n")
	return prompt + "\n\n[[" + q.Answer + "]]\n"
}

// renderOptionInput encodes a dropdown: options joined by "\n| ", the
// correct one wrapped in parentheses. Zero options emit nothing.
func (r *Renderer) renderOptionInput(n transform.Node, recurse transform.Recurse, depth int) string {
	q := n.(*olx.Question)
	var sb strings.Builder
	count := 0
	for _, c := range q.Children {
		if c.Kind != olx.QOption {
			continue
		}
		if count == 0 {
			sb.WriteString("\n\n[[")
		} else {
			sb.WriteString("\n| ")
		}
		if c.Correct {
			sb.WriteString("(")
			sb.WriteString(c.Text)
			sb.WriteString(")")
		} else {
			sb.WriteString(c.Text)
		}
		count++
	}
	if count == 0 {
		return ""
	}
	sb.WriteString("\n]]\n\n")
	return sb.String()
}

func (r *Renderer) renderDemandHint(n transform.Node, recurse transform.Recurse, depth int) string {
	q := n.(*olx.Question)
	var sb strings.Builder
	for _, c := range q.Children {
		if c.Kind != olx.QHint {
			continue
		}
		sb.WriteString("- ")
		sb.WriteString(markerHint)
		sb.WriteString(" ")
		sb.WriteString(c.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderNothing(n transform.Node, recurse transform.Recurse, depth int) string {
	return ""
}

// renderUnsupported is the fallback: direct text verbatim, else the
// children's concatenation, else a visible banner naming the element.
func renderUnsupported(n transform.Node, recurse transform.Recurse, depth int) string {
	q := n.(*olx.Question)
	if q.Text != "" {
		return q.Text
	}
	var sb strings.Builder
	for _, c := range q.Children {
		sb.WriteString(recurse(c, depth))
	}
	if out := sb.String(); out != "" {
		return out
	}
	return "\n> **Unsupported content: " + q.Kind + " component omitted**\n\n"
}

// isTemplateParagraph reports whether a child is an empty paragraph or one
// of the authoring tool's scaffold paragraphs.
func isTemplateParagraph(q *olx.Question) bool {
	if q.Kind != olx.QParagraph {
		return false
	}
	if q.Text == "" && len(q.Children) == 0 {
		return true
	}
	for _, marker := range templateMarkers {
		if strings.Contains(q.Text, marker) {
			return true
		}
	}
	return false
}

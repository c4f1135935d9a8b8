package olx

import (
	"strings"

	"github.com/beevik/etree"
)

// Question element kinds with dedicated rendering semantics. Unrecognized
// tags are carried verbatim in Question.Kind so the renderer can name them
// in its unsupported-content banner.
const (
	QProblem           = "problem"
	QMultipleChoice    = "multiplechoiceresponse"
	QChoiceResponse    = "choiceresponse"
	QStringResponse    = "stringresponse"
	QNumericalResponse = "numericalresponse"
	QOptionResponse    = "optionresponse"
	QChoiceGroup       = "choicegroup"
	QCheckboxGroup     = "checkboxgroup"
	QChoice            = "choice"
	QOptionInput       = "optioninput"
	QOption            = "option"
	QDemandHint        = "demandhint"
	QHint              = "hint"
	QResponseParam     = "responseparam"
	QTextline          = "textline"
	QAdditionalAnswer  = "additional_answer"
	QCompoundHint      = "compoundhint"
	QChoiceHint        = "choicehint"
	QParagraph         = "p"
)

// Question is one element of a parsed problem XML subtree. Kind is the raw
// element tag. Correct is normalized once at parse time, never re-derived
// at render sites.
type Question struct {
	Kind     string
	Text     string // trimmed character data directly inside the element
	Correct  bool   // normalized "correct" attribute (choice, option)
	Answer   string // canonical answer attribute (string/numerical response)
	Children []*Question
}

// NodeKind implements transform.Node. Nil-safe.
func (q *Question) NodeKind() string {
	if q == nil {
		return ""
	}
	return q.Kind
}

// ParseProblem parses the XML content of one problem file into a question
// subtree. ok is false when the document does not parse or has no root
// element; callers treat that as an absent problem, not an error.
func ParseProblem(data []byte) (*Question, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return questionFromElement(root), true
}

func questionFromElement(el *etree.Element) *Question {
	q := &Question{
		Kind:    el.Tag,
		Text:    directText(el),
		Correct: ParseCorrect(el.SelectAttrValue("correct", "")),
		Answer:  el.SelectAttrValue("answer", ""),
	}
	for _, child := range el.ChildElements() {
		q.Children = append(q.Children, questionFromElement(child))
	}
	return q
}

// directText joins all character data directly inside the element, skipping
// child elements, and trims surrounding whitespace. Indentation between
// child elements of a container collapses to "".
func directText(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

// ParseCorrect normalizes the "correct" attribute. Exports carry it as a
// boolean, as "true"/"false" in any case, or not at all; every form must
// normalize identically, with absence meaning false.
func ParseCorrect(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

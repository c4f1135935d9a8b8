// Package olx models an OLX-style course export: the resolved course tree,
// the parsed question subtree of problem files, and the builder that
// assembles both from a directory of cross-referenced XML pointer files.
package olx

import (
	"github.com/Traeelyn/xml-html-to-markdown/internal/fileutil"
)

// Kind identifies a course tree node variant.
type Kind string

// Course tree node kinds.
const (
	KindCourse            Kind = "course"
	KindChapter           Kind = "chapter"
	KindSequential        Kind = "sequential"
	KindVertical          Kind = "vertical"
	KindVerticalContainer Kind = "vertical-container"
	KindProblem           Kind = "problem"
	KindHTML              Kind = "html"
	KindHTMLContent       Kind = "htmlContent"
	KindImage             Kind = "image"
	KindVideo             Kind = "video"
	KindAbout             Kind = "about"
)

// Node is one resolved course tree node. The tree is acyclic and finite:
// references resolve by filename convention and a reference to a missing
// file yields no child, so the tree only shrinks relative to the XML
// cross-reference graph. Nodes are never mutated after construction.
type Node struct {
	Kind        Kind
	DisplayName string // optional human label from the display_name attribute
	File        string // source path on disk, if any
	Children    []*Node

	Question *Question  // problem nodes only: parsed question subtree
	Video    *VideoMeta // video nodes only: raw video metadata
}

// NodeKind implements transform.Node. Nil-safe so the transformer bottoms
// out on absent children.
func (n *Node) NodeKind() string {
	if n == nil {
		return ""
	}
	return string(n.Kind)
}

// Title returns the heading label: the display name when present, otherwise
// the stem of the source file.
func (n *Node) Title() string {
	if n.DisplayName != "" {
		return n.DisplayName
	}
	return fileutil.Stem(n.File)
}

// VideoMeta holds the raw metadata of a video pointer file.
type VideoMeta struct {
	DisplayName string
	YouTubeID   string
}

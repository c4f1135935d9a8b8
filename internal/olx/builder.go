package olx

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/Traeelyn/xml-html-to-markdown/internal/fileutil"
)

// Builder resolves a directory of cross-referenced XML pointer files into
// one course tree. Every resolution step fails soft: a missing, misnamed,
// or unparseable file contributes nothing to its parent instead of failing
// the build. Children are appended in source-document order.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a Builder. A nil logger disables diagnostics.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

// Build reads the pointer file at path and resolves it into a node of the
// expected kind, recursively resolving references into sibling kind
// directories. ok is false when the file is absent, lacks the .xml
// extension, or does not parse.
func (b *Builder) Build(path string, kind Kind) (*Node, bool) {
	// Problems are occasionally authored as raw HTML instead of question
	// XML; resolve the .html sibling when the .xml pointer is absent and
	// let the renderer convert it as prose.
	if kind == KindProblem && !fileutil.Exists(path) {
		htmlPath := strings.TrimSuffix(path, ".xml") + ".html"
		if fileutil.Exists(htmlPath) {
			return &Node{Kind: KindProblem, File: htmlPath}, true
		}
	}
	if filepath.Ext(path) != ".xml" {
		b.log.Debug("skipping reference: not an xml file", zap.String("path", path))
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		b.log.Debug("skipping reference: unreadable", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil || doc.Root() == nil {
		b.log.Debug("skipping reference: unparseable xml", zap.String("path", path))
		return nil, false
	}
	root := doc.Root()

	node := &Node{
		Kind:        kind,
		File:        path,
		DisplayName: root.SelectAttrValue("display_name", ""),
	}

	// Each level's kind directory is a sibling of the referencing file's
	// parent, so the course root is two levels up from the file.
	base := filepath.Dir(filepath.Dir(path))

	switch kind {
	case KindCourse:
		if about, ok := b.buildAbout(base); ok {
			node.Children = append(node.Children, about)
		}
		node.Children = append(node.Children, b.buildRefs(base, root, KindChapter)...)

	case KindChapter:
		node.Children = append(node.Children, b.buildRefs(base, root, KindSequential)...)

	case KindSequential:
		for _, el := range root.ChildElements() {
			if Kind(el.Tag) != KindVertical {
				continue
			}
			v, ok := b.Build(refPath(base, KindVertical, el), KindVertical)
			if !ok {
				continue
			}
			// Verticals contribute no heading of their own: strip the
			// nesting level and keep their children under a synthetic
			// container.
			node.Children = append(node.Children, &Node{
				Kind:        KindVerticalContainer,
				DisplayName: v.DisplayName,
				File:        v.File,
				Children:    v.Children,
			})
		}

	case KindVertical:
		for _, el := range root.ChildElements() {
			child, ok := b.buildVerticalChild(base, el)
			if !ok {
				continue
			}
			node.Children = append(node.Children, child)
		}

	case KindProblem:
		// The pointer file is itself the question XML.
		node.Question = questionFromElement(root)

	case KindHTML:
		// Probe for the companion prose file, named by the explicit
		// filename attribute or by the pointer file's own stem.
		name := root.SelectAttrValue("filename", "")
		if name == "" {
			name = fileutil.Stem(path)
		}
		htmlPath := filepath.Join(filepath.Dir(path), name+".html")
		if fileutil.Exists(htmlPath) {
			node.Children = append(node.Children, &Node{Kind: KindHTMLContent, File: htmlPath})
		}

	case KindImage:
		if fn := root.SelectAttrValue("filename", ""); fn != "" {
			node.File = filepath.Join(base, "static", fn)
		}

	case KindVideo:
		node.Video = &VideoMeta{
			DisplayName: node.DisplayName,
			YouTubeID:   root.SelectAttrValue("youtube_id_1_0", ""),
		}
	}

	return node, true
}

// buildRefs resolves every child element of the given kind into a node,
// filtering out absent results.
func (b *Builder) buildRefs(base string, parent *etree.Element, kind Kind) []*Node {
	var nodes []*Node
	for _, el := range parent.ChildElements() {
		if Kind(el.Tag) != kind {
			continue
		}
		n, ok := b.Build(refPath(base, kind, el), kind)
		if !ok {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// buildVerticalChild resolves one reference inside a vertical.
func (b *Builder) buildVerticalChild(base string, el *etree.Element) (*Node, bool) {
	kind := Kind(el.Tag)
	switch kind {
	case KindProblem, KindHTML, KindVideo, KindImage:
		return b.Build(refPath(base, kind, el), kind)
	default:
		b.log.Debug("skipping unknown vertical child", zap.String("tag", el.Tag))
		return nil, false
	}
}

// buildAbout opportunistically synthesizes the leading about node from
// about/overview.html. Courses without the file have no about node, which
// is expected, not an error.
func (b *Builder) buildAbout(base string) (*Node, bool) {
	path := filepath.Join(base, "about", "overview.html")
	if !fileutil.Exists(path) {
		return nil, false
	}
	return &Node{
		Kind:     KindAbout,
		File:     path,
		Children: []*Node{{Kind: KindHTMLContent, File: path}},
	}, true
}

// refPath resolves a url_name reference to <course-root>/<kind>/<url_name>.xml.
// A missing url_name yields a path the builder rejects.
func refPath(base string, kind Kind, el *etree.Element) string {
	urlName := el.SelectAttrValue("url_name", "")
	if urlName == "" {
		return ""
	}
	return filepath.Join(base, string(kind), urlName+".xml")
}

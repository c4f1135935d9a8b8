// Package transform provides the generic kind-dispatched tree transformer
// shared by the quiz renderer and the course tree renderer.
package transform

// Node is anything a handler table can dispatch on. NodeKind must be safe
// on a nil receiver and return "" for it, so that recursion bottoms out
// cleanly on missing optional fields.
type Node interface {
	NodeKind() string
}

// Recurse re-enters the transformer for a child node at a chosen depth.
type Recurse func(n Node, depth int) string

// Handler renders one node kind. It receives the transformer itself so it
// can descend into children at whatever depth it chooses.
type Handler func(n Node, recurse Recurse, depth int) string

// Table maps node kinds to handlers. Kinds without an entry fall through to
// the fallback handler, which always runs for unrecognized kinds.
type Table struct {
	handlers map[string]Handler
	fallback Handler
}

// New builds a Table.
// Panics if fallback is nil (programmer error, similar to time.NewTicker).
func New(handlers map[string]Handler, fallback Handler) *Table {
	if fallback == nil {
		panic("transform: fallback handler must not be nil")
	}
	return &Table{handlers: handlers, fallback: fallback}
}

// Transform renders n at the given depth. Absent nodes render to the empty
// string. Depth is caller-controlled; handlers decide how it threads into
// children.
func (t *Table) Transform(n Node, depth int) string {
	if n == nil {
		return ""
	}
	kind := n.NodeKind()
	if kind == "" {
		return ""
	}
	h, ok := t.handlers[kind]
	if !ok {
		h = t.fallback
	}
	return h(n, t.Transform, depth)
}

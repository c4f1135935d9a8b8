package transform

import (
	"strconv"
	"strings"
	"testing"
)

// testNode is a minimal tree node for exercising the dispatch table.
type testNode struct {
	kind     string
	text     string
	children []*testNode
}

func (n *testNode) NodeKind() string {
	if n == nil {
		return ""
	}
	return n.kind
}

func TestTransform_DispatchesByKind(t *testing.T) {
	t.Parallel()

	table := New(map[string]Handler{
		"leaf": func(n Node, recurse Recurse, depth int) string {
			return n.(*testNode).text
		},
		"branch": func(n Node, recurse Recurse, depth int) string {
			var sb strings.Builder
			for _, c := range n.(*testNode).children {
				c := c
				sb.WriteString(recurse(c, depth+1))
			}
			return sb.String()
		},
	}, func(n Node, recurse Recurse, depth int) string {
		return "?"
	})

	root := &testNode{kind: "branch", children: []*testNode{
		{kind: "leaf", text: "a"},
		{kind: "mystery"},
		{kind: "leaf", text: "b"},
	}}

	got := table.Transform(root, 0)
	if got != "a?b" {
		t.Errorf("Transform() = %q, want %q", got, "a?b")
	}
}

func TestTransform_NilNodeRendersEmpty(t *testing.T) {
	t.Parallel()

	table := New(nil, func(n Node, recurse Recurse, depth int) string {
		return "fallback"
	})

	if got := table.Transform(nil, 0); got != "" {
		t.Errorf("Transform(nil) = %q, want empty", got)
	}

	// A typed nil pointer must bottom out too, not reach a handler.
	var n *testNode
	if got := table.Transform(n, 3); got != "" {
		t.Errorf("Transform(typed nil) = %q, want empty", got)
	}
}

func TestTransform_DepthIsCallerControlled(t *testing.T) {
	t.Parallel()

	var depths []int
	table := New(map[string]Handler{
		"n": func(n Node, recurse Recurse, depth int) string {
			depths = append(depths, depth)
			var sb strings.Builder
			sb.WriteString(strconv.Itoa(depth))
			for _, c := range n.(*testNode).children {
				c := c
				sb.WriteString(recurse(c, depth+2))
			}
			return sb.String()
		},
	}, func(n Node, recurse Recurse, depth int) string { return "" })

	root := &testNode{kind: "n", children: []*testNode{
		{kind: "n", children: []*testNode{{kind: "n"}}},
	}}

	got := table.Transform(root, 1)
	if got != "135" {
		t.Errorf("Transform() = %q, want %q", got, "135")
	}
	want := []int{1, 3, 5}
	for i := range want {
		if depths[i] != want[i] {
			t.Errorf("depth[%d] = %d, want %d", i, depths[i], want[i])
		}
	}
}

func TestNew_NilFallbackPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("New(nil fallback) did not panic")
		}
	}()
	New(nil, nil)
}

package vtest

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vtree"
)

// testOwner attributes test render passes.
type testOwner struct{}

func (testOwner) Render(c *vtree.Context) vtree.Node {
	return c.Element("div")
}

// Build runs one construction pass with a throwaway owner and fails the
// test on construction errors.
//
// Example:
//
//	root, ctx := vtest.Build(t, func(c *vtree.Context) vtree.Node {
//	    return c.Element("div", "hello")
//	})
func Build(t *testing.T, fn func(c *vtree.Context) vtree.Node) (vtree.Node, *vtree.Context) {
	t.Helper()
	root, ctx, err := vtree.Build(testOwner{}, fn)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return root, ctx
}

// BuildFor is Build with a caller-provided owner, for tests that assert
// on ownership or injection bookkeeping.
func BuildFor(t *testing.T, owner vtree.Component, fn func(c *vtree.Context) vtree.Node) (vtree.Node, *vtree.Context) {
	t.Helper()
	root, ctx, err := vtree.Build(owner, fn)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return root, ctx
}

// RenderToString renders a node and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(root)
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node vtree.Node) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, root, "Welcome Admin")
func ExpectContains(t *testing.T, node vtree.Node, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node vtree.Node, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, root, "button")
func ExpectElement(t *testing.T, node vtree.Node, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, root, "class", "btn-primary")
func ExpectAttribute(t *testing.T, node vtree.Node, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectChildCount asserts the number of children on an element or
// component node.
func ExpectChildCount(t *testing.T, node vtree.Node, want int) {
	t.Helper()
	got := node.ChildCount()
	if got != want {
		t.Errorf("ChildCount() = %d, want %d", got, want)
	}
}

// ExpectRef asserts that a reference id resolves in the context and
// returns the node it resolves to.
//
// Example:
//
//	label := vtest.ExpectRef(t, ctx, "label")
func ExpectRef(t *testing.T, ctx *vtree.Context, id string) vtree.Node {
	t.Helper()
	node, ok := ctx.Lookup(id)
	if !ok {
		t.Errorf("ref %q not found in context", id)
	}
	return node
}

// RoundTrip captures, encodes, and decodes a pass and fails the test on
// any protocol error. Useful for asserting on the wire form.
func RoundTrip(t *testing.T, root vtree.Node, ctx *vtree.Context) *protocol.Snapshot {
	t.Helper()
	data, err := protocol.EncodeSnapshot(protocol.Capture(root, ctx))
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	snap, err := protocol.DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

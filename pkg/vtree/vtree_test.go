package vtree

import (
	"testing"
)

// testOwner is a minimal live component used as an ownership tag in
// tests.
type testOwner struct {
	name string
}

func (o *testOwner) Render(c *Context) Node {
	return c.Element("div")
}

// newTestContext returns a fresh arena-backed context for owner.
func newTestContext(t *testing.T, owner Component) *Context {
	t.Helper()
	return NewContext(NewArena(), owner)
}

var testCardDef = DefineComponent("Card", func() Component { return &testOwner{name: "card"} })

func TestBuildScenarioElement(t *testing.T) {
	owner := &testOwner{name: "page"}
	root, ctx, err := Build(owner, func(c *Context) Node {
		return c.Element("div", Class("a"), ID("x"), "hello")
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := root.Tag(); got != "div" {
		t.Errorf("Tag() = %q, want %q", got, "div")
	}
	if got := root.Classes(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Classes() = %v, want [a]", got)
	}
	if got, ok := root.Attribute("id"); !ok || got != "x" {
		t.Errorf("Attribute(id) = %q, %v, want x, true", got, ok)
	}
	if got := root.ChildCount(); got != 1 {
		t.Fatalf("ChildCount() = %d, want 1", got)
	}
	child, _ := root.ChildAt(0)
	if child.Kind() != KindText || child.Text() != "hello" {
		t.Errorf("child = %s %q, want Text \"hello\"", child.Kind(), child.Text())
	}
	if child.Owner() != Component(owner) {
		t.Error("text child should be stamped with the pass owner")
	}
	if len(ctx.Nodes()) != 2 {
		t.Errorf("Nodes() captured %d, want 2", len(ctx.Nodes()))
	}
}

func TestBuildScenarioComponent(t *testing.T) {
	root, ctx, err := Build(&testOwner{name: "page"}, func(c *Context) Node {
		return c.Component(testCardDef,
			Props{"name": "Ann"},
			c.Element("span", "hi"),
		)
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if root.Kind() != KindComponent {
		t.Fatalf("Kind() = %s, want Component", root.Kind())
	}
	if root.Type() != testCardDef {
		t.Error("Type() should be the card def")
	}
	if got := root.Props()["name"]; got != "Ann" {
		t.Errorf("Props()[name] = %v, want Ann", got)
	}

	// The child list is the reserved children slot of the props bag.
	slot, ok := root.Props()[ChildrenProp].([]NodeID)
	if !ok || len(slot) != 1 {
		t.Fatalf("props children slot = %v, want one entry", root.Props()[ChildrenProp])
	}
	span, _ := root.ChildAt(0)
	if span.ID() != slot[0] {
		t.Error("Children() should read the props children slot, not a copy")
	}
	if span.Tag() != "span" {
		t.Errorf("child tag = %q, want span", span.Tag())
	}
	text, _ := span.ChildAt(0)
	if text.Text() != "hi" {
		t.Errorf("grandchild text = %q, want hi", text.Text())
	}

	if len(ctx.Components()) != 1 {
		t.Errorf("Components() captured %d, want 1", len(ctx.Components()))
	}
}

func TestBuildRecoversConstructionError(t *testing.T) {
	root, ctx, err := Build(&testOwner{}, func(c *Context) Node {
		return c.Element("div", struct{ x int }{1})
	})
	if err == nil {
		t.Fatal("Build() should fail on an unsupported child type")
	}
	if !root.IsZero() {
		t.Error("no partial tree should be reachable after a failed pass")
	}
	if ctx != nil {
		t.Error("context should not escape a failed pass")
	}
}

func TestBuildEmptyTagFails(t *testing.T) {
	_, _, err := Build(&testOwner{}, func(c *Context) Node {
		return c.Element("")
	})
	if err == nil {
		t.Fatal("Build() should fail on an empty tag")
	}
}

func TestBuildNilComponentDefFails(t *testing.T) {
	_, _, err := Build(&testOwner{}, func(c *Context) Node {
		return c.Component(nil)
	})
	if err == nil {
		t.Fatal("Build() should fail on a nil component def")
	}
}

func TestRef(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	n := ctx.Element("div")

	if err := n.Ref(""); err == nil {
		t.Error("Ref(\"\") should fail")
	}
	if err := n.Ref("x"); err != nil {
		t.Fatalf("Ref(x) error = %v", err)
	}
	if got := n.RefID(); got != "x" {
		t.Errorf("RefID() = %q, want x", got)
	}

	// Second registration on the same node fails, same or different id.
	if err := n.Ref("x"); err == nil {
		t.Error("second Ref(x) should fail")
	}
	if err := n.Ref("y"); err == nil {
		t.Error("Ref(y) after Ref(x) should fail")
	}

	// Duplicate id under the same context fails on the second node.
	m := ctx.Element("span")
	if err := m.Ref("x"); err == nil {
		t.Error("duplicate reference id should fail")
	}

	got, ok := ctx.Lookup("x")
	if !ok || got.ID() != n.ID() {
		t.Errorf("Lookup(x) = %v, %v, want the registered node", got, ok)
	}
}

func TestRefViaConstruction(t *testing.T) {
	_, _, err := Build(&testOwner{}, func(c *Context) Node {
		return c.Element("div",
			c.Element("span", Ref("x")),
			c.Element("span", Ref("x")),
		)
	})
	if err == nil {
		t.Fatal("two sibling ref(x) registrations should fail the pass")
	}
}

func TestInDocument(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	if ctx.Element("div").InDocument() {
		t.Error("an undiffed virtual node is never in the document")
	}
}

func TestPassIDUnique(t *testing.T) {
	a := NewArena()
	c1 := NewContext(a, &testOwner{})
	c2 := NewContext(a, &testOwner{})
	if c1.PassID() == c2.PassID() {
		t.Error("pass ids should be unique per context")
	}
}

func TestSetComponent(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	n := ctx.Element("div")
	if n.Component() != nil {
		t.Error("Component() should be nil before materialization")
	}
	live := &testOwner{name: "live"}
	n.SetComponent(live)
	if n.Component() != Component(live) {
		t.Error("Component() should return the materialized instance")
	}
}

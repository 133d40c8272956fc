package vtree

import (
	"testing"

	"github.com/loom-ui/loom/internal/errors"
)

func TestComponentChildrenLiveInProps(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	card := ctx.Component(testCardDef)
	span := ctx.Element("span")

	if err := card.AppendChild(span); err != nil {
		t.Fatalf("AppendChild() error = %v", err)
	}

	slot, ok := card.Props()[ChildrenProp].([]NodeID)
	if !ok || len(slot) != 1 || slot[0] != span.ID() {
		t.Fatalf("props children slot = %v, want [%d]", card.Props()[ChildrenProp], span.ID())
	}

	// Mutating through the child API is visible through the bag and vice
	// versa: same storage, not a copy.
	if err := card.RemoveChild(span); err != nil {
		t.Fatal(err)
	}
	slot, _ = card.Props()[ChildrenProp].([]NodeID)
	if len(slot) != 0 {
		t.Errorf("slot after remove = %v, want empty", slot)
	}
}

func TestComponentAttachIsPreliminary(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	card := ctx.Component(testCardDef)
	span := ctx.Element("span")

	if err := card.AppendChild(span); err != nil {
		t.Fatal(err)
	}

	if _, ok := span.Parent(); ok {
		t.Error("a component child must not gain a structural parent")
	}
	prelim, ok := span.PreliminaryParent()
	if !ok || prelim.ID() != card.ID() {
		t.Error("a component child should record the placeholder as preliminary parent")
	}

	if err := card.RemoveChild(span); err != nil {
		t.Fatal(err)
	}
	if _, ok := span.PreliminaryParent(); ok {
		t.Error("detaching should clear the preliminary parent")
	}
}

func TestComponentSetInnerHTMLFails(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	card := ctx.Component(testCardDef)

	if err := card.SetInnerHTML("<b>x</b>"); !errors.HasCode(err, "E204") {
		t.Errorf("SetInnerHTML on component error = %v, want E204", err)
	}
}

func TestComponentDef(t *testing.T) {
	def := DefineComponent("Badge", func() Component { return &testOwner{name: "badge"} })
	if def.Name() != "Badge" {
		t.Errorf("Name() = %q, want Badge", def.Name())
	}
	inst := def.New()
	if o, ok := inst.(*testOwner); !ok || o.name != "badge" {
		t.Errorf("New() = %v, want a badge instance", inst)
	}

	bare := DefineComponent("Bare", nil)
	if bare.New() != nil {
		t.Error("New() without a factory should return nil")
	}
}

func TestOutlet(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	card := ctx.Component(testCardDef)

	if _, err := ctx.Element("div").Outlet("header"); err == nil {
		t.Error("Outlet() on a plain element should fail")
	}
	if _, err := card.Outlet(""); err == nil {
		t.Error("Outlet(\"\") should fail")
	}

	header, err := card.Outlet("header")
	if err != nil {
		t.Fatalf("Outlet() error = %v", err)
	}
	if header.Slot() != "header" || header.Target().ID() != card.ID() {
		t.Error("outlet should be frozen to its slot and target")
	}

	// The slot list is created lazily on first append.
	if _, ok := card.Props()["header"]; ok {
		t.Error("slot should not exist before first use")
	}
	if err := header.Append(nil, "title", ctx.Element("small", "sub")); err != nil {
		t.Fatalf("outlet Append() error = %v", err)
	}
	nodes := header.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("outlet has %d nodes, want 2", len(nodes))
	}
	if nodes[0].Text() != "title" || nodes[1].Tag() != "small" {
		t.Errorf("slot content = %v", nodes)
	}
	if prelim, ok := nodes[1].PreliminaryParent(); !ok || prelim.ID() != card.ID() {
		t.Error("slot content should record the placeholder as preliminary parent")
	}

	if err := header.Append(struct{}{}); !errors.HasCode(err, "E202") {
		t.Errorf("outlet Append(struct) error = %v, want E202", err)
	}

	if err := header.Empty(); err != nil {
		t.Fatalf("outlet Empty() error = %v", err)
	}
	if len(header.Nodes()) != 0 {
		t.Error("Empty() should truncate the slot")
	}
	if _, ok := nodes[1].PreliminaryParent(); ok {
		t.Error("Empty() should detach slot content")
	}
}

func TestDecodeProps(t *testing.T) {
	ctx := newTestContext(t, &testOwner{})
	card := ctx.Component(testCardDef, Props{"name": "Ann", "count": 3}, ctx.Element("span"))

	var got struct {
		Name  string `mapstructure:"name"`
		Count int    `mapstructure:"count"`
	}
	if err := DecodeProps(card.Props(), &got); err != nil {
		t.Fatalf("DecodeProps() error = %v", err)
	}
	if got.Name != "Ann" || got.Count != 3 {
		t.Errorf("decoded = %+v, want {Ann 3}", got)
	}
}

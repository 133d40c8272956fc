package protocol

import (
	"reflect"
	"testing"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/vtree"
)

type testOwner struct{ name string }

func (o *testOwner) Render(c *vtree.Context) vtree.Node {
	return c.Element("div")
}

var badgeDef = vtree.DefineComponent("Badge", nil)

func TestSnapshotRoundTrip(t *testing.T) {
	root, ctx, err := vtree.Build(&testOwner{name: "page"}, func(c *vtree.Context) vtree.Node {
		n := c.Element("div", vtree.Class("card"), vtree.ID("main"),
			c.Element("span", vtree.Ref("label"), "hi"),
			c.Component(badgeDef, vtree.Props{"name": "Ann", "count": 2}),
		)
		return n
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	snap := Capture(root, ctx)
	frame, err := EncodeSnapshot(snap)
	if err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}

	got, err := DecodeSnapshot(frame)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}

	if got.PassID != ctx.PassID().String() {
		t.Errorf("PassID = %q, want %q", got.PassID, ctx.PassID().String())
	}
	if got.Root != int32(root.ID()) {
		t.Errorf("Root = %d, want %d", got.Root, root.ID())
	}
	if len(got.Nodes) != len(ctx.Nodes()) {
		t.Errorf("Nodes = %d entries, want %d", len(got.Nodes), len(ctx.Nodes()))
	}
	if len(got.Components) != 1 {
		t.Errorf("Components = %v, want one entry", got.Components)
	}
	want := int32(mustLookup(t, ctx, "label").ID())
	if got.Refs["label"] != want {
		t.Errorf("Refs[label] = %d, want %d", got.Refs["label"], want)
	}
}

func mustLookup(t *testing.T, ctx *vtree.Context, id string) vtree.Node {
	t.Helper()
	n, ok := ctx.Lookup(id)
	if !ok {
		t.Fatalf("Lookup(%q) failed", id)
	}
	return n
}

func TestCaptureWireNodes(t *testing.T) {
	root, ctx, err := vtree.Build(&testOwner{}, func(c *vtree.Context) vtree.Node {
		return c.Element("div", vtree.OnClick(func() {}),
			c.Component(badgeDef, vtree.Props{"name": "Ann", "handler": func() {}}),
		)
	})
	if err != nil {
		t.Fatal(err)
	}

	snap := Capture(root, ctx)
	byID := make(map[int32]WireNode, len(snap.Nodes))
	for _, w := range snap.Nodes {
		byID[w.ID] = w
	}

	rootWire := byID[int32(root.ID())]
	if !reflect.DeepEqual(rootWire.Events, []string{"click"}) {
		t.Errorf("Events = %v, want [click]", rootWire.Events)
	}
	if len(rootWire.Children) != 1 {
		t.Fatalf("Children = %v, want one", rootWire.Children)
	}

	comp := byID[rootWire.Children[0]]
	if comp.Tag != "Badge" || comp.Kind != uint8(vtree.KindComponent) {
		t.Errorf("component wire node = %+v", comp)
	}
	if comp.Props["name"] != "Ann" {
		t.Errorf("Props[name] = %v, want Ann", comp.Props["name"])
	}
	if _, ok := comp.Props["handler"]; ok {
		t.Error("handler functions must not cross the wire")
	}
	if comp.Foreign {
		t.Error("a placeholder created by the pass owner is not foreign")
	}
}

func TestDecodeSnapshotErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantCode string
	}{
		{"empty", nil, "E520"},
		{"short", []byte{'L'}, "E520"},
		{"bad magic", []byte{'X', 'Y', Version, FrameSnapshot}, "E520"},
		{"bad version", []byte{'L', 'M', 99, FrameSnapshot}, "E521"},
		{"bad frame type", []byte{'L', 'M', Version, 0x7f}, "E522"},
		{"garbage payload", []byte{'L', 'M', Version, FrameSnapshot, 0xc1}, "E520"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSnapshot(tt.data)
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("DecodeSnapshot() error = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

package protocol

import (
	"github.com/loom-ui/loom/pkg/vtree"
)

// WireNode is the flattened wire form of one virtual node.
type WireNode struct {
	ID       int32             `msgpack:"id"`
	Kind     uint8             `msgpack:"kind"`
	Tag      string            `msgpack:"tag,omitempty"`
	Text     string            `msgpack:"text,omitempty"`
	Attrs    map[string]string `msgpack:"attrs,omitempty"`
	Props    map[string]any    `msgpack:"props,omitempty"`
	Children []int32           `msgpack:"children,omitempty"`
	Raw      string            `msgpack:"raw,omitempty"`
	HasRaw   bool              `msgpack:"hasraw,omitempty"`
	Events   []string          `msgpack:"events,omitempty"`
	RefID    string            `msgpack:"ref,omitempty"`
	Foreign  bool              `msgpack:"foreign,omitempty"`
}

// Snapshot is the wire form of one completed render pass: the node table
// plus the context bookkeeping a remote reconciler needs to enumerate
// nodes, resolve references, and special-case injected components.
type Snapshot struct {
	PassID      string           `msgpack:"passid"`
	Root        int32            `msgpack:"root"`
	Nodes       []WireNode       `msgpack:"nodes"`
	Refs        map[string]int32 `msgpack:"refs,omitempty"`
	ForeignRefs map[string]int32 `msgpack:"foreignrefs,omitempty"`
	Components  []int32          `msgpack:"components,omitempty"`
	Injected    []int32          `msgpack:"injected,omitempty"`
}

// Capture flattens a completed pass into a Snapshot. The node table is
// built from the context's capture lists, so it covers every node of the
// pass even when subtrees were detached before hand-off.
func Capture(root vtree.Node, ctx *vtree.Context) *Snapshot {
	s := &Snapshot{
		PassID:      ctx.PassID().String(),
		Root:        int32(root.ID()),
		Refs:        refTable(ctx.Refs()),
		ForeignRefs: refTable(ctx.ForeignRefs()),
	}
	for _, n := range ctx.Nodes() {
		s.Nodes = append(s.Nodes, captureNode(n, ctx))
	}
	for _, n := range ctx.Components() {
		s.Components = append(s.Components, int32(n.ID()))
	}
	for _, n := range ctx.Injected() {
		s.Injected = append(s.Injected, int32(n.ID()))
	}
	return s
}

func captureNode(n vtree.Node, ctx *vtree.Context) WireNode {
	w := WireNode{
		ID:    int32(n.ID()),
		Kind:  uint8(n.Kind()),
		RefID: n.RefID(),
	}
	switch n.Kind() {
	case vtree.KindText:
		w.Text = n.Text()
		return w
	case vtree.KindComponent:
		w.Tag = n.Type().Name()
		w.Props = plainProps(n.Props())
		w.Foreign = n.Owner() != ctx.Owner()
	default:
		w.Tag = n.Tag()
	}
	w.Attrs = n.Attributes()
	if n.HasRawContent() {
		raw, err := n.InnerHTML()
		if err == nil {
			w.Raw = raw
			w.HasRaw = true
		}
	}
	for _, child := range n.Children() {
		w.Children = append(w.Children, int32(child.ID()))
	}
	for _, l := range n.Listeners() {
		w.Events = append(w.Events, l.Event)
	}
	return w
}

// plainProps keeps only wire-safe property values: structural slot lists
// and handler functions stay server-side.
func plainProps(props vtree.Props) map[string]any {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		switch v.(type) {
		case string, bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func refTable(src map[string]vtree.Node) map[string]int32 {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]int32, len(src))
	for id, n := range src {
		out[id] = int32(n.ID())
	}
	return out
}

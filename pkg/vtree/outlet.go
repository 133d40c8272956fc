package vtree

import (
	"github.com/loom-ui/loom/internal/errors"
)

// Outlet is a named view over a slot in a component placeholder's props
// bag. It gives parent code an append/empty API indistinguishable from
// normal child manipulation while the placeholder's component decides
// where the slot content is placed. Frozen after construction.
type Outlet struct {
	target Node
	slot   string
}

// Outlet returns an outlet bound to the named slot of a component
// placeholder.
func (n Node) Outlet(name string) (Outlet, error) {
	if n.IsZero() || n.rec().kind != KindComponent {
		return Outlet{}, errors.New("E206").WithDetail("outlets exist only on component placeholders")
	}
	if name == "" {
		return Outlet{}, errors.New("E200").WithDetail("outlet slot name is empty")
	}
	return Outlet{target: n, slot: name}, nil
}

// Target returns the component placeholder the outlet is bound to.
func (o Outlet) Target() Node {
	return o.target
}

// Slot returns the slot name.
func (o Outlet) Slot() string {
	return o.slot
}

// Nodes returns the current slot content in order.
func (o Outlet) Nodes() []Node {
	a := o.target.arena
	ids := a.slotList(o.target.id, o.slot)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = a.Node(id)
	}
	return out
}

// Append normalizes and appends children into the slot, lazily creating
// the slot list on first use. The normalization rules match the element
// child API: nil entries are skipped, nested slices flatten, primitive
// scalars become text nodes.
func (o Outlet) Append(children ...any) error {
	return o.appendList(children, 0)
}

func (o Outlet) appendList(list []any, depth int) error {
	if depth > maxFlattenDepth {
		return errors.New("E202").WithDetail("child nesting exceeds depth %d", maxFlattenDepth)
	}
	a := o.target.arena
	tr := o.target.rec()
	for _, c := range list {
		switch v := c.(type) {
		case nil:
			continue
		case []any:
			if err := o.appendList(v, depth+1); err != nil {
				return err
			}
		case []Node:
			for _, child := range v {
				if err := o.appendList([]any{child}, depth+1); err != nil {
					return err
				}
			}
		default:
			id, err := normalizeChild(a, tr.ctx, tr.owner, c)
			if err != nil {
				return err
			}
			if id == NoNode {
				continue
			}
			if err := a.attach(o.target.id, id, -1, o.slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// Empty detaches every node currently in the slot and truncates it.
func (o Outlet) Empty() error {
	a := o.target.arena
	ids := a.slotList(o.target.id, o.slot)
	for len(ids) > 0 {
		a.detach(ids[len(ids)-1])
		ids = a.slotList(o.target.id, o.slot)
	}
	return nil
}

package vtree

import (
	"github.com/loom-ui/loom/internal/errors"
)

// NodeID is a stable handle addressing a node within an Arena.
type NodeID int32

// NoNode is the sentinel for "no node" (absent parent, skipped child).
const NoNode NodeID = -1

// Arena owns the backing storage for every node of a construction pass.
// Parent and child links are NodeIDs into the same arena, so subtrees can
// reference their container without ownership cycles. One arena may be
// shared by several render contexts when a parent component passes nodes
// it built down into a child component's tree.
type Arena struct {
	records []record
}

// record is the tagged-variant node storage. Shared fields apply to every
// kind; the payload fields apply per kind.
type record struct {
	kind Kind

	// Shared fields.
	parent NodeID // structural parent
	prelim NodeID // preliminary parent (component placeholder attach)
	slot   string // props key the node is listed under, "" for element children
	owner  Component
	ctx    *Context
	refID  string
	comp   Component // live counterpart, set by the reconciler

	// Text payload.
	text string

	// Element payload (also used by component placeholders).
	tag       string
	classes   []string
	attrs     map[string]string
	props     Props // element: DOM properties; component: the properties bag
	style     map[string]string
	listeners []EventListener
	kids      []NodeID
	rawHTML   string
	hasRaw    bool

	// Component payload.
	ctype *ComponentDef
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of nodes allocated in the arena.
func (a *Arena) Len() int {
	return len(a.records)
}

// Node returns the handle for id. The zero Node is returned for NoNode.
func (a *Arena) Node(id NodeID) Node {
	if id == NoNode {
		return Node{}
	}
	return Node{arena: a, id: id}
}

func (a *Arena) alloc(r record) NodeID {
	r.parent = NoNode
	r.prelim = NoNode
	id := NodeID(len(a.records))
	a.records = append(a.records, r)
	return id
}

func (a *Arena) rec(id NodeID) *record {
	return &a.records[id]
}

// children returns the child list of id. For component placeholders the
// list is the slice stored under the reserved children key of the props
// bag, not a copy of it.
func (a *Arena) children(id NodeID) []NodeID {
	r := a.rec(id)
	if r.kind == KindComponent {
		list, _ := r.props[ChildrenProp].([]NodeID)
		return list
	}
	return r.kids
}

func (a *Arena) setChildren(id NodeID, kids []NodeID) {
	r := a.rec(id)
	if r.kind == KindComponent {
		if r.props == nil {
			r.props = make(Props)
		}
		r.props[ChildrenProp] = kids
	} else {
		r.kids = kids
	}
}

// childSlot reports which props key holds the child list of parent.
func (a *Arena) childSlot(parent NodeID) string {
	if a.rec(parent).kind == KindComponent {
		return ChildrenProp
	}
	return ""
}

// slotList returns the list stored under slot in parent's props bag.
func (a *Arena) slotList(parent NodeID, slot string) []NodeID {
	if slot == "" {
		return a.rec(parent).kids
	}
	list, _ := a.rec(parent).props[slot].([]NodeID)
	return list
}

func (a *Arena) setSlotList(parent NodeID, slot string, list []NodeID) {
	if slot == "" {
		a.rec(parent).kids = list
		return
	}
	r := a.rec(parent)
	if r.props == nil {
		r.props = make(Props)
	}
	r.props[slot] = list
}

// attach links child into parent's list for slot at position at (-1 means
// append). The child is first detached from any current container, then
// parented (structurally for elements, preliminarily for component
// placeholders) and the foreign-reference/injected bookkeeping of the
// parent's creating context is updated.
func (a *Arena) attach(parent, child NodeID, at int, slot string) error {
	pr := a.rec(parent)
	if pr.kind != KindComponent && pr.hasRaw {
		return errors.New("E222")
	}

	a.detach(child)

	list := a.slotList(parent, slot)
	if at < 0 || at >= len(list) {
		list = append(list, child)
	} else {
		list = append(list, NoNode)
		copy(list[at+1:], list[at:])
		list[at] = child
	}
	a.setSlotList(parent, slot, list)

	cr := a.rec(child)
	cr.slot = slot
	if pr.kind == KindComponent {
		cr.prelim = parent
	} else {
		cr.parent = parent
	}

	if pr.ctx != nil && cr.owner != pr.owner {
		if cr.refID != "" {
			pr.ctx.foreignRefs[cr.refID] = child
		}
		if cr.kind == KindComponent {
			pr.ctx.addInjected(child)
		}
	}
	return nil
}

// detach unlinks child from its current container, if any, and reverses
// the attach-time bookkeeping.
func (a *Arena) detach(child NodeID) {
	cr := a.rec(child)
	parent := cr.parent
	if parent == NoNode {
		parent = cr.prelim
	}
	if parent == NoNode {
		return
	}

	list := a.slotList(parent, cr.slot)
	for i, id := range list {
		if id == child {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	a.setSlotList(parent, cr.slot, list)

	pr := a.rec(parent)
	if pr.ctx != nil && cr.owner != pr.owner {
		if cr.refID != "" && pr.ctx.foreignRefs[cr.refID] == child {
			delete(pr.ctx.foreignRefs, cr.refID)
		}
		if cr.kind == KindComponent {
			pr.ctx.removeInjected(child)
		}
	}

	cr.parent = NoNode
	cr.prelim = NoNode
	cr.slot = ""
}

// indexOf returns the position of child within parent's child list, or -1.
func (a *Arena) indexOf(parent, child NodeID) int {
	for i, id := range a.children(parent) {
		if id == child {
			return i
		}
	}
	return -1
}

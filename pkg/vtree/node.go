package vtree

import (
	"github.com/loom-ui/loom/internal/errors"
)

// Node is a handle to a virtual node: an arena plus a stable id. Node
// values are cheap to copy and compare; the zero Node means "no node".
type Node struct {
	arena *Arena
	id    NodeID
}

// IsZero reports whether n is the zero handle.
func (n Node) IsZero() bool {
	return n.arena == nil
}

// ID returns the node's arena handle.
func (n Node) ID() NodeID {
	if n.IsZero() {
		return NoNode
	}
	return n.id
}

// Arena returns the arena the node lives in.
func (n Node) Arena() *Arena {
	return n.arena
}

// Kind returns the node's kind.
func (n Node) Kind() Kind {
	return n.rec().kind
}

// Tag returns the element tag name. Empty for text nodes.
func (n Node) Tag() string {
	return n.rec().tag
}

// Text returns the text content of a text node.
func (n Node) Text() string {
	return n.rec().text
}

// Parent returns the structural parent, if any.
func (n Node) Parent() (Node, bool) {
	p := n.rec().parent
	if p == NoNode {
		return Node{}, false
	}
	return n.arena.Node(p), true
}

// PreliminaryParent returns the component placeholder the node was handed
// to, if any. Children attached to a placeholder are not structurally
// reparented; their real placement is decided by the component's own
// render logic.
func (n Node) PreliminaryParent() (Node, bool) {
	p := n.rec().prelim
	if p == NoNode {
		return Node{}, false
	}
	return n.arena.Node(p), true
}

// Owner returns the component instance whose render logic created the
// node. Fixed at construction.
func (n Node) Owner() Component {
	return n.rec().owner
}

// RefID returns the node's reference id, or "" if none was registered.
func (n Node) RefID() string {
	return n.rec().refID
}

// Ref registers a reference id for the node in its render context. The id
// must be non-empty, the node must not already carry a reference, and the
// id must not be registered anywhere else in the same pass.
func (n Node) Ref(id string) error {
	if id == "" {
		return errors.New("E242")
	}
	r := n.rec()
	if r.refID != "" {
		return errors.New("E240").WithDetail("node already has reference %q", r.refID)
	}
	if r.ctx != nil {
		if _, dup := r.ctx.refs[id]; dup {
			return errors.New("E241").WithDetail("reference id %q is already registered in this pass", id)
		}
	}
	r.refID = id
	if r.ctx != nil {
		r.ctx.refs[id] = n.id
	}
	return nil
}

// InDocument reports whether the node is part of materialized output.
// Always false for an undiffed virtual node; materialization happens
// downstream in the reconciler.
func (n Node) InDocument() bool {
	return false
}

// Component returns the live component materialized from this node, if
// the reconciler has set one.
func (n Node) Component() Component {
	return n.rec().comp
}

// SetComponent records the live counterpart of this node. Called by the
// reconciler after materialization.
func (n Node) SetComponent(c Component) {
	n.rec().comp = c
}

// Context returns the render context that created the node.
func (n Node) Context() *Context {
	return n.rec().ctx
}

func (n Node) rec() *record {
	return n.arena.rec(n.id)
}

// kindErr returns an E206 error unless the node is an element or
// component placeholder.
func (n Node) kindErr() error {
	if k := n.rec().kind; k != KindElement && k != KindComponent {
		return errors.New("E206").WithDetail("node kind is %s", k)
	}
	return nil
}

// Package vtree provides the virtual-tree construction layer for Loom.
//
// Call sites describe desired structure as a tree of virtual nodes
// without touching any live, materialized output; an external reconciler
// later diffs the description against previously materialized output and
// applies minimal mutations.
//
// # Core Types
//
// Nodes live in an Arena and are addressed by stable NodeID handles; the
// public Node value pairs an arena with an id and carries the full method
// set. Kind discriminates the closed set of variants: text, element, and
// component placeholder.
//
// # Construction
//
// A Context scopes exactly one render pass of one owner. Its entry
// points build nodes:
//
//	root, ctx, err := vtree.Build(owner, func(c *vtree.Context) vtree.Node {
//	    return c.Element("div", vtree.Class("card"), vtree.ID("main"),
//	        c.Element("h1", "Title"),
//	        c.Component(userBadgeDef, vtree.Props{"name": "Ann"}),
//	    )
//	})
//
// Every node built in the pass is captured by the context, which the
// reconciler uses to enumerate nodes, component placeholders, reference
// ids, and placeholders injected by foreign owners, without re-walking
// the tree.
//
// # Ownership
//
// Each node is stamped at construction with the component instance whose
// render logic created it; the stamp never changes. Owners only mutate
// nodes they created, so independent owners can build independent trees
// concurrently with no shared-state coordination. A single tree under
// construction is strictly single-threaded.
//
// # Errors
//
// All construction failures are synchronous *errors.LoomError values
// with stable codes. Node mutation methods return errors directly; the
// variadic Context entry points panic on misuse, and Build recovers the
// panic into an error return with no partial tree reachable. One
// asymmetry is deliberate: a nil child normalizes to nothing and the
// append is silently skipped, so conditionally built child lists need no
// filtering at call sites.
package vtree

package vtree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/loom-ui/loom/internal/errors"
)

// Context is the per-render-pass bookkeeping object. One context exists
// per owner per pass; it captures every node and component placeholder
// its entry points create, the references the owner registered, and the
// foreign references and injected placeholders attached into the tree by
// other owners. It carries no state across passes and must not be reused
// after the produced tree is handed to the reconciler.
type Context struct {
	arena  *Arena
	owner  Component
	passID uuid.UUID

	refs        map[string]NodeID
	foreignRefs map[string]NodeID
	nodes       []NodeID
	components  []NodeID
	injected    []NodeID
}

// NewContext creates a render context for one pass of owner over arena.
// Contexts of different owners may share an arena, which is how nodes
// built by a parent end up inside a child component's tree.
func NewContext(arena *Arena, owner Component) *Context {
	return &Context{
		arena:       arena,
		owner:       owner,
		passID:      uuid.New(),
		refs:        make(map[string]NodeID),
		foreignRefs: make(map[string]NodeID),
	}
}

// Build runs one scoped construction pass in a fresh arena. Construction
// misuse inside the entry points surfaces as a *errors.LoomError panic;
// Build recovers it and returns the error with no partial tree reachable.
func Build(owner Component, fn func(c *Context) Node) (Node, *Context, error) {
	return BuildIn(NewArena(), owner, fn)
}

// BuildIn is Build on a caller-provided arena.
func BuildIn(arena *Arena, owner Component, fn func(c *Context) Node) (root Node, ctx *Context, err error) {
	ctx = NewContext(arena, owner)
	defer func() {
		if r := recover(); r != nil {
			le, ok := r.(*errors.LoomError)
			if !ok {
				panic(r)
			}
			root, ctx, err = Node{}, nil, le
		}
	}()
	root = fn(ctx)
	return root, ctx, nil
}

// Owner returns the component instance this pass renders for.
func (c *Context) Owner() Component {
	return c.owner
}

// PassID returns the unique id of this render pass.
func (c *Context) PassID() uuid.UUID {
	return c.passID
}

// Arena returns the arena nodes of this pass are allocated in.
func (c *Context) Arena() *Arena {
	return c.arena
}

// Element constructs a tag-element node. Args may be Attr, []Attr, Props,
// EventListener, or child values (nodes, strings, booleans, numbers,
// nested slices). The keys "class" and "ref" are intercepted and routed
// to AddClass and Ref. Misuse panics with a structured error; use Build
// to turn that into an error return.
func (c *Context) Element(tag string, args ...any) Node {
	if tag == "" {
		panic(errors.New("E200").WithDetail("element tag is empty"))
	}
	n := c.register(record{
		kind:  KindElement,
		tag:   tag,
		owner: c.owner,
		ctx:   c,
	})
	c.applyArgs(n, args)
	return n
}

// Component constructs a component placeholder node for def. Non-special
// keys of Attr and Props args are stored verbatim in the properties bag;
// children end up under the bag's reserved children key so the referenced
// component's own render logic decides their placement.
func (c *Context) Component(def *ComponentDef, args ...any) Node {
	if def == nil {
		panic(errors.New("E200").WithDetail("component definition is nil"))
	}
	n := c.register(record{
		kind:  KindComponent,
		tag:   def.Name(),
		ctype: def,
		owner: c.owner,
		ctx:   c,
		props: make(Props),
	})
	c.applyArgs(n, args)
	return n
}

// Text constructs a text node. Text content is immutable after
// construction.
func (c *Context) Text(text string) Node {
	id := newText(c.arena, c, c.owner, text)
	return c.arena.Node(id)
}

// Textf constructs a formatted text node.
func (c *Context) Textf(format string, args ...any) Node {
	return c.Text(fmt.Sprintf(format, args...))
}

// register allocates the record and captures the node in the pass lists.
func (c *Context) register(r record) Node {
	id := c.arena.alloc(r)
	c.nodes = append(c.nodes, id)
	if r.kind == KindComponent {
		c.components = append(c.components, id)
	}
	return c.arena.Node(id)
}

func (c *Context) applyArgs(n Node, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			c.applyAttr(n, v)
		case []Attr:
			for _, a := range v {
				c.applyAttr(n, a)
			}
		case Props:
			c.applyBag(n, v)
		case map[string]any:
			c.applyBag(n, v)
		case EventListener:
			if err := n.AddListener(v); err != nil {
				panic(err)
			}
		default:
			if err := n.Append(arg); err != nil {
				panic(err)
			}
		}
	}
}

// applyBag routes a property bag key by key, in sorted order for
// deterministic construction.
func (c *Context) applyBag(n Node, bag map[string]any) {
	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.applyAttr(n, Attr{Key: k, Value: bag[k]})
	}
}

// applyAttr routes one key/value onto the node: "class" and "ref" are
// special-cased, everything else becomes an attribute on elements and a
// bag property on component placeholders.
func (c *Context) applyAttr(n Node, a Attr) {
	if a.Key == "" {
		return
	}
	var err error
	switch a.Key {
	case "class":
		err = n.AddClass(strings.Fields(coerceString(a.Value))...)
	case "ref":
		err = n.Ref(coerceString(a.Value))
	default:
		if n.Kind() == KindComponent {
			err = n.SetProperty(a.Key, a.Value)
		} else {
			err = n.SetAttribute(a.Key, a.Value)
		}
	}
	if err != nil {
		panic(errors.FromError(err, "E201"))
	}
}

// Nodes returns every node created through this context, in creation
// order.
func (c *Context) Nodes() []Node {
	return c.handles(c.nodes)
}

// Components returns every component placeholder created through this
// context, in creation order.
func (c *Context) Components() []Node {
	return c.handles(c.components)
}

// Injected returns the component placeholders attached into this pass's
// tree by a different owner. The reconciler preserves these across
// re-renders of their structural parent instead of rebuilding them.
func (c *Context) Injected() []Node {
	return c.handles(c.injected)
}

// Lookup resolves a reference id to its node, consulting the owner's
// references first and foreign references second.
func (c *Context) Lookup(id string) (Node, bool) {
	if nid, ok := c.refs[id]; ok {
		return c.arena.Node(nid), true
	}
	if nid, ok := c.foreignRefs[id]; ok {
		return c.arena.Node(nid), true
	}
	return Node{}, false
}

// Refs returns a copy of the owner's reference table.
func (c *Context) Refs() map[string]Node {
	return c.refTable(c.refs)
}

// ForeignRefs returns a copy of the foreign-reference table: ids of nodes
// owned by a different component but attached into this tree.
func (c *Context) ForeignRefs() map[string]Node {
	return c.refTable(c.foreignRefs)
}

func (c *Context) refTable(src map[string]NodeID) map[string]Node {
	out := make(map[string]Node, len(src))
	for id, nid := range src {
		out[id] = c.arena.Node(nid)
	}
	return out
}

func (c *Context) handles(ids []NodeID) []Node {
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = c.arena.Node(id)
	}
	return out
}

func (c *Context) addInjected(id NodeID) {
	for _, existing := range c.injected {
		if existing == id {
			return
		}
	}
	c.injected = append(c.injected, id)
}

func (c *Context) removeInjected(id NodeID) {
	for i, existing := range c.injected {
		if existing == id {
			c.injected = append(c.injected[:i], c.injected[i+1:]...)
			return
		}
	}
}

// newText allocates a text node and captures it in ctx when present.
func newText(a *Arena, ctx *Context, owner Component, text string) NodeID {
	id := a.alloc(record{kind: KindText, text: text, owner: owner, ctx: ctx})
	if ctx != nil {
		ctx.nodes = append(ctx.nodes, id)
	}
	return id
}

// normalizeChild turns a child argument into a NodeID. Nil (and the zero
// Node) normalize to NoNode, which callers skip; existing nodes are used
// as-is; primitive scalars wrap in a text node; anything else is a hard
// failure.
func normalizeChild(a *Arena, ctx *Context, owner Component, v any) (NodeID, error) {
	switch child := v.(type) {
	case nil:
		return NoNode, nil
	case Node:
		if child.IsZero() {
			return NoNode, nil
		}
		if child.arena != a {
			return NoNode, errors.New("E203")
		}
		return child.id, nil
	case string:
		return newText(a, ctx, owner, child), nil
	case bool:
		return newText(a, ctx, owner, strconv.FormatBool(child)), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return newText(a, ctx, owner, fmt.Sprint(child)), nil
	default:
		return NoNode, errors.New("E202").WithDetail("unsupported child type %T", v)
	}
}

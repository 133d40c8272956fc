package vtree

// Component is a live component instance: the unit of ownership for the
// virtual tree. Its render logic builds nodes through a render context,
// and every node built that way is stamped with the instance as owner.
type Component interface {
	Render(c *Context) Node
}

// RenderFunc adapts a plain function to the Component interface.
type RenderFunc func(c *Context) Node

// Render implements Component.
func (f RenderFunc) Render(c *Context) Node {
	return f(c)
}

// ComponentDef identifies a component type: a stable name plus the
// factory that materializes live instances. Placeholder nodes reference
// the def; the reconciler uses it to decide whether an existing instance
// can be reused.
type ComponentDef struct {
	name    string
	factory func() Component
}

// DefineComponent registers a component type. Defs are typically
// package-level variables created once.
func DefineComponent(name string, factory func() Component) *ComponentDef {
	return &ComponentDef{name: name, factory: factory}
}

// Name returns the component type's stable name.
func (d *ComponentDef) Name() string {
	return d.name
}

// New materializes a fresh live instance, or nil if the def carries no
// factory.
func (d *ComponentDef) New() Component {
	if d.factory == nil {
		return nil
	}
	return d.factory()
}

// Type returns the component type a placeholder stands for. Nil for
// other node kinds.
func (n Node) Type() *ComponentDef {
	return n.rec().ctype
}

// Props returns the placeholder's properties bag. The returned map is the
// live bag, not a copy; the reserved children key holds the child slot
// list.
func (n Node) Props() Props {
	return n.rec().props
}

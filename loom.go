// Package loom provides the public API for the Loom virtual tree library.
//
// This is the recommended import for most applications:
//
//	import "github.com/loom-ui/loom"
//
// Usage:
//
//	root, ctx, err := loom.Build(owner, func(c *loom.Context) loom.Node {
//	    return c.Element("div", loom.Class("card"),
//	        c.Element("h1", "hello"),
//	    )
//	})
//
// The underlying packages remain importable directly: pkg/vtree for
// construction, pkg/render for HTML output, pkg/protocol for the wire
// form, and el for typed element constructors.
package loom

import (
	"github.com/loom-ui/loom/pkg/vtree"
)

// =============================================================================
// Core types (pkg/vtree exposed at the root)
// =============================================================================

// Node is a handle to one virtual node in an arena.
type Node = vtree.Node

// Context is the per-pass render context.
type Context = vtree.Context

// Arena owns the node records of one or more passes.
type Arena = vtree.Arena

// Component renders a subtree for a pass.
type Component = vtree.Component

// ComponentDef is a named, reusable component type.
type ComponentDef = vtree.ComponentDef

// Props is the property bag of an element or component node.
type Props = vtree.Props

// Attr is one key/value construction attribute.
type Attr = vtree.Attr

// EventListener is one registered event listener.
type EventListener = vtree.EventListener

// ListenerOptions configure an event listener.
type ListenerOptions = vtree.ListenerOptions

// NodeState is a copied snapshot of a node's render state.
type NodeState = vtree.NodeState

// Outlet is a named insertion point on a component placeholder.
type Outlet = vtree.Outlet

// Kind discriminates the node variants.
type Kind = vtree.Kind

// Node kinds.
const (
	KindText      = vtree.KindText
	KindElement   = vtree.KindElement
	KindComponent = vtree.KindComponent
)

// =============================================================================
// Construction
// =============================================================================

// Build runs one scoped construction pass in a fresh arena.
func Build(owner Component, fn func(c *Context) Node) (Node, *Context, error) {
	return vtree.Build(owner, fn)
}

// BuildIn is Build on a caller-provided arena.
func BuildIn(arena *Arena, owner Component, fn func(c *Context) Node) (Node, *Context, error) {
	return vtree.BuildIn(arena, owner, fn)
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return vtree.NewArena()
}

// DefineComponent registers a named component type.
func DefineComponent(name string, factory func() Component) *ComponentDef {
	return vtree.DefineComponent(name, factory)
}

// RenderFunc adapts a function to the Component interface.
type RenderFunc = vtree.RenderFunc

// =============================================================================
// Attributes and events
// =============================================================================

// NewAttr creates an attribute from a key and value.
func NewAttr(key string, value any) Attr {
	return vtree.NewAttr(key, value)
}

// Common attribute helpers.
var (
	ID          = vtree.ID
	Class       = vtree.Class
	Ref         = vtree.Ref
	Href        = vtree.Href
	Src         = vtree.Src
	Alt         = vtree.Alt
	Name        = vtree.Name
	Value       = vtree.Value
	TypeAttr    = vtree.TypeAttr
	Placeholder = vtree.Placeholder
	TitleAttr   = vtree.TitleAttr
	Data        = vtree.Data
	Role        = vtree.Role
	Disabled    = vtree.Disabled
	AttrIf      = vtree.AttrIf
)

// Event listener helpers.
var (
	On           = vtree.On
	OnOpts       = vtree.OnOpts
	OnClick      = vtree.OnClick
	OnDblClick   = vtree.OnDblClick
	OnInput      = vtree.OnInput
	OnChange     = vtree.OnChange
	OnSubmit     = vtree.OnSubmit
	OnKeyDown    = vtree.OnKeyDown
	OnKeyUp      = vtree.OnKeyUp
	OnFocus      = vtree.OnFocus
	OnBlur       = vtree.OnBlur
	OnMouseEnter = vtree.OnMouseEnter
	OnMouseLeave = vtree.OnMouseLeave
	OnScroll     = vtree.OnScroll
)

// DecodeProps decodes a property bag into a typed struct.
func DecodeProps(props Props, out any) error {
	return vtree.DecodeProps(props, out)
}

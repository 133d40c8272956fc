package vtree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loom-ui/loom/internal/errors"
)

// Classes

// HasClass reports whether the class list contains name.
func (n Node) HasClass(name string) bool {
	for _, c := range n.rec().classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends class names. Duplicates are allowed; last-wins
// semantics are resolved by the consumer.
func (n Node) AddClass(names ...string) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	r.classes = append(r.classes, names...)
	return nil
}

// RemoveClass removes every matching entry from the class list.
func (n Node) RemoveClass(name string) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	kept := r.classes[:0]
	for _, c := range r.classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	r.classes = kept
	return nil
}

// Classes returns a copy of the class list.
func (n Node) Classes() []string {
	r := n.rec()
	out := make([]string, len(r.classes))
	copy(out, r.classes)
	return out
}

// Attributes

// Attribute returns the explicit attribute value for name.
func (n Node) Attribute(name string) (string, bool) {
	v, ok := n.rec().attrs[name]
	return v, ok
}

// SetAttribute sets an attribute. Values are coerced to string.
func (n Node) SetAttribute(name string, value any) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	if r.attrs == nil {
		r.attrs = make(map[string]string)
	}
	r.attrs[name] = coerceString(value)
	return nil
}

// RemoveAttribute removes an attribute.
func (n Node) RemoveAttribute(name string) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	delete(n.rec().attrs, name)
	return nil
}

// Attributes synthesizes the unified attribute view: explicit attributes
// merged with a serialized "class" entry (space-joined class list) and a
// serialized "style" entry ("key:value" pairs joined by ";"). Classes and
// style are stored separately but presented as one logical attribute set
// to match native-element semantics.
func (n Node) Attributes() map[string]string {
	r := n.rec()
	out := make(map[string]string, len(r.attrs)+2)
	for k, v := range r.attrs {
		out[k] = v
	}
	if len(r.classes) > 0 {
		out["class"] = strings.Join(r.classes, " ")
	}
	if len(r.style) > 0 {
		keys := make([]string, 0, len(r.style))
		for k := range r.style {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + ":" + r.style[k]
		}
		out["style"] = strings.Join(pairs, ";")
	}
	return out
}

// Properties. For component placeholders this is the properties bag; for
// elements it mirrors the attribute-vs-property distinction of a live DOM
// element.

// Property returns the property value for name.
func (n Node) Property(name string) (any, bool) {
	v, ok := n.rec().props[name]
	return v, ok
}

// SetProperty sets a property. The value is stored verbatim.
func (n Node) SetProperty(name string, value any) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	if r.props == nil {
		r.props = make(Props)
	}
	r.props[name] = value
	return nil
}

// RemoveProperty removes a property.
func (n Node) RemoveProperty(name string) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	delete(n.rec().props, name)
	return nil
}

// Style

// Style returns the inline style value for name.
func (n Node) Style(name string) (string, bool) {
	v, ok := n.rec().style[name]
	return v, ok
}

// SetStyle sets an inline style property. Numeric values for known
// length-valued properties are converted to a pixel-suffixed string; all
// other values pass through via their default string form.
func (n Node) SetStyle(name string, value any) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	if r.style == nil {
		r.style = make(map[string]string)
	}
	r.style[name] = styleValue(name, value)
	return nil
}

// Content

// SetTextContent clears existing content and appends a single text child.
func (n Node) SetTextContent(text string) error {
	if err := n.Empty(); err != nil {
		return err
	}
	r := n.rec()
	child := newText(n.arena, r.ctx, r.owner, text)
	return n.arena.attach(n.id, child, -1, n.arena.childSlot(n.id))
}

// SetInnerHTML stores a raw content string in place of children. It fails
// on component placeholders and while structured children exist.
func (n Node) SetInnerHTML(html string) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	if r.kind == KindComponent {
		return errors.New("E204")
	}
	if len(r.kids) > 0 {
		return errors.New("E223").WithSuggestion("Call Empty() to detach existing children first")
	}
	r.rawHTML = html
	r.hasRaw = true
	return nil
}

// InnerHTML returns the raw content string. It fails if the node was
// built via the child API instead of SetInnerHTML.
func (n Node) InnerHTML() (string, error) {
	r := n.rec()
	if !r.hasRaw {
		return "", errors.New("E205")
	}
	return r.rawHTML, nil
}

// HasRawContent reports whether raw content is set.
func (n Node) HasRawContent() bool {
	return n.rec().hasRaw
}

// Children

// Children returns the current child nodes in order. For component
// placeholders this reads the reserved children slot of the props bag.
func (n Node) Children() []Node {
	ids := n.arena.children(n.id)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = n.arena.Node(id)
	}
	return out
}

// ChildCount returns the number of current children.
func (n Node) ChildCount() int {
	return len(n.arena.children(n.id))
}

// ChildAt returns the child at index i.
func (n Node) ChildAt(i int) (Node, bool) {
	ids := n.arena.children(n.id)
	if i < 0 || i >= len(ids) {
		return Node{}, false
	}
	return n.arena.Node(ids[i]), true
}

// Append normalizes and appends children. Nil entries are silently
// skipped; nested slices are flattened up to a bounded depth; primitive
// scalars become text nodes; any other type fails.
func (n Node) Append(children ...any) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	return n.appendList(children, 0)
}

const maxFlattenDepth = 8

func (n Node) appendList(list []any, depth int) error {
	if depth > maxFlattenDepth {
		return errors.New("E202").WithDetail("child nesting exceeds depth %d", maxFlattenDepth)
	}
	for _, c := range list {
		switch v := c.(type) {
		case nil:
			continue
		case []any:
			if err := n.appendList(v, depth+1); err != nil {
				return err
			}
		case []Node:
			for _, child := range v {
				if child.IsZero() {
					continue
				}
				if err := n.AppendChild(child); err != nil {
					return err
				}
			}
		default:
			child, err := normalizeChild(n.arena, n.rec().ctx, n.rec().owner, c)
			if err != nil {
				return err
			}
			if child == NoNode {
				continue
			}
			if err := n.arena.attach(n.id, child, -1, n.arena.childSlot(n.id)); err != nil {
				return err
			}
		}
	}
	return nil
}

// AppendChild appends an existing node as the last child.
func (n Node) AppendChild(child Node) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	if child.IsZero() {
		return errors.New("E202").WithDetail("child is the zero Node")
	}
	if child.arena != n.arena {
		return errors.New("E203")
	}
	return n.arena.attach(n.id, child.id, -1, n.arena.childSlot(n.id))
}

// InsertAt inserts a child at position pos. Position 0 and position
// ChildCount() (append-equivalent) are both valid; anything outside that
// range fails, as does a child that normalizes to nothing. The position
// is anchored on the node currently at pos, so moving a sibling that sits
// earlier in the list still lands it directly before that node.
func (n Node) InsertAt(pos int, child any) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	ids := n.arena.children(n.id)
	if pos < 0 || pos > len(ids) {
		return errors.New("E220").WithDetail("position %d with %d children", pos, len(ids))
	}
	id, err := normalizeChild(n.arena, n.rec().ctx, n.rec().owner, child)
	if err != nil {
		return err
	}
	if id == NoNode {
		return errors.New("E202").WithDetail("child normalized to nothing")
	}
	anchor := NoNode
	if pos < len(ids) {
		anchor = ids[pos]
	}
	if anchor == id {
		return nil
	}
	// Detach first: a child moving within the same list shifts the
	// positions after it, so the anchor's index is resolved afterwards.
	n.arena.detach(id)
	at := -1
	if anchor != NoNode {
		at = n.arena.indexOf(n.id, anchor)
	}
	return n.arena.attach(n.id, id, at, n.arena.childSlot(n.id))
}

// InsertBefore inserts a child before the reference node, which must be a
// current child. A child that is already a sibling is moved to sit
// directly before the reference.
func (n Node) InsertBefore(child any, ref Node) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	if ref.IsZero() || ref.arena != n.arena {
		return errors.New("E221")
	}
	pos := n.arena.indexOf(n.id, ref.id)
	if pos < 0 {
		return errors.New("E221")
	}
	return n.InsertAt(pos, child)
}

// RemoveAt detaches the child at position pos.
func (n Node) RemoveAt(pos int) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	ids := n.arena.children(n.id)
	if pos < 0 || pos >= len(ids) {
		return errors.New("E220").WithDetail("position %d with %d children", pos, len(ids))
	}
	n.arena.detach(ids[pos])
	return nil
}

// RemoveChild detaches the given node, which must be a current child.
func (n Node) RemoveChild(child Node) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	if child.IsZero() || child.arena != n.arena || n.arena.indexOf(n.id, child.id) < 0 {
		return errors.New("E221")
	}
	n.arena.detach(child.id)
	return nil
}

// ReplaceChild swaps old (a current child) for a normalized new child at
// the same position.
func (n Node) ReplaceChild(newChild any, old Node) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	if old.IsZero() || old.arena != n.arena || n.arena.indexOf(n.id, old.id) < 0 {
		return errors.New("E221")
	}
	id, err := normalizeChild(n.arena, n.rec().ctx, n.rec().owner, newChild)
	if err != nil {
		return err
	}
	if id == NoNode {
		return errors.New("E202").WithDetail("replacement normalized to nothing")
	}
	if id == old.id {
		return nil
	}
	// Same ordering concern as InsertAt: detach a replacement that is
	// already a sibling before resolving old's position.
	n.arena.detach(id)
	pos := n.arena.indexOf(n.id, old.id)
	n.arena.detach(old.id)
	return n.arena.attach(n.id, id, pos, n.arena.childSlot(n.id))
}

// Empty detaches every current child and clears any raw content,
// re-enabling the child API after SetInnerHTML.
func (n Node) Empty() error {
	if err := n.kindErr(); err != nil {
		return err
	}
	ids := n.arena.children(n.id)
	for len(ids) > 0 {
		n.arena.detach(ids[len(ids)-1])
		ids = n.arena.children(n.id)
	}
	r := n.rec()
	r.rawHTML = ""
	r.hasRaw = false
	return nil
}

// Listeners

// AddListener appends an event-listener descriptor.
func (n Node) AddListener(l EventListener) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	r := n.rec()
	r.listeners = append(r.listeners, l)
	return nil
}

// Listeners returns a copy of the listener descriptor list, in
// registration order.
func (n Node) Listeners() []EventListener {
	r := n.rec()
	out := make([]EventListener, len(r.listeners))
	copy(out, r.listeners)
	return out
}

// ListenerScope resolves the execution scope for a listener: its explicit
// scope when set, otherwise the node's owning live component.
func (n Node) ListenerScope(l EventListener) any {
	if l.Options.Scope != nil {
		return l.Options.Scope
	}
	return n.Component()
}

// coerceString converts an attribute value to its string form.
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

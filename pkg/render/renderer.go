package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/loom-ui/loom/pkg/vtree"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// RenderComponent overrides how component placeholders are rendered.
	// The default renders the placeholder's children-slot content inline,
	// wrapped in a marker comment carrying the component type name.
	RenderComponent func(w io.Writer, node vtree.Node) error
}

// Renderer serializes virtual trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a virtual tree to a complete HTML string.
func (r *Renderer) RenderToString(node vtree.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a virtual tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node vtree.Node) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node vtree.Node, depth int) error {
	if node.IsZero() {
		return nil
	}

	switch node.Kind() {
	case vtree.KindText:
		return r.renderText(w, node)
	case vtree.KindElement:
		return r.renderElement(w, node, depth)
	case vtree.KindComponent:
		return r.renderComponent(w, node, depth)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind())
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node vtree.Node, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if node.HasRawContent() {
		raw, err := node.InnerHTML()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, raw); err != nil {
			return err
		}
	} else {
		children := node.Children()
		hasBlockChildren := len(children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			w.Write([]byte{'\n'})
		}
		for _, child := range children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}
		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node vtree.Node) error {
	_, err := io.WriteString(w, EscapeHTML(node.Text()))
	return err
}

// renderComponent renders a component placeholder. Actual component
// expansion is the reconciler's job; the static renderer emits the
// parent-provided slot content between marker comments so exported pages
// stay inspectable.
func (r *Renderer) renderComponent(w io.Writer, node vtree.Node, depth int) error {
	if r.config.RenderComponent != nil {
		return r.config.RenderComponent(w, node)
	}

	name := ""
	if def := node.Type(); def != nil {
		name = def.Name()
	}
	if _, err := fmt.Fprintf(w, "<!--loom:%s-->", name); err != nil {
		return err
	}
	for _, child := range node.Children() {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "<!--/loom:%s-->", name)
	return err
}

// renderAttributes writes the unified attribute view (explicit attributes
// plus serialized class and style entries) in sorted order.
func (r *Renderer) renderAttributes(w io.Writer, node vtree.Node) error {
	attrs := node.Attributes()
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(attrs[k])); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}

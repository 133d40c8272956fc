package vtree

import "strings"

// Attr represents a single construction attribute: one key/value routed
// onto the node by the construction entry points.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// NewAttr creates an Attr with the given key and value.
func NewAttr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return NewAttr("id", id) }

// Class adds class names, joining multiple classes with spaces.
func Class(classes ...string) Attr { return NewAttr("class", strings.Join(classes, " ")) }

// Ref registers a reference id on the node being constructed.
func Ref(id string) Attr { return NewAttr("ref", id) }

// Href sets the href attribute.
func Href(url string) Attr { return NewAttr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return NewAttr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return NewAttr("alt", text) }

// Name sets the name attribute.
func Name(name string) Attr { return NewAttr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return NewAttr("value", value) }

// TypeAttr sets the type attribute (named to avoid conflict with the
// Node.Type accessor).
func TypeAttr(t string) Attr { return NewAttr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return NewAttr("placeholder", text) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return NewAttr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return NewAttr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return NewAttr("role", role) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return NewAttr("disabled", true) }

// AttrIf adds an attribute conditionally; the empty Attr is ignored by
// the entry points.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

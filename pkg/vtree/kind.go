package vtree

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText      Kind = iota // Plain text node
	KindElement               // <div>, <button>, etc.
	KindComponent             // Embedded sub-component placeholder
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

package el

import "github.com/loom-ui/loom/pkg/vtree"

// Text creates a text node.
func Text(c *vtree.Context, content string) vtree.Node {
	return c.Text(content)
}

// Textf creates a text node from a format string.
func Textf(c *vtree.Context, format string, args ...any) vtree.Node {
	return c.Textf(format, args...)
}

// If returns node when the condition holds and the zero Node otherwise.
// The construction entry points skip zero Nodes, so the false branch
// disappears from the tree.
func If(condition bool, node vtree.Node) vtree.Node {
	if condition {
		return node
	}
	return vtree.Node{}
}

// IfElse returns ifTrue or ifFalse depending on the condition.
func IfElse(condition bool, ifTrue, ifFalse vtree.Node) vtree.Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when the condition holds. Use it when building the
// branch is itself expensive or has side effects on the pass.
func When(condition bool, fn func() vtree.Node) vtree.Node {
	if condition {
		return fn()
	}
	return vtree.Node{}
}

// Unless is If with the condition negated.
func Unless(condition bool, node vtree.Node) vtree.Node {
	return If(!condition, node)
}

// Map builds one node per item. The result can be passed straight to an
// element constructor; slices flatten during child normalization.
func Map[T any](items []T, fn func(item T) vtree.Node) []vtree.Node {
	nodes := make([]vtree.Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, fn(item))
	}
	return nodes
}

// MapIndexed is Map with the index passed through.
func MapIndexed[T any](items []T, fn func(i int, item T) vtree.Node) []vtree.Node {
	nodes := make([]vtree.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return nodes
}

// Package el provides typed HTML element constructors for Loom.
//
// Every constructor wraps Context.Element with the tag filled in, so
// tree-building code names elements instead of passing tag strings:
//
//	import (
//	    "github.com/loom-ui/loom/el"
//	    "github.com/loom-ui/loom/pkg/vtree"
//	)
//
//	func Card(c *vtree.Context, title string) vtree.Node {
//	    return el.Div(c, vtree.Class("card"),
//	        el.H2(c, title),
//	        el.Button(c, vtree.Class("btn"), "OK"),
//	    )
//	}
//
// Conditional helpers return the zero Node when their condition fails;
// the construction entry points skip zero Nodes, so branches compose
// inline without nil checks.
package el

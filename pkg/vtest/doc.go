// Package vtest provides testing helpers for Loom trees.
//
// The vtest package reduces boilerplate when testing tree construction
// by providing build helpers and render assertions.
//
// # Quick Start
//
//	func TestCard(t *testing.T) {
//	    root, _ := vtest.Build(t, func(c *vtree.Context) vtree.Node {
//	        return Card(c, "Welcome")
//	    })
//	    vtest.ExpectContains(t, root, "Welcome")
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, root, "Welcome Admin")
//	vtest.ExpectNotContains(t, root, "Login")
//	vtest.ExpectElement(t, root, "button")
//	vtest.ExpectAttribute(t, root, "class", "btn-primary")
//
// # Context Assertions
//
// Assert on the pass bookkeeping:
//
//	label := vtest.ExpectRef(t, ctx, "label")
//	vtest.ExpectChildCount(t, label, 2)
//
// # Wire Form
//
// RoundTrip captures and re-decodes a pass, for tests that assert on
// the snapshot a remote consumer would see:
//
//	snap := vtest.RoundTrip(t, root, ctx)
package vtest

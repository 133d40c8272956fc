package el_test

import (
	"testing"

	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/vtest"
	"github.com/loom-ui/loom/pkg/vtree"
)

func TestConstructorsUseTheirTags(t *testing.T) {
	root, _ := vtest.Build(t, func(c *vtree.Context) vtree.Node {
		return el.Div(c, vtree.Class("page"),
			el.H1(c, "Title"),
			el.P(c, "body text"),
			el.Button(c, vtree.Class("btn"), "OK"),
		)
	})

	if root.Tag() != "div" {
		t.Errorf("root tag = %q, want div", root.Tag())
	}
	vtest.ExpectElement(t, root, "h1")
	vtest.ExpectElement(t, root, "p")
	vtest.ExpectAttribute(t, root, "class", "btn")
	vtest.ExpectChildCount(t, root, 3)
}

func TestConditionalHelpers(t *testing.T) {
	tests := []struct {
		name     string
		admin    bool
		wantText string
		skipText string
	}{
		{"condition true keeps branch", true, "admin panel", ""},
		{"condition false drops branch", false, "guest view", "admin panel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _ := vtest.Build(t, func(c *vtree.Context) vtree.Node {
				return el.Div(c,
					el.If(tt.admin, el.Span(c, "admin panel")),
					el.Unless(tt.admin, el.Span(c, "guest view")),
				)
			})
			if tt.wantText != "" {
				vtest.ExpectContains(t, root, tt.wantText)
			}
			if tt.skipText != "" {
				vtest.ExpectNotContains(t, root, tt.skipText)
			}
		})
	}
}

func TestWhenIsLazy(t *testing.T) {
	called := false
	root, _ := vtest.Build(t, func(c *vtree.Context) vtree.Node {
		return el.Div(c,
			el.When(false, func() vtree.Node {
				called = true
				return el.Span(c, "never")
			}),
		)
	})
	if called {
		t.Error("When(false) called its builder")
	}
	vtest.ExpectChildCount(t, root, 0)
}

func TestMapBuildsLists(t *testing.T) {
	items := []string{"one", "two", "three"}

	root, _ := vtest.Build(t, func(c *vtree.Context) vtree.Node {
		return el.Ul(c, el.Map(items, func(item string) vtree.Node {
			return el.Li(c, item)
		}))
	})

	vtest.ExpectChildCount(t, root, 3)
	vtest.ExpectContains(t, root, "<li>two</li>")
}

func TestMapWithConditionalEntries(t *testing.T) {
	items := []string{"one", "two", "three"}

	// If inside Map yields zero Nodes; the list drops them.
	root, _ := vtest.Build(t, func(c *vtree.Context) vtree.Node {
		return el.Ul(c, el.Map(items, func(item string) vtree.Node {
			return el.If(item != "two", el.Li(c, item))
		}))
	})

	vtest.ExpectChildCount(t, root, 2)
	vtest.ExpectNotContains(t, root, "two")
}

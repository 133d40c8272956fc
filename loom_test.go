package loom_test

import (
	"testing"

	loom "github.com/loom-ui/loom"
	"github.com/loom-ui/loom/pkg/vtest"
)

type facadeOwner struct{}

func (facadeOwner) Render(c *loom.Context) loom.Node {
	return c.Element("div")
}

func TestFacadeBuild(t *testing.T) {
	root, ctx, err := loom.Build(facadeOwner{}, func(c *loom.Context) loom.Node {
		return c.Element("div", loom.Class("card"), loom.Ref("card"),
			c.Element("h1", "hello"),
		)
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if root.Kind() != loom.KindElement {
		t.Errorf("root kind = %v, want element", root.Kind())
	}
	vtest.ExpectContains(t, root, "<h1>hello</h1>")

	if _, ok := ctx.Lookup("card"); !ok {
		t.Error("ref card not registered")
	}
}

func TestFacadeComponent(t *testing.T) {
	def := loom.DefineComponent("Badge", func() loom.Component {
		return loom.RenderFunc(func(c *loom.Context) loom.Node {
			return c.Element("span", "badge")
		})
	})

	root, _, err := loom.Build(facadeOwner{}, func(c *loom.Context) loom.Node {
		return c.Element("div",
			c.Component(def, loom.Props{"level": "gold"}),
		)
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	child, ok := root.ChildAt(0)
	if !ok {
		t.Fatal("ChildAt(0) missing")
	}
	if child.Kind() != loom.KindComponent {
		t.Errorf("child kind = %v, want component", child.Kind())
	}
	if child.Type() != def {
		t.Error("child type is not the defined component")
	}
}

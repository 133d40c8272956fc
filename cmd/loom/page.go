package main

import (
	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/vtree"
)

// projectOwner attributes CLI render passes.
type projectOwner struct{}

func (projectOwner) Render(c *vtree.Context) vtree.Node {
	return c.Element("div")
}

// projectSource builds the project status page the CLI serves and
// exports. Until routes are registered through the library API this is
// the one page a bare project has.
func projectSource(cfg *config.Config) func(c *vtree.Context) vtree.Node {
	name := cfg.Name
	if name == "" {
		name = "unnamed project"
	}

	return func(c *vtree.Context) vtree.Node {
		return c.Element("main", vtree.Class("loom-project"),
			c.Element("h1", name),
			c.Element("dl",
				c.Element("dt", "version"),
				c.Element("dd", cfg.Version),
				c.Element("dt", "preview"),
				c.Element("dd", cfg.PreviewAddress()),
				c.Element("dt", "export"),
				c.Element("dd", cfg.Export.Output),
			),
		)
	}
}

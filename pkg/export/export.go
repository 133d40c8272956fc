package export

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vtree"
)

// Source builds the tree for one exported page.
type Source func(c *vtree.Context) vtree.Node

// Page is one route to export.
type Page struct {
	// Route is the URL path, e.g. "/" or "/about".
	Route string

	// Title is the page title for the HTML shell.
	Title string

	// Source builds the page tree.
	Source Source
}

// Config configures an Exporter.
type Config struct {
	// Owner is the component instance passes are attributed to.
	Owner vtree.Component

	// Pretty enables indented HTML output.
	Pretty bool

	// Snapshots also writes the encoded snapshot frame next to each
	// page as <name>.loom, for tooling that consumes the wire form.
	Snapshots bool
}

// exportOwner is the fallback owner for export passes.
type exportOwner struct{}

func (exportOwner) Render(c *vtree.Context) vtree.Node {
	return c.Element("div")
}

// Exporter renders pages to static HTML files on disk.
type Exporter struct {
	config   Config
	owner    vtree.Component
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates an Exporter.
func New(config Config) *Exporter {
	owner := config.Owner
	if owner == nil {
		owner = exportOwner{}
	}
	return &Exporter{
		config:   config,
		owner:    owner,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		logger:   slog.Default().With("component", "export"),
	}
}

// Result describes one completed export.
type Result struct {
	// Files maps routes to the files written for them, relative to the
	// output directory.
	Files map[string][]string
}

// Export renders every page and writes it under outDir. Routes map to
// files the static-site way: "/" becomes index.html, "/about" becomes
// about/index.html.
func (e *Exporter) Export(ctx context.Context, outDir string, pages []Page) (*Result, error) {
	if len(pages) == 0 {
		return nil, errors.New("E540").WithDetail("no pages to export")
	}

	result := &Result{Files: make(map[string][]string)}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, errors.New("E540").Wrap(err)
		}
		if page.Source == nil {
			return nil, errors.New("E540").
				WithDetail("page %q has no source", page.Route)
		}

		root, rctx, err := vtree.Build(e.owner, page.Source)
		if err != nil {
			return nil, errors.New("E540").
				WithDetail("rendering %q failed", page.Route).
				Wrap(err)
		}

		body, err := e.renderer.RenderToString(root)
		if err != nil {
			return nil, errors.New("E540").Wrap(err)
		}

		rel := RouteFile(page.Route)
		path := filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.New("E540").Wrap(err)
		}

		title := page.Title
		if title == "" {
			title = page.Route
		}
		html := "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>" +
			render.EscapeHTML(title) + "</title></head>\n<body>\n" + body + "\n</body>\n</html>\n"
		if err := os.WriteFile(path, []byte(html), 0644); err != nil {
			return nil, errors.New("E540").Wrap(err)
		}
		result.Files[page.Route] = append(result.Files[page.Route], rel)

		if e.config.Snapshots {
			snap := protocol.Capture(root, rctx)
			frame, err := protocol.EncodeSnapshot(snap)
			if err != nil {
				return nil, errors.New("E540").Wrap(err)
			}
			snapRel := strings.TrimSuffix(rel, ".html") + ".loom"
			if err := os.WriteFile(filepath.Join(outDir, snapRel), frame, 0644); err != nil {
				return nil, errors.New("E540").Wrap(err)
			}
			result.Files[page.Route] = append(result.Files[page.Route], snapRel)
		}

		e.logger.Info("page exported", "route", page.Route, "file", rel)
	}

	return result, nil
}

// RouteFile maps a route to its output file, relative to the output
// directory.
func RouteFile(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

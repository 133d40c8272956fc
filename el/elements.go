package el

import "github.com/loom-ui/loom/pkg/vtree"

// Document structure

func Html(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("html", args...)
}
func Head(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("head", args...)
}
func Body(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("body", args...)
}
func Title(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("title", args...)
}
func Meta(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("meta", args...)
}
func LinkEl(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("link", args...)
}
func Script(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("script", args...)
}
func StyleEl(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("style", args...)
}

// Sectioning

func Header(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("header", args...)
}
func Footer(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("footer", args...)
}
func Main(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("main", args...)
}
func Nav(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("nav", args...)
}
func Section(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("section", args...)
}
func Article(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("article", args...)
}
func Aside(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("aside", args...)
}
func H1(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("h1", args...)
}
func H2(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("h2", args...)
}
func H3(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("h3", args...)
}
func H4(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("h4", args...)
}
func H5(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("h5", args...)
}
func H6(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("h6", args...)
}

// Grouping content

func Div(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("div", args...)
}
func P(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("p", args...)
}
func Pre(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("pre", args...)
}
func Blockquote(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("blockquote", args...)
}
func Hr(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("hr", args...)
}
func Ul(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("ul", args...)
}
func Ol(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("ol", args...)
}
func Li(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("li", args...)
}
func Dl(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("dl", args...)
}
func Dt(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("dt", args...)
}
func Dd(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("dd", args...)
}
func Figure(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("figure", args...)
}
func Figcaption(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("figcaption", args...)
}

// Text-level semantics

func A(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("a", args...)
}
func Span(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("span", args...)
}
func Strong(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("strong", args...)
}
func Em(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("em", args...)
}
func Small(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("small", args...)
}
func Code(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("code", args...)
}
func Kbd(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("kbd", args...)
}
func Mark(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("mark", args...)
}
func Sub(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("sub", args...)
}
func Sup(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("sup", args...)
}
func Br(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("br", args...)
}
func Time(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("time", args...)
}

// Embedded content

func Img(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("img", args...)
}
func Picture(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("picture", args...)
}
func SourceEl(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("source", args...)
}
func Video(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("video", args...)
}
func Audio(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("audio", args...)
}
func Iframe(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("iframe", args...)
}
func Canvas(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("canvas", args...)
}
func Svg(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("svg", args...)
}

// Tables

func Table(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("table", args...)
}
func Thead(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("thead", args...)
}
func Tbody(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("tbody", args...)
}
func Tfoot(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("tfoot", args...)
}
func Tr(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("tr", args...)
}
func Th(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("th", args...)
}
func Td(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("td", args...)
}
func Caption(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("caption", args...)
}
func Colgroup(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("colgroup", args...)
}
func Col(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("col", args...)
}

// Forms

func Form(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("form", args...)
}
func Input(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("input", args...)
}
func Textarea(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("textarea", args...)
}
func Button(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("button", args...)
}
func Select(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("select", args...)
}
func Option(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("option", args...)
}
func Optgroup(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("optgroup", args...)
}
func Label(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("label", args...)
}
func Fieldset(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("fieldset", args...)
}
func Legend(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("legend", args...)
}
func Datalist(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("datalist", args...)
}
func Output(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("output", args...)
}
func Progress(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("progress", args...)
}
func Meter(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("meter", args...)
}

// Interactive elements

func Details(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("details", args...)
}
func Summary(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("summary", args...)
}
func Dialog(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("dialog", args...)
}
func Template(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("template", args...)
}
func Slot(c *vtree.Context, args ...any) vtree.Node {
	return c.Element("slot", args...)
}

package goldmark

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

// Interface compliance check.
var _ mdview.TreeRenderer = (*Renderer)(nil)

// ErrNoDocument is returned when Render is given a nil or empty Document.
var ErrNoDocument = errors.New("goldmark: no document")

// Renderer implements [mdview.TreeRenderer]. It appends one DOM node per
// block and inline element of the goldmark AST to the container.
type Renderer struct {
	rawHTML bool
}

// RendererOption configures a [Renderer].
type RendererOption func(*Renderer)

// WithRawHTMLAsText renders raw HTML found in the source as literal text
// instead of parsing it into elements.
func WithRawHTMLAsText() RendererOption {
	return func(r *Renderer) { r.rawHTML = false }
}

// NewRenderer creates a Renderer. Raw HTML is parsed into elements unless
// WithRawHTMLAsText is given.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{rawHTML: true}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render appends the rendered document to container.
func (r *Renderer) Render(doc *mdview.Document, container *html.Node) error {
	if doc == nil || doc.Root == nil {
		return ErrNoDocument
	}
	w := &walker{source: doc.Source, rawHTML: r.rawHTML}
	return w.walkChildren(doc.Root, container)
}

type walker struct {
	source  []byte
	rawHTML bool

	// deferRaw is set while a block's inline content is collected for a
	// single fragment parse; raw HTML is then kept as RawNodes.
	deferRaw bool
}

func (w *walker) walkChildren(node ast.Node, parent *html.Node) error {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if err := w.walk(c, parent); err != nil {
			return err
		}
	}
	return nil
}

// appendElement creates an element, appends it to parent and renders the
// node's children into it.
func (w *walker) appendElement(node ast.Node, parent *html.Node, tag string, attrs ...html.Attribute) error {
	el := dom.Element(tag, attrs...)
	parent.AppendChild(el)
	return w.appendInline(node, el)
}

// appendInline renders the children of node into parent. When inline raw
// HTML is among them, the whole run is serialized and parsed as one
// fragment so that paired tags enclose the content between them.
func (w *walker) appendInline(node ast.Node, parent *html.Node) error {
	if !w.rawHTML || w.deferRaw || !hasInlineRawHTML(node) {
		return w.walkChildren(node, parent)
	}

	tmp := dom.Element("div")
	w.deferRaw = true
	err := w.walkChildren(node, tmp)
	w.deferRaw = false
	if err != nil {
		return err
	}

	var buf strings.Builder
	for c := tmp.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return err
		}
	}
	return w.appendHTML(parent, buf.String())
}

// hasInlineRawHTML reports whether an inline descendant of node is raw
// HTML. Nested blocks are not searched; they handle their own content.
func hasInlineRawHTML(node ast.Node) bool {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeInline {
			continue
		}
		if _, ok := c.(*ast.RawHTML); ok {
			return true
		}
		if hasInlineRawHTML(c) {
			return true
		}
	}
	return false
}

func (w *walker) walk(node ast.Node, parent *html.Node) error {
	switch n := node.(type) {
	case *ast.Paragraph:
		return w.appendElement(n, parent, "p")

	case *ast.TextBlock:
		// Tight list items carry their text without a paragraph wrapper.
		return w.appendInline(n, parent)

	case *ast.Heading:
		return w.appendElement(n, parent, "h"+strconv.Itoa(n.Level))

	case *ast.Blockquote:
		return w.appendElement(n, parent, "blockquote")

	case *ast.List:
		if !n.IsOrdered() {
			return w.appendElement(n, parent, "ul")
		}
		var attrs []html.Attribute
		if n.Start != 1 {
			attrs = append(attrs, html.Attribute{Key: "start", Val: strconv.Itoa(n.Start)})
		}
		return w.appendElement(n, parent, "ol", attrs...)

	case *ast.ListItem:
		return w.appendElement(n, parent, "li")

	case *ast.FencedCodeBlock:
		var attrs []html.Attribute
		if lang := n.Language(w.source); len(lang) > 0 {
			attrs = append(attrs, html.Attribute{Key: "class", Val: "language-" + string(lang)})
		}
		w.appendCode(parent, w.lines(n), attrs)
		return nil

	case *ast.CodeBlock:
		w.appendCode(parent, w.lines(n), nil)
		return nil

	case *ast.ThematicBreak:
		parent.AppendChild(dom.Element("hr"))
		return nil

	case *ast.HTMLBlock:
		raw := w.lines(n)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(w.source))
		}
		return w.appendHTML(parent, raw)

	case *ast.Text:
		value := n.Segment.Value(w.source)
		if !n.IsRaw() {
			value = unescape(value)
		}
		w.appendText(parent, string(value))
		switch {
		case n.HardLineBreak():
			parent.AppendChild(dom.Element("br"))
			w.appendText(parent, "\n")
		case n.SoftLineBreak():
			w.appendText(parent, "\n")
		}
		return nil

	case *ast.String:
		value := n.Value
		if !n.IsRaw() && !n.IsCode() {
			value = unescape(value)
		}
		w.appendText(parent, string(value))
		return nil

	case *ast.CodeSpan:
		code := dom.Element("code")
		code.AppendChild(dom.TextNode(w.rawText(n)))
		parent.AppendChild(code)
		return nil

	case *ast.Emphasis:
		tag := "em"
		if n.Level >= 2 {
			tag = "strong"
		}
		return w.appendElement(n, parent, tag)

	case *ast.Link:
		attrs := []html.Attribute{{Key: "href", Val: destination(n.Destination)}}
		if len(n.Title) > 0 {
			attrs = append(attrs, html.Attribute{Key: "title", Val: string(unescape(n.Title))})
		}
		return w.appendElement(n, parent, "a", attrs...)

	case *ast.Image:
		attrs := []html.Attribute{
			{Key: "src", Val: destination(n.Destination)},
			{Key: "alt", Val: w.plainText(n)},
		}
		if len(n.Title) > 0 {
			attrs = append(attrs, html.Attribute{Key: "title", Val: string(unescape(n.Title))})
		}
		parent.AppendChild(dom.Element("img", attrs...))
		return nil

	case *ast.AutoLink:
		url := string(n.URL(w.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			url = "mailto:" + url
		}
		a := dom.Element("a", html.Attribute{Key: "href", Val: url})
		a.AppendChild(dom.TextNode(string(n.Label(w.source))))
		parent.AppendChild(a)
		return nil

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(w.source))
		}
		if w.deferRaw {
			parent.AppendChild(&html.Node{Type: html.RawNode, Data: buf.String()})
			return nil
		}
		return w.appendHTML(parent, buf.String())

	case *east.Strikethrough:
		return w.appendElement(n, parent, "del")

	case *east.TaskCheckBox:
		attrs := []html.Attribute{{Key: "type", Val: "checkbox"}, {Key: "disabled"}}
		if n.IsChecked {
			attrs = append(attrs, html.Attribute{Key: "checked"})
		}
		parent.AppendChild(dom.Element("input", attrs...))
		return nil

	case *east.Table:
		return w.appendTable(n, parent)

	case *east.DefinitionList:
		return w.appendElement(n, parent, "dl")

	case *east.DefinitionTerm:
		return w.appendElement(n, parent, "dt")

	case *east.DefinitionDescription:
		return w.appendElement(n, parent, "dd")

	default:
		// Unknown nodes contribute their children.
		return w.walkChildren(node, parent)
	}
}

func (w *walker) appendTable(n *east.Table, parent *html.Node) error {
	table := dom.Element("table")
	parent.AppendChild(table)

	var tbody *html.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			thead := dom.Element("thead")
			table.AppendChild(thead)
			tr := dom.Element("tr")
			thead.AppendChild(tr)
			if err := w.appendCells(row, tr, "th"); err != nil {
				return err
			}
		case *east.TableRow:
			if tbody == nil {
				tbody = dom.Element("tbody")
				table.AppendChild(tbody)
			}
			tr := dom.Element("tr")
			tbody.AppendChild(tr)
			if err := w.appendCells(row, tr, "td"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) appendCells(row ast.Node, tr *html.Node, tag string) error {
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*east.TableCell)
		if !ok {
			continue
		}
		var attrs []html.Attribute
		if cell.Alignment != east.AlignNone {
			attrs = append(attrs, html.Attribute{Key: "align", Val: cell.Alignment.String()})
		}
		if err := w.appendElement(cell, tr, tag, attrs...); err != nil {
			return err
		}
	}
	return nil
}

// appendText adds s to parent, merging with a trailing text node.
func (w *walker) appendText(parent *html.Node, s string) {
	if s == "" {
		return
	}
	if last := parent.LastChild; last != nil && last.Type == html.TextNode {
		last.Data += s
		return
	}
	parent.AppendChild(dom.TextNode(s))
}

func (w *walker) appendCode(parent *html.Node, content string, attrs []html.Attribute) {
	pre := dom.Element("pre")
	code := dom.Element("code", attrs...)
	code.AppendChild(dom.TextNode(content))
	pre.AppendChild(code)
	parent.AppendChild(pre)
}

func (w *walker) appendHTML(parent *html.Node, raw string) error {
	if !w.rawHTML {
		w.appendText(parent, raw)
		return nil
	}
	context := parent
	if context.Type != html.ElementNode {
		context = dom.Element("div")
	}
	nodes, err := html.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return err
	}
	for _, c := range nodes {
		parent.AppendChild(c)
	}
	return nil
}

// lines joins the raw source lines of a block node.
func (w *walker) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(w.source))
	}
	return buf.String()
}

// rawText collects the unprocessed text beneath a code span.
func (w *walker) rawText(n ast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			value := t.Segment.Value(w.source)
			if v, ok := bytes.CutSuffix(value, []byte("\n")); ok {
				// Line endings inside a code span read as spaces.
				buf.Write(v)
				buf.WriteByte(' ')
				continue
			}
			buf.Write(value)
		case *ast.String:
			buf.Write(t.Value)
		}
	}
	return buf.String()
}

// plainText collects the text content of an inline subtree, used for alt
// attributes.
func (w *walker) plainText(n ast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(unescape(t.Segment.Value(w.source)))
			if t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(w.plainText(c))
		}
	}
	return buf.String()
}

// destination resolves escapes and references in a link or image URL and
// percent-encodes what is not allowed in one.
func destination(b []byte) string {
	return string(util.URLEscape(b, true))
}

func unescape(b []byte) []byte {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	return util.ResolveEntityNames(b)
}

package mock

import (
	"github.com/fwojciec/mdview"
	"golang.org/x/net/html"
)

// Interface compliance checks.
var (
	_ mdview.Parser       = (*Parser)(nil)
	_ mdview.TreeRenderer = (*Renderer)(nil)
)

// Parser is a test double for mdview.Parser.
// Set ParseFn before calling Parse.
type Parser struct {
	ParseFn func(source []byte) (*mdview.Document, error)
}

// Parse delegates to ParseFn.
func (p *Parser) Parse(source []byte) (*mdview.Document, error) {
	return p.ParseFn(source)
}

// Renderer is a test double for mdview.TreeRenderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(doc *mdview.Document, container *html.Node) error
}

// Render delegates to RenderFn.
func (r *Renderer) Render(doc *mdview.Document, container *html.Node) error {
	return r.RenderFn(doc, container)
}

package mdview

import (
	"github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
)

// Document is a parsed Markdown source.
//
// Text segments in Root index into Source, so the two must travel together.
// Meta holds front matter when the parser was configured to extract it.
type Document struct {
	Root   ast.Node
	Source []byte
	Meta   map[string]any
}

// Parser turns Markdown text into a Document.
type Parser interface {
	Parse(source []byte) (*Document, error)
}

// TreeRenderer appends the DOM form of a Document to a container element.
// It must not touch nodes outside the container.
type TreeRenderer interface {
	Render(doc *Document, container *html.Node) error
}

// Package goldmark implements [mdview.Parser] and [mdview.TreeRenderer] on
// top of the goldmark Markdown engine. The parser produces goldmark ASTs and
// the renderer walks them into golang.org/x/net/html nodes.
package goldmark

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/mdview"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Interface compliance check.
var _ mdview.Parser = (*Parser)(nil)

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
}

// Extensions returns the extension names accepted by WithExtensions, sorted.
func Extensions() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parser implements [mdview.Parser]. With no options it parses plain
// CommonMark. A Parser is safe for concurrent use.
type Parser struct {
	md          goldmark.Markdown
	extensions  []string
	frontMatter bool
}

// Option configures a [Parser].
type Option func(*Parser)

// WithExtensions enables goldmark extensions by name. See Extensions.
func WithExtensions(names ...string) Option {
	return func(p *Parser) { p.extensions = append(p.extensions, names...) }
}

// WithFrontMatter strips a leading YAML or TOML front matter block and
// exposes its fields as Document.Meta.
func WithFrontMatter() Option {
	return func(p *Parser) { p.frontMatter = true }
}

// NewParser creates a Parser. Unknown extension names are reported as an
// error.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}

	var exts []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range p.extensions {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			return nil, fmt.Errorf("goldmark: unknown extension %q (available: %s)",
				name, strings.Join(Extensions(), ", "))
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		exts = append(exts, ext)
	}

	p.md = goldmark.New(goldmark.WithExtensions(exts...))
	return p, nil
}

// Parse parses source into a Document.
func (p *Parser) Parse(source []byte) (*mdview.Document, error) {
	var meta map[string]any
	if p.frontMatter {
		rest, err := frontmatter.Parse(bytes.NewReader(source), &meta)
		if err != nil {
			return nil, fmt.Errorf("goldmark: front matter: %w", err)
		}
		source = rest
	}

	root := p.md.Parser().Parse(text.NewReader(source))
	return &mdview.Document{Root: root, Source: source, Meta: meta}, nil
}

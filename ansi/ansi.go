// Package ansi renders parsed documents to ANSI-styled terminal output
// using lipgloss for styling. It backs the command-line preview.
package ansi

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdview"
)

// Option configures Render.
type Option func(*options)

type options struct {
	renderer *lipgloss.Renderer
}

// WithRenderer styles output with r instead of the default lipgloss
// renderer, so the color profile can follow the destination writer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// Render returns doc as ANSI-styled terminal output. Paragraphs and list
// items are word-wrapped to width. Code blocks are rendered at full width
// without reflow.
func Render(doc *mdview.Document, width int, theme mdview.Theme, opts ...Option) string {
	if doc == nil || doc.Root == nil {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	o := options{renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&o)
	}
	r := newRenderer(o.renderer, theme)
	return r.render(doc, width)
}

// Error formats err as a one-line message in the theme's error color.
func Error(err error, theme mdview.Theme, opts ...Option) string {
	if err == nil {
		return ""
	}
	o := options{renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&o)
	}
	style := o.renderer.NewStyle().Foreground(ansiColor(theme.Error))
	return style.Render("error: " + err.Error())
}

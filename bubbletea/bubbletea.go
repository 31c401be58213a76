// Package bubbletea provides a Bubble Tea pager for previewing rendered
// Markdown documents in the terminal.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders the document for the given terminal width. It is called
// on every resize so paragraphs reflow to the new width.
type RenderFunc func(width int) string

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. When ctx is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdview"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the document pager.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	title  string
	render RenderFunc
	styles Styles
	ready  bool
}

// New creates a pager for the document produced by render.
func New(title string, render RenderFunc, theme mdview.Theme) Model {
	return Model{
		title:  title,
		render: render,
		styles: NewStyles(theme),
	}
}

// Ready reports whether the first window size has been received.
func (m Model) Ready() bool { return m.ready }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.Viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.Viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	vpHeight := msg.Height - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	offset := m.Viewport.YOffset
	m.Viewport.SetContent(m.renderContent(msg.Width))
	m.Viewport.SetYOffset(offset)
	return m
}

func (m Model) renderContent(width int) string {
	if m.render == nil {
		return ""
	}
	return m.render(width)
}

const statusHelp = "q quit · ↑/↓ scroll"

// statusLine shows the title, scroll position and key help. The title is
// truncated and the help dropped so the line fits the viewport width.
func (m Model) statusLine() string {
	pct := fmt.Sprintf("%3.f%%", m.Viewport.ScrollPercent()*100)
	fixed := runewidth.StringWidth(pct) + 2
	help := ""
	if m.Viewport.Width-fixed-runewidth.StringWidth(m.title) >= runewidth.StringWidth(statusHelp)+2 {
		help = "  " + m.styles.Muted.Render(statusHelp)
	}
	title := m.title
	if room := m.Viewport.Width - fixed; runewidth.StringWidth(title) > room {
		title = runewidth.Truncate(title, max(room, 1), "…")
	}
	return m.styles.Title.Render(title) + "  " + m.styles.Status.Render(pct) + help
}

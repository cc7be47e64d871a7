package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultDetailWidth  = 72
	defaultDetailHeight = 18
)

// DetailModal shows one project, award or article with scrollback. Body is
// re-rendered for the viewport width on every resize. Esc dismisses.
type DetailModal struct {
	Title    string
	Body     func(width int) string
	viewport viewport.Model
}

// Ensure DetailModal implements View.
var _ View = (*DetailModal)(nil)

// NewDetailModal creates a modal sized for the default terminal.
func NewDetailModal(title string, body func(width int) string) *DetailModal {
	vp := viewport.New(defaultDetailWidth, defaultDetailHeight)
	m := &DetailModal{Title: title, Body: body, viewport: vp}
	m.refresh()
	return m
}

// Init implements View.
func (m *DetailModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *DetailModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = min(max(msg.Width-8, 30), 100)
		m.viewport.Height = max(msg.Height-8, 6)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements View.
func (m *DetailModal) View() string {
	header := Styles.Title.Render(m.Title) + Styles.Hint.Render("  esc: close")
	footer := Styles.Hint.Render(scrollIndicator(m.viewport.ScrollPercent()))
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer))
}

func (m *DetailModal) refresh() {
	if m.Body == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.Body(m.viewport.Width))
}

func scrollIndicator(pct float64) string {
	return fmt.Sprintf("%3.f%%", pct*100)
}

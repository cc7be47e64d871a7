package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: pages, modals and the window desk all
// implement Bubble Tea's Init/Update/View with a View-typed Update.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

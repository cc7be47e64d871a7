package ui

import (
	"strings"

	"blueprint/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HomeView is the landing hero.
type HomeView struct {
	Studio content.Studio
	width  int
	height int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

func NewHomeView(studio content.Studio) *HomeView {
	return &HomeView{Studio: studio}
}

func (h *HomeView) Init() tea.Cmd { return nil }

func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		h.width, h.height = msg.Width, msg.Height
	}
	return h, nil
}

func (h *HomeView) View() string {
	name := Styles.Title.Render(strings.ToUpper(h.Studio.Name))
	hero := lipgloss.JoinVertical(lipgloss.Center,
		name,
		"",
		Styles.Tagline.Render(h.Studio.Tagline),
		"",
		Styles.Hint.Render("SPC g d  dynamite   SPC g a  about   SPC g c  contact"),
	)
	if h.width == 0 || h.height == 0 {
		return hero
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, hero)
}

package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused panel border
	ColorHighlight = "205" // Magenta - selection, leader keys
	ColorDanger    = "196" // Red - close control hover, errors
	ColorMuted     = "241" // Gray - hints, unfocused borders
	ColorText      = "252" // Light gray - body text
	ColorDim       = "243" // Darker gray - captions
	ColorWarning   = "208" // Orange - video badge
)

// Styles contains shared style definitions used across pages, panels and modals.
var Styles = struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style

	// Floating panels
	Panel        lipgloss.Style // unfocused chrome
	PanelFocused lipgloss.Style // focused chrome
	PanelTitle   lipgloss.Style
	PanelClose   lipgloss.Style
	Heading      lipgloss.Style
	Caption      lipgloss.Style
	MediaFrame   lipgloss.Style
	VideoBadge   lipgloss.Style

	// Modals
	Box lipgloss.Style

	// Chrome
	NavActive lipgloss.Style
	Nav       lipgloss.Style

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tagline: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorText)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	PanelClose: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Caption: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	MediaFrame: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	VideoBadge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	NavActive: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Nav: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewListDelegate returns the shared list delegate: two-line items, highlighted selection.
func NewListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected.Bold(false)
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}

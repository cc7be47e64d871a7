package ui

import "strings"

// AppMode is the page currently on screen.
type AppMode int

const (
	ModeHome AppMode = iota
	ModeAbout
	ModeProjects
	ModeAwards
	ModeNews
	ModeContact
	ModeDynamite
)

// Pages lists every mode in navigation-bar order.
var Pages = []AppMode{ModeHome, ModeAbout, ModeProjects, ModeAwards, ModeNews, ModeContact, ModeDynamite}

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeAbout:
		return "About"
	case ModeProjects:
		return "Projects"
	case ModeAwards:
		return "Awards"
	case ModeNews:
		return "News"
	case ModeContact:
		return "Contact"
	case ModeDynamite:
		return "Dynamite"
	default:
		return "Unknown"
	}
}

// Slug is the route name used by --page and start_page.
func (m AppMode) Slug() string {
	return strings.ToLower(m.String())
}

// ParseMode maps a slug back to its mode.
func ParseMode(slug string) (AppMode, bool) {
	for _, m := range Pages {
		if m.Slug() == strings.ToLower(strings.TrimSpace(slug)) {
			return m, true
		}
	}
	return ModeHome, false
}

// HasDesk reports whether the page is made of floating windows.
func (m AppMode) HasDesk() bool {
	return m == ModeAbout || m == ModeContact || m == ModeDynamite
}

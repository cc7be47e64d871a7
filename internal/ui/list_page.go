package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Entry is one row of a listing page.
type Entry struct {
	Slug   string
	Name   string
	Detail string
}

// entryItem implements list.Item (and list.DefaultItem) for Entry.
type entryItem struct {
	Entry
}

func (e entryItem) FilterValue() string { return e.Name }
func (e entryItem) Title() string       { return e.Name }
func (e entryItem) Description() string { return e.Detail }

// ListPage is a scrollable listing (projects, awards, news). Enter opens the
// detail modal for the selected entry.
type ListPage struct {
	Page    AppMode
	Heading string
	Entries []Entry
	list    list.Model
	lock    ScrollLock
}

// Ensure ListPage implements View.
var _ View = (*ListPage)(nil)

// NewListPage creates a listing for page.
func NewListPage(page AppMode, heading string, entries []Entry, lock ScrollLock) *ListPage {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{Entry: e}
	}
	l := list.New(items, NewListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &ListPage{
		Page:    page,
		Heading: heading,
		Entries: entries,
		list:    l,
		lock:    lock,
	}
}

// Selected returns the index of the selected entry.
func (p *ListPage) Selected() int {
	return p.list.Index()
}

// Init implements View.
func (p *ListPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *ListPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetWidth(msg.Width)
		p.list.SetHeight(max(msg.Height-3, 1)) // heading + hint + gap
		return p, nil
	case tea.MouseMsg:
		if p.lock != nil && p.lock.Paused() {
			return p, nil
		}
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				p.list.CursorUp()
			case tea.MouseButtonWheelDown:
				p.list.CursorDown()
			}
		}
		return p, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			i := p.list.Index()
			if i < 0 || i >= len(p.Entries) {
				return p, nil
			}
			page, slug := p.Page, p.Entries[i].Slug
			return p, func() tea.Msg { return OpenDetailMsg{Page: page, Slug: slug} }
		}
	}

	// list.Model handles j/k/g/G and paging natively.
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View implements View.
func (p *ListPage) View() string {
	if p.list.Width() == 0 {
		p.list.SetWidth(80)
	}
	if p.list.Height() == 0 {
		p.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("%s (%d)", p.Heading, len(p.Entries))) + "\n")
	b.WriteString(Styles.Hint.Render("enter: open  j/k: move  [SPC] for commands") + "\n\n")
	if len(p.Entries) == 0 {
		b.WriteString(Styles.Empty.Render("Nothing here yet."))
		return b.String()
	}
	b.WriteString(lipgloss.NewStyle().MaxWidth(p.list.Width()).Render(p.list.View()))
	return b.String()
}

package ui

import (
	"strings"

	"blueprint/internal/config"
	"blueprint/internal/content"
	"blueprint/internal/desk"
	"blueprint/internal/geom"
	"blueprint/internal/reveal"
	"blueprint/internal/trace"
	"blueprint/internal/window"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Screen rows outside the page area: the nav bar and the footer hint.
const (
	navRows    = 1
	footerRows = 1
)

// Options wire the app's collaborators.
type Options struct {
	Config    *config.Config
	Library   *content.Library
	Logger    *zap.Logger
	Recorder  *trace.Recorder
	Scheduler reveal.Scheduler
}

// AppModel is the root model: a router over pages, with a modal overlay
// stack and a leader-key command system.
type AppModel struct {
	Mode       AppMode
	History    History
	Overlays   OverlayStack
	Scroll     *PageScroll
	KeyHandler *KeyHandler
	Library    *content.Library

	Home  *HomeView
	Lists map[AppMode]*ListPage
	Desks map[AppMode]*DeskView

	// Send delivers messages from timer goroutines (reveal steps) into the
	// update loop. main sets it to the program's Send before Run.
	Send func(tea.Msg)

	markdown *MarkdownRenderer
	log      *zap.Logger
	width    int
	height   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel builds every page from the content library. Nothing is mounted
// until Init.
func NewAppModel(opts Options) *AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lib := opts.Library
	if lib == nil {
		lib = &content.Library{}
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = reveal.SystemScheduler{}
	}

	scroll := &PageScroll{}
	a := &AppModel{
		Mode:     ModeHome,
		Overlays: OverlayStack{Lock: scroll},
		Scroll:   scroll,
		Library:  lib,
		Home:     NewHomeView(lib.Studio),
		Lists:    make(map[AppMode]*ListPage),
		Desks:    make(map[AppMode]*DeskView),
		markdown: NewMarkdownRenderer("dark", log),
		log:      log,
	}
	if m, ok := ParseMode(cfg.StartPage); ok {
		a.Mode = m
	} else {
		log.Warn("unknown start page; using home", zap.String("page", cfg.StartPage))
	}

	a.Lists[ModeProjects] = NewListPage(ModeProjects, "Projects", projectEntries(lib), scroll)
	a.Lists[ModeAwards] = NewListPage(ModeAwards, "Awards", awardEntries(lib), scroll)
	a.Lists[ModeNews] = NewListPage(ModeNews, "News", newsEntries(lib), scroll)

	deskOpts := desk.DefaultOptions()
	deskOpts.Geometry = geom.Options{
		Margin:       cfg.Window.Margin,
		BottomMargin: cfg.Window.BottomMargin,
		Symmetric:    cfg.Window.SymmetricPadding,
	}
	deskOpts.BaseZ = cfg.Window.BaseZ
	deskOpts.Breakpoint = cfg.Window.Breakpoint
	deskOpts.ReducedMotion = cfg.ReducedMotion
	deskOpts.MaxAttempts = cfg.Window.MaxMeasureAttempts

	cell := CellSize{W: cfg.Terminal.CellWidth, H: cfg.Terminal.CellHeight}
	pages := map[AppMode][]window.Descriptor{
		ModeAbout:    lib.AboutWindows(),
		ModeContact:  lib.ContactWindows(),
		ModeDynamite: lib.DynamiteWindows(),
	}
	for page, descs := range pages {
		d := desk.New(page.Slug(), descs, deskOpts, sched, cfg.Window.Stagger(), a.dispatcher(page)).
			WithLogger(log).
			WithRecorder(opts.Recorder)
		a.Desks[page] = NewDeskView(page, d, cell, cfg.Window.NudgeStep, cfg.Terminal.Frame(), scroll).WithLogger(log)
	}

	a.KeyHandler = NewKeyHandler(a.registry())
	return a
}

// dispatcher forwards reveal steps for page into the update loop.
func (a *AppModel) dispatcher(page AppMode) func(reveal.Step) {
	return func(step reveal.Step) {
		if send := a.Send; send != nil {
			send(RevealStepMsg{Page: page, Step: step})
		}
	}
}

func (a *AppModel) registry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	goKeys := map[AppMode]string{
		ModeHome:     "h",
		ModeAbout:    "a",
		ModeProjects: "p",
		ModeAwards:   "w",
		ModeNews:     "n",
		ModeContact:  "c",
		ModeDynamite: "d",
	}
	for page, k := range goKeys {
		reg.BindWithDesc("SPC g "+k, navigate(page), page.String())
	}
	reg.BindOn("SPC w r", keyCmd("r"), "Replay reveal", ModeAbout, ModeContact, ModeDynamite)
	reg.BindOn("SPC w x", keyCmd("x"), "Close window", ModeAbout, ModeContact, ModeDynamite)
	reg.BindOn("SPC w n", keyCmd("tab"), "Next window", ModeAbout, ModeContact, ModeDynamite)
	reg.BindOn("SPC w p", keyCmd("shift+tab"), "Previous window", ModeAbout, ModeContact, ModeDynamite)
	return reg
}

func navigate(to AppMode) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// keyCmd replays a page-level key, so leader bindings and direct keys share one path.
func keyCmd(k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return func() tea.Msg { return pageKeyMsg{msg} }
}

// pageKeyMsg is a key delivered straight to the current page, bypassing the
// keybind system.
type pageKeyMsg struct {
	tea.KeyMsg
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.mount(a.Mode)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.resizeAll()
	case NavigateMsg:
		return a, a.navigate(msg.To, true)
	case BackMsg:
		if prev, ok := a.History.Pop(); ok {
			return a, a.navigate(prev, false)
		}
		return a, nil
	case MeasureTickMsg, RevealStepMsg:
		for _, dv := range a.Desks {
			if _, cmd := dv.Update(msg); cmd != nil {
				return a, cmd
			}
		}
		return a, nil
	case OpenDetailMsg:
		a.openDetail(msg)
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case pageKeyMsg:
		return a, a.updatePage(msg.KeyMsg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		if cmd, ok := a.Overlays.Update(msg); ok {
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, cmd
			}
		}
		if msg.String() == "esc" {
			return a, func() tea.Msg { return BackMsg{} }
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, a.updatePage(msg)
	}

	if cmd, ok := a.Overlays.Update(msg); ok {
		return a, cmd
	}
	return a, a.updatePage(msg)
}

// pageSize is the area between the nav bar and the footer.
func (a *AppModel) pageSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(a.height-navRows-footerRows, 0)}
}

func (a *AppModel) resizeAll() tea.Cmd {
	size := a.pageSize()
	var cmds []tea.Cmd
	a.Home.Update(size)
	for _, l := range a.Lists {
		l.Update(size)
	}
	for _, dv := range a.Desks {
		_, cmd := dv.Update(size)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, a.Overlays.Resize(tea.WindowSizeMsg{Width: a.width, Height: a.height}))
	return tea.Batch(cmds...)
}

func (a *AppModel) navigate(to AppMode, remember bool) tea.Cmd {
	if to == a.Mode {
		return nil
	}
	from := a.Mode
	if dv, ok := a.Desks[from]; ok {
		dv.Unmount()
	}
	a.Overlays.Clear()
	if a.KeyHandler != nil {
		a.KeyHandler.Reset()
	}
	if remember {
		a.History.Push(from)
	}
	a.Mode = to
	a.log.Debug("navigate", zap.Stringer("from", from), zap.Stringer("to", to))
	return a.mount(to)
}

func (a *AppModel) mount(m AppMode) tea.Cmd {
	dv, ok := a.Desks[m]
	if !ok {
		return nil
	}
	dv.Update(a.pageSize())
	return dv.Mount()
}

func (a *AppModel) currentView() View {
	if dv, ok := a.Desks[a.Mode]; ok {
		return dv
	}
	if l, ok := a.Lists[a.Mode]; ok {
		return l
	}
	return a.Home
}

func (a *AppModel) updatePage(msg tea.Msg) tea.Cmd {
	_, cmd := a.currentView().Update(msg)
	return cmd
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if cmd, ok := a.Overlays.Update(msg); ok {
		return cmd
	}
	if msg.Y < navRows {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if to, ok := navHit(msg.X); ok {
				return navigate(to)
			}
		}
		return nil
	}
	msg.Y -= navRows
	return a.updatePage(msg)
}

func (a *AppModel) openDetail(msg OpenDetailMsg) {
	var m *DetailModal
	switch msg.Page {
	case ModeProjects:
		if p, ok := a.Library.Project(msg.Slug); ok {
			m = NewDetailModal(p.Title, projectBody(p))
		}
	case ModeAwards:
		if aw, ok := a.Library.Award(msg.Slug); ok {
			m = NewDetailModal(aw.Title, awardBody(aw))
		}
	case ModeNews:
		if n, ok := a.Library.Article(msg.Slug); ok {
			m = NewDetailModal(n.Title, articleBody(n, a.markdown))
		}
	}
	if m == nil {
		a.log.Warn("detail not found", zap.Stringer("page", msg.Page), zap.String("slug", msg.Slug))
		return
	}
	if a.width > 0 {
		m.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.Overlays.Push(Overlay{View: m, Dismiss: "esc"})
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	size := a.pageSize()
	page := newCanvas(size.Width, size.Height)
	page.fill(a.currentView().View())

	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		x := (size.Width - lipgloss.Width(modal)) / 2
		y := (size.Height - lipgloss.Height(modal)) / 2
		page.overlay(modal, max(x, 0), max(y, 0))
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler, a.Mode); help != "" {
			page.overlay(help, 0, size.Height-lipgloss.Height(help))
		}
	}
	return strings.Join([]string{navBar(a.Mode, a.width), page.String(), a.footer()}, "\n")
}

func (a *AppModel) footer() string {
	hint := "SPC: commands  esc: back  q: quit"
	if a.Mode.HasDesk() {
		hint = "drag titles  tab: next window  arrows: move  x: close  r: replay  SPC: commands"
		if dv := a.Desks[a.Mode]; dv != nil && !dv.Desk.Adapter().DragEnabled() {
			hint = "j/k: scroll  tab: next window  x: close  r: replay  SPC: commands"
		}
	}
	if a.Overlays.Len() > 0 {
		hint = "esc: close  j/k: scroll"
	}
	return Styles.Hint.Render(hint)
}

// navLabel renders one nav bar entry.
func navLabel(m AppMode) string {
	return " " + m.String() + " "
}

func navBar(active AppMode, width int) string {
	var b strings.Builder
	for _, m := range Pages {
		style := Styles.Nav
		if m == active {
			style = Styles.NavActive
		}
		b.WriteString(style.Render(navLabel(m)))
	}
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(b.String())
}

// navHit maps a nav bar column to the page label under it.
func navHit(col int) (AppMode, bool) {
	x := 0
	for _, m := range Pages {
		w := lipgloss.Width(navLabel(m))
		if col >= x && col < x+w {
			return m, true
		}
		x += w
	}
	return ModeHome, false
}

func projectEntries(lib *content.Library) []Entry {
	out := make([]Entry, len(lib.Projects))
	for i, p := range lib.Projects {
		out[i] = Entry{Slug: p.Slug, Name: p.Title, Detail: p.Category + " · " + p.Location + " · " + p.Year}
	}
	return out
}

func awardEntries(lib *content.Library) []Entry {
	out := make([]Entry, len(lib.Awards))
	for i, aw := range lib.Awards {
		out[i] = Entry{Slug: aw.Slug, Name: aw.Title, Detail: aw.Category + " · " + aw.Year}
	}
	return out
}

func newsEntries(lib *content.Library) []Entry {
	out := make([]Entry, len(lib.News))
	for i, n := range lib.News {
		out[i] = Entry{Slug: n.Slug, Name: n.Title, Detail: n.Date + " · " + n.Excerpt}
	}
	return out
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

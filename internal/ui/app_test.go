package ui

import (
	"strings"
	"testing"
	"time"

	"blueprint/internal/config"
	"blueprint/internal/content"
	"blueprint/internal/reveal"

	tea "github.com/charmbracelet/bubbletea"
)

const testStagger = 520 * time.Millisecond

// newTestApp builds an app over the embedded content on a 150x52 terminal
// (a 150x50 page). Reveal steps are delivered synchronously through Send.
func newTestApp(t *testing.T) (*AppModel, *appModelAdapter, *reveal.ManualScheduler) {
	t.Helper()
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	clock := reveal.NewManualScheduler()
	m := NewAppModel(Options{Library: lib, Scheduler: clock})
	adapter := m.AsTeaModel().(*appModelAdapter)
	m.Send = func(msg tea.Msg) { adapter.Update(msg) }
	adapter.Update(tea.WindowSizeMsg{Width: 150, Height: 52})
	return m, adapter, clock
}

// run executes cmd and feeds its message back, returning the follow-up command.
func run(adapter *appModelAdapter, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	_, next := adapter.Update(msg)
	return next
}

func pressKeys(adapter *appModelAdapter, keys ...string) {
	for _, k := range keys {
		_, cmd := adapter.Update(keyMsg(k))
		run(adapter, cmd)
	}
}

func TestApp_StartsOnHome(t *testing.T) {
	m, adapter, _ := newTestApp(t)
	if m.Mode != ModeHome {
		t.Fatalf("Mode = %v, want Home", m.Mode)
	}
	view := adapter.View()
	if !strings.Contains(view, strings.ToUpper(m.Library.Studio.Name)) {
		t.Errorf("home view should show the studio name, got:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 52 {
		t.Errorf("view has %d lines, want 52", got)
	}
}

func TestApp_LeaderNavigatesAndRevealsDesk(t *testing.T) {
	m, adapter, clock := newTestApp(t)

	pressKeys(adapter, " ", "g", "d")
	if m.Mode != ModeDynamite {
		t.Fatalf("Mode = %v, want Dynamite", m.Mode)
	}
	dv := m.Desks[ModeDynamite]
	if !dv.Desk.Mounted() || dv.Desk.Measuring() {
		t.Fatalf("desk should be mounted and measured (mounted=%v measuring=%v)", dv.Desk.Mounted(), dv.Desk.Measuring())
	}

	clock.Advance(0)
	if got := dv.Desk.Store().Len(); got != 1 {
		t.Errorf("after first step %d panels open, want 1", got)
	}
	clock.Advance(time.Duration(len(dv.Desk.Descs)) * testStagger)
	if got := dv.Desk.Store().Len(); got != len(dv.Desk.Descs) {
		t.Errorf("after full reveal %d panels open, want %d", got, len(dv.Desk.Descs))
	}
	last := dv.Desk.Descs[len(dv.Desk.Descs)-1].ID
	if got := dv.Desk.Store().Focused(); got != last {
		t.Errorf("focused = %q, want last revealed %q", got, last)
	}
}

func TestApp_LeavingDeskCancelsReveal(t *testing.T) {
	m, adapter, clock := newTestApp(t)
	pressKeys(adapter, " ", "g", "a")
	clock.Advance(0)

	pressKeys(adapter, "esc")
	if m.Mode != ModeHome {
		t.Fatalf("esc should go back to Home, got %v", m.Mode)
	}
	dv := m.Desks[ModeAbout]
	if dv.Desk.Mounted() {
		t.Error("about desk should be unmounted")
	}
	if clock.Pending() != 0 {
		t.Errorf("%d reveal steps still pending after leaving", clock.Pending())
	}
	if dv.Desk.Store().Len() != 0 {
		t.Error("leaving closes every panel")
	}
}

func TestApp_ReturningReplaysReveal(t *testing.T) {
	m, adapter, clock := newTestApp(t)
	pressKeys(adapter, " ", "g", "c")
	clock.Advance(0)
	clock.Advance(3 * testStagger)
	pressKeys(adapter, " ", "g", "h", " ", "g", "c")

	if m.Mode != ModeContact {
		t.Fatalf("Mode = %v, want Contact", m.Mode)
	}
	if got := m.Desks[ModeContact].Desk.Store().Len(); got != 0 {
		t.Errorf("fresh visit should start closed, got %d open", got)
	}
	clock.Advance(0)
	if got := m.Desks[ModeContact].Desk.Store().StackOrder(); len(got) != 1 || got[0] != "address" {
		t.Errorf("stack = %v, want [address]", got)
	}
}

func TestApp_ClosingEmailNavigatesHome(t *testing.T) {
	m, adapter, clock := newTestApp(t)
	pressKeys(adapter, " ", "g", "c")
	clock.Advance(0)
	clock.Advance(2 * testStagger)
	if got := m.Desks[ModeContact].Desk.Store().Focused(); got != "email" {
		t.Fatalf("focused = %q, want email", got)
	}

	pressKeys(adapter, "x")
	if m.Mode != ModeHome {
		t.Errorf("closing email should navigate home, got %v", m.Mode)
	}
}

func TestApp_OpenDetailAndDismiss(t *testing.T) {
	m, adapter, _ := newTestApp(t)
	run(adapter, navigate(ModeProjects))
	if m.Mode != ModeProjects {
		t.Fatalf("Mode = %v, want Projects", m.Mode)
	}

	pressKeys(adapter, "enter")
	if m.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay after enter, got %d", m.Overlays.Len())
	}
	if !m.Scroll.Paused() {
		t.Error("page scroll should pause while the modal is open")
	}
	if view := adapter.View(); !strings.Contains(view, "Urban Bistro Interior") {
		t.Errorf("view should show the project detail, got:\n%s", view)
	}

	// SPC is swallowed by the modal.
	pressKeys(adapter, " ")
	if m.KeyHandler.LeaderWaiting {
		t.Error("leader must not arm while a modal is open")
	}

	pressKeys(adapter, "esc")
	if m.Overlays.Len() != 0 {
		t.Errorf("esc should dismiss the modal, %d overlays left", m.Overlays.Len())
	}
	if m.Scroll.Paused() {
		t.Error("page scroll should resume after the modal closes")
	}
	if m.Mode != ModeProjects {
		t.Errorf("dismissing the modal should stay on Projects, got %v", m.Mode)
	}
}

func TestApp_UnknownDetailIgnored(t *testing.T) {
	m, adapter, _ := newTestApp(t)
	adapter.Update(OpenDetailMsg{Page: ModeNews, Slug: "missing"})
	if m.Overlays.Len() != 0 {
		t.Errorf("unknown slug should not open a modal")
	}
}

func TestApp_NavBarClick(t *testing.T) {
	m, adapter, _ := newTestApp(t)
	x := len(navLabel(ModeHome)) + 1
	_, cmd := adapter.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	run(adapter, cmd)
	if m.Mode != ModeAbout {
		t.Errorf("click on the About label should navigate, got %v", m.Mode)
	}
}

func TestApp_SPCShowsKeybindHints(t *testing.T) {
	m, adapter, _ := newTestApp(t)
	pressKeys(adapter, " ")
	if !m.KeyHandler.LeaderWaiting {
		t.Fatal("expected LeaderWaiting after SPC")
	}
	view := adapter.View()
	for _, hint := range []string{"Go to", "Quit"} {
		if !strings.Contains(view, hint) {
			t.Errorf("View should contain hint %q after SPC, got:\n%s", hint, view)
		}
	}
	if strings.Contains(view, "Window") {
		t.Error("window commands only apply on desk pages")
	}

	pressKeys(adapter, "g")
	view = adapter.View()
	for _, hint := range []string{"About", "Dynamite", "Contact"} {
		if !strings.Contains(view, hint) {
			t.Errorf("View should contain hint %q after SPC g, got:\n%s", hint, view)
		}
	}
}

func TestApp_QuitKeys(t *testing.T) {
	_, adapter, _ := newTestApp(t)
	for _, k := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := adapter.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestApp_StartPageFromConfig(t *testing.T) {
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	cfg := config.Default()
	cfg.StartPage = "news"
	m := NewAppModel(Options{Config: cfg, Library: lib, Scheduler: reveal.NewManualScheduler()})
	if m.Mode != ModeNews {
		t.Errorf("Mode = %v, want News", m.Mode)
	}

	cfg.StartPage = "nowhere"
	m = NewAppModel(Options{Config: cfg, Library: lib, Scheduler: reveal.NewManualScheduler()})
	if m.Mode != ModeHome {
		t.Errorf("unknown start page should fall back to Home, got %v", m.Mode)
	}
}

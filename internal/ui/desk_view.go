package ui

import (
	"time"

	"blueprint/internal/desk"
	"blueprint/internal/geom"
	"blueprint/internal/layout"
	"blueprint/internal/window"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// CellSize maps one terminal cell to layout units.
type CellSize struct {
	W, H int
}

// DeskView renders a desk of floating panels and routes mouse and keyboard
// input to it. Sizes it receives are in cells; the desk works in layout units.
type DeskView struct {
	Page AppMode
	Desk *desk.Desk

	cell    CellSize
	nudge   int
	frame   time.Duration
	lock    ScrollLock
	log     *zap.Logger
	width   int
	height  int
	gen     int
	pageY   int            // compact-mode page scroll, in cells
	scrolls map[string]int // per-panel body scroll, in lines
}

// Ensure DeskView implements View.
var _ View = (*DeskView)(nil)

// NewDeskView wraps d for page.
func NewDeskView(page AppMode, d *desk.Desk, cell CellSize, nudge int, frame time.Duration, lock ScrollLock) *DeskView {
	if cell.W <= 0 || cell.H <= 0 {
		cell = CellSize{W: 8, H: 16}
	}
	return &DeskView{
		Page:    page,
		Desk:    d,
		cell:    cell,
		nudge:   nudge,
		frame:   frame,
		lock:    lock,
		log:     zap.NewNop(),
		scrolls: make(map[string]int),
	}
}

// WithLogger sets the logger.
func (v *DeskView) WithLogger(l *zap.Logger) *DeskView {
	if l != nil {
		v.log = l
	}
	return v
}

// Init implements View.
func (v *DeskView) Init() tea.Cmd {
	return nil
}

// Mount starts a visit: the desk resets and measurement polling begins.
func (v *DeskView) Mount() tea.Cmd {
	v.gen++
	v.pageY = 0
	clear(v.scrolls)
	v.Desk.Mount()
	return v.measure()
}

// Unmount cancels everything pending for this page.
func (v *DeskView) Unmount() {
	v.gen++
	v.Desk.Unmount()
}

// container returns the desk area in layout units.
func (v *DeskView) container() geom.Size {
	return geom.Size{W: v.width * v.cell.W, H: v.height * v.cell.H}
}

// measure tries the container once and schedules a retry next frame when it
// is not measurable yet.
func (v *DeskView) measure() tea.Cmd {
	if v.Desk.Measure(v.container()) {
		v.reportSizes()
		return nil
	}
	page, gen := v.Page, v.gen
	return tea.Tick(v.frame, func(time.Time) tea.Msg {
		return MeasureTickMsg{Page: page, Gen: gen}
	})
}

// reportSizes tells the desk each panel's footprint once snapped to whole cells.
func (v *DeskView) reportSizes() {
	for _, d := range v.Desk.Descs {
		f := v.frameFor(d.Dimensions())
		v.Desk.ReportSize(d.ID, geom.Size{W: f.W * v.cell.W, H: f.H * v.cell.H})
	}
}

func (v *DeskView) frameFor(s geom.Size) panelFrame {
	return panelFrame{W: max(s.W/v.cell.W, minPanelW), H: max(s.H/v.cell.H, minPanelH)}
}

// cellRect converts a placement to cells, shifted by the compact page scroll.
func (v *DeskView) cellRect(p layout.Placement) (x, y int, f panelFrame) {
	f = v.frameFor(geom.Size{W: p.Rect.W, H: p.Rect.H})
	return floorDiv(p.Rect.X, v.cell.W), floorDiv(p.Rect.Y, v.cell.H) - v.pageY, f
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// toUnits converts a cell position inside the desk area to layout units.
func (v *DeskView) toUnits(col, row int) geom.Point {
	return geom.Point{X: col * v.cell.W, Y: (row + v.pageY) * v.cell.H}
}

// hit finds the topmost panel under (col, row).
func (v *DeskView) hit(col, row int) (window.Descriptor, window.Target, bool) {
	ps := v.Desk.Placements()
	for i := len(ps) - 1; i >= 0; i-- {
		x, y, f := v.cellRect(ps[i])
		if col < x || col >= x+f.W || row < y || row >= y+f.H {
			continue
		}
		d, ok := v.Desk.Descriptor(ps[i].ID)
		if !ok {
			continue
		}
		return d, f.hitTarget(d, col-x, row-y), true
	}
	return window.Descriptor{}, window.TargetBody, false
}

// Update implements View.
func (v *DeskView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		if v.Desk.Measuring() {
			return v, nil
		}
		v.Desk.Resize(v.container())
		v.reportSizes()
		v.clampPageScroll()
		return v, nil
	case MeasureTickMsg:
		if msg.Page != v.Page || msg.Gen != v.gen {
			return v, nil
		}
		return v, v.measure()
	case RevealStepMsg:
		if msg.Page == v.Page {
			v.Desk.ApplyStep(msg.Step)
		}
		return v, nil
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *DeskView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.wheel(msg.X, msg.Y, -1)
		case tea.MouseButtonWheelDown:
			v.wheel(msg.X, msg.Y, 1)
		case tea.MouseButtonLeft:
			d, target, ok := v.hit(msg.X, msg.Y)
			if !ok {
				return nil
			}
			if target == window.TargetClose {
				return v.close(d.ID)
			}
			v.Desk.PointerDown(d.ID, target, v.toUnits(msg.X, msg.Y))
		}
	case tea.MouseActionMotion:
		if state, _ := v.Desk.Dragging(); state == desk.DragDragging {
			v.Desk.DragTo(v.toUnits(msg.X, msg.Y))
		}
	case tea.MouseActionRelease:
		v.Desk.EndDrag()
	}
	return nil
}

// wheel scrolls an inner scrollable body under the pointer, else the page.
func (v *DeskView) wheel(col, row, delta int) {
	if d, target, ok := v.hit(col, row); ok && target == window.TargetScrollable {
		v.scrollPanel(d, delta)
		return
	}
	v.scrollPage(delta)
}

func (v *DeskView) scrollPanel(d window.Descriptor, delta int) {
	f := v.frameFor(d.Dimensions())
	limit := max(bodyLen(d, f)-f.bodyRows(), 0)
	v.scrolls[d.ID] = min(max(v.scrolls[d.ID]+delta, 0), limit)
}

func (v *DeskView) scrollPage(delta int) {
	if v.lock != nil && v.lock.Paused() {
		return
	}
	v.pageY += delta
	v.clampPageScroll()
}

// clampPageScroll keeps the compact stack within reach; desktop never scrolls.
func (v *DeskView) clampPageScroll() {
	if v.Desk.Adapter().Mode() != layout.ModeCompact {
		v.pageY = 0
		return
	}
	bottom := 0
	for _, p := range v.Desk.Placements() {
		_, y, f := v.cellRect(p)
		bottom = max(bottom, y+v.pageY+f.H)
	}
	v.pageY = min(max(v.pageY, 0), max(bottom-v.height, 0))
}

func (v *DeskView) close(id string) tea.Cmd {
	delete(v.scrolls, id)
	if v.Desk.Close(id) {
		v.log.Debug("close navigates home", zap.String("panel", id))
		return func() tea.Msg { return NavigateMsg{To: ModeHome} }
	}
	return nil
}

func (v *DeskView) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := v.nudge
	switch msg.String() {
	case "tab":
		v.Desk.Cycle(true)
	case "shift+tab":
		v.Desk.Cycle(false)
	case "left", "h":
		v.Desk.Nudge(geom.Point{X: -n})
	case "right", "l":
		v.Desk.Nudge(geom.Point{X: n})
	case "up", "k":
		if !v.Desk.Nudge(geom.Point{Y: -n}) {
			v.scrollPage(-1)
		}
	case "down", "j":
		if !v.Desk.Nudge(geom.Point{Y: n}) {
			v.scrollPage(1)
		}
	case "pgup":
		v.scrollPage(-v.height / 2)
	case "pgdown":
		v.scrollPage(v.height / 2)
	case "x":
		if id := v.Desk.Store().Focused(); id != "" {
			return v.close(id)
		}
	case "r":
		clear(v.scrolls)
		v.pageY = 0
		v.Desk.Restart()
	}
	return nil
}

// View implements View.
func (v *DeskView) View() string {
	if v.Desk.Measuring() {
		placeholder := Styles.Empty.Render("measuring…")
		if v.width <= 0 || v.height <= 0 {
			return placeholder
		}
		c := newCanvas(v.width, v.height)
		c.overlay(placeholder, 1, 0)
		return c.String()
	}
	c := newCanvas(v.width, v.height)
	focused := v.Desk.Store().Focused()
	for _, p := range v.Desk.Placements() {
		d, ok := v.Desk.Descriptor(p.ID)
		if !ok {
			continue
		}
		x, y, f := v.cellRect(p)
		c.overlay(renderPanel(d, p.ID == focused, f, v.scrolls[p.ID]), x, y)
	}
	return c.String()
}

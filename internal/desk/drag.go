package desk

import (
	"strconv"

	"blueprint/internal/geom"
	"blueprint/internal/trace"
	"blueprint/internal/window"

	"go.uber.org/zap"
)

// DragState is the pointer-drag state of a desk.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

type dragState struct {
	active bool
	id     string
	start  geom.Point // pointer position at press
	origin geom.Point // panel offset at press
	moves  int
	span   *trace.Span
}

// PointerDown routes a press on panel id. Presses on the close control or a
// scrollable body never focus; any other press focuses and, when dragging is
// enabled and the press landed on the header, begins a drag.
func (d *Desk) PointerDown(id string, target window.Target, at geom.Point) bool {
	if !d.mounted || !d.focus.PointerDown(id, target) {
		return false
	}
	if target == window.TargetHeader {
		d.BeginDrag(id, at)
	}
	return true
}

// BeginDrag starts dragging id from pointer position at.
func (d *Desk) BeginDrag(id string, at geom.Point) bool {
	if !d.adapter.DragEnabled() || !d.store.IsOpen(id) {
		return false
	}
	d.endDrag("replaced")
	d.focus.Focus(id)
	st, _ := d.store.State(id)
	d.drag = dragState{
		active: true,
		id:     id,
		start:  at,
		origin: st.Offset,
		span:   d.rec.Start("drag", map[string]string{"desk": d.Name, "panel": id}),
	}
	return true
}

// DragTo moves the dragged panel so it follows the pointer, clamped live to its
// bounds. Returns the stored offset.
func (d *Desk) DragTo(at geom.Point) (geom.Point, bool) {
	if !d.drag.active {
		return geom.Point{}, false
	}
	if !d.adapter.DragEnabled() {
		d.endDrag("disabled")
		return geom.Point{}, false
	}
	want := d.drag.origin.Add(geom.Point{X: at.X - d.drag.start.X, Y: at.Y - d.drag.start.Y})
	d.drag.moves++
	return d.store.SetOffset(d.drag.id, want), true
}

// EndDrag finishes the current drag, if any.
func (d *Desk) EndDrag() {
	d.endDrag("released")
}

// Dragging reports the drag state and the dragged panel.
func (d *Desk) Dragging() (DragState, string) {
	if d.drag.active {
		return DragDragging, d.drag.id
	}
	return DragIdle, ""
}

func (d *Desk) endDrag(outcome string) {
	if !d.drag.active {
		return
	}
	st, _ := d.store.State(d.drag.id)
	d.log.Debug("drag ended", zap.String("desk", d.Name), zap.String("panel", d.drag.id),
		zap.String("outcome", outcome), zap.Int("x", st.Offset.X), zap.Int("y", st.Offset.Y))
	if d.drag.span != nil {
		d.drag.span.Annotate(map[string]string{
			"moves":    strconv.Itoa(d.drag.moves),
			"offset_x": strconv.Itoa(st.Offset.X),
			"offset_y": strconv.Itoa(st.Offset.Y),
		})
		d.drag.span.End(outcome)
	}
	d.drag = dragState{}
}

// Cycle moves keyboard focus forward (or backward) through the open panels.
func (d *Desk) Cycle(forward bool) string {
	if forward {
		return d.focus.Next()
	}
	return d.focus.Prev()
}

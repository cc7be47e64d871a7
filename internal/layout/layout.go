// Package layout switches floating panels between free-form desktop placement
// and a stacked compact flow.
package layout

import (
	"slices"

	"blueprint/internal/geom"
	"blueprint/internal/window"
)

// DefaultBreakpoint is the container width below which the compact layout applies.
const DefaultBreakpoint = 768

// CompactGap is the vertical space between stacked panels in compact mode.
const CompactGap = 24

// Mode is the current responsive mode.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeCompact
)

func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// Adapter tracks the viewport and decides placement.
type Adapter struct {
	Breakpoint    int
	ReducedMotion bool
	// Order, if set, fixes the compact stacking order; ids not listed follow in
	// descriptor order.
	Order []string

	viewport geom.Size
	mounted  bool
	fallback bool
}

// NewAdapter returns an adapter with DefaultBreakpoint.
func NewAdapter() *Adapter {
	return &Adapter{Breakpoint: DefaultBreakpoint}
}

// IsCompact reports whether width is below the breakpoint.
func (a *Adapter) IsCompact(width int) bool {
	return width < a.Breakpoint
}

// Resize records the viewport. It returns true when the mode changed; the first
// measurement never counts as a change.
func (a *Adapter) Resize(viewport geom.Size) bool {
	if viewport.Empty() {
		return false
	}
	before := a.Mode()
	wasMounted := a.mounted
	a.viewport = viewport
	a.mounted = true
	a.fallback = false
	return wasMounted && before != a.Mode()
}

// MountFallback lets Place run without a measured viewport. Panels sit at
// their anchors, clamped to the top-left corner, and cannot be dragged. The
// next measurable Resize replaces the fallback.
func (a *Adapter) MountFallback() {
	if a.mounted {
		return
	}
	a.mounted = true
	a.fallback = true
}

// Fallback reports whether placement is running without a measured viewport.
func (a *Adapter) Fallback() bool { return a.fallback }

// Mounted reports whether Place will position panels: a measurable viewport
// has been seen or the fallback is in use.
func (a *Adapter) Mounted() bool { return a.mounted }

// Viewport returns the last measured viewport.
func (a *Adapter) Viewport() geom.Size { return a.viewport }

// Mode returns the mode for the last measured viewport. Before mounting the
// adapter reports desktop, but Place refuses to position anything.
func (a *Adapter) Mode() Mode {
	if a.mounted && !a.fallback && a.IsCompact(a.viewport.W) {
		return ModeCompact
	}
	return ModeDesktop
}

// DragEnabled reports whether panels may be dragged.
func (a *Adapter) DragEnabled() bool {
	return a.mounted && !a.fallback && a.Mode() == ModeDesktop && !a.ReducedMotion
}

// Bounds returns the drag range for d. Compact mode and reduced motion pin
// panels with zero bounds.
func (a *Adapter) Bounds(d window.Descriptor, opts geom.Options) geom.Bounds {
	if !a.DragEnabled() {
		return geom.Bounds{}
	}
	return geom.Resolve(a.viewport, d.Dimensions(), d.Anchor, opts)
}

// Placement is where one panel renders.
type Placement struct {
	ID   string
	Rect geom.Rect
	Z    int
}

// Place positions every open panel. Desktop placements are anchor origin plus
// offset, ordered bottom to top. Compact placements are full-width, stacked in
// descriptor (or Order) order, with offsets ignored. Before the first
// measurement Place returns nil.
func (a *Adapter) Place(descs []window.Descriptor, store *window.Store, fc *window.FocusController) []Placement {
	if !a.mounted {
		return nil
	}
	if a.Mode() == ModeCompact {
		return a.placeCompact(descs, store, fc)
	}
	byID := make(map[string]window.Descriptor, len(descs))
	for _, d := range descs {
		byID[d.ID] = d
	}
	var out []Placement
	for _, id := range store.StackOrder() {
		d, ok := byID[id]
		if !ok {
			continue
		}
		st, _ := store.State(id)
		size := d.Dimensions()
		origin := d.Anchor.Origin(a.viewport, size).Add(st.Offset)
		if a.fallback {
			origin = geom.Point{X: max(origin.X, 0), Y: max(origin.Y, 0)}
		}
		out = append(out, Placement{
			ID:   id,
			Rect: geom.Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H},
			Z:    fc.ZIndex(id),
		})
	}
	return out
}

func (a *Adapter) placeCompact(descs []window.Descriptor, store *window.Store, fc *window.FocusController) []Placement {
	ordered := a.compactOrder(descs)
	var out []Placement
	y := 0
	for _, d := range ordered {
		if !store.IsOpen(d.ID) {
			continue
		}
		h := d.Dimensions().H
		out = append(out, Placement{
			ID:   d.ID,
			Rect: geom.Rect{X: 0, Y: y, W: a.viewport.W, H: h},
			Z:    fc.ZIndex(d.ID),
		})
		y += h + CompactGap
	}
	return out
}

func (a *Adapter) compactOrder(descs []window.Descriptor) []window.Descriptor {
	if len(a.Order) == 0 {
		return descs
	}
	out := make([]window.Descriptor, 0, len(descs))
	for _, id := range a.Order {
		if i := slices.IndexFunc(descs, func(d window.Descriptor) bool { return d.ID == id }); i >= 0 {
			out = append(out, descs[i])
		}
	}
	for _, d := range descs {
		if !slices.Contains(a.Order, d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Package desk is the page-level controller for a set of floating panels. It owns
// the store, the focus controller, the responsive adapter, and the reveal
// sequencer, and applies every mutation on the caller's (UI) goroutine.
package desk

import (
	"slices"
	"strconv"
	"time"

	"blueprint/internal/geom"
	"blueprint/internal/layout"
	"blueprint/internal/reveal"
	"blueprint/internal/trace"
	"blueprint/internal/window"

	"go.uber.org/zap"
)

// Options configure a Desk.
type Options struct {
	Geometry      geom.Options
	BaseZ         int
	Breakpoint    int
	ReducedMotion bool
	MaxAttempts   int
	// CompactOrder fixes the stacking order in compact mode.
	CompactOrder []string
	// RestartOnModeChange replays the reveal when crossing the breakpoint.
	RestartOnModeChange bool
}

// DefaultOptions mirror the gallery page.
func DefaultOptions() Options {
	return Options{
		Geometry:            geom.DefaultOptions(),
		BaseZ:               window.DefaultBaseZ,
		Breakpoint:          layout.DefaultBreakpoint,
		MaxAttempts:         geom.DefaultMaxAttempts,
		RestartOnModeChange: true,
	}
}

// Desk drives one page's panels.
type Desk struct {
	Name  string
	Descs []window.Descriptor

	store   *window.Store
	focus   *window.FocusController
	adapter *layout.Adapter
	seq     *reveal.Sequencer
	poller  *geom.Poller
	opts    Options
	log     *zap.Logger
	rec     *trace.Recorder

	measured  map[string]geom.Size
	drag      dragState
	revealRun *trace.Span
	mounted   bool
}

// New builds a desk for descs. sched backs the reveal timers; dispatch receives
// due steps (typically forwarding them to the UI loop, which calls ApplyStep).
func New(name string, descs []window.Descriptor, opts Options, sched reveal.Scheduler, stagger time.Duration, dispatch func(reveal.Step)) *Desk {
	store := window.NewStore()
	fc := window.NewFocusController(store)
	if opts.BaseZ > 0 {
		fc.BaseZ = opts.BaseZ
	}
	ad := layout.NewAdapter()
	if opts.Breakpoint > 0 {
		ad.Breakpoint = opts.Breakpoint
	}
	ad.ReducedMotion = opts.ReducedMotion
	ad.Order = opts.CompactOrder

	d := &Desk{
		Name:     name,
		Descs:    descs,
		store:    store,
		focus:    fc,
		adapter:  ad,
		seq:      reveal.New(sched, stagger, dispatch),
		poller:   geom.NewPoller(opts.MaxAttempts),
		opts:     opts,
		log:      zap.NewNop(),
		measured: make(map[string]geom.Size),
	}
	fc.OnChange = func(from, to string) {
		d.log.Debug("focus changed", zap.String("desk", d.Name), zap.String("from", from), zap.String("to", to))
		d.recomputeBounds(to)
	}
	return d
}

// WithLogger sets the logger.
func (d *Desk) WithLogger(l *zap.Logger) *Desk {
	if l != nil {
		d.log = l
	}
	return d
}

// WithRecorder sets the span recorder.
func (d *Desk) WithRecorder(r *trace.Recorder) *Desk {
	d.rec = r
	return d
}

// SetDispatch replaces where due reveal steps are delivered.
func (d *Desk) SetDispatch(dispatch func(reveal.Step)) {
	d.seq.SetDispatch(dispatch)
}

// Store exposes the panel state store (read-mostly; tests and rendering).
func (d *Desk) Store() *window.Store { return d.store }

// Focus exposes the focus controller.
func (d *Desk) Focus() *window.FocusController { return d.focus }

// Adapter exposes the responsive adapter.
func (d *Desk) Adapter() *layout.Adapter { return d.adapter }

// Sequencer exposes the reveal sequencer.
func (d *Desk) Sequencer() *reveal.Sequencer { return d.seq }

// Descriptor looks up a descriptor by id.
func (d *Desk) Descriptor(id string) (window.Descriptor, bool) {
	i := slices.IndexFunc(d.Descs, func(x window.Descriptor) bool { return x.ID == id })
	if i < 0 {
		return window.Descriptor{}, false
	}
	return d.Descs[i], true
}

// Mount starts a fresh page visit: everything closed, geometry unmeasured.
// The host then feeds Measure once per frame until it returns true.
func (d *Desk) Mount() {
	d.seq.Cancel()
	d.store.Reset()
	d.poller = geom.NewPoller(d.opts.MaxAttempts)
	d.drag = dragState{}
	d.mounted = true
	d.log.Debug("desk mounted", zap.String("desk", d.Name))
}

// Unmount cancels pending reveal steps and measurement retries and closes every panel.
func (d *Desk) Unmount() {
	d.seq.Cancel()
	d.poller.Stop()
	d.endDrag("unmounted")
	d.endRevealSpan("cancelled")
	d.store.Reset()
	d.mounted = false
	d.log.Debug("desk unmounted", zap.String("desk", d.Name))
}

// Mounted reports whether the desk is on screen.
func (d *Desk) Mounted() bool { return d.mounted }

// Measure records one measurement attempt of the container. It returns true
// when polling is finished: either the container resolved (the reveal starts)
// or the attempt budget ran out (the reveal starts on zero bounds).
func (d *Desk) Measure(container geom.Size) bool {
	if !d.mounted || d.poller.Done() {
		return true
	}
	switch d.poller.Attempt(container) {
	case geom.PollResolved:
		d.adapter.Resize(d.poller.Size())
		d.log.Debug("container measured", zap.String("desk", d.Name),
			zap.Int("w", container.W), zap.Int("h", container.H), zap.Int("attempts", d.poller.Attempts()))
		d.Restart()
		return true
	case geom.PollGaveUp:
		d.log.Warn("container never measurable; using zero bounds", zap.String("desk", d.Name),
			zap.Int("attempts", d.poller.Attempts()))
		d.adapter.MountFallback()
		d.Restart()
		return true
	default:
		return false
	}
}

// Measuring reports whether the desk is still waiting for a measurable container.
func (d *Desk) Measuring() bool {
	return d.mounted && !d.poller.Done()
}

// Resize handles a viewport change after mount.
func (d *Desk) Resize(container geom.Size) {
	if !d.mounted || container.Empty() {
		return
	}
	if !d.poller.Done() {
		d.Measure(container)
		return
	}
	changed := d.adapter.Resize(container)
	if changed && d.opts.RestartOnModeChange {
		d.log.Info("layout mode changed", zap.String("desk", d.Name), zap.Stringer("mode", d.adapter.Mode()))
		d.Restart()
		return
	}
	d.recomputeAll()
	if d.adapter.Mode() == layout.ModeCompact {
		d.zeroOffsets()
	}
}

// Restart closes every panel and replays the reveal from index 0.
func (d *Desk) Restart() {
	d.endDrag("restarted")
	d.endRevealSpan("restarted")
	d.store.Reset()
	ids := make([]string, len(d.Descs))
	for i, desc := range d.Descs {
		ids[i] = desc.ID
	}
	gen := d.seq.Start(ids)
	d.revealRun = d.rec.Start("reveal", map[string]string{
		"desk":   d.Name,
		"panels": strconv.Itoa(len(ids)),
		"mode":   d.adapter.Mode().String(),
	})
	if d.seq.Phase() == reveal.Done {
		d.endRevealSpan("done")
	}
	d.log.Debug("reveal started", zap.String("desk", d.Name), zap.Uint64("gen", gen), zap.Int("panels", len(ids)))
}

// ApplyStep opens and focuses the panel a due reveal step names. Stale steps
// (from a cancelled or replaced run) are ignored and return false.
func (d *Desk) ApplyStep(step reveal.Step) bool {
	if !d.mounted || !d.seq.Advance(step) {
		return false
	}
	desc, ok := d.Descriptor(step.ID)
	if !ok {
		return false
	}
	d.store.Open(desc.ID)
	d.recomputeBounds(desc.ID)
	if d.adapter.DragEnabled() {
		d.store.SetOffset(desc.ID, desc.Rest)
	}
	d.focus.Focus(desc.ID)
	d.log.Debug("panel revealed", zap.String("desk", d.Name), zap.String("panel", desc.ID), zap.Int("index", step.Index))
	if d.seq.Phase() == reveal.Done {
		d.endRevealSpan("done")
	}
	return true
}

// Close closes a panel. Returns true if the panel asks the host to navigate home.
func (d *Desk) Close(id string) bool {
	if !d.store.IsOpen(id) {
		return false
	}
	if d.drag.active && d.drag.id == id {
		d.endDrag("closed")
	}
	d.store.Close(id)
	desc, _ := d.Descriptor(id)
	d.log.Debug("panel closed", zap.String("desk", d.Name), zap.String("panel", id))
	return desc.CloseNavigatesHome
}

// ReportSize records a panel's rendered size so its bounds use it instead of the
// declared default. Bounds are refreshed the next time it is focused.
func (d *Desk) ReportSize(id string, s geom.Size) {
	if s.Empty() {
		return
	}
	d.measured[id] = s
}

// Placements positions every open panel for rendering.
func (d *Desk) Placements() []layout.Placement {
	descs := d.Descs
	if len(d.measured) > 0 {
		descs = make([]window.Descriptor, len(d.Descs))
		for i, desc := range d.Descs {
			if s, ok := d.measured[desc.ID]; ok && d.adapter.Mode() == layout.ModeDesktop {
				desc.Size = s
			}
			descs[i] = desc
		}
	}
	return d.adapter.Place(descs, d.store, d.focus)
}

// Nudge moves the focused panel by delta, clamped to its bounds.
func (d *Desk) Nudge(delta geom.Point) bool {
	id := d.store.Focused()
	if id == "" || !d.adapter.DragEnabled() {
		return false
	}
	st, _ := d.store.State(id)
	d.store.SetOffset(id, st.Offset.Add(delta))
	return true
}

func (d *Desk) sizeOf(desc window.Descriptor) geom.Size {
	if s, ok := d.measured[desc.ID]; ok {
		return s
	}
	return desc.Dimensions()
}

func (d *Desk) recomputeBounds(id string) {
	desc, ok := d.Descriptor(id)
	if !ok || !d.store.IsOpen(id) {
		return
	}
	desc.Size = d.sizeOf(desc)
	d.store.SetBounds(id, d.adapter.Bounds(desc, d.opts.Geometry))
}

func (d *Desk) recomputeAll() {
	for _, id := range d.store.StackOrder() {
		d.recomputeBounds(id)
	}
}

func (d *Desk) zeroOffsets() {
	for _, id := range d.store.StackOrder() {
		d.store.SetOffset(id, geom.Point{})
	}
}

func (d *Desk) endRevealSpan(outcome string) {
	if d.revealRun == nil {
		return
	}
	d.revealRun.Annotate(map[string]string{"revealed": strconv.Itoa(d.seq.Revealed())})
	d.revealRun.End(outcome)
	d.revealRun = nil
}

// Package geom computes drag ranges for floating panels.
//
// All values are layout units. A panel is placed relative to an anchor; its live
// offset from that anchor is kept inside a Bounds rectangle so the rendered edges
// never cross a margin from the container's edges.
package geom

// Point is a 2D position or displacement.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width and height.
type Size struct {
	W, H int
}

// Empty reports whether the size has no area (not yet laid out).
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Bounds is the allowed range of an offset, inclusive on both ends.
type Bounds struct {
	Min, Max Point
}

// Valid reports whether Min <= Max on both axes.
func (b Bounds) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// Clamp pulls p into b. Clamp(Clamp(p)) == Clamp(p).
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalize collapses an inverted axis to its midpoint.
func (b Bounds) normalize() Bounds {
	if b.Min.X > b.Max.X {
		mid := (b.Min.X + b.Max.X) / 2
		b.Min.X, b.Max.X = mid, mid
	}
	if b.Min.Y > b.Max.Y {
		mid := (b.Min.Y + b.Max.Y) / 2
		b.Min.Y, b.Max.Y = mid, mid
	}
	return b
}

// AnchorKind selects how a panel's rest position is interpreted.
type AnchorKind int

const (
	// AnchorTopLeft places the panel's top-left corner at (Left, Top).
	AnchorTopLeft AnchorKind = iota
	// AnchorCentered places the panel's center at the container's center.
	AnchorCentered
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorTopLeft:
		return "top-left"
	case AnchorCentered:
		return "centered"
	default:
		return "unknown"
	}
}

// Anchor is where a panel rests before any drag offset.
type Anchor struct {
	Kind AnchorKind
	Left int // top-left only
	Top  int // top-left only
}

// TopLeft returns a top-left anchor.
func TopLeft(left, top int) Anchor {
	return Anchor{Kind: AnchorTopLeft, Left: left, Top: top}
}

// Centered returns a container-centered anchor.
func Centered() Anchor {
	return Anchor{Kind: AnchorCentered}
}

// Origin returns the panel's top-left corner at zero offset.
func (a Anchor) Origin(container, panel Size) Point {
	if a.Kind == AnchorCentered {
		return Point{X: container.W/2 - panel.W/2, Y: container.H/2 - panel.H/2}
	}
	return Point{X: a.Left, Y: a.Top}
}

// Defaults in layout units.
const (
	DefaultMargin = 20
	DefaultWidth  = 420
	DefaultHeight = 320
)

// Options tune Resolve.
type Options struct {
	Margin       int
	BottomMargin int
	// Symmetric gives equal left/right slack around a top-left anchor.
	Symmetric bool
}

// DefaultOptions returns the margins used by the gallery and contact desks.
func DefaultOptions() Options {
	return Options{Margin: DefaultMargin, BottomMargin: DefaultMargin}
}

// Resolve returns the allowed offset range for a panel of the given size placed at
// anchor inside container. A container with no area yields zero bounds. The result
// always satisfies Valid.
func Resolve(container, panel Size, anchor Anchor, opts Options) Bounds {
	if container.Empty() {
		return Bounds{}
	}
	var b Bounds
	switch anchor.Kind {
	case AnchorCentered:
		maxX := container.W/2 - panel.W/2 - opts.Margin
		maxY := container.H/2 - panel.H/2 - opts.Margin
		b = Bounds{Min: Point{X: -maxX, Y: -maxY}, Max: Point{X: maxX, Y: maxY}}
	default:
		left, top := anchor.Left, anchor.Top
		b = Bounds{
			Min: Point{X: opts.Margin - left, Y: opts.Margin - top},
			Max: Point{
				X: container.W - panel.W - left - opts.Margin,
				Y: container.H - panel.H - top - opts.BottomMargin,
			},
		}
		if opts.Symmetric {
			slack := min(left-opts.Margin, container.W-panel.W-left-opts.Margin)
			b.Min.X, b.Max.X = -slack, slack
		}
	}
	return b.normalize()
}

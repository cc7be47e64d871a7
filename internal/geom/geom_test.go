package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CenteredScenario(t *testing.T) {
	container := Size{W: 1200, H: 800}
	b := Resolve(container, Size{W: 360, H: 240}, Centered(), DefaultOptions())

	assert.Equal(t, 400, b.Max.X)
	assert.Equal(t, -400, b.Min.X)
	assert.Equal(t, 260, b.Max.Y) // 400 - 120 - 20
	assert.Equal(t, -260, b.Min.Y)
}

func TestResolve_TopLeft(t *testing.T) {
	container := Size{W: 1000, H: 700}
	b := Resolve(container, Size{W: 500, H: 400}, TopLeft(100, 50), DefaultOptions())

	assert.Equal(t, Point{X: -80, Y: -30}, b.Min)
	assert.Equal(t, Point{X: 380, Y: 230}, b.Max)
}

func TestResolve_TopLeftSymmetric(t *testing.T) {
	opts := DefaultOptions()
	opts.Symmetric = true
	b := Resolve(Size{W: 1000, H: 700}, Size{W: 500, H: 400}, TopLeft(100, 50), opts)

	// Left slack is 80, right slack is 380; the smaller wins on both sides.
	assert.Equal(t, -80, b.Min.X)
	assert.Equal(t, 80, b.Max.X)
	assert.Equal(t, -30, b.Min.Y)
}

func TestResolve_ContainerSmallerThanPanelCollapses(t *testing.T) {
	cases := []struct {
		name   string
		anchor Anchor
	}{
		{"centered", Centered()},
		{"top-left", TopLeft(30, 30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Resolve(Size{W: 200, H: 100}, Size{W: 420, H: 320}, tc.anchor, DefaultOptions())
			require.True(t, b.Valid(), "bounds inverted: %+v", b)
			assert.Equal(t, b.Min.X, b.Max.X)
			assert.Equal(t, b.Min.Y, b.Max.Y)
		})
	}
}

func TestResolve_UnmeasuredContainer(t *testing.T) {
	b := Resolve(Size{}, Size{W: 420, H: 320}, Centered(), DefaultOptions())
	assert.Equal(t, Bounds{}, b)
}

func TestResolve_BoundsValidity(t *testing.T) {
	panels := []Size{{W: 100, H: 80}, {W: 360, H: 240}, {W: 600, H: 500}}
	for w := 600; w <= 2000; w += 350 {
		for h := 500; h <= 1400; h += 300 {
			container := Size{W: w, H: h}
			for _, p := range panels {
				for left := -200; left <= w; left += 170 {
					for top := -100; top <= h; top += 130 {
						for _, sym := range []bool{false, true} {
							opts := DefaultOptions()
							opts.Symmetric = sym
							b := Resolve(container, p, TopLeft(left, top), opts)
							if !b.Valid() {
								t.Fatalf("invalid bounds %+v for container=%v panel=%v anchor=(%d,%d) sym=%v",
									b, container, p, left, top, sym)
							}
						}
					}
				}
				if b := Resolve(container, p, Centered(), DefaultOptions()); !b.Valid() {
					t.Fatalf("invalid centered bounds %+v for container=%v panel=%v", b, container, p)
				}
			}
		}
	}
}

func TestBounds_ClampIdempotent(t *testing.T) {
	b := Bounds{Min: Point{X: -400, Y: -260}, Max: Point{X: 400, Y: 260}}
	points := []Point{{X: 500, Y: 0}, {X: -900, Y: 900}, {X: 12, Y: -13}, {X: 400, Y: -260}}
	for _, p := range points {
		once := b.Clamp(p)
		assert.Equal(t, once, b.Clamp(once), "clamp not idempotent for %v", p)
	}
	assert.Equal(t, Point{X: 400, Y: 0}, b.Clamp(Point{X: 500, Y: 0}))
}

func TestAnchor_Origin(t *testing.T) {
	container := Size{W: 1200, H: 800}
	panel := Size{W: 360, H: 240}
	assert.Equal(t, Point{X: 420, Y: 280}, Centered().Origin(container, panel))
	assert.Equal(t, Point{X: 7, Y: 9}, TopLeft(7, 9).Origin(container, panel))
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(Point{X: 2, Y: 3}))
	assert.True(t, r.Contains(Point{X: 5, Y: 4}))
	assert.False(t, r.Contains(Point{X: 6, Y: 4}))
	assert.False(t, r.Contains(Point{X: 2, Y: 5}))
}

package window

import (
	"math/rand"
	"testing"

	"blueprint/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_OpenAppendsOnce(t *testing.T) {
	s := NewStore()
	s.Open("p1")
	s.Open("p2")
	s.Open("p1")

	assert.Equal(t, []string{"p1", "p2"}, s.StackOrder())
	st, ok := s.State("p1")
	require.True(t, ok)
	assert.True(t, st.IsOpen)
	assert.False(t, st.IsFocused)
	assert.Equal(t, geom.Point{}, st.Offset)
}

func TestStore_FocusMovesToTop(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"p1", "p2", "p3"} {
		s.Open(id)
	}
	require.True(t, s.Focus("p1"))
	assert.Equal(t, []string{"p2", "p3", "p1"}, s.StackOrder())
	assert.Equal(t, "p1", s.Focused())

	require.True(t, s.Focus("p3"))
	p1, _ := s.State("p1")
	p3, _ := s.State("p3")
	assert.False(t, p1.IsFocused)
	assert.True(t, p3.IsFocused)

	// Focusing the focused panel changes nothing.
	require.True(t, s.Focus("p3"))
	assert.Equal(t, []string{"p2", "p1", "p3"}, s.StackOrder())
}

func TestStore_CloseFocusedClearsFocus(t *testing.T) {
	s := NewStore()
	s.Open("p1")
	s.Open("p2")
	s.Focus("p1")
	s.Close("p1")

	assert.Equal(t, "", s.Focused())
	assert.Equal(t, []string{"p2"}, s.StackOrder())
	p2, _ := s.State("p2")
	assert.False(t, p2.IsFocused, "closing must not re-focus another panel")

	assert.False(t, s.Focus("p1"), "focus after close is a no-op")
	assert.NotContains(t, s.StackOrder(), "p1")
}

func TestStore_UnknownIDsAreNoOps(t *testing.T) {
	s := NewStore()
	s.Open("p1")
	s.Close("ghost")
	s.Close("ghost")
	assert.False(t, s.Focus("ghost"))
	assert.Equal(t, geom.Point{}, s.SetOffset("ghost", geom.Point{X: 5}))
	s.SetBounds("ghost", geom.Bounds{})
	assert.Equal(t, []string{"p1"}, s.StackOrder())
}

func TestStore_SetOffsetClampsToBounds(t *testing.T) {
	s := NewStore()
	s.Open("p1")
	s.SetBounds("p1", geom.Bounds{Min: geom.Point{X: -400, Y: -260}, Max: geom.Point{X: 400, Y: 260}})

	got := s.SetOffset("p1", geom.Point{X: 500, Y: 10})
	assert.Equal(t, geom.Point{X: 400, Y: 10}, got)
	st, _ := s.State("p1")
	assert.Equal(t, 400, st.Offset.X)
}

func TestStore_SetBoundsReclampsOffset(t *testing.T) {
	s := NewStore()
	s.Open("p1")
	s.SetBounds("p1", geom.Bounds{Min: geom.Point{X: -100, Y: -100}, Max: geom.Point{X: 100, Y: 100}})
	s.SetOffset("p1", geom.Point{X: 90, Y: -90})
	s.SetBounds("p1", geom.Bounds{Min: geom.Point{X: -50, Y: -50}, Max: geom.Point{X: 50, Y: 50}})

	st, _ := s.State("p1")
	assert.Equal(t, geom.Point{X: 50, Y: -50}, st.Offset)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Open("p1")
	s.Focus("p1")
	s.Reset()
	assert.Zero(t, s.Len())
	assert.Equal(t, "", s.Focused())
	assert.False(t, s.IsOpen("p1"))
}

// Random operation sequences must preserve the stack invariants.
func TestStore_InvariantsUnderRandomOps(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewSource(7))
	s := NewStore()
	fc := NewFocusController(s)
	lastFocused := map[string]int{}

	for step := 0; step < 2000; step++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(3) {
		case 0:
			s.Open(id)
		case 1:
			s.Close(id)
			delete(lastFocused, id)
		case 2:
			if s.Focus(id) {
				lastFocused[id] = step
			}
		}

		stack := s.StackOrder()
		seen := map[string]bool{}
		focusedCount := 0
		for _, o := range stack {
			require.False(t, seen[o], "duplicate %q in stack %v", o, stack)
			seen[o] = true
			st, ok := s.State(o)
			require.True(t, ok, "stack id %q has no state", o)
			if st.IsFocused {
				focusedCount++
				require.Equal(t, o, s.Focused())
			}
		}
		require.LessOrEqual(t, focusedCount, 1)
		require.Len(t, stack, s.Len())

		// Z-order monotonicity among panels that have been focused.
		for a, ta := range lastFocused {
			for b, tb := range lastFocused {
				if ta > tb {
					require.Greater(t, fc.ZIndex(a), fc.ZIndex(b), "stack %v", stack)
				}
			}
		}
	}
}

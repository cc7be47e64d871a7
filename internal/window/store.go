package window

import (
	"slices"

	"blueprint/internal/geom"
)

// State is the runtime state of one open panel.
type State struct {
	Offset    geom.Point
	IsOpen    bool
	IsFocused bool
	Bounds    geom.Bounds
}

// Store owns the runtime state of every open panel and the stack order.
// The last id in the stack is topmost. Every id in the stack is open, no id
// appears twice, and at most one panel is focused.
//
// Store is not safe for concurrent use; it is mutated from the UI event loop only.
type Store struct {
	states  map[string]*State
	stack   []string
	focused string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{states: make(map[string]*State)}
}

// Open creates default state for id and puts it on top. No-op if already open.
func (s *Store) Open(id string) {
	if _, ok := s.states[id]; ok {
		return
	}
	s.states[id] = &State{IsOpen: true}
	s.stack = append(s.stack, id)
}

// Close drops id's state and removes it from the stack. Closing the focused panel
// clears focus without focusing another. Unknown ids are ignored.
func (s *Store) Close(id string) {
	if _, ok := s.states[id]; !ok {
		return
	}
	delete(s.states, id)
	s.stack = slices.DeleteFunc(s.stack, func(o string) bool { return o == id })
	if s.focused == id {
		s.focused = ""
	}
}

// Focus makes id the only focused panel and moves it to the top.
// Returns false (and does nothing) if id is not open.
func (s *Store) Focus(id string) bool {
	st, ok := s.states[id]
	if !ok {
		return false
	}
	if s.focused != "" && s.focused != id {
		if prev, ok := s.states[s.focused]; ok {
			prev.IsFocused = false
		}
	}
	st.IsFocused = true
	s.focused = id
	if s.stack[len(s.stack)-1] != id {
		s.stack = slices.DeleteFunc(s.stack, func(o string) bool { return o == id })
		s.stack = append(s.stack, id)
	}
	return true
}

// SetOffset stores p as id's offset, clamped to its current bounds.
// Returns the stored value; unknown ids are ignored.
func (s *Store) SetOffset(id string, p geom.Point) geom.Point {
	st, ok := s.states[id]
	if !ok {
		return geom.Point{}
	}
	st.Offset = st.Bounds.Clamp(p)
	return st.Offset
}

// SetBounds replaces id's drag bounds and re-clamps its offset.
func (s *Store) SetBounds(id string, b geom.Bounds) {
	st, ok := s.states[id]
	if !ok {
		return
	}
	st.Bounds = b
	st.Offset = b.Clamp(st.Offset)
}

// State returns a copy of id's state and whether it is open.
func (s *Store) State(id string) (State, bool) {
	st, ok := s.states[id]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// IsOpen reports whether id is open.
func (s *Store) IsOpen(id string) bool {
	_, ok := s.states[id]
	return ok
}

// Focused returns the focused id, or "".
func (s *Store) Focused() string { return s.focused }

// StackOrder returns a copy of the open ids, bottom to top.
func (s *Store) StackOrder() []string {
	return slices.Clone(s.stack)
}

// Len returns the number of open panels.
func (s *Store) Len() int { return len(s.stack) }

// Reset closes every panel.
func (s *Store) Reset() {
	clear(s.states)
	s.stack = nil
	s.focused = ""
}

package window

import "testing"

func newOpenStore(ids ...string) *Store {
	s := NewStore()
	for _, id := range ids {
		s.Open(id)
	}
	return s
}

func TestFocusController_ZIndex(t *testing.T) {
	s := newOpenStore("p1", "p2", "p3")
	fc := NewFocusController(s)

	if got := fc.ZIndex("p1"); got != 20 {
		t.Errorf("ZIndex(p1): expected 20, got %d", got)
	}
	if got := fc.ZIndex("p3"); got != 22 {
		t.Errorf("ZIndex(p3): expected 22, got %d", got)
	}
	if got := fc.ZIndex("ghost"); got != -1 {
		t.Errorf("ZIndex(ghost): expected -1, got %d", got)
	}

	fc.Focus("p1")
	if fc.ZIndex("p1") <= fc.ZIndex("p3") {
		t.Errorf("focused panel should be topmost: p1=%d p3=%d", fc.ZIndex("p1"), fc.ZIndex("p3"))
	}
}

func TestFocusController_PointerDownTargets(t *testing.T) {
	tests := []struct {
		target  Target
		focuses bool
	}{
		{TargetBody, true},
		{TargetHeader, true},
		{TargetClose, false},
		{TargetScrollable, false},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			s := newOpenStore("p1", "p2")
			fc := NewFocusController(s)
			got := fc.PointerDown("p1", tt.target)
			if got != tt.focuses {
				t.Errorf("PointerDown(%v): expected %v, got %v", tt.target, tt.focuses, got)
			}
			if tt.focuses && s.Focused() != "p1" {
				t.Errorf("expected p1 focused, got %q", s.Focused())
			}
			if !tt.focuses && s.Focused() != "" {
				t.Errorf("expected no focus, got %q", s.Focused())
			}
		})
	}
}

func TestFocusController_OnChange(t *testing.T) {
	s := newOpenStore("p1", "p2")
	fc := NewFocusController(s)
	var changes [][2]string
	fc.OnChange = func(from, to string) {
		changes = append(changes, [2]string{from, to})
	}
	fc.Focus("p1")
	fc.Focus("p1")
	fc.Focus("p2")
	fc.Focus("ghost")

	want := [][2]string{{"", "p1"}, {"p1", "p2"}}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %v", len(want), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d: expected %v, got %v", i, want[i], changes[i])
		}
	}
}

func TestFocusController_NextVisitsEveryPanel(t *testing.T) {
	s := newOpenStore("p1", "p2", "p3")
	fc := NewFocusController(s)

	if got := fc.Next(); got != "p3" {
		t.Fatalf("Next with no focus: expected top p3, got %q", got)
	}
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		seen[fc.Next()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected Next to visit all 3 panels, visited %v", seen)
	}
}

func TestFocusController_PrevReturnsToPrevious(t *testing.T) {
	s := newOpenStore("p1", "p2", "p3")
	fc := NewFocusController(s)
	fc.Focus("p1")
	fc.Focus("p2")
	if got := fc.Prev(); got != "p1" {
		t.Errorf("Prev: expected p1, got %q", got)
	}
	if got := fc.Prev(); got != "p2" {
		t.Errorf("Prev again: expected p2, got %q", got)
	}
}

func TestFocusController_EmptyStack(t *testing.T) {
	fc := NewFocusController(NewStore())
	if fc.Next() != "" || fc.Prev() != "" {
		t.Error("cycling an empty stack should return empty id")
	}
}

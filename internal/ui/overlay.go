package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal drawn centered above the page.
type Overlay struct {
	View    View
	Dismiss string // key that closes the overlay without reaching View
}

// OverlayStack holds the open modals, topmost last. Lock is paused once per
// open overlay so the page behind cannot scroll.
type OverlayStack struct {
	Stack []Overlay
	Lock  ScrollLock // optional
}

func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
	if s.Lock != nil {
		s.Lock.Pause()
	}
}

func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	if s.Lock != nil {
		s.Lock.Resume()
	}
	return top, true
}

// Clear closes every overlay.
func (s *OverlayStack) Clear() {
	for len(s.Stack) > 0 {
		s.Pop()
	}
}

func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Update routes msg to the top overlay; its dismiss key pops it instead.
// It reports false when no overlay is open and msg should go to the page.
func (s *OverlayStack) Update(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	if k, ok := msg.(tea.KeyMsg); ok && top.Dismiss != "" && k.String() == top.Dismiss {
		s.Pop()
		return nil, true
	}
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}

// Resize hands every overlay the full terminal size.
func (s *OverlayStack) Resize(size tea.WindowSizeMsg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.Stack))
	for i := range s.Stack {
		v, cmd := s.Stack[i].View.Update(size)
		s.Stack[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

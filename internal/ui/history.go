package ui

// History is the back stack of visited pages.
type History struct {
	Stack []AppMode
}

// Push records m as the page being left.
func (h *History) Push(m AppMode) {
	h.Stack = append(h.Stack, m)
}

// Pop removes and returns the most recent page.
func (h *History) Pop() (AppMode, bool) {
	if len(h.Stack) == 0 {
		return ModeHome, false
	}
	top := h.Stack[len(h.Stack)-1]
	h.Stack = h.Stack[:len(h.Stack)-1]
	return top, true
}

// Len returns the number of pages to go back through.
func (h *History) Len() int {
	return len(h.Stack)
}

package window

import "slices"

// DefaultBaseZ keeps panel stacking above the page body and below navigation chrome.
const DefaultBaseZ = 20

// Target is the part of a panel a pointer landed on.
type Target int

const (
	TargetBody Target = iota
	TargetHeader
	TargetClose
	TargetScrollable
)

func (t Target) String() string {
	switch t {
	case TargetBody:
		return "body"
	case TargetHeader:
		return "header"
	case TargetClose:
		return "close"
	case TargetScrollable:
		return "scrollable"
	default:
		return "unknown"
	}
}

// FocusController derives z-order from a Store and routes pointer and keyboard focus.
type FocusController struct {
	Store    *Store
	BaseZ    int
	OnChange func(from, to string) // optional
}

// NewFocusController returns a controller over store with DefaultBaseZ.
func NewFocusController(store *Store) *FocusController {
	return &FocusController{Store: store, BaseZ: DefaultBaseZ}
}

// ZIndex returns BaseZ + id's position in the stack, or -1 if id is not open.
func (f *FocusController) ZIndex(id string) int {
	idx := slices.Index(f.Store.stack, id)
	if idx < 0 {
		return -1
	}
	return f.BaseZ + idx
}

// PointerDown focuses id unless the pointer hit the close control or an inner
// scroll region. Returns true if focus was applied (a drag may begin).
func (f *FocusController) PointerDown(id string, target Target) bool {
	if target == TargetClose || target == TargetScrollable {
		return false
	}
	return f.Focus(id)
}

// Focus focuses id and reports the change to OnChange.
func (f *FocusController) Focus(id string) bool {
	from := f.Store.Focused()
	if !f.Store.Focus(id) {
		return false
	}
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return true
}

// Next raises the bottom-most panel, so repeated calls visit every open panel.
// With nothing focused it focuses the top. Returns the new focus.
func (f *FocusController) Next() string {
	stack := f.Store.stack
	if len(stack) == 0 {
		return ""
	}
	if f.Store.Focused() == "" {
		f.Focus(stack[len(stack)-1])
	} else {
		f.Focus(stack[0])
	}
	return f.Store.Focused()
}

// Prev returns focus to the panel just below the top (the previously focused one).
func (f *FocusController) Prev() string {
	stack := f.Store.stack
	switch len(stack) {
	case 0:
		return ""
	case 1:
		f.Focus(stack[0])
	default:
		if f.Store.Focused() == "" {
			f.Focus(stack[len(stack)-1])
		} else {
			f.Focus(stack[len(stack)-2])
		}
	}
	return f.Store.Focused()
}

package ui

import (
	"blueprint/internal/reveal"
)

// NavigateMsg switches to another page (SPC g <key>, nav bar click, close-to-home).
type NavigateMsg struct {
	To AppMode
}

// BackMsg returns to the previous page.
type BackMsg struct{}

// MeasureTickMsg asks a desk page to measure its container again. Gen ties the
// tick to one mount; ticks from an earlier visit are dropped.
type MeasureTickMsg struct {
	Page AppMode
	Gen  int
}

// RevealStepMsg carries a due reveal step from the scheduler goroutine into the
// update loop.
type RevealStepMsg struct {
	Page AppMode
	Step reveal.Step
}

// OpenDetailMsg opens the detail modal for a list entry.
type OpenDetailMsg struct {
	Page AppMode
	Slug string
}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}

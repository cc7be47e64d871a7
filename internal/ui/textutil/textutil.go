// Package textutil measures and fits plain text to terminal cell widths.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns how many terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most w columns, ending in Ellipsis when cut.
// Wide runes are never split.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	if w < Width(Ellipsis) {
		return ""
	}
	return runewidth.Truncate(s, w, Ellipsis)
}

// Fit truncates or right-pads s to exactly w columns.
func Fit(s string, w int) string {
	s = Truncate(s, w)
	return runewidth.FillRight(s, w)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled lines that layers are spliced into.
type canvas struct {
	w, h  int
	lines []string
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	blank := strings.Repeat(" ", c.w)
	c.lines = make([]string, c.h)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// fill writes s from the top-left corner, clipped to the canvas.
func (c *canvas) fill(s string) {
	c.overlay(s, 0, 0)
}

// overlay splices s onto the canvas with its top-left corner at (x, y).
// Parts of s outside the canvas are clipped; x and y may be negative.
func (c *canvas) overlay(s string, x, y int) {
	for i, fg := range strings.Split(s, "\n") {
		row := y + i
		if row < 0 || row >= c.h {
			continue
		}
		fgW := ansi.StringWidth(fg)
		start, end := 0, fgW
		if x < 0 {
			start = -x
		}
		if x+fgW > c.w {
			end = c.w - x
		}
		if start >= end {
			continue
		}
		if start > 0 || end < fgW {
			fg = ansi.Cut(fg, start, end)
		}
		left, right := x+start, x+end
		bg := c.lines[row]
		c.lines[row] = ansi.Cut(bg, 0, left) + fg + ansi.Cut(bg, right, c.w)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

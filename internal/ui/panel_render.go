package ui

import (
	"strings"

	"blueprint/internal/ui/textutil"
	"blueprint/internal/window"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel chrome in cells: one border column each side plus one padding column,
// a top border and title row above the body, a bottom border below it.
const (
	panelChromeW = 4
	panelChromeH = 3
	minPanelW    = 12
	minPanelH    = 4
	closeGlyph   = "×"
)

// panelFrame is one panel's rendered size in cells.
type panelFrame struct {
	W, H int
}

func (f panelFrame) innerW() int   { return max(f.W-panelChromeW, 1) }
func (f panelFrame) bodyRows() int { return max(f.H-panelChromeH, 0) }

// hitTarget classifies a cell (col, row) relative to the panel's top-left corner.
func (f panelFrame) hitTarget(desc window.Descriptor, col, row int) window.Target {
	switch {
	case row == 1 && col >= f.W-4 && col <= f.W-2:
		return window.TargetClose
	case row <= 1:
		return window.TargetHeader
	case desc.ScrollableBody && row < f.H-1 && col > 0 && col < f.W-1:
		return window.TargetScrollable
	default:
		return window.TargetBody
	}
}

// renderPanel draws a floating panel into exactly frame.W x frame.H cells.
// scroll skips body lines for scrollable panels and is clamped by the caller.
func renderPanel(desc window.Descriptor, focused bool, frame panelFrame, scroll int) string {
	innerW := frame.innerW()

	title := textutil.Fit(desc.Title, innerW-2)
	header := Styles.PanelTitle.Render(title) + " " + Styles.PanelClose.Render(closeGlyph)

	body := panelBody(desc.Content, innerW)
	rows := frame.bodyRows()
	if scroll > 0 && scroll < len(body) {
		body = body[scroll:]
	}
	if len(body) > rows {
		body = body[:rows]
	}
	for len(body) < rows {
		body = append(body, "")
	}
	for i, line := range body {
		body[i] = ansi.Truncate(line, innerW, "")
	}

	style := Styles.Panel
	if focused {
		style = Styles.PanelFocused
	}
	lines := append([]string{header}, body...)
	return style.Width(frame.W - 2).Render(strings.Join(lines, "\n"))
}

// panelBody lays out content for innerW columns. The result is not clipped
// vertically.
func panelBody(c window.Content, innerW int) []string {
	switch c := c.(type) {
	case window.TextContent:
		var out []string
		if c.Heading != "" {
			out = append(out, Styles.Heading.Render(ansi.Truncate(c.Heading, innerW, "…")), "")
		}
		for _, l := range c.Lines {
			if l == "" {
				out = append(out, "")
				continue
			}
			out = append(out, strings.Split(ansi.Wrap(l, innerW, " -"), "\n")...)
		}
		return out
	case window.MediaContent:
		return mediaBody(c, innerW)
	case window.CustomContent:
		if c.Render == nil {
			return nil
		}
		return strings.Split(c.Render(innerW), "\n")
	default:
		return nil
	}
}

func mediaBody(c window.MediaContent, innerW int) []string {
	badge := "▣ IMAGE"
	if c.Type == window.MediaVideo {
		badge = Styles.VideoBadge.Render("▶ VIDEO")
	}
	fill := Styles.MediaFrame.Render(strings.Repeat("░", innerW))
	label := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, badge+"  "+Styles.Caption.Render(textutil.Truncate(c.Source, max(innerW-10, 1))))
	out := []string{fill, label, fill}
	if c.Subtitle != "" {
		out = append(out, "", Styles.Heading.Render(textutil.Truncate(c.Subtitle, innerW)))
	}
	if c.Description != "" {
		out = append(out, strings.Split(Styles.Caption.Render(ansi.Wrap(c.Description, innerW, " -")), "\n")...)
	}
	return out
}

// bodyLen returns how many body lines a panel has, for scroll clamping.
func bodyLen(desc window.Descriptor, frame panelFrame) int {
	return len(panelBody(desc.Content, frame.innerW()))
}

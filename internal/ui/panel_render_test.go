package ui

import (
	"fmt"
	"strings"
	"testing"

	"blueprint/internal/window"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPanel_ExactFootprint(t *testing.T) {
	desc := window.Descriptor{
		ID:      "a",
		Title:   "A very long panel title that cannot possibly fit",
		Content: window.TextContent{Heading: "Heading", Lines: []string{strings.Repeat("word ", 40)}},
	}
	for _, f := range []panelFrame{{W: 12, H: 4}, {W: 30, H: 8}, {W: 45, H: 15}} {
		t.Run(fmt.Sprintf("%dx%d", f.W, f.H), func(t *testing.T) {
			lines := strings.Split(renderPanel(desc, false, f, 0), "\n")
			require.Len(t, lines, f.H)
			for _, l := range lines {
				assert.Equal(t, f.W, ansi.StringWidth(l))
			}
		})
	}
}

func TestRenderPanel_TitleAndCloseGlyph(t *testing.T) {
	desc := window.Descriptor{ID: "a", Title: "Studio", Content: window.TextContent{Lines: []string{"hello"}}}
	out := ansi.Strip(renderPanel(desc, true, panelFrame{W: 24, H: 6}, 0))
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "Studio")
	assert.Equal(t, closeGlyph, string([]rune(lines[1])[24-3]))
	assert.Contains(t, lines[2], "hello")
}

func TestRenderPanel_ScrollSkipsBodyLines(t *testing.T) {
	var body []string
	for i := range 10 {
		body = append(body, fmt.Sprintf("row%d", i))
	}
	desc := window.Descriptor{ID: "a", Title: "T", Content: window.TextContent{Lines: body}, ScrollableBody: true}
	f := panelFrame{W: 20, H: 6}

	out := ansi.Strip(renderPanel(desc, false, f, 4))
	assert.Contains(t, out, "row4")
	assert.NotContains(t, out, "row3")
	assert.Equal(t, 10, bodyLen(desc, f))
}

func TestPanelBody_Media(t *testing.T) {
	c := window.MediaContent{Type: window.MediaVideo, Source: "reel.mp4", Subtitle: "Reel", Description: "Showreel"}
	out := ansi.Strip(strings.Join(panelBody(c, 40), "\n"))
	assert.Contains(t, out, "VIDEO")
	assert.Contains(t, out, "reel.mp4")
	assert.Contains(t, out, "Reel")
	assert.Contains(t, out, "Showreel")

	img := ansi.Strip(strings.Join(panelBody(window.MediaContent{Type: window.MediaImage, Source: "a.jpg"}, 40), "\n"))
	assert.Contains(t, img, "IMAGE")
}

func TestPanelBody_Custom(t *testing.T) {
	c := window.CustomContent{Render: func(w int) string { return fmt.Sprintf("w=%d\nsecond", w) }}
	assert.Equal(t, []string{"w=16", "second"}, panelBody(c, 16))
	assert.Nil(t, panelBody(window.CustomContent{}, 16))
}

func TestPanelFrame_HitTarget(t *testing.T) {
	f := panelFrame{W: 20, H: 10}
	plain := window.Descriptor{ID: "a"}
	scroll := window.Descriptor{ID: "b", ScrollableBody: true}

	tests := []struct {
		name     string
		desc     window.Descriptor
		col, row int
		want     window.Target
	}{
		{"top border", plain, 5, 0, window.TargetHeader},
		{"title", plain, 2, 1, window.TargetHeader},
		{"close", plain, 17, 1, window.TargetClose},
		{"body", plain, 5, 5, window.TargetBody},
		{"scroll body", scroll, 5, 5, window.TargetScrollable},
		{"scroll panel border", scroll, 0, 5, window.TargetBody},
		{"scroll panel bottom border", scroll, 5, 9, window.TargetBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.hitTarget(tt.desc, tt.col, tt.row))
		})
	}
}

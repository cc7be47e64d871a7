package content

import (
	"fmt"
	"strings"

	"blueprint/internal/geom"
	"blueprint/internal/window"
)

// Window ids on the about desk that are not founders.
const (
	StudioWindowID = "studio"
	AwardsWindowID = "recognition"
)

// AboutWindows returns the about desk: a scrollable studio intro, one window per
// founder, and the award logos.
func (l *Library) AboutWindows() []window.Descriptor {
	out := []window.Descriptor{{
		ID:     StudioWindowID,
		Title:  "OUR_STUDIO.TXT",
		Anchor: geom.TopLeft(40, 40),
		Size:   geom.Size{W: 480, H: 320},
		Content: window.TextContent{
			Heading: l.Studio.Name,
			Lines:   append(append([]string(nil), l.Studio.Intro...), "", l.Studio.Philosophy),
		},
		ScrollableBody: true,
	}}
	for i, f := range l.Founders {
		out = append(out, window.Descriptor{
			ID:     founderID(f),
			Title:  strings.ToUpper(strings.ReplaceAll(f.Name, " ", "_")) + ".TXT",
			Anchor: geom.TopLeft(560+i*60, 60+i*220),
			Size:   geom.Size{W: 400, H: 240},
			Content: window.TextContent{
				Heading: f.Name,
				Lines:   []string{f.Role, "", f.Bio},
			},
		})
	}
	logos := l.AwardLogos
	out = append(out, window.Descriptor{
		ID:     AwardsWindowID,
		Title:  "RECOGNITION.TXT",
		Anchor: geom.TopLeft(80, 400),
		Size:   geom.Size{W: 440, H: 192},
		Content: window.CustomContent{Render: func(width int) string {
			var b strings.Builder
			for _, lg := range logos {
				fmt.Fprintf(&b, "[%s] %s\n", lg.Short, lg.Name)
			}
			return strings.TrimSuffix(b.String(), "\n")
		}},
	})
	return out
}

func founderID(f Founder) string {
	return "founder-" + strings.ToLower(strings.ReplaceAll(f.Name, " ", "-"))
}

// ContactWindows returns the contact desk. Every window is top-left anchored.
func (l *Library) ContactWindows() []window.Descriptor {
	out := make([]window.Descriptor, 0, len(l.Contact))
	for _, c := range l.Contact {
		out = append(out, window.Descriptor{
			ID:                 c.ID,
			Title:              c.Title,
			Anchor:             geom.TopLeft(c.Left, c.Top),
			Size:               geom.Size{W: 360, H: 176},
			Content:            window.TextContent{Lines: c.Lines},
			CloseNavigatesHome: c.CloseNavigatesHome,
		})
	}
	return out
}

// DynamiteWindows returns the media gallery. Every window is centered and rests
// at its authored displacement.
func (l *Library) DynamiteWindows() []window.Descriptor {
	out := make([]window.Descriptor, 0, len(l.Dynamite))
	for _, d := range l.Dynamite {
		out = append(out, window.Descriptor{
			ID:     d.ID,
			Title:  d.Title,
			Anchor: geom.Centered(),
			Rest:   geom.Point{X: d.X, Y: d.Y},
			Size:   geom.Size{W: d.Width, H: d.Height},
			Content: window.MediaContent{
				Type:        window.MediaType(d.Media),
				Source:      d.Src,
				Subtitle:    d.Subtitle,
				Description: d.Description,
			},
		})
	}
	return out
}

// Package window holds the floating-window model: authored panel descriptors,
// per-panel runtime state, and the stack that defines focus and z-order.
package window

import "blueprint/internal/geom"

// ContentKind tags the Content variant.
type ContentKind int

const (
	ContentText ContentKind = iota
	ContentMedia
	ContentCustom
)

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentMedia:
		return "media"
	case ContentCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Content is what a panel shows below its header.
type Content interface {
	Kind() ContentKind
}

// TextContent is one or more lines of text.
type TextContent struct {
	Heading string
	Lines   []string
}

func (TextContent) Kind() ContentKind { return ContentText }

// MediaType distinguishes still images from video.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaContent is an image or video with an optional caption.
type MediaContent struct {
	Type        MediaType
	Source      string
	Subtitle    string
	Description string
}

func (MediaContent) Kind() ContentKind { return ContentMedia }

// CustomContent renders arbitrary content for the given inner width.
type CustomContent struct {
	Render func(width int) string
}

func (CustomContent) Kind() ContentKind { return ContentCustom }

// Descriptor is a panel authored once per page.
type Descriptor struct {
	ID      string
	Title   string
	Content Content
	Anchor  geom.Anchor
	// Rest is the offset the panel settles at when revealed. Centered panels
	// use it as their authored displacement from the container center.
	Rest geom.Point
	// Size is optional; zero fields fall back to geom.DefaultWidth/DefaultHeight.
	Size geom.Size
	// ScrollableBody marks the content area as an inner scroll region:
	// pointer-down there neither focuses nor drags.
	ScrollableBody bool
	// CloseNavigatesHome asks the host to leave the page when this panel closes.
	CloseNavigatesHome bool
}

// Dimensions returns the declared size with defaults applied.
func (d Descriptor) Dimensions() geom.Size {
	s := d.Size
	if s.W <= 0 {
		s.W = geom.DefaultWidth
	}
	if s.H <= 0 {
		s.H = geom.DefaultHeight
	}
	return s
}

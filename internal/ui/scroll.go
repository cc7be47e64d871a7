package ui

// ScrollLock is the page-scroll controller handed to anything that needs to
// freeze the page behind it (modals). Pauses nest.
type ScrollLock interface {
	Pause()
	Resume()
	Paused() bool
}

// PageScroll is the app's ScrollLock.
type PageScroll struct {
	depth int
}

var _ ScrollLock = (*PageScroll)(nil)

func (p *PageScroll) Pause() { p.depth++ }

func (p *PageScroll) Resume() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *PageScroll) Paused() bool { return p.depth > 0 }

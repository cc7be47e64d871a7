package geom

// DefaultMaxAttempts caps how many frames a Poller waits for a measurable container.
const DefaultMaxAttempts = 20

// PollState is the outcome of a measurement attempt.
type PollState int

const (
	PollPending PollState = iota
	PollResolved
	PollGaveUp
	PollStopped
)

func (s PollState) String() string {
	switch s {
	case PollPending:
		return "pending"
	case PollResolved:
		return "resolved"
	case PollGaveUp:
		return "gave-up"
	case PollStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Poller retries container measurement once per frame until the container has area,
// at most MaxAttempts times. After the last attempt it settles on the zero size.
type Poller struct {
	MaxAttempts int
	attempts    int
	state       PollState
	size        Size
}

// NewPoller returns a poller allowing maxAttempts tries (DefaultMaxAttempts if <= 0).
func NewPoller(maxAttempts int) *Poller {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Poller{MaxAttempts: maxAttempts}
}

// Attempt records one measurement. Once the poller leaves PollPending further
// attempts do not change its state.
func (p *Poller) Attempt(measured Size) PollState {
	if p.state != PollPending {
		return p.state
	}
	p.attempts++
	switch {
	case !measured.Empty():
		p.state = PollResolved
		p.size = measured
	case p.attempts >= p.MaxAttempts:
		p.state = PollGaveUp
		p.size = Size{}
	}
	return p.state
}

// Stop abandons a pending poll, e.g. when the view unmounts.
func (p *Poller) Stop() {
	if p.state == PollPending {
		p.state = PollStopped
	}
}

// State returns the current state.
func (p *Poller) State() PollState { return p.state }

// Attempts returns how many measurements were taken.
func (p *Poller) Attempts() int { return p.attempts }

// Size returns the resolved size, or the zero fallback.
func (p *Poller) Size() Size { return p.size }

// Done reports whether no further attempts are needed.
func (p *Poller) Done() bool { return p.state != PollPending }

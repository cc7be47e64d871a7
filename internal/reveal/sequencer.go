// Package reveal staggers the initial appearance of a page's panels.
//
// A Sequencer moves NotStarted -> Revealing(k) -> Done, or to Cancelled when the
// page goes away. Step k is due k*Stagger after Start; each step's timer is armed
// only after the previous step was dispatched, so steps arrive in order even with
// a zero stagger. Timers only deliver
// Steps through the dispatch function; the UI loop applies them with Advance, which
// drops any step from an earlier generation, so nothing mutates state after Cancel.
package reveal

import (
	"sync"
	"time"
)

// DefaultStagger is the delay between consecutive panels.
const DefaultStagger = 520 * time.Millisecond

// Phase is the sequencer's state.
type Phase int

const (
	NotStarted Phase = iota
	Revealing
	Done
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Revealing:
		return "revealing"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Step asks the host to open and focus one panel.
type Step struct {
	Gen   uint64
	Index int
	ID    string
	Delay time.Duration
}

// Sequencer schedules reveal steps.
type Sequencer struct {
	Stagger time.Duration

	sched    Scheduler
	dispatch func(Step)

	mu       sync.Mutex
	gen      uint64
	phase    Phase
	ids      []string
	applied  []bool
	revealed int
	timers   []Timer
}

// New returns a sequencer that schedules on sched and hands due steps to dispatch.
// dispatch may be called from the scheduler's goroutine.
func New(sched Scheduler, stagger time.Duration, dispatch func(Step)) *Sequencer {
	if sched == nil {
		sched = SystemScheduler{}
	}
	if stagger < 0 {
		stagger = DefaultStagger
	}
	return &Sequencer{Stagger: stagger, sched: sched, dispatch: dispatch}
}

// SetDispatch replaces the dispatch function. Call before Start.
func (s *Sequencer) SetDispatch(dispatch func(Step)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch = dispatch
}

// Start cancels any run in progress and schedules ids in order. Returns the new generation.
func (s *Sequencer) Start(ids []string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
	s.gen++
	s.ids = append([]string(nil), ids...)
	s.applied = make([]bool, len(ids))
	s.revealed = 0
	if len(ids) == 0 {
		s.phase = Done
		return s.gen
	}
	s.phase = Revealing
	s.scheduleLocked(0, 0)
	return s.gen
}

// scheduleLocked arms the timer for step k, due after d.
func (s *Sequencer) scheduleLocked(k int, d time.Duration) {
	step := Step{Gen: s.gen, Index: k, ID: s.ids[k], Delay: time.Duration(k) * s.Stagger}
	s.timers = append(s.timers[:0], s.sched.AfterFunc(d, func() {
		s.fire(step)
	}))
}

func (s *Sequencer) fire(step Step) {
	s.mu.Lock()
	stale := step.Gen != s.gen || s.phase != Revealing
	dispatch := s.dispatch
	s.mu.Unlock()
	if stale {
		return
	}
	if dispatch != nil {
		dispatch(step)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if step.Gen != s.gen || s.phase != Revealing {
		return
	}
	if next := step.Index + 1; next < len(s.ids) {
		s.scheduleLocked(next, s.Stagger)
	} else {
		s.timers = nil
	}
}

// Advance applies a dispatched step. Returns false for stale, duplicate, or
// out-of-range steps, which the host must ignore.
func (s *Sequencer) Advance(step Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if step.Gen != s.gen || s.phase != Revealing {
		return false
	}
	if step.Index < 0 || step.Index >= len(s.ids) || s.applied[step.Index] {
		return false
	}
	s.applied[step.Index] = true
	s.revealed++
	if s.revealed == len(s.ids) {
		s.phase = Done
		s.timers = nil
	}
	return true
}

// Cancel stops every pending timer. Steps already dispatched become stale.
func (s *Sequencer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
	s.gen++
	if s.phase == Revealing {
		s.phase = Cancelled
	}
}

func (s *Sequencer) stopTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Revealed returns how many steps have been applied in the current run.
func (s *Sequencer) Revealed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed
}

// Gen returns the current generation.
func (s *Sequencer) Gen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

package core

import (
	"sync"
	"time"
)

// DefaultHold is how long a key press counts as held when the platform
// cannot report key release. Terminals resend a held key every few tens
// of milliseconds once auto-repeat kicks in, which refreshes the deadline.
const DefaultHold = 180 * time.Millisecond

// opposite pairs cancel each other: pressing one releases the other.
var opposite = map[Action]Action{
	ActionLeft:  ActionRight,
	ActionRight: ActionLeft,
	ActionUp:    ActionDown,
	ActionDown:  ActionUp,
}

// InputLatch collects input on the platform goroutine and hands the
// simulation goroutine one InputFrame per tick.
//
// Held actions come in two flavours: Hold refreshes a deadline (for
// terminals), SetDown tracks explicit press/release (for windows).
// Press queues a discrete action that appears in exactly one frame.
type InputLatch struct {
	mu      sync.Mutex
	hold    time.Duration
	now     func() time.Time
	expires map[Action]time.Time
	down    map[Action]bool
	pressed map[Action]bool
}

// NewInputLatch creates a latch. A non-positive hold uses DefaultHold.
func NewInputLatch(hold time.Duration) *InputLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &InputLatch{
		hold:    hold,
		now:     time.Now,
		expires: make(map[Action]time.Time),
		down:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// SetClock replaces the time source. Used by tests.
func (l *InputLatch) SetClock(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}

// Hold marks an action as held until the hold duration elapses.
func (l *InputLatch) Hold(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if o, ok := opposite[a]; ok {
		delete(l.expires, o)
	}
	l.expires[a] = l.now().Add(l.hold)
}

// SetDown records an explicit key state.
func (l *InputLatch) SetDown(a Action, down bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if down {
		l.down[a] = true
	} else {
		delete(l.down, a)
	}
}

// Press queues a one-shot action for the next frame.
func (l *InputLatch) Press(a Action) {
	l.mu.Lock()
	l.pressed[a] = true
	l.mu.Unlock()
}

// Release drops every held and queued action.
func (l *InputLatch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.expires)
	clear(l.down)
	clear(l.pressed)
}

// Frame returns the actions active right now and consumes queued presses.
func (l *InputLatch) Frame() InputFrame {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := NewInputFrame()
	now := l.now()
	for a, until := range l.expires {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(l.expires, a)
		}
	}
	for a := range l.down {
		f.Set(a)
	}
	for a := range l.pressed {
		f.Set(a)
	}
	clear(l.pressed)
	return f
}

package search

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer runs only the last function handed to Trigger once the quiet
// period has passed without another Trigger.
type Debouncer struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	duration time.Duration
	timer    clockwork.Timer
	stopped  bool
}

// NewDebouncer creates a debouncer; a nil clock means the real clock.
func NewDebouncer(duration time.Duration, clock clockwork.Clock) *Debouncer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Debouncer{clock: clock, duration: duration}
}

// Trigger (re)starts the quiet period with fn as the pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.duration, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop cancels the pending call and ignores every later Trigger.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.Cancel()
}

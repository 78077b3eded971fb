package input

import "time"

// DefaultDebounce is the minimum gap between two accepted key events
const DefaultDebounce = 200 * time.Millisecond

// Debouncer drops events that arrive within window of the last accepted one.
// Dropped events are discarded, not queued. A zero window accepts everything.
type Debouncer struct {
	window   time.Duration
	last     time.Time
	accepted bool
}

// NewDebouncer creates a debouncer with the given window
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Accept reports whether an event at now should be handled
func (d *Debouncer) Accept(now time.Time) bool {
	if d.window <= 0 {
		return true
	}
	if d.accepted && now.Sub(d.last) < d.window {
		return false
	}
	d.last = now
	d.accepted = true
	return true
}

// Window returns the configured window
func (d *Debouncer) Window() time.Duration {
	return d.window
}

package flappy

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Stopwatch measures wall time since its last restart.
// It reads the clock instead of summing frame deltas, so it does not drift,
// and it keeps running while the session is paused.
type Stopwatch struct {
	clock   clock.Clock
	started time.Time
}

// NewStopwatch returns a stopwatch started at the clock's current time.
func NewStopwatch(c clock.Clock) Stopwatch {
	return Stopwatch{clock: c, started: c.Now()}
}

// Restart sets the elapsed time back to zero.
func (w *Stopwatch) Restart() {
	w.started = w.clock.Now()
}

// Elapsed returns the time since the last restart.
func (w Stopwatch) Elapsed() time.Duration {
	return w.clock.Since(w.started)
}

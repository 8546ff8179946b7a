package state

import "time"

// DefaultMoveInterval is the minimum spacing between accepted moves.
const DefaultMoveInterval = 350 * time.Millisecond

// Limiter drops calls that arrive sooner than its interval after the last
// accepted call. Dropped calls are neither queued nor coalesced and do not
// extend the window.
type Limiter struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
	primed   bool
}

// NewLimiter returns a limiter. A nil now uses time.Now.
func NewLimiter(interval time.Duration, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{interval: interval, now: now}
}

// Allow reports whether a call made now is accepted, and records it if so.
func (l *Limiter) Allow() bool {
	t := l.now()
	if l.primed && l.interval > 0 && t.Sub(l.last) < l.interval {
		return false
	}
	l.last = t
	l.primed = true
	return true
}

package core

// Throttle gates an action to a minimum re-trigger interval.
// Calls arriving too soon are dropped, never queued. Times are in
// simulation milliseconds supplied by the caller.
type Throttle struct {
	next     func() float64
	interval float64
	last     float64
	fired    bool
}

// NewThrottle creates a throttle with a fixed interval in milliseconds.
func NewThrottle(intervalMs float64) *Throttle {
	return &Throttle{interval: intervalMs}
}

// NewVariableThrottle creates a throttle whose interval is drawn from next
// at construction and again after every successful run.
func NewVariableThrottle(next func() float64) *Throttle {
	return &Throttle{next: next, interval: next()}
}

// Ready reports whether a call at now would run.
func (t *Throttle) Ready(now float64) bool {
	return !t.fired || now-t.last >= t.interval
}

// Try runs fn if the interval has elapsed since the last run and reports
// whether it ran. The first call always runs.
func (t *Throttle) Try(now float64, fn func()) bool {
	if !t.Ready(now) {
		return false
	}
	t.last = now
	t.fired = true
	if fn != nil {
		fn()
	}
	if t.next != nil {
		t.interval = t.next()
	}
	return true
}

// Interval returns the interval currently in force.
func (t *Throttle) Interval() float64 {
	return t.interval
}

// Reset forgets the last run so the next call fires immediately.
func (t *Throttle) Reset() {
	t.fired = false
	t.last = 0
}

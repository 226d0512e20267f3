package wheel

import "time"

// throttle enforces a minimum interval between accepted wheel steps. It
// never waits: callers check ready and drop the event when it is too soon.
type throttle struct {
	interval time.Duration
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

func (t *throttle) ready(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	return !now.Before(t.next)
}

// mark records an accepted step. Rejected or no-op events are not marked so
// they do not extend the quiet period.
func (t *throttle) mark(now time.Time) {
	if t == nil || t.interval <= 0 {
		return
	}
	t.next = now.Add(t.interval)
}

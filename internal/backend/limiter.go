package backend

import (
	"context"
	"sync"
	"time"
)

// reloadLimiter keeps catalog reloads at least interval apart, so an editor
// that saves a file in several writes costs one parse per interval.
type reloadLimiter struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

func newReloadLimiter(interval time.Duration) *reloadLimiter {
	return &reloadLimiter{interval: interval, now: time.Now}
}

// wait blocks until the next reload is allowed. It returns false when ctx
// ends first.
func (l *reloadLimiter) wait(ctx context.Context) bool {
	if l == nil || l.interval <= 0 {
		return ctx.Err() == nil
	}
	l.mu.Lock()
	var delay time.Duration
	if !l.last.IsZero() {
		delay = l.interval - l.now().Sub(l.last)
	}
	l.mu.Unlock()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	l.mu.Lock()
	l.last = l.now()
	l.mu.Unlock()
	return ctx.Err() == nil
}

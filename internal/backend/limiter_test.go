package backend

import (
	"context"
	"testing"
	"time"
)

func TestReloadLimiterSpacesReloads(t *testing.T) {
	l := newReloadLimiter(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	if !l.wait(ctx) || !l.wait(ctx) {
		t.Fatalf("expected both reloads to proceed")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("expected second reload to wait, elapsed %s", elapsed)
	}
}

func TestReloadLimiterStopsOnCancel(t *testing.T) {
	l := newReloadLimiter(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if !l.wait(ctx) {
		t.Fatalf("expected first reload to proceed")
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if l.wait(ctx) {
		t.Fatalf("expected cancelled wait to report false")
	}
}

func TestReloadLimiterZeroIntervalNeverBlocks(t *testing.T) {
	var l *reloadLimiter
	if !l.wait(context.Background()) {
		t.Fatalf("nil limiter must allow reloads")
	}
	if !newReloadLimiter(0).wait(context.Background()) {
		t.Fatalf("zero interval must allow reloads")
	}
}

package wheel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// tick fires as soon as the command runs and moves the clock forward by the
// requested delay.
func (c *fakeClock) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		c.advance(d)
		return fn(c.t)
	}
}

func (c *fakeClock) option() Option {
	return WithClock(c.now, c.tick)
}

// drain runs cmd and every follow-up timer until the chain ends.
func drain(p Control, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 1000; i++ {
		cmd = p.Update(cmd())
	}
}

type recorder[T any] struct {
	calls []T
}

func (r *recorder[T]) onChange(v T) {
	r.calls = append(r.calls, v)
}

package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/takeoff/internal/ui/wheel"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// testClock fires picker timers as soon as their command runs, advancing
// its own time by the requested delay.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		c.t = c.t.Add(d)
		return fn(c.t)
	}
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
	opts.CursorMode = cursor.CursorStatic
	opts.PickerOptions = append(opts.PickerOptions, wheel.WithClock(clock.now, clock.tick))
	if opts.ExportDir == "" {
		opts.ExportDir = t.TempDir()
	}
	m := NewModel(opts)
	t.Cleanup(m.Close)
	return m
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	return NewHarness(newTestModel(t, opts))
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Harness, s string) {
	for _, r := range s {
		h.Send(keyRunes(string(r)))
	}
}

package wheel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultItemHeight    = 2
	DefaultVisibleRows   = 7
	DefaultQuiescence    = 100 * time.Millisecond
	DefaultSettleDelay   = 150 * time.Millisecond
	DefaultWheelInterval = 80 * time.Millisecond
	frameInterval        = time.Second / glideFPS
)

// TickFunc schedules a message after a delay. tea.Tick is the production
// implementation; tests substitute one that fires immediately.
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Option configures a Picker.
type Option func(*settings)

type settings struct {
	label         string
	format        func(any) string
	itemHeight    int
	visibleRows   int
	width         int
	quiescence    time.Duration
	settleDelay   time.Duration
	wheelInterval time.Duration
	smooth        bool
	now           func() time.Time
	tick          TickFunc
}

func defaultSettings() settings {
	return settings{
		itemHeight:    DefaultItemHeight,
		visibleRows:   DefaultVisibleRows,
		quiescence:    DefaultQuiescence,
		settleDelay:   DefaultSettleDelay,
		wheelInterval: DefaultWheelInterval,
		smooth:        true,
		now:           time.Now,
		tick:          tea.Tick,
	}
}

// WithLabel sets the caption rendered above the strip and used in traces.
func WithLabel(label string) Option {
	return func(s *settings) { s.label = label }
}

// WithFormat sets how options are displayed. The default is fmt.Sprint.
func WithFormat[T any](format func(T) string) Option {
	return func(s *settings) {
		if format == nil {
			s.format = nil
			return
		}
		s.format = func(v any) string { return format(v.(T)) }
	}
}

// WithItemHeight sets the number of rows each option occupies in the strip.
func WithItemHeight(rows int) Option {
	return func(s *settings) {
		if rows > 0 {
			s.itemHeight = rows
		}
	}
}

// WithVisibleRows sets the height of the viewport, excluding the frame.
func WithVisibleRows(rows int) Option {
	return func(s *settings) {
		if rows > 0 {
			s.visibleRows = rows
		}
	}
}

// WithWidth fixes the content width. Zero sizes to the widest option.
func WithWidth(cols int) Option {
	return func(s *settings) {
		if cols >= 0 {
			s.width = cols
		}
	}
}

func WithQuiescence(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.quiescence = d
		}
	}
}

func WithSettleDelay(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.settleDelay = d
		}
	}
}

// WithWheelInterval sets the minimum time between accepted wheel steps.
func WithWheelInterval(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.wheelInterval = d
		}
	}
}

// WithSmoothScroll toggles the spring glide used for programmatic moves.
func WithSmoothScroll(enabled bool) Option {
	return func(s *settings) { s.smooth = enabled }
}

// WithClock replaces the time source and the timer scheduler.
func WithClock(now func() time.Time, tick TickFunc) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
		if tick != nil {
			s.tick = tick
		}
	}
}

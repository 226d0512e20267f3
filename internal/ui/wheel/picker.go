package wheel

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/atomicstack/takeoff/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type tickKind int

const (
	tickQuiet tickKind = iota
	tickFrame
	tickSettled
)

// TickMsg drives a picker's timers. It is routed to every picker; each one
// drops ticks addressed to another picker or to a superseded generation.
type TickMsg struct {
	ID   int
	tag  int
	kind tickKind
}

// Picker is the value picker state machine. The zero value is not usable;
// construct with New or NewFunc.
type Picker[T any] struct {
	id       int
	options  []T
	value    T
	equal    func(a, b T) bool
	onChange func(T)

	index  int
	offset float64
	phase  Phase

	tag    int
	closed bool

	cfg   settings
	wheel *throttle
	glide glide
	ptr   pointer
}

// New builds a picker over comparable options using ==.
func New[T comparable](options []T, value T, onChange func(T), opts ...Option) *Picker[T] {
	return NewFunc(options, value, func(a, b T) bool { return a == b }, onChange, opts...)
}

// NewFunc builds a picker with an explicit equality function, used to map
// the controlled value to an index.
func NewFunc[T any](options []T, value T, equal func(a, b T) bool, onChange func(T), opts ...Option) *Picker[T] {
	if equal == nil {
		panic("wheel: NewFunc requires an equality function")
	}
	cfg := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	p := &Picker[T]{
		id:       nextID(),
		options:  cloneOptions(options),
		value:    value,
		equal:    equal,
		onChange: onChange,
		index:    -1,
		cfg:      cfg,
		wheel:    newThrottle(cfg.wheelInterval),
	}
	p.resync()
	return p
}

func cloneOptions[T any](options []T) []T {
	dup := make([]T, len(options))
	copy(dup, options)
	return dup
}

func (p *Picker[T]) ID() int       { return p.id }
func (p *Picker[T]) Label() string { return p.cfg.label }
func (p *Picker[T]) Phase() Phase  { return p.phase }
func (p *Picker[T]) Len() int      { return len(p.options) }
func (p *Picker[T]) Closed() bool  { return p.closed }

// Index returns the active index, or -1 when nothing is selected.
func (p *Picker[T]) Index() int { return p.index }

// Offset returns the current scroll offset in rows.
func (p *Picker[T]) Offset() float64 { return p.offset }

// ItemHeight returns the number of strip rows per option.
func (p *Picker[T]) ItemHeight() int { return p.cfg.itemHeight }

// Value returns the picker's last-known value: the controlled value, or the
// value most recently reported through onChange.
func (p *Picker[T]) Value() T { return p.value }

// Options returns a copy of the option list.
func (p *Picker[T]) Options() []T { return cloneOptions(p.options) }

// Active returns the option at the active index.
func (p *Picker[T]) Active() (T, bool) {
	var zero T
	if p.index < 0 || p.index >= len(p.options) {
		return zero, false
	}
	return p.options[p.index], true
}

// IndexOf returns the first index whose option equals v, or -1.
func (p *Picker[T]) IndexOf(v T) int {
	for i, opt := range p.options {
		if p.equal(opt, v) {
			return i
		}
	}
	return -1
}

// SetValue applies an external value. While idle the index and viewport
// follow immediately; during a gesture the value is held until the picker
// returns to idle. onChange is never called.
func (p *Picker[T]) SetValue(v T) {
	p.value = v
	if p.phase == PhaseIdle {
		p.resync()
	}
}

// SetOptions replaces the option list. While idle the index is recomputed
// from the controlled value; during a gesture the offset and live index are
// clamped to the new bounds.
func (p *Picker[T]) SetOptions(options []T) {
	p.options = cloneOptions(options)
	if p.phase == PhaseIdle {
		p.resync()
		return
	}
	p.offset = clampOffset(p.offset, p.cfg.itemHeight, len(p.options))
	if p.glide.active {
		p.glide.target = clampOffset(p.glide.target, p.cfg.itemHeight, len(p.options))
	}
	if len(p.options) == 0 {
		p.index = -1
		return
	}
	p.index = clampIndex(p.index, len(p.options))
}

func (p *Picker[T]) resync() {
	idx := p.IndexOf(p.value)
	p.index = idx
	if idx >= 0 {
		p.offset = OffsetForIndex(idx, p.cfg.itemHeight)
	} else {
		p.offset = clampOffset(p.offset, p.cfg.itemHeight, len(p.options))
	}
	events.Picker.Resync(p.cfg.label, idx)
}

// ScrollBy moves the viewport by delta rows as part of a scroll gesture.
func (p *Picker[T]) ScrollBy(delta float64) tea.Cmd {
	return p.ScrollTo(p.offset + delta)
}

// ScrollTo moves the viewport to offset as part of a scroll gesture. Each
// call restarts the quiescence window; the commit happens once it elapses.
func (p *Picker[T]) ScrollTo(offset float64) tea.Cmd {
	if p.closed || len(p.options) == 0 {
		return nil
	}
	p.phase = PhaseDragging
	p.glide.stop()
	p.offset = clampOffset(offset, p.cfg.itemHeight, len(p.options))
	p.index = NearestIndex(p.offset, p.cfg.itemHeight, len(p.options))
	return p.arm(p.cfg.quiescence, tickQuiet)
}

// EndGesture marks the end of a drag. The pending quiescence timer still
// decides when the commit happens.
func (p *Picker[T]) EndGesture() tea.Cmd {
	if p.phase == PhaseDragging {
		p.phase = PhaseSettling
	}
	return nil
}

// Nudge moves one option in dir as a discrete wheel step. Steps arriving
// faster than the wheel interval are dropped.
func (p *Picker[T]) Nudge(dir int) tea.Cmd {
	if p.closed || len(p.options) == 0 {
		return nil
	}
	now := p.cfg.now()
	if !p.wheel.ready(now) {
		events.Picker.Dropped(p.cfg.label)
		return nil
	}
	cmd, moved := p.step(dir)
	if moved {
		p.wheel.mark(now)
	}
	return cmd
}

// Step moves one option in dir without rate limiting (keyboard and +/-).
func (p *Picker[T]) Step(dir int) tea.Cmd {
	if p.closed || len(p.options) == 0 {
		return nil
	}
	cmd, _ := p.step(dir)
	return cmd
}

func (p *Picker[T]) step(dir int) (tea.Cmd, bool) {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	default:
		return nil, false
	}
	current := p.index
	if current < 0 {
		current = p.IndexOf(p.value)
	}
	next := clampIndex(current+dir, len(p.options))
	if next == current {
		return nil, false
	}
	events.Picker.Nudge(p.cfg.label, current, next)
	return p.choose(next), true
}

// Select makes the option at index the selection and reports it.
func (p *Picker[T]) Select(index int) tea.Cmd {
	if p.closed || index < 0 || index >= len(p.options) {
		return nil
	}
	events.Picker.Select(p.cfg.label, index)
	return p.choose(index)
}

func (p *Picker[T]) choose(index int) tea.Cmd {
	p.index = index
	p.value = p.options[index]
	p.phase = PhaseSettling
	p.notify(p.value)
	return p.glideTo(index)
}

// Update handles the picker's timer ticks.
func (p *Picker[T]) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || p.closed || tick.ID != p.id || tick.tag != p.tag {
		return nil
	}
	switch tick.kind {
	case tickQuiet:
		return p.commit()
	case tickFrame:
		return p.advance()
	case tickSettled:
		p.phase = PhaseIdle
		p.resync()
	}
	return nil
}

func (p *Picker[T]) commit() tea.Cmd {
	if len(p.options) == 0 {
		p.phase = PhaseIdle
		p.index = -1
		return nil
	}
	p.phase = PhaseSettling
	idx := NearestIndex(p.offset, p.cfg.itemHeight, len(p.options))
	p.index = idx
	if candidate := p.options[idx]; !p.equal(candidate, p.value) {
		p.value = candidate
		events.Picker.Commit(p.cfg.label, idx)
		p.notify(candidate)
	}
	return p.glideTo(idx)
}

func (p *Picker[T]) glideTo(index int) tea.Cmd {
	target := OffsetForIndex(index, p.cfg.itemHeight)
	if !p.cfg.smooth || p.offset == target {
		p.glide.stop()
		p.offset = target
		return p.arm(p.cfg.settleDelay, tickSettled)
	}
	p.glide.start(p.offset, target)
	return p.arm(frameInterval, tickFrame)
}

func (p *Picker[T]) advance() tea.Cmd {
	pos, landed := p.glide.step()
	p.offset = pos
	if landed {
		return p.arm(p.cfg.settleDelay, tickSettled)
	}
	return p.arm(frameInterval, tickFrame)
}

// arm schedules the next timer and invalidates any earlier one.
func (p *Picker[T]) arm(d time.Duration, kind tickKind) tea.Cmd {
	p.tag++
	id, tag := p.id, p.tag
	return p.cfg.tick(d, func(_ time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag, kind: kind}
	})
}

func (p *Picker[T]) notify(v T) {
	if p.onChange != nil {
		p.onChange(v)
	}
}

// Close invalidates pending timers. A closed picker ignores all input.
func (p *Picker[T]) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.tag++
	p.glide.stop()
	p.ptr = pointer{}
	p.phase = PhaseIdle
	events.Picker.Close(p.cfg.label)
}

func (p *Picker[T]) format(v T) string {
	if p.cfg.format != nil {
		return p.cfg.format(v)
	}
	return fmt.Sprint(v)
}

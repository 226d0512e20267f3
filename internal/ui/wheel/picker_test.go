package wheel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newIntPicker(t *testing.T, options []int, value int, rec *recorder[int], opts ...Option) (*Picker[int], *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{clock.option(), WithItemHeight(2)}, opts...)
	return New(options, value, rec.onChange, opts...), clock
}

func TestNewResolvesIndexFromValue(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	if p.Index() != 2 {
		t.Fatalf("expected index 2, got %d", p.Index())
	}
	if p.Offset() != 4 {
		t.Fatalf("expected offset 4, got %v", p.Offset())
	}
	if p.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %s", p.Phase())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("construction must not report a change")
	}
}

func TestNewCopiesOptions(t *testing.T) {
	opts := []int{1, 2, 3}
	p := New(opts, 1, nil)
	opts[0] = 99
	if got := p.Options()[0]; got != 1 {
		t.Fatalf("expected picker to keep its own copy, got %d", got)
	}
}

func TestSetValueIdempotent(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	p.SetValue(3)
	p.SetValue(3)
	if p.Index() != 2 || p.Offset() != 4 {
		t.Fatalf("resync changed state: index %d offset %v", p.Index(), p.Offset())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("resync must not call onChange, got %v", rec.calls)
	}
}

func TestSetValueWhileIdleResyncsViewport(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	p.SetValue(5)
	if p.Index() != 4 || p.Offset() != 8 {
		t.Fatalf("expected index 4 offset 8, got %d %v", p.Index(), p.Offset())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("external change must not call onChange")
	}
}

func TestSelectRoundTrip(t *testing.T) {
	options := []string{"None", "1'", "1'2\"", "2'"}
	for i, want := range options {
		rec := &recorder[string]{}
		clock := newFakeClock()
		p := New(options, "None", rec.onChange, clock.option())
		drain(p, p.Select(i))
		if len(rec.calls) != 1 || rec.calls[0] != want {
			t.Fatalf("select %d: expected one onChange(%q), got %v", i, want, rec.calls)
		}
		if p.Index() != i {
			t.Fatalf("select %d: index = %d", i, p.Index())
		}
		if p.Phase() != PhaseIdle {
			t.Fatalf("select %d: expected idle after settle, got %s", i, p.Phase())
		}
		if p.Offset() != OffsetForIndex(i, p.ItemHeight()) {
			t.Fatalf("select %d: offset %v not aligned", i, p.Offset())
		}
	}
}

func TestSelectOutOfRangeIsNoop(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3}, 1, rec)
	if cmd := p.Select(3); cmd != nil {
		t.Fatalf("expected nil command")
	}
	if cmd := p.Select(-1); cmd != nil {
		t.Fatalf("expected nil command")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unexpected onChange %v", rec.calls)
	}
}

func TestScrollCommitScenario(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	cmd := p.ScrollTo(OffsetForIndex(4, 2))
	if p.Phase() != PhaseDragging {
		t.Fatalf("expected dragging, got %s", p.Phase())
	}
	drain(p, cmd)
	if len(rec.calls) != 1 || rec.calls[0] != 5 {
		t.Fatalf("expected exactly onChange(5), got %v", rec.calls)
	}
	if p.Offset() != 8 {
		t.Fatalf("expected offset 8, got %v", p.Offset())
	}
	if p.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %s", p.Phase())
	}
}

func TestScrollSnapsToNearestWithGlide(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec)
	drain(p, p.ScrollTo(5.2))
	if len(rec.calls) != 1 || rec.calls[0] != 4 {
		t.Fatalf("expected onChange(4), got %v", rec.calls)
	}
	if p.Offset() != 6 {
		t.Fatalf("expected snapped offset 6, got %v", p.Offset())
	}
}

func TestScrollBackToSameValueDoesNotNotify(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	drain(p, p.ScrollTo(4.6))
	if len(rec.calls) != 0 {
		t.Fatalf("expected no onChange when nearest equals value, got %v", rec.calls)
	}
	if p.Offset() != 4 {
		t.Fatalf("expected offset to snap back to 4, got %v", p.Offset())
	}
}

func TestDebounceCoalescesScrollEvents(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec)
	var pending []tea.Cmd
	for i := 0; i < 6; i++ {
		pending = append(pending, p.ScrollBy(1))
	}
	if len(rec.calls) != 0 {
		t.Fatalf("no commit expected while scrolling, got %v", rec.calls)
	}
	for _, cmd := range pending[:len(pending)-1] {
		if follow := p.Update(cmd()); follow != nil {
			t.Fatalf("superseded timer must be dropped")
		}
	}
	if len(rec.calls) != 0 {
		t.Fatalf("stale timers committed: %v", rec.calls)
	}
	drain(p, pending[len(pending)-1])
	if len(rec.calls) != 1 || rec.calls[0] != 4 {
		t.Fatalf("expected one commit of 4, got %v", rec.calls)
	}
}

func TestGesturePrecedenceOverExternalValue(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	cmd := p.ScrollTo(8)
	p.SetValue(1)
	if p.Index() != 4 || p.Offset() != 8 {
		t.Fatalf("external value overrode gesture: index %d offset %v", p.Index(), p.Offset())
	}
	drain(p, cmd)
	if p.Index() != 4 {
		t.Fatalf("expected gesture to win, index %d", p.Index())
	}
	if len(rec.calls) != 1 || rec.calls[0] != 5 {
		t.Fatalf("expected onChange(5), got %v", rec.calls)
	}
}

func TestExternalValueHeldUntilIdle(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 3, rec)
	cmd := p.Select(0)
	if p.Phase() != PhaseSettling {
		t.Fatalf("expected settling, got %s", p.Phase())
	}
	p.SetValue(4)
	if p.Index() != 0 {
		t.Fatalf("value applied mid-transition, index %d", p.Index())
	}
	drain(p, cmd)
	if p.Index() != 3 || p.Offset() != 6 {
		t.Fatalf("expected held value applied on idle, index %d offset %v", p.Index(), p.Offset())
	}
}

func TestNewGestureCancelsPendingSettle(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec)
	stale := p.Select(2)
	cmd := p.ScrollTo(0.4)
	if follow := p.Update(stale()); follow != nil {
		t.Fatalf("interrupted transition must not continue")
	}
	if p.Phase() != PhaseDragging {
		t.Fatalf("expected dragging after interruption, got %s", p.Phase())
	}
	drain(p, cmd)
	if p.Index() != 0 {
		t.Fatalf("expected index 0, got %d", p.Index())
	}
	if len(rec.calls) != 2 || rec.calls[1] != 1 {
		t.Fatalf("expected select then commit back to 1, got %v", rec.calls)
	}
}

func TestNudgeScenarioCommitsImmediately(t *testing.T) {
	rec := &recorder[string]{}
	clock := newFakeClock()
	p := New([]string{"None", "1'", "2'"}, "None", rec.onChange, clock.option())
	cmd := p.Nudge(1)
	if len(rec.calls) != 1 || rec.calls[0] != "1'" {
		t.Fatalf("expected immediate onChange(\"1'\"), got %v", rec.calls)
	}
	if p.Index() != 1 {
		t.Fatalf("expected index 1, got %d", p.Index())
	}
	drain(p, cmd)
	if len(rec.calls) != 1 {
		t.Fatalf("settle must not notify again, got %v", rec.calls)
	}
}

func TestNudgeRateLimited(t *testing.T) {
	rec := &recorder[int]{}
	p, clock := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec)
	p.Nudge(1)
	clock.advance(DefaultWheelInterval / 2)
	if cmd := p.Nudge(1); cmd != nil {
		t.Fatalf("expected second wheel step to be dropped")
	}
	if p.Index() != 1 || len(rec.calls) != 1 {
		t.Fatalf("dropped step moved the picker: index %d calls %v", p.Index(), rec.calls)
	}
	clock.advance(DefaultWheelInterval)
	p.Nudge(1)
	if p.Index() != 2 || len(rec.calls) != 2 {
		t.Fatalf("expected step after interval, index %d calls %v", p.Index(), rec.calls)
	}
}

func TestStepIsNotRateLimited(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec)
	p.Step(1)
	p.Step(1)
	p.Step(1)
	if p.Index() != 3 {
		t.Fatalf("expected index 3, got %d", p.Index())
	}
	if len(rec.calls) != 3 || rec.calls[2] != 4 {
		t.Fatalf("unexpected calls %v", rec.calls)
	}
}

func TestClampingAtEnds(t *testing.T) {
	rec := &recorder[int]{}
	p, clock := newIntPicker(t, []int{1, 2, 3}, 1, rec)
	if cmd := p.Nudge(-1); cmd != nil {
		t.Fatalf("expected no command at the top edge")
	}
	if cmd := p.Step(-1); cmd != nil {
		t.Fatalf("expected no command at the top edge")
	}
	p.SetValue(3)
	clock.advance(DefaultWheelInterval)
	if cmd := p.Nudge(1); cmd != nil {
		t.Fatalf("expected no command at the bottom edge")
	}
	if p.Index() != 2 || len(rec.calls) != 0 {
		t.Fatalf("clamped move changed state: index %d calls %v", p.Index(), rec.calls)
	}
}

func TestClampedNudgeDoesNotConsumeInterval(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3}, 1, rec)
	p.Nudge(-1)
	p.Nudge(1)
	if p.Index() != 1 {
		t.Fatalf("expected edge bounce not to throttle the next step, index %d", p.Index())
	}
}

func TestAbsentValueScenario(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{10, 20, 30}, 99, rec)
	if p.Index() != -1 {
		t.Fatalf("expected index -1, got %d", p.Index())
	}
	if _, ok := p.Active(); ok {
		t.Fatalf("expected no active option")
	}
	if out := p.View(false, DefaultStyles()); out == "" {
		t.Fatalf("expected a rendered frame")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unexpected onChange %v", rec.calls)
	}
}

func TestNudgeFromAbsentValueSelectsFirst(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{10, 20, 30}, 99, rec)
	p.Step(1)
	if p.Index() != 0 || len(rec.calls) != 1 || rec.calls[0] != 10 {
		t.Fatalf("expected first option selected, index %d calls %v", p.Index(), rec.calls)
	}
}

func TestEmptyOptionsAreNoops(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, nil, 1, rec)
	if p.Index() != -1 {
		t.Fatalf("expected -1, got %d", p.Index())
	}
	cmds := []tea.Cmd{p.ScrollBy(3), p.Nudge(1), p.Step(1), p.Select(0), p.Press(2)}
	for i, cmd := range cmds {
		if cmd != nil {
			t.Fatalf("operation %d returned a command on an empty picker", i)
		}
	}
	if p.Phase() != PhaseIdle || len(rec.calls) != 0 {
		t.Fatalf("empty picker changed state")
	}
	_ = p.View(true, DefaultStyles())
}

func TestSetOptionsShrinkWhileIdle(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 5, rec)
	p.SetOptions([]int{1, 2, 3})
	if p.Index() != -1 {
		t.Fatalf("expected -1 when value leaves the list, got %d", p.Index())
	}
	if p.Offset() != 4 {
		t.Fatalf("expected offset clamped to 4, got %v", p.Offset())
	}
	p.SetOptions([]int{5, 6})
	if p.Index() != 0 || p.Offset() != 0 {
		t.Fatalf("expected resync to 0, got %d %v", p.Index(), p.Offset())
	}
}

func TestSetOptionsShrinkWhileDragging(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec)
	cmd := p.ScrollTo(8)
	p.SetOptions([]int{1, 2})
	if p.Index() != 1 || p.Offset() != 2 {
		t.Fatalf("expected clamp to index 1 offset 2, got %d %v", p.Index(), p.Offset())
	}
	drain(p, cmd)
	if len(rec.calls) != 1 || rec.calls[0] != 2 {
		t.Fatalf("expected commit of 2, got %v", rec.calls)
	}
	p.SetOptions(nil)
	if p.Index() != -1 {
		t.Fatalf("expected -1 for empty list, got %d", p.Index())
	}
}

func TestCloseDropsPendingCommit(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3}, 1, rec)
	cmd := p.ScrollTo(4)
	p.Close()
	drain(p, cmd)
	if len(rec.calls) != 0 {
		t.Fatalf("closed picker committed %v", rec.calls)
	}
	if cmd := p.Step(1); cmd != nil {
		t.Fatalf("closed picker accepted input")
	}
}

func TestTicksForOtherPickersIgnored(t *testing.T) {
	rec := &recorder[int]{}
	a, _ := newIntPicker(t, []int{1, 2, 3}, 1, rec)
	b, _ := newIntPicker(t, []int{1, 2, 3}, 1, rec)
	cmd := a.ScrollTo(4)
	if follow := b.Update(cmd()); follow != nil {
		t.Fatalf("picker handled another picker's tick")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unexpected commit %v", rec.calls)
	}
}

func TestDuplicatesResolveToFirstMatch(t *testing.T) {
	p := New([]string{"A", "B", "A"}, "A", nil)
	if p.Index() != 0 {
		t.Fatalf("expected first match, got %d", p.Index())
	}
}

type dimension struct {
	inches int
	label  string
}

func TestNewFuncUsesExplicitEquality(t *testing.T) {
	options := []dimension{{12, "1'"}, {24, "2'"}}
	equal := func(a, b dimension) bool { return a.inches == b.inches }
	p := NewFunc(options, dimension{inches: 24}, equal, nil,
		WithFormat(func(d dimension) string { return d.label }))
	if p.Index() != 1 {
		t.Fatalf("expected index 1, got %d", p.Index())
	}
}

func TestNewFuncRequiresEquality(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil equality")
		}
	}()
	NewFunc([]int{1}, 1, nil, nil)
}

func TestSmoothScrollDisabledJumps(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec, WithSmoothScroll(false))
	p.Select(4)
	if p.Offset() != 8 {
		t.Fatalf("expected immediate jump to 8, got %v", p.Offset())
	}
}

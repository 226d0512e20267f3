package wheel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestIndexAtRow(t *testing.T) {
	p := New([]int{1, 2, 3, 4, 5}, 1, nil, WithItemHeight(2), WithVisibleRows(7))
	tests := map[int]int{0: -1, 1: -1, 2: 0, 3: 0, 4: 1, 5: 1, 6: 2, 7: -1}
	for row, want := range tests {
		if got := p.IndexAtRow(row); got != want {
			t.Fatalf("IndexAtRow(%d) = %d, want %d", row, got, want)
		}
	}
}

func TestTapSelectsRow(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec, WithVisibleRows(7))
	p.Press(5)
	drain(p, p.Release(5))
	if len(rec.calls) != 1 || rec.calls[0] != 2 {
		t.Fatalf("expected tap to select 2, got %v", rec.calls)
	}
	if p.Index() != 1 {
		t.Fatalf("expected index 1, got %d", p.Index())
	}
}

func TestTapOnEmptyRowIsIgnored(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3}, 1, rec, WithVisibleRows(7))
	p.Press(0)
	if cmd := p.Release(0); cmd != nil {
		t.Fatalf("expected no command for a blank row")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unexpected onChange %v", rec.calls)
	}
}

func TestDragFollowsPointer(t *testing.T) {
	rec := &recorder[int]{}
	p, _ := newIntPicker(t, []int{1, 2, 3, 4, 5}, 1, rec, WithVisibleRows(7))
	p.Press(3)
	p.Motion(2)
	cmd := p.Motion(1)
	if p.Offset() != 2 || p.Phase() != PhaseDragging {
		t.Fatalf("expected offset 2 while dragging, got %v %s", p.Offset(), p.Phase())
	}
	p.Release(1)
	if p.Phase() != PhaseSettling {
		t.Fatalf("expected settling after release, got %s", p.Phase())
	}
	drain(p, cmd)
	if len(rec.calls) != 1 || rec.calls[0] != 2 {
		t.Fatalf("expected commit of 2, got %v", rec.calls)
	}
	if p.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %s", p.Phase())
	}
}

func TestMouseWheelNudges(t *testing.T) {
	rec := &recorder[string]{}
	clock := newFakeClock()
	p := New([]string{"None", "1'", "2'"}, "None", rec.onChange, clock.option())
	p.Mouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, 0)
	if len(rec.calls) != 1 || rec.calls[0] != "1'" {
		t.Fatalf("expected wheel down to select 1', got %v", rec.calls)
	}
	clock.advance(DefaultWheelInterval)
	p.Mouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, 0)
	if p.Index() != 0 {
		t.Fatalf("expected wheel up back to 0, got %d", p.Index())
	}
}

func TestMouseMotionWithoutPressIgnored(t *testing.T) {
	p := New([]int{1, 2, 3}, 1, nil)
	if cmd := p.Mouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 4); cmd != nil {
		t.Fatalf("expected no command")
	}
	if p.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %s", p.Phase())
	}
}

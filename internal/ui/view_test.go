package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/ui/wheel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsForm(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	view := h.View()
	for _, want := range []string{"TAKEOFF", "Address", "QTY", "WIDTH", "HEIGHT", "TRANSOM", "TEMPERED", "ADD WINDOW", "No items yet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "LH") {
		t.Fatalf("handing toggles must be hidden for windows")
	}
}

func TestViewShowsDoorToggles(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	h.Model().setType(inventory.TypeDoor)
	view := h.View()
	for _, want := range []string{"ADD DOOR", "LH", "RH", "IS", "OS", "door entry"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in door view:\n%s", want, view)
		}
	}
}

func TestViewRespectsWidthAndHeight(t *testing.T) {
	h := newTestHarness(t, Options{Width: 30, Height: 12})
	lines := strings.Split(h.View(), "\n")
	if len(lines) > 12 {
		t.Fatalf("expected at most 12 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 30 {
			t.Fatalf("line %d is %d wide: %q", i, w, line)
		}
	}
}

func TestViewLayoutMatchesPickerTop(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	m := h.Model()
	lines := strings.Split(h.View(), "\n")
	if got := lines[m.pickerTop()]; !strings.Contains(got, "QTY") {
		t.Fatalf("expected picker labels on row %d, got %q", m.pickerTop(), got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	lines = strings.Split(h.View(), "\n")
	if got := lines[m.listTop()]; !strings.Contains(got, "3050") {
		t.Fatalf("expected first item on row %d, got %q", m.listTop(), got)
	}
}

func TestWindowSizeMsgResizesUnlessFixed(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(tea.WindowSizeMsg{Width: 70, Height: 30})
	if m := h.Model(); m.width != 70 || m.height != 30 {
		t.Fatalf("expected 70x30, got %dx%d", m.width, m.height)
	}

	h = newTestHarness(t, Options{Width: 50})
	h.Send(tea.WindowSizeMsg{Width: 70, Height: 30})
	if m := h.Model(); m.width != 50 || m.height != 30 {
		t.Fatalf("expected fixed width 50 and height 30, got %dx%d", m.width, m.height)
	}
}

// pickerCell returns a screen cell inside p at viewport row.
func pickerCell(m *Model, p wheel.Control, row int) (int, int) {
	left := 1
	for _, other := range m.entryPickers() {
		if other == p {
			break
		}
		left += other.Width() + pickerGap
	}
	return left + 2, m.pickerTop() + p.StripTop() + row
}

func TestMouseWheelNudgesPicker(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	m := h.Model()
	x, y := pickerCell(m, m.widthPicker, 3)
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.Draft().Width; got != 37 {
		t.Fatalf("expected width 37 after wheel, got %d", got)
	}
	if m.focus != focusQty {
		t.Fatalf("wheel must not move focus, got %s", m.focus)
	}
}

func TestMouseTapSelectsOption(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	m := h.Model()
	center := m.qtyPicker.VisibleRows() / 2
	x, y := pickerCell(m, m.qtyPicker, center+2)
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.dragging == nil {
		t.Fatalf("expected press to start a gesture")
	}
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.dragging != nil {
		t.Fatalf("expected release to end the gesture")
	}
	if got := m.Draft().Qty; got != 2 {
		t.Fatalf("expected tap to select qty 2, got %d", got)
	}
}

func TestMouseDragCommitsNearestOption(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	m := h.Model()
	m.setFocus(focusHeight)
	x, y := pickerCell(m, m.heightPicker, 3)
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.focus != focusHeight {
		t.Fatalf("expected height focus, got %s", m.focus)
	}
	// Dragging up four rows moves the strip two options forward.
	h.Send(tea.MouseMsg{X: x, Y: y - 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	h.Send(tea.MouseMsg{X: x + 30, Y: y - 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if got := m.Draft().Height; got != 62 {
		t.Fatalf("expected height 62 after drag, got %d", got)
	}
	if phase := m.heightPicker.Phase(); phase != wheel.PhaseIdle {
		t.Fatalf("expected height picker idle, got %s", phase)
	}
}

func TestMousePressFocusesPicker(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	m := h.Model()
	x, y := pickerCell(m, m.transomPicker, 3)
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.focus != focusTransom {
		t.Fatalf("expected transom focus, got %s", m.focus)
	}
}

func TestListMouseClickFocusesList(t *testing.T) {
	h := newTestHarness(t, Options{Width: 90, Height: 50})
	m := h.Model()
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	h.Send(tea.MouseMsg{X: 4, Y: m.listTop() + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.focus != focusList {
		t.Fatalf("expected list focus, got %s", m.focus)
	}
	if m.list.Cursor != 1 {
		t.Fatalf("expected cursor on second row, got %d", m.list.Cursor)
	}
}

func TestInfoExpires(t *testing.T) {
	m := newTestModel(t, Options{})
	m.setInfo("hello")
	if m.currentInfo() != "hello" {
		t.Fatalf("expected info to be visible")
	}
	m.infoExpire = m.infoExpire.Add(-2 * infoTimeout)
	if m.currentInfo() != "" {
		t.Fatalf("expected info to expire")
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := limitHeight([]string{"a", "b", "c", "d"}, 3, 10)
	if len(lines) != 3 || lines[2] != "…" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

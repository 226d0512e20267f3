package wheel

import tea "github.com/charmbracelet/bubbletea"

// pointer tracks a left-button gesture on the strip.
type pointer struct {
	active  bool
	moved   bool
	lastRow int
}

// Press starts a pointer gesture at viewport row.
func (p *Picker[T]) Press(row int) tea.Cmd {
	if p.closed || len(p.options) == 0 {
		return nil
	}
	p.ptr = pointer{active: true, lastRow: row}
	return nil
}

// Motion drags the strip so the content follows the pointer.
func (p *Picker[T]) Motion(row int) tea.Cmd {
	if !p.ptr.active || row == p.ptr.lastRow {
		return nil
	}
	delta := p.ptr.lastRow - row
	p.ptr.lastRow = row
	p.ptr.moved = true
	return p.ScrollBy(float64(delta))
}

// Release ends the gesture. A press without motion is a tap and selects the
// option under the pointer.
func (p *Picker[T]) Release(row int) tea.Cmd {
	if !p.ptr.active {
		return nil
	}
	tap := !p.ptr.moved
	p.ptr = pointer{}
	if tap {
		return p.Select(p.IndexAtRow(row))
	}
	return p.EndGesture()
}

// Mouse routes a mouse message whose coordinates have been translated to a
// viewport row. Rows outside [0, visibleRows) still drive an active drag.
func (p *Picker[T]) Mouse(msg tea.MouseMsg, row int) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			return p.Nudge(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			return p.Nudge(1)
		}
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return p.Press(row)
		}
	case tea.MouseActionMotion:
		return p.Motion(row)
	case tea.MouseActionRelease:
		return p.Release(row)
	}
	return nil
}

// Dragging reports whether a pointer gesture is in progress.
func (p *Picker[T]) Dragging() bool { return p.ptr.active }

// IndexAtRow returns the option drawn at viewport row, or -1 for a row
// that shows no option.
func (p *Picker[T]) IndexAtRow(row int) int {
	if row < 0 || row >= p.cfg.visibleRows {
		return -1
	}
	strip := p.stripRow(row)
	h := p.cfg.itemHeight
	if strip < 0 || strip >= len(p.options)*h {
		return -1
	}
	return strip / h
}

// stripRow maps a viewport row to a row of the full option strip.
func (p *Picker[T]) stripRow(row int) int {
	return roundOffset(p.offset) + p.cfg.itemHeight/2 + (row - p.cfg.visibleRows/2)
}

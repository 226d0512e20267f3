package ui

import (
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/atomicstack/takeoff/internal/ui/wheel"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusID int

const (
	focusAddress focusID = iota
	focusWindowSpec
	focusDoorSpec
	focusQty
	focusWidth
	focusHeight
	focusTransom
	focusType
	focusTempered
	focusDrywall
	focusHanding
	focusSwing
	focusAdd
	focusList
	focusCount
)

var focusNames = [...]string{
	focusAddress:    "address",
	focusWindowSpec: "window-spec",
	focusDoorSpec:   "door-spec",
	focusQty:        "qty",
	focusWidth:      "width",
	focusHeight:     "height",
	focusTransom:    "transom",
	focusType:       "type",
	focusTempered:   "tempered",
	focusDrywall:    "drywall",
	focusHanding:    "handing",
	focusSwing:      "swing",
	focusAdd:        "add",
	focusList:       "list",
}

func (f focusID) String() string {
	if f < 0 || f >= focusCount {
		return "unknown"
	}
	return focusNames[f]
}

const (
	jobAddress = iota
	jobWindowSpec
	jobDoorSpec
)

func (m *Model) initJobInputs() {
	specs := []struct {
		prompt      string
		placeholder string
	}{
		{"Address     ", "123 Main St"},
		{"Window spec ", "e.g. vinyl, white"},
		{"Door spec   ", "e.g. 6-panel, primed"},
	}
	m.jobInputs = make([]textinput.Model, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Prompt = spec.prompt
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 120
		ti.Cursor.SetMode(m.cursorMode)
		m.jobInputs[i] = ti
	}
	m.applyCursorStyles()
}

// focusAvailable reports whether f is part of the focus ring for the
// current draft. Handing and swing only exist for doors.
func (m *Model) focusAvailable(f focusID) bool {
	switch f {
	case focusHanding, focusSwing:
		return m.draft.IsDoor()
	}
	return f >= 0 && f < focusCount
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := m.focus
	for i := 0; i < int(focusCount); i++ {
		next = focusID((int(next) + delta + int(focusCount)) % int(focusCount))
		if m.focusAvailable(next) {
			break
		}
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(f focusID) tea.Cmd {
	if !m.focusAvailable(f) || f == m.focus {
		return nil
	}
	if m.focus == focusList && m.filtering {
		m.stopFiltering()
	}
	m.focus = f
	events.UI.Focus(f.String())
	return m.syncInputFocus()
}

// syncInputFocus focuses the job input that owns the focus and blurs the
// rest.
func (m *Model) syncInputFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.jobInputs {
		if m.jobInputIndex() == i {
			cmd = m.jobInputs[i].Focus()
			continue
		}
		m.jobInputs[i].Blur()
	}
	return cmd
}

func (m *Model) jobInputIndex() int {
	switch m.focus {
	case focusAddress:
		return jobAddress
	case focusWindowSpec:
		return jobWindowSpec
	case focusDoorSpec:
		return jobDoorSpec
	}
	return -1
}

// typing reports whether printable keys belong to a text field.
func (m *Model) typing() bool {
	return m.jobInputIndex() >= 0 || (m.focus == focusList && m.filtering)
}

// updateFocusedInput forwards messages no handler claimed, such as cursor
// blinks, to the focused job input.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	idx := m.jobInputIndex()
	if idx < 0 {
		return nil
	}
	var cmd tea.Cmd
	m.jobInputs[idx], cmd = m.jobInputs[idx].Update(msg)
	return cmd
}

// focusedPicker returns the entry picker owning the focus, if any.
func (m *Model) focusedPicker() wheel.Control {
	switch m.focus {
	case focusQty:
		return m.qtyPicker
	case focusWidth:
		return m.widthPicker
	case focusHeight:
		return m.heightPicker
	case focusTransom:
		return m.transomPicker
	}
	return nil
}

func (m *Model) pickerFocus(p wheel.Control) focusID {
	switch p {
	case wheel.Control(m.qtyPicker):
		return focusQty
	case wheel.Control(m.widthPicker):
		return focusWidth
	case wheel.Control(m.heightPicker):
		return focusHeight
	case wheel.Control(m.transomPicker):
		return focusTransom
	}
	return -1
}

package ui

import (
	"fmt"
	"slices"

	"github.com/atomicstack/takeoff/internal/catalog"
	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/atomicstack/takeoff/internal/ui/wheel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func inchLabel(v int) string { return fmt.Sprintf("%d\"", v) }

func (m *Model) initDraft(cat *catalog.Catalog) {
	m.types = slices.Clone(cat.Types)
	m.draft = inventory.Draft{
		Qty:     cat.Defaults.Qty,
		Width:   cat.Defaults.Width,
		Height:  cat.Defaults.Height,
		Type:    cat.Defaults.Type,
		Transom: cat.Defaults.Transom,
		Handing: inventory.HandingNone,
		Swing:   inventory.SwingNone,
	}
}

func (m *Model) pickerOptions(opts ...wheel.Option) []wheel.Option {
	out := make([]wheel.Option, 0, len(opts)+len(m.pickerOpts))
	out = append(out, opts...)
	return append(out, m.pickerOpts...)
}

func (m *Model) initPickers(cat *catalog.Catalog) {
	m.qtyPicker = wheel.New(cat.Quantity.Values(), m.draft.Qty, func(v int) {
		m.draft.Qty = v
	}, m.pickerOptions(wheel.WithLabel("QTY"), wheel.WithWidth(3))...)
	m.widthPicker = wheel.New(cat.Width.Values(), m.draft.Width, func(v int) {
		m.draft.Width = v
	}, m.pickerOptions(wheel.WithLabel("WIDTH"), wheel.WithFormat(inchLabel), wheel.WithWidth(4))...)
	m.heightPicker = wheel.New(cat.Height.Values(), m.draft.Height, m.setHeight, m.pickerOptions(wheel.WithLabel("HEIGHT"), wheel.WithFormat(inchLabel), wheel.WithWidth(4))...)
	m.transomPicker = wheel.New(cat.Transoms, m.draft.Transom, func(v string) {
		m.draft.Transom = v
	}, m.pickerOptions(wheel.WithLabel("TRANSOM"), wheel.WithWidth(7))...)
}

// entryPickers lists the form pickers in screen order.
func (m *Model) entryPickers() []wheel.Control {
	return []wheel.Control{m.qtyPicker, m.widthPicker, m.heightPicker, m.transomPicker}
}

// allPickers includes the pickers of an open theme modal, which receive
// timer ticks like the form's own.
func (m *Model) allPickers() []wheel.Control {
	pickers := m.entryPickers()
	if m.themeForm != nil {
		pickers = append(pickers, m.themeForm.pickers()...)
	}
	return pickers
}

// setType switches the item type. Doors have a minimum height, so a shorter
// height is raised through the height picker.
func (m *Model) setType(t string) {
	if t == "" || t == m.draft.Type {
		return
	}
	m.draft.Type = t
	if m.draft.IsDoor() && m.draft.Height < inventory.DoorMinHeight {
		m.draft.Height = inventory.DoorMinHeight
		m.heightPicker.SetValue(inventory.DoorMinHeight)
	}
}

// setHeight records a committed height. Doors stay at or above
// DoorMinHeight, and a shorter commit is pushed back into the picker.
func (m *Model) setHeight(v int) {
	if m.draft.IsDoor() && v < inventory.DoorMinHeight {
		v = inventory.DoorMinHeight
		m.heightPicker.SetValue(v)
	}
	m.draft.Height = v
}

func (m *Model) shiftType(delta int) {
	if len(m.types) == 0 {
		return
	}
	idx := slices.Index(m.types, m.draft.Type)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(m.types)) % len(m.types)
	}
	m.setType(m.types[idx])
}

func (m *Model) toggleHanding(h inventory.Handing) {
	if !m.draft.IsDoor() {
		return
	}
	if m.draft.Handing == h {
		m.draft.Handing = inventory.HandingNone
		return
	}
	m.draft.Handing = h
}

func (m *Model) toggleSwing(s inventory.Swing) {
	if !m.draft.IsDoor() {
		return
	}
	if m.draft.Swing == s {
		m.draft.Swing = inventory.SwingNone
		return
	}
	m.draft.Swing = s
}

func (m *Model) addButtonLabel() string {
	if m.draft.IsDoor() {
		return "ADD DOOR"
	}
	return "ADD WINDOW"
}

// addItem stores the draft. The draft is kept so similar items can be
// entered in a row.
func (m *Model) addItem() tea.Cmd {
	it := m.items.Add(m.draft)
	label := inventory.Label(it)
	events.Inventory.Add(it.ID, label, it.Qty)
	m.refreshInventory()
	if idx := m.list.IndexOf(it.ID); idx >= 0 {
		m.list.Cursor = idx
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Added %d× %s", it.Qty, label))
	return nil
}

func (m *Model) handleEntryKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p := m.focusedPicker(); p != nil {
		return m.handlePickerKey(p, msg)
	}
	keys := m.keys
	switch m.focus {
	case focusType:
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
			m.shiftType(-1)
			return true, nil
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down), key.Matches(msg, keys.Toggle):
			m.shiftType(1)
			return true, nil
		}
	case focusTempered:
		if key.Matches(msg, keys.Toggle) {
			m.draft.Tempered = !m.draft.Tempered
			return true, nil
		}
	case focusDrywall:
		if key.Matches(msg, keys.Toggle) {
			m.draft.Drywall = !m.draft.Drywall
			return true, nil
		}
	case focusHanding:
		switch msg.String() {
		case "l":
			m.toggleHanding(inventory.HandingLH)
			return true, nil
		case "r":
			m.toggleHanding(inventory.HandingRH)
			return true, nil
		}
		if key.Matches(msg, keys.Toggle) {
			m.cycleHanding()
			return true, nil
		}
	case focusSwing:
		switch msg.String() {
		case "i":
			m.toggleSwing(inventory.SwingIS)
			return true, nil
		case "o":
			m.toggleSwing(inventory.SwingOS)
			return true, nil
		}
		if key.Matches(msg, keys.Toggle) {
			m.cycleSwing()
			return true, nil
		}
	case focusAdd:
		if key.Matches(msg, keys.Toggle) {
			return true, m.addItem()
		}
	}
	return false, nil
}

func (m *Model) cycleHanding() {
	switch m.draft.Handing {
	case inventory.HandingLH:
		m.toggleHanding(inventory.HandingRH)
	case inventory.HandingRH:
		m.toggleHanding(inventory.HandingRH)
	default:
		m.toggleHanding(inventory.HandingLH)
	}
}

func (m *Model) cycleSwing() {
	switch m.draft.Swing {
	case inventory.SwingIS:
		m.toggleSwing(inventory.SwingOS)
	case inventory.SwingOS:
		m.toggleSwing(inventory.SwingOS)
	default:
		m.toggleSwing(inventory.SwingIS)
	}
}

func (m *Model) handlePickerKey(p wheel.Control, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Dec):
		return true, p.Step(-1)
	case key.Matches(msg, keys.Down), key.Matches(msg, keys.Inc):
		return true, p.Step(1)
	case key.Matches(msg, keys.Home):
		return true, p.Select(0)
	case key.Matches(msg, keys.End):
		return true, p.Select(p.Len() - 1)
	case key.Matches(msg, keys.Toggle):
		return true, m.cycleFocus(1)
	}
	return false, nil
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// confirmModal wraps a huh confirm field that guards clearing the inventory.
type confirmModal struct {
	form  *huh.Form
	value bool
}

func (m *Model) openConfirmModal() tea.Cmd {
	if m.items.Len() == 0 {
		m.setInfo("Inventory is already empty")
		return nil
	}
	cm := &confirmModal{}
	cm.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Clear all %d items?", m.items.Len())).
				Affirmative("Clear").
				Negative("Cancel").
				Value(&cm.value),
		),
	).WithShowHelp(false).WithTheme(huh.ThemeCharm())
	cm.form.SubmitCmd = nil
	cm.form.CancelCmd = nil
	m.confirm = cm
	m.setMode(ModeConfirm)
	return cm.form.Init()
}

func (m *Model) closeConfirmModal() {
	m.confirm = nil
	m.setMode(ModeEntry)
}

func (m *Model) handleConfirmModal(msg tea.Msg) (bool, tea.Cmd) {
	cm := m.confirm
	if cm == nil {
		return false, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.closeConfirmModal()
		return true, nil
	}
	model, cmd := cm.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		cm.form = form
	}
	switch cm.form.State {
	case huh.StateCompleted:
		confirmed := cm.value
		m.closeConfirmModal()
		if confirmed {
			m.clearInventory()
		}
		return true, nil
	case huh.StateAborted:
		m.closeConfirmModal()
		return true, nil
	}
	return true, cmd
}

func (m *Model) viewConfirmModal() string {
	return m.styles.Modal.Render(m.confirm.form.View())
}

package ui

import (
	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.keys
	switch {
	case key.Matches(keyMsg, keys.Next):
		return m.cycleFocus(1)
	case key.Matches(keyMsg, keys.Prev):
		return m.cycleFocus(-1)
	case key.Matches(keyMsg, keys.Add):
		return m.addItem()
	}

	if idx := m.jobInputIndex(); idx >= 0 {
		return m.handleJobInputKey(idx, keyMsg)
	}

	if m.focus == focusList {
		if handled, cmd := m.handleListKey(keyMsg); handled {
			return cmd
		}
	} else if handled, cmd := m.handleEntryKey(keyMsg); handled {
		return cmd
	}

	switch {
	case key.Matches(keyMsg, keys.ExportCSV):
		return m.exportCmd(inventory.FormatCSV)
	case key.Matches(keyMsg, keys.ExportXLS):
		return m.exportCmd(inventory.FormatXLSX)
	case key.Matches(keyMsg, keys.Theme):
		return m.openThemeModal()
	case key.Matches(keyMsg, keys.Settings):
		return m.openSettingsModal()
	case key.Matches(keyMsg, keys.Clear):
		return m.openConfirmModal()
	case key.Matches(keyMsg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(keyMsg, keys.Back):
		m.errMsg = ""
		m.forceClearInfo()
		if m.list.ClearFilter() {
			events.Filter.Cleared(m.list.ID)
			m.syncListViewport()
		}
		return nil
	case key.Matches(keyMsg, keys.Quit):
		events.App.Stop("quit")
		return tea.Quit
	}
	return nil
}

// handleJobInputKey lets the focused job input consume the key. Enter moves
// on to the next field and esc leaves the header for the first picker.
func (m *Model) handleJobInputKey(idx int, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return m.cycleFocus(1)
	case tea.KeyEsc:
		return m.setFocus(focusQty)
	}
	var cmd tea.Cmd
	m.jobInputs[idx], cmd = m.jobInputs[idx].Update(msg)
	return cmd
}

package ui

import (
	"slices"

	"github.com/atomicstack/takeoff/internal/backend"
	"github.com/atomicstack/takeoff/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		return nil
	}
	m.backendLastErr = ""
	if res.CatalogUpdated {
		m.applyCatalog(m.catalogs.Catalog())
	}
	return nil
}

// applyCatalog pushes new option lists into the form. Pickers receive them
// through SetOptions and keep the draft's values where they still exist.
func (m *Model) applyCatalog(cat *catalog.Catalog) {
	if cat == nil {
		return
	}
	m.types = slices.Clone(cat.Types)
	if !slices.Contains(m.types, m.draft.Type) && len(m.types) > 0 {
		m.setType(m.types[0])
	}
	m.qtyPicker.SetOptions(cat.Quantity.Values())
	m.widthPicker.SetOptions(cat.Width.Values())
	m.heightPicker.SetOptions(cat.Height.Values())
	m.transomPicker.SetOptions(cat.Transoms)
	if m.settingsForm != nil {
		m.settingsForm.sync(cat)
	}
}

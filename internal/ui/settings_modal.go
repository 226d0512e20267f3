package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/takeoff/internal/catalog"
	"github.com/atomicstack/takeoff/internal/logging/events"
	uistate "github.com/atomicstack/takeoff/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsTypes = iota
	settingsTransoms
	settingsSections
)

const settingsListRows = 6

// settingsModal edits the type and transom lists of the catalog. Each
// section has an input for new entries and a list for removing them.
type settingsModal struct {
	section int
	onList  bool
	inputs  [settingsSections]textinput.Model
	lists   [settingsSections]*uistate.List
}

func entriesFor(values []string) []uistate.Entry {
	entries := make([]uistate.Entry, len(values))
	for i, v := range values {
		entries[i] = uistate.Entry{ID: v, Label: v}
	}
	return entries
}

func (m *Model) newSettingsModal() *settingsModal {
	cat := m.catalogs.Catalog()
	sm := &settingsModal{}
	placeholders := [settingsSections]string{"e.g. SLIDER", "e.g. 1'6\""}
	prompts := [settingsSections]string{"New type    ", "New transom "}
	for i := range sm.inputs {
		ti := textinput.New()
		ti.Prompt = prompts[i]
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 24
		ti.Cursor.SetMode(m.cursorMode)
		if m.styles.Cursor != nil {
			ti.Cursor.Style = m.styles.Cursor.Copy()
		}
		if m.styles.FilterPrompt != nil {
			ti.PromptStyle = m.styles.FilterPrompt.Copy()
		}
		sm.inputs[i] = ti
	}
	sm.lists[settingsTypes] = uistate.NewList("settings:types", "TYPES", entriesFor(cat.Types))
	sm.lists[settingsTransoms] = uistate.NewList("settings:transoms", "TRANSOMS", entriesFor(cat.Transoms))
	return sm
}

// sync refreshes the lists after the catalog changed underneath the modal.
func (sm *settingsModal) sync(cat *catalog.Catalog) {
	sm.lists[settingsTypes].SetEntries(entriesFor(cat.Types))
	sm.lists[settingsTransoms].SetEntries(entriesFor(cat.Transoms))
}

// focusInput focuses the input of the current section when the cursor is
// not on its list.
func (sm *settingsModal) focusInput() tea.Cmd {
	var cmd tea.Cmd
	for i := range sm.inputs {
		if i == sm.section && !sm.onList {
			cmd = sm.inputs[i].Focus()
			continue
		}
		sm.inputs[i].Blur()
	}
	return cmd
}

func (sm *settingsModal) cycle(delta int) tea.Cmd {
	// input, list for each section in order
	pos := sm.section*2 + boolToInt(sm.onList)
	total := settingsSections * 2
	pos = (pos + delta + total) % total
	sm.section = pos / 2
	sm.onList = pos%2 == 1
	return sm.focusInput()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (m *Model) openSettingsModal() tea.Cmd {
	m.settingsForm = m.newSettingsModal()
	m.setMode(ModeSettings)
	return m.settingsForm.focusInput()
}

func (m *Model) closeSettingsModal() {
	m.settingsForm = nil
	m.setMode(ModeEntry)
}

// editCatalog applies edit to a copy of the stored catalog and publishes it
// to the store and the form.
func (m *Model) editCatalog(edit func(*catalog.Catalog) error) error {
	cat := m.catalogs.Catalog()
	if err := edit(cat); err != nil {
		return err
	}
	m.catalogs.SetCatalog(cat)
	events.Catalog.Reload(m.catalogs.Source(), len(cat.Types), len(cat.Transoms))
	m.applyCatalog(cat)
	return nil
}

func (m *Model) settingsAdd() {
	sm := m.settingsForm
	input := &sm.inputs[sm.section]
	value := input.Value()
	var added string
	var ok bool
	err := m.editCatalog(func(c *catalog.Catalog) error {
		if sm.section == settingsTypes {
			added, ok = c.AddType(value)
		} else {
			added, ok = c.AddTransom(value)
		}
		if !ok {
			return fmt.Errorf("%q is empty or already listed", strings.TrimSpace(value))
		}
		return nil
	})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	input.SetValue("")
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Added %s", added))
}

func (m *Model) settingsRemove() {
	sm := m.settingsForm
	l := sm.lists[sm.section]
	current, ok := l.Current()
	if !ok {
		return
	}
	err := m.editCatalog(func(c *catalog.Catalog) error {
		if sm.section == settingsTypes {
			return c.RemoveType(current.ID)
		}
		return c.RemoveTransom(current.ID)
	})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Removed %s", current.Label))
}

func (m *Model) handleSettingsModal(msg tea.Msg) (bool, tea.Cmd) {
	sm := m.settingsForm
	if sm == nil {
		return false, nil
	}
	keys := m.keys
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if _, isMouse := msg.(tea.MouseMsg); isMouse {
			return true, nil
		}
		var cmd tea.Cmd
		sm.inputs[sm.section], cmd = sm.inputs[sm.section].Update(msg)
		return true, cmd
	}
	switch {
	case key.Matches(keyMsg, keys.Back):
		m.closeSettingsModal()
		return true, nil
	case key.Matches(keyMsg, keys.Next):
		return true, sm.cycle(1)
	case key.Matches(keyMsg, keys.Prev):
		return true, sm.cycle(-1)
	}
	if !sm.onList {
		if keyMsg.Type == tea.KeyEnter {
			m.settingsAdd()
			return true, nil
		}
		var cmd tea.Cmd
		sm.inputs[sm.section], cmd = sm.inputs[sm.section].Update(keyMsg)
		return true, cmd
	}
	l := sm.lists[sm.section]
	switch {
	case key.Matches(keyMsg, keys.Up):
		l.MoveCursor(-1)
	case key.Matches(keyMsg, keys.Down):
		l.MoveCursor(1)
	case key.Matches(keyMsg, keys.Home):
		l.MoveCursorHome()
	case key.Matches(keyMsg, keys.End):
		l.MoveCursorEnd()
	case key.Matches(keyMsg, keys.Remove):
		m.settingsRemove()
	case keyMsg.Type == tea.KeyEnter:
		m.closeSettingsModal()
	}
	l.EnsureCursorVisible(settingsListRows)
	return true, nil
}

func (m *Model) viewSettingsModal() string {
	sm := m.settingsForm
	st := m.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("SETTINGS"))
	protected := [settingsSections]string{"DOOR", "None"}
	for i := 0; i < settingsSections; i++ {
		l := sm.lists[i]
		b.WriteString("\n\n")
		b.WriteString(st.Label.Render(l.Title))
		b.WriteString("\n")
		b.WriteString(sm.inputs[i].View())
		l.EnsureCursorVisible(settingsListRows)
		for j, entry := range l.Visible(settingsListRows) {
			idx := l.ViewportOffset + j
			line := "  " + entry.Label
			style := st.Item
			if idx == l.Cursor && sm.section == i && sm.onList {
				line = "▌ " + entry.Label
				style = st.SelectedItem
			}
			if entry.ID == protected[i] {
				line += " (locked)"
			}
			b.WriteString("\n")
			b.WriteString(style.Render(line))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(st.Footer.Render("tab move • enter add • d remove • esc done"))
	return st.Modal.Render(b.String())
}

package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/takeoff/internal/format/table"
	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/logging/events"
	uistate "github.com/atomicstack/takeoff/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// refreshInventory rebuilds the list entries from the inventory.
func (m *Model) refreshInventory() {
	items := m.items.Items()
	entries := make([]uistate.Entry, len(items))
	for i, it := range items {
		entries[i] = uistate.Entry{ID: it.ID, Label: inventory.Label(it)}
	}
	m.list.SetEntries(entries)
	m.syncListViewport()
}

func (m *Model) syncListViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleListKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.filtering {
		if handled, cmd := m.handleFilterKey(msg); handled {
			return true, cmd
		}
	}
	keys := m.keys
	l := m.list
	before := l.Cursor
	switch {
	case key.Matches(msg, keys.Up):
		l.MoveCursor(-1)
	case key.Matches(msg, keys.Down):
		l.MoveCursor(1)
	case key.Matches(msg, keys.Home):
		l.MoveCursorHome()
	case key.Matches(msg, keys.End):
		l.MoveCursorEnd()
	case msg.Type == tea.KeyPgUp:
		l.MoveCursorPageUp(m.maxVisibleItems())
	case msg.Type == tea.KeyPgDown:
		l.MoveCursorPageDown(m.maxVisibleItems())
	case key.Matches(msg, keys.Inc):
		m.adjustCurrentQty(1)
	case key.Matches(msg, keys.Dec):
		m.adjustCurrentQty(-1)
	case key.Matches(msg, keys.Mark):
		l.ToggleCurrentMark()
	case key.Matches(msg, keys.Remove):
		m.removeSelected()
	case key.Matches(msg, keys.Filter):
		m.startFiltering()
	default:
		return false, nil
	}
	if l.Cursor != before {
		events.UI.ListCursor(l.ID, l.Cursor)
	}
	m.syncListViewport()
	return true, nil
}

func (m *Model) adjustCurrentQty(delta int) {
	current, ok := m.list.Current()
	if !ok {
		return
	}
	if m.items.AdjustQty(current.ID, delta) {
		if it, ok := m.items.Get(current.ID); ok {
			events.Inventory.Quantity(it.ID, it.Qty)
		}
	}
}

// removeSelected deletes the marked items, or the item under the cursor
// when nothing is marked.
func (m *Model) removeSelected() {
	ids := m.list.MarkedIDs()
	if len(ids) == 0 {
		if current, ok := m.list.Current(); ok {
			ids = []string{current.ID}
		}
	}
	removed := 0
	for _, id := range ids {
		if m.items.Remove(id) {
			events.Inventory.Remove(id)
			removed++
		}
	}
	if removed == 0 {
		return
	}
	m.list.ClearMarks()
	m.refreshInventory()
	if removed == 1 {
		m.setInfo("Removed 1 item")
	} else {
		m.setInfo(fmt.Sprintf("Removed %d items", removed))
	}
}

func (m *Model) clearInventory() {
	count := m.items.Len()
	m.items.Clear()
	m.list.ClearMarks()
	m.list.ClearFilter()
	m.refreshInventory()
	events.Inventory.Clear(count)
	m.setInfo("Inventory cleared")
}

func (m *Model) startFiltering() {
	m.filtering = true
	m.filterCursor.Focus()
	m.filterCursorDirty = true
}

func (m *Model) stopFiltering() {
	m.filtering = false
	m.filterCursor.Blur()
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.FilterCursor {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.list
	switch msg.String() {
	case "esc":
		if current.ClearFilter() {
			events.Filter.Cleared(current.ID)
		}
		m.stopFiltering()
		m.syncListViewport()
		return true, nil
	case "enter":
		m.stopFiltering()
		return true, nil
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		before := current.FilterCursor
		current.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		events.Filter.Cleared(current.ID)
		m.syncListViewport()
		return true, nil
	case "ctrl+w":
		before := current.FilterCursor
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Backspace(current.ID, current.Filter)
		m.syncListViewport()
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	current := m.list
	before := current.FilterCursor
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Append(current.ID, current.Filter)
	m.syncListViewport()
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.list
	before := current.FilterCursor
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Backspace(current.ID, current.Filter)
	m.syncListViewport()
	return true
}

func (m *Model) filterPrompt() string {
	st := m.styles
	prompt := "» "
	if st.FilterPrompt != nil {
		prompt = st.FilterPrompt.Render(prompt)
	}
	text := m.list.Filter
	if text == "" && !m.filtering {
		placeholder := "/ to filter"
		if st.FilterPlaceholder != nil {
			placeholder = st.FilterPlaceholder.Render(placeholder)
		}
		return prompt + placeholder
	}
	runes := []rune(text)
	pos := clampInt(m.list.FilterCursor, 0, len(runes))
	before := string(runes[:pos])
	if st.Filter != nil && before != "" {
		before = st.Filter.Render(before)
	}
	if !m.filtering {
		return prompt + before
	}
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = string(runes[pos+1:])
		if st.Filter != nil && after != "" {
			after = st.Filter.Render(after)
		}
	}
	m.filterCursor.SetChar(caretRune)
	return prompt + before + m.filterCursor.View() + after
}

// inventoryRows renders the visible inventory rows, aligned in columns:
// mark, quantity, then the shorthand label with styled separators.
func (m *Model) inventoryRows(maxVisible, width int) []string {
	l := m.list
	st := m.styles
	if len(l.Items) == 0 {
		msg := "No items yet. Add one above."
		if l.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		return []string{st.Info.Render(msg)}
	}
	l.EnsureCursorVisible(maxVisible)
	visible := l.Visible(maxVisible)
	sep := st.ItemSeparator.Render(" • ")
	rows := make([][]string, 0, len(visible))
	for _, entry := range visible {
		it, ok := m.items.Get(entry.ID)
		if !ok {
			continue
		}
		mark := " "
		if l.IsMarked(entry.ID) {
			mark = "✓"
		}
		parts := inventory.LabelParts(it)
		styled := make([]string, len(parts))
		for i, part := range parts {
			if i == 0 {
				styled[i] = st.ItemPart.Render(part)
				continue
			}
			styled[i] = st.Item.Render(part)
		}
		rows = append(rows, []string{mark, st.ItemQty.Render(fmt.Sprintf("%d×", it.Qty)), strings.Join(styled, sep)})
	}
	lines := table.FormatWidth(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}, max(width-2, 0))
	for i := range lines {
		idx := l.ViewportOffset + i
		indicator := "  "
		if idx == l.Cursor {
			indicator = "▌ "
			if m.focus == focusList {
				indicator = st.ItemQty.Render("▌") + " "
			}
		}
		lines[i] = indicator + lines[i]
	}
	return lines
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

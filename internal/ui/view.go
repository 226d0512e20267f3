package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/atomicstack/takeoff/internal/ui/wheel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	pickerGap      = 1
	infoTimeout    = 5 * time.Second
	focusMarker    = "›"
	minVisibleRows = 1
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeTheme:
		if m.themeForm != nil {
			return m.placeModal(m.viewThemeModal())
		}
	case ModeSettings:
		if m.settingsForm != nil {
			return m.placeModal(m.viewSettingsModal())
		}
	case ModeConfirm:
		if m.confirm != nil {
			return m.placeModal(m.viewConfirmModal())
		}
	}
	return m.viewEntry()
}

func (m *Model) placeModal(modal string) string {
	body := m.modalBody(modal)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) modalBody(modal string) string {
	if status := m.statusLine(); status != "" {
		return lipgloss.JoinVertical(lipgloss.Left, modal, status)
	}
	return modal
}

// modalOrigin returns the screen cell where placeModal puts the top-left
// corner of body. Centring leaves the odd cell of a gap on the far side.
func (m *Model) modalOrigin(body string) (int, int) {
	if m.width <= 0 || m.height <= 0 {
		return 0, 0
	}
	return max(m.width-lipgloss.Width(body), 0) / 2, max(m.height-lipgloss.Height(body), 0) / 2
}

// viewEntry draws the form top to bottom. The row offsets used for mouse
// hit-testing come from pickerTop and listTop, so any change here must keep
// them in step.
func (m *Model) viewEntry() string {
	st := m.styles
	lines := make([]string, 0, 48)
	lines = append(lines, m.headerLine())
	for i := range m.jobInputs {
		lines = append(lines, m.marker(m.jobInputIndex() == i)+m.jobInputs[i].View())
	}
	lines = append(lines, "")
	lines = append(lines, strings.Split(m.pickersRow(), "\n")...)
	lines = append(lines, "")
	lines = append(lines, m.typeLine(), m.togglesLine(), m.addLine())
	lines = append(lines, "")

	title := fmt.Sprintf("INVENTORY (%d items, %d pcs)", m.items.Len(), m.items.TotalQty())
	lines = append(lines, m.marker(m.focus == focusList)+st.Header.Render(title)+"  "+m.filterPrompt())
	lines = append(lines, m.inventoryRows(m.maxVisibleItems(), m.width)...)

	lines = append(lines, "")
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, m.footerLines()...)
	}
	lines = limitHeight(lines, m.height, m.width)
	return strings.Join(applyWidth(lines, m.width), "\n")
}

func (m *Model) marker(focused bool) string {
	if !focused {
		return " "
	}
	return m.styles.ItemQty.Render(focusMarker)
}

func (m *Model) headerLine() string {
	st := m.styles
	header := st.Brand.Render("TAKEOFF")
	if m.draft.IsDoor() {
		header += " " + st.Info.Render("door entry")
	}
	return header
}

func (m *Model) pickerStyles() wheel.Styles {
	st := m.styles
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
	return wheel.Styles{
		Label:      *st.Label,
		Item:       *st.PickerItem,
		Active:     *st.PickerActive,
		Band:       lipgloss.NewStyle().Foreground(st.Accent),
		Frame:      frame,
		FocusFrame: frame.BorderForeground(st.Accent),
	}
}

func (m *Model) pickersRow() string {
	pickerStyles := m.pickerStyles()
	views := []string{" "}
	for i, p := range m.entryPickers() {
		if i > 0 {
			views = append(views, strings.Repeat(" ", pickerGap))
		}
		views = append(views, p.View(m.focusedPicker() == p, pickerStyles))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) typeLine() string {
	st := m.styles
	segments := make([]string, len(m.types))
	for i, t := range m.types {
		if t == m.draft.Type {
			segments[i] = st.ActiveSegment.Render(t)
			continue
		}
		segments[i] = st.Segment.Render(t)
	}
	return m.marker(m.focus == focusType) + st.Label.Render("TYPE ") + strings.Join(segments, "")
}

func (m *Model) toggle(label string, on, focused bool) string {
	st := m.styles
	style := st.Toggle
	if on {
		style = st.ActiveToggle
	}
	return m.marker(focused) + style.Render(label)
}

func (m *Model) togglesLine() string {
	d := m.draft
	parts := []string{
		m.toggle("TEMPERED", d.Tempered, m.focus == focusTempered),
		m.toggle("DRYWALL", d.Drywall, m.focus == focusDrywall),
	}
	if d.IsDoor() {
		parts = append(parts,
			m.toggle("LH", d.Handing == inventory.HandingLH, m.focus == focusHanding)+m.toggle("RH", d.Handing == inventory.HandingRH, false),
			m.toggle("IS", d.Swing == inventory.SwingIS, m.focus == focusSwing)+m.toggle("OS", d.Swing == inventory.SwingOS, false),
		)
	}
	return strings.Join(parts, " ")
}

func (m *Model) addLine() string {
	st := m.styles
	style := st.Button
	if m.focus == focusAdd {
		style = st.FocusedButton
	}
	return m.marker(m.focus == focusAdd) + style.Render(m.addButtonLabel())
}

func (m *Model) statusLine() string {
	st := m.styles
	switch {
	case m.errMsg != "":
		return st.Error.Render("Error: " + m.errMsg)
	case m.backendLastErr != "":
		return st.Error.Render("Catalog: " + m.backendLastErr)
	}
	if info := m.currentInfo(); info != "" {
		return st.Info.Render(info)
	}
	return ""
}

func (m *Model) footerLines() []string {
	m.help.Width = m.width
	return strings.Split(m.styles.Footer.Render(m.help.View(m.keys)), "\n")
}

// pickerTop is the screen row of the first line of the picker row.
func (m *Model) pickerTop() int {
	return 1 + len(m.jobInputs) + 1
}

func (m *Model) pickersHeight() int {
	h := 0
	for _, p := range m.entryPickers() {
		h = max(h, p.Height())
	}
	return h
}

// listTop is the screen row of the first inventory row.
func (m *Model) listTop() int {
	return m.pickerTop() + m.pickersHeight() + 6
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := m.listTop() + 2
	if m.showFooter {
		used += len(m.footerLines())
	}
	return max(m.height-used, minVisibleRows)
}

// pickerAt returns the entry picker drawn at screen cell (x, y).
func (m *Model) pickerAt(x, y int) wheel.Control {
	top := m.pickerTop()
	if y < top || y >= top+m.pickersHeight() {
		return nil
	}
	left := 1
	for _, p := range m.entryPickers() {
		if x >= left && x < left+p.Width() {
			return p
		}
		left += p.Width() + pickerGap
	}
	return nil
}

func (m *Model) pickerRow(p wheel.Control, y int) int {
	return y - m.pickerTop() - p.StripTop()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if p := m.dragging; p != nil {
		cmd := p.Mouse(ev, m.pickerRow(p, ev.Y))
		if !p.Dragging() {
			m.dragging = nil
		}
		return cmd
	}
	if p := m.pickerAt(ev.X, ev.Y); p != nil {
		var focusCmd tea.Cmd
		if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft {
			focusCmd = m.setFocus(m.pickerFocus(p))
		}
		cmd := p.Mouse(ev, m.pickerRow(p, ev.Y))
		if p.Dragging() {
			m.dragging = p
		}
		return tea.Batch(focusCmd, cmd)
	}
	return m.handleListMouse(ev)
}

func (m *Model) handleListMouse(ev tea.MouseMsg) tea.Cmd {
	top := m.listTop()
	visible := m.list.Visible(m.maxVisibleItems())
	if ev.Y < top-1 || ev.Y >= top+max(len(visible), 1) {
		return nil
	}
	l := m.list
	before := l.Cursor
	var cmd tea.Cmd
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		l.MoveCursor(-1)
	case ev.Button == tea.MouseButtonWheelDown:
		l.MoveCursor(1)
	case ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionPress:
		if row := ev.Y - top; row >= 0 && row < len(visible) {
			l.Cursor = l.ViewportOffset + row
		}
		cmd = m.setFocus(focusList)
	default:
		return nil
	}
	if l.Cursor != before {
		events.UI.ListCursor(l.ID, l.Cursor)
		m.syncListViewport()
	}
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncListViewport()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTimeout)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []string, height, width int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{truncateText("…", width)}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, truncateText("…", width))
}

// applyWidth cuts styled lines to width visible columns.
func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	result := make([]string, len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(max(width-1, 0)), "…")
		}
		result[i] = line
	}
	return result
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/takeoff/internal/logging"
	"github.com/atomicstack/takeoff/internal/theme"
	"github.com/atomicstack/takeoff/internal/ui/wheel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	hueStep        = 5
	saturationStep = 5

	// themePickerLine is the content line of the wheel row in
	// viewThemeModal. Mouse hit-testing depends on it.
	themePickerLine = 6
	themePairGap    = 1
	themeGroupGap   = 3
)

type themeFocus int

const (
	themeFocusPresets themeFocus = iota
	themeFocusHue
	themeFocusSaturation
	themeFocusAuto
	themeFocusCompHue
	themeFocusCompSaturation
	themeFocusCount
)

// themeModal edits the accent and complement colours. Changes apply to the
// whole UI as they are made.
type themeModal struct {
	focus   themeFocus
	preset  int
	auto    bool
	hue     *wheel.Picker[int]
	sat     *wheel.Picker[int]
	compHue *wheel.Picker[int]
	compSat *wheel.Picker[int]
}

func steps(lo, hi, step int) []int {
	out := make([]int, 0, (hi-lo)/step+1)
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	return out
}

func snap(v float64, step, limit int) int {
	s := int(math.Round(v/float64(step))) * step
	if s > limit {
		s = limit
	}
	if s < 0 {
		s = 0
	}
	return s
}

// wheelPosition maps a colour to the nearest hue and saturation stops.
func wheelPosition(color string) (int, int) {
	hsl, err := theme.ParseHSL(color)
	if err != nil {
		return 0, 100
	}
	hue := snap(hsl.H, hueStep, 360)
	if hue == 360 {
		hue = 0
	}
	return hue, snap(hsl.S, saturationStep, 100)
}

func (m *Model) newThemeModal() *themeModal {
	tm := &themeModal{auto: m.autoComplement, preset: -1}
	for i, p := range theme.Presets {
		if strings.EqualFold(p, m.accent) {
			tm.preset = i
		}
	}
	hue, sat := wheelPosition(m.accent)
	compHue, compSat := wheelPosition(m.complement)
	hues := steps(0, 360-hueStep, hueStep)
	sats := steps(0, 100, saturationStep)
	degrees := func(v int) string { return strconv.Itoa(v) + "°" }
	percent := func(v int) string { return strconv.Itoa(v) + "%" }
	onAccent := func(int) { m.applyThemeModal() }
	tm.hue = wheel.New(hues, hue, onAccent, m.pickerOptions(wheel.WithLabel("HUE"), wheel.WithFormat(degrees), wheel.WithWidth(4), wheel.WithVisibleRows(5))...)
	tm.sat = wheel.New(sats, sat, onAccent, m.pickerOptions(wheel.WithLabel("SAT"), wheel.WithFormat(percent), wheel.WithWidth(4), wheel.WithVisibleRows(5))...)
	tm.compHue = wheel.New(hues, compHue, onAccent, m.pickerOptions(wheel.WithLabel("HUE 2"), wheel.WithFormat(degrees), wheel.WithWidth(4), wheel.WithVisibleRows(5))...)
	tm.compSat = wheel.New(sats, compSat, onAccent, m.pickerOptions(wheel.WithLabel("SAT 2"), wheel.WithFormat(percent), wheel.WithWidth(4), wheel.WithVisibleRows(5))...)
	return tm
}

func (tm *themeModal) pickers() []wheel.Control {
	return []wheel.Control{tm.hue, tm.sat, tm.compHue, tm.compSat}
}

func (tm *themeModal) focusedPicker() wheel.Control {
	switch tm.focus {
	case themeFocusHue:
		return tm.hue
	case themeFocusSaturation:
		return tm.sat
	case themeFocusCompHue:
		return tm.compHue
	case themeFocusCompSaturation:
		return tm.compSat
	}
	return nil
}

func (tm *themeModal) available(f themeFocus) bool {
	switch f {
	case themeFocusCompHue, themeFocusCompSaturation:
		return !tm.auto
	}
	return f >= 0 && f < themeFocusCount
}

func (tm *themeModal) cycle(delta int) {
	next := tm.focus
	for i := 0; i < int(themeFocusCount); i++ {
		next = themeFocus((int(next) + delta + int(themeFocusCount)) % int(themeFocusCount))
		if tm.available(next) {
			break
		}
	}
	tm.focus = next
}

func (tm *themeModal) close() {
	for _, p := range tm.pickers() {
		p.Close()
	}
}

func (m *Model) openThemeModal() tea.Cmd {
	m.dragging = nil
	m.themeForm = m.newThemeModal()
	m.setMode(ModeTheme)
	return nil
}

func (m *Model) closeThemeModal() {
	if m.themeForm == nil {
		return
	}
	m.themeForm.close()
	m.themeForm = nil
	m.dragging = nil
	cat := m.catalogs.Catalog()
	cat.Theme.Accent = m.accent
	cat.Theme.Complement = m.complement
	cat.Theme.AutoComplement = m.autoComplement
	m.catalogs.SetCatalog(cat)
	m.setMode(ModeEntry)
}

// applyThemeModal rebuilds the styles from the modal's wheel positions.
func (m *Model) applyThemeModal() {
	tm := m.themeForm
	if tm == nil {
		return
	}
	accent := theme.Wheel(tm.hue.Value(), tm.sat.Value())
	m.applyAccent(accent)
}

func (m *Model) applyAccent(accent string) {
	tm := m.themeForm
	complement := m.complement
	if tm != nil && !tm.auto {
		complement = theme.Wheel(tm.compHue.Value(), tm.compSat.Value())
	} else if comp, err := theme.Complement(accent); err == nil {
		complement = comp
	}
	if err := m.setTheme(accent, complement); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
}

func (m *Model) selectPreset(i int) {
	tm := m.themeForm
	if tm == nil || i < 0 || i >= len(theme.Presets) {
		return
	}
	tm.preset = i
	accent := theme.Presets[i]
	hue, sat := wheelPosition(accent)
	tm.hue.SetValue(hue)
	tm.sat.SetValue(sat)
	m.applyAccent(accent)
}

func (m *Model) toggleAutoComplement() {
	tm := m.themeForm
	tm.auto = !tm.auto
	m.autoComplement = tm.auto
	if !tm.auto {
		hue, sat := wheelPosition(m.complement)
		tm.compHue.SetValue(hue)
		tm.compSat.SetValue(sat)
	}
	m.applyAccent(m.accent)
}

func (m *Model) handleThemeModal(msg tea.Msg) (bool, tea.Cmd) {
	tm := m.themeForm
	if tm == nil {
		return false, nil
	}
	keys := m.keys
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return true, m.handleThemeMouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			m.closeThemeModal()
			return true, nil
		case key.Matches(msg, keys.Next):
			tm.cycle(1)
			return true, nil
		case key.Matches(msg, keys.Prev):
			tm.cycle(-1)
			return true, nil
		}
		if p := tm.focusedPicker(); p != nil {
			if key.Matches(msg, keys.Toggle) {
				m.closeThemeModal()
				return true, nil
			}
			_, cmd := m.handlePickerKey(p, msg)
			return true, cmd
		}
		switch tm.focus {
		case themeFocusPresets:
			switch {
			case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
				m.movePreset(-1)
			case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
				m.movePreset(1)
			case key.Matches(msg, keys.Toggle):
				if tm.preset < 0 {
					m.selectPreset(0)
				} else {
					m.selectPreset(tm.preset)
				}
			}
		case themeFocusAuto:
			if key.Matches(msg, keys.Toggle) {
				m.toggleAutoComplement()
			}
		}
		return true, nil
	}
	// Cursor blinks and other traffic have no consumer inside this modal.
	return true, nil
}

// placedPicker is a modal wheel with the screen cell of its top-left corner.
type placedPicker struct {
	picker wheel.Control
	focus  themeFocus
	x, y   int
}

// themePickerLayout mirrors the wheel row drawn by viewThemeModal.
func (m *Model) themePickerLayout() []placedPicker {
	tm := m.themeForm
	frame := m.styles.Modal
	ox, oy := m.modalOrigin(m.modalBody(m.viewThemeModal()))
	x := ox + frame.GetBorderLeftSize() + frame.GetPaddingLeft()
	y := oy + frame.GetBorderTopSize() + frame.GetPaddingTop() + themePickerLine

	placed := []placedPicker{{picker: tm.hue, focus: themeFocusHue, x: x, y: y}}
	x += tm.hue.Width() + themePairGap
	placed = append(placed, placedPicker{picker: tm.sat, focus: themeFocusSaturation, x: x, y: y})
	if !tm.auto {
		x += tm.sat.Width() + themeGroupGap
		placed = append(placed, placedPicker{picker: tm.compHue, focus: themeFocusCompHue, x: x, y: y})
		x += tm.compHue.Width() + themePairGap
		placed = append(placed, placedPicker{picker: tm.compSat, focus: themeFocusCompSaturation, x: x, y: y})
	}
	return placed
}

func (pp placedPicker) contains(x, y int) bool {
	return x >= pp.x && x < pp.x+pp.picker.Width() && y >= pp.y && y < pp.y+pp.picker.Height()
}

func (pp placedPicker) row(y int) int {
	return y - pp.y - pp.picker.StripTop()
}

// handleThemeMouse gives the modal's wheels the same gestures as the form's
// pickers. A wheel event away from every picker nudges the focused one.
func (m *Model) handleThemeMouse(ev tea.MouseMsg) tea.Cmd {
	tm := m.themeForm
	layout := m.themePickerLayout()
	if p := m.dragging; p != nil {
		for _, pp := range layout {
			if pp.picker != p {
				continue
			}
			cmd := p.Mouse(ev, pp.row(ev.Y))
			if !p.Dragging() {
				m.dragging = nil
			}
			return cmd
		}
		m.dragging = nil
	}
	for _, pp := range layout {
		if !pp.contains(ev.X, ev.Y) {
			continue
		}
		if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft {
			tm.focus = pp.focus
		}
		cmd := pp.picker.Mouse(ev, pp.row(ev.Y))
		if pp.picker.Dragging() {
			m.dragging = pp.picker
		}
		return cmd
	}
	if p := tm.focusedPicker(); p != nil && ev.Action == tea.MouseActionPress {
		switch ev.Button {
		case tea.MouseButtonWheelUp:
			return p.Nudge(-1)
		case tea.MouseButtonWheelDown:
			return p.Nudge(1)
		}
	}
	return nil
}

func (m *Model) movePreset(delta int) {
	tm := m.themeForm
	n := len(theme.Presets)
	if tm.preset < 0 {
		tm.preset = 0
		return
	}
	tm.preset = (tm.preset + delta + n) % n
}

func (m *Model) viewThemeModal() string {
	tm := m.themeForm
	st := m.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("THEME"))
	b.WriteString("\n\n")
	b.WriteString(st.ItemQty.Render("■ ") + st.ItemPart.Render("3050 • SH • TMP"))
	b.WriteString("  ")
	b.WriteString(st.Info.Render(m.accent + " / " + m.complement))
	b.WriteString("\n\n")

	swatches := make([]string, len(theme.Presets))
	for i, p := range theme.Presets {
		cell := lipgloss.NewStyle().Foreground(lipgloss.Color(p)).Render("██")
		marker := " "
		if i == tm.preset {
			marker = "▸"
			if tm.focus == themeFocusPresets {
				marker = st.ItemQty.Render("▸")
			}
		}
		swatches[i] = marker + cell
	}
	b.WriteString(st.Label.Render("PRESETS ") + strings.Join(swatches, " "))
	b.WriteString("\n\n")

	pickerStyles := m.pickerStyles()
	pairGap := strings.Repeat(" ", themePairGap)
	views := []string{
		tm.hue.View(tm.focus == themeFocusHue, pickerStyles),
		pairGap,
		tm.sat.View(tm.focus == themeFocusSaturation, pickerStyles),
	}
	if !tm.auto {
		views = append(views, strings.Repeat(" ", themeGroupGap),
			tm.compHue.View(tm.focus == themeFocusCompHue, pickerStyles),
			pairGap,
			tm.compSat.View(tm.focus == themeFocusCompSaturation, pickerStyles),
		)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	b.WriteString("\n\n")

	autoLabel := "MANUAL MODE"
	autoStyle := st.Toggle
	if tm.auto {
		autoLabel = "AUTO COMPLEMENT"
		autoStyle = st.ActiveToggle
	}
	auto := autoStyle.Render(autoLabel)
	if tm.focus == themeFocusAuto {
		auto = st.FocusedField.Render("›") + auto
	} else {
		auto = " " + auto
	}
	b.WriteString(auto)
	b.WriteString("\n\n")
	b.WriteString(st.Footer.Render("tab move • ←/→ preset • space apply/toggle • enter/esc done"))
	return st.Modal.Render(b.String())
}

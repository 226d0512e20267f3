package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/takeoff/internal/backend"
	"github.com/atomicstack/takeoff/internal/catalog"
	"github.com/atomicstack/takeoff/internal/data/dispatcher"
	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/logging"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/atomicstack/takeoff/internal/state"
	"github.com/atomicstack/takeoff/internal/theme"
	"github.com/atomicstack/takeoff/internal/ui/command"
	uistate "github.com/atomicstack/takeoff/internal/ui/state"
	"github.com/atomicstack/takeoff/internal/ui/wheel"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeEntry Mode = iota
	ModeTheme
	ModeSettings
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeTheme:
		return "theme"
	case ModeSettings:
		return "settings"
	case ModeConfirm:
		return "confirm"
	default:
		return "entry"
	}
}

const inventoryListID = "inventory"

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	ExportDir    string
	Accent       string
	SmoothScroll bool
	Catalogs     state.CatalogStore
	Watcher      *backend.Watcher
	Context      context.Context

	// CursorMode applies to every text cursor. Tests use cursor.CursorStatic
	// so no blink timers are scheduled.
	CursorMode cursor.Mode
	// PickerOptions are appended to the options of every picker.
	PickerOptions []wheel.Option
}

// Model implements the Bubble Tea model for the takeoff form.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	mode        Mode
	focus       focusID

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	jobInputs []textinput.Model
	draft     inventory.Draft
	types     []string

	qtyPicker     *wheel.Picker[int]
	widthPicker   *wheel.Picker[int]
	heightPicker  *wheel.Picker[int]
	transomPicker *wheel.Picker[string]
	dragging      wheel.Control
	pickerOpts    []wheel.Option

	items     *inventory.List
	list      *uistate.List
	filtering bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorMode        cursor.Mode

	keys keyMap
	help help.Model

	styles         *theme.Styles
	accent         string
	complement     string
	autoComplement bool

	themeForm    *themeModal
	settingsForm *settingsModal
	confirm      *confirmModal

	handlers map[reflect.Type]msgHandler

	exportDir      string
	bus            *command.Bus
	backend        *backend.Watcher
	backendLastErr string
	catalogs       state.CatalogStore
	dispatcher     *dispatcher.Dispatcher
}

// NewModel initialises the form from the catalog store and options.
func NewModel(opts Options) *Model {
	catalogs := opts.Catalogs
	if catalogs == nil {
		catalogs = state.NewCatalogStore(catalog.Default())
	}
	cat := catalogs.Catalog()
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}
	m := &Model{
		showFooter: opts.ShowFooter,
		mode:       ModeEntry,
		focus:      focusQty,
		items:      inventory.NewList(),
		list:       uistate.NewList(inventoryListID, "Inventory", nil),
		keys:       defaultKeyMap(),
		help:       help.New(),
		cursorMode: opts.CursorMode,
		exportDir:  exportDir,
		bus:        command.New(opts.Context),
		backend:    opts.Watcher,
		catalogs:   catalogs,
		dispatcher: dispatcher.New(catalogs),
	}
	m.pickerOpts = append([]wheel.Option{wheel.WithSmoothScroll(opts.SmoothScroll)}, opts.PickerOptions...)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.initTheme(cat.Theme, opts.Accent)
	m.initJobInputs()
	m.initDraft(cat)
	m.initPickers(cat)

	c := cursor.New()
	c.SetChar(" ")
	c.SetMode(m.cursorMode)
	m.filterCursor = c
	m.applyCursorStyles()

	m.registerHandlers()
	return m
}

func (m *Model) initTheme(t catalog.Theme, accentOverride string) {
	accent := t.Accent
	if accentOverride != "" {
		accent = accentOverride
	}
	complement := t.Complement
	if t.AutoComplement || complement == "" {
		if comp, err := theme.Complement(accent); err == nil {
			complement = comp
		}
	}
	m.autoComplement = t.AutoComplement
	if err := m.setTheme(accent, complement); err != nil {
		logging.Error(err)
		m.styles = theme.Default()
		m.accent = theme.DefaultAccent
		m.complement = theme.DefaultComplement
	}
}

// setTheme rebuilds every style from accent and complement.
func (m *Model) setTheme(accent, complement string) error {
	st, err := theme.New(accent, complement)
	if err != nil {
		return err
	}
	m.styles = st
	m.accent = accent
	m.complement = complement
	m.applyCursorStyles()
	events.UI.Theme(accent, complement)
	return nil
}

func (m *Model) applyCursorStyles() {
	if m.styles == nil {
		return
	}
	if m.styles.Cursor != nil {
		m.filterCursor.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		m.filterCursor.TextStyle = m.styles.Filter.Copy()
	}
	for i := range m.jobInputs {
		if m.styles.Cursor != nil {
			m.jobInputs[i].Cursor.Style = m.styles.Cursor.Copy()
		}
		if m.styles.FilterPrompt != nil {
			m.jobInputs[i].PromptStyle = m.styles.FilterPrompt.Copy()
		}
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.syncInputFocus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if tick, ok := msg.(wheel.TickMsg); ok {
		for _, p := range m.allPickers() {
			if cmd := p.Update(tick); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.ForceQuit) {
		events.App.Stop("ctrl+c")
		return m, tea.Quit
	}
	if handled, cmd := m.handleActiveModal(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if cmd := m.updateFocusedInput(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveModal(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode == ModeEntry {
		return false, nil
	}
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
	default:
		if m.handlerFor(msg) != nil {
			return false, nil
		}
	}
	switch m.mode {
	case ModeTheme:
		return m.handleThemeModal(msg)
	case ModeSettings:
		return m.handleSettingsModal(msg)
	case ModeConfirm:
		return m.handleConfirmModal(msg)
	default:
		return false, nil
	}
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	events.UI.Mode(mode.String())
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(exportResultMsg{}):   m.handleExportResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.cursorMode == cursor.CursorBlink {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Close releases every picker so no timer fires after the program exits.
func (m *Model) Close() {
	for _, p := range m.allPickers() {
		p.Close()
	}
}

// Draft returns the item that the add action would store.
func (m *Model) Draft() inventory.Draft {
	return m.draft
}

// Items returns the inventory, newest first.
func (m *Model) Items() []inventory.Item {
	return m.items.Items()
}

// Job returns the job header as typed.
func (m *Model) Job() inventory.JobInfo {
	return inventory.JobInfo{
		Address:    m.jobInputs[jobAddress].Value(),
		WindowSpec: m.jobInputs[jobWindowSpec].Value(),
		DoorSpec:   m.jobInputs[jobDoorSpec].Value(),
	}
}

func (m *Model) Mode() Mode { return m.mode }

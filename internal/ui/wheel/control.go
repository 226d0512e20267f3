package wheel

import tea "github.com/charmbracelet/bubbletea"

// Control is the type-independent surface of a Picker, used by containers
// that hold pickers over different option types.
type Control interface {
	ID() int
	Label() string
	Phase() Phase
	Index() int
	Len() int
	Update(tea.Msg) tea.Cmd
	Step(dir int) tea.Cmd
	Nudge(dir int) tea.Cmd
	Select(index int) tea.Cmd
	Mouse(msg tea.MouseMsg, row int) tea.Cmd
	Dragging() bool
	View(focused bool, st Styles) string
	Width() int
	Height() int
	StripTop() int
	Close()
}

var _ Control = (*Picker[int])(nil)

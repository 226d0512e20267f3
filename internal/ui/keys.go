package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Home      key.Binding
	End       key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Handing   key.Binding
	Swing     key.Binding
	Filter    key.Binding
	Mark      key.Binding
	Remove    key.Binding
	ExportCSV key.Binding
	ExportXLS key.Binding
	Theme     key.Binding
	Settings  key.Binding
	Clear     key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev type")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next type")),
		Inc:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase")),
		Dec:       key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrease")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Add:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add item")),
		Handing:   key.NewBinding(key.WithKeys("l", "r"), key.WithHelp("l/r", "handing")),
		Swing:     key.NewBinding(key.WithKeys("i", "o"), key.WithHelp("i/o", "swing")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Mark:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		ExportCSV: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		ExportXLS: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Settings:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Add, k.ExportCSV, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down, k.Inc, k.Dec},
		{k.Left, k.Right, k.Toggle, k.Handing, k.Swing, k.Add},
		{k.Filter, k.Mark, k.Remove, k.Home, k.End, k.Back},
		{k.ExportCSV, k.ExportXLS, k.Theme, k.Settings, k.Clear, k.Quit},
	}
}

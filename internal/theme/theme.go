package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Accent     lipgloss.Color
	Complement lipgloss.Color

	Brand             *lipgloss.Style
	Title             *lipgloss.Style
	Label             *lipgloss.Style
	FocusedField      *lipgloss.Style
	Segment           *lipgloss.Style
	ActiveSegment     *lipgloss.Style
	Toggle            *lipgloss.Style
	ActiveToggle      *lipgloss.Style
	Button            *lipgloss.Style
	FocusedButton     *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	ItemQty           *lipgloss.Style
	ItemPart          *lipgloss.Style
	ItemSeparator     *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Modal             *lipgloss.Style
	PickerItem        *lipgloss.Style
	PickerActive      *lipgloss.Style
}

var defaultStyles = mustBuild(DefaultAccent, DefaultComplement)

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

// New builds a style set from an accent and a complement colour, each given
// as "#rrggbb" or "hsl(h, s%, l%)".
func New(accent, complement string) (*Styles, error) {
	accentHex, err := Hex(accent)
	if err != nil {
		return nil, err
	}
	compHex, err := Hex(complement)
	if err != nil {
		return nil, err
	}
	return build(lipgloss.Color(accentHex), lipgloss.Color(compHex)), nil
}

func mustBuild(accent, complement string) *Styles {
	s, err := New(accent, complement)
	if err != nil {
		panic(err)
	}
	return s
}

func build(accent, comp lipgloss.Color) *Styles {
	return &Styles{
		Accent:     accent,
		Complement: comp,
		Brand: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(accent).Bold(true).Padding(0, 1),
		),
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		FocusedField: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true),
		),
		Segment: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		),
		ActiveSegment: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(accent).Bold(true).Padding(0, 1),
		),
		Toggle: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		),
		ActiveToggle: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(comp).Bold(true).Padding(0, 1),
		),
		Button: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 2),
		),
		FocusedButton: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(accent).Bold(true).Padding(0, 2),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
		),
		ItemQty: ptr(
			lipgloss.NewStyle().Foreground(accent).Bold(true),
		),
		ItemPart: ptr(
			lipgloss.NewStyle().Foreground(comp).Bold(true),
		),
		ItemSeparator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(comp).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent).Blink(true),
		),
		Modal: ptr(
			lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(1, 2),
		),
		PickerItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		),
		PickerActive: ptr(
			lipgloss.NewStyle().Foreground(comp).Bold(true),
		),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

package wheel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	bandLeft  = "›"
	bandRight = "‹"
)

// Styles controls how a picker is drawn.
type Styles struct {
	Label      lipgloss.Style
	Item       lipgloss.Style
	Active     lipgloss.Style
	Band       lipgloss.Style
	Frame      lipgloss.Style
	FocusFrame lipgloss.Style
}

// DefaultStyles returns a neutral style set.
func DefaultStyles() Styles {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	return Styles{
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Active:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Band:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Frame:      frame,
		FocusFrame: frame.BorderForeground(lipgloss.Color("33")),
	}
}

// View renders the label and the framed strip.
func (p *Picker[T]) View(focused bool, st Styles) string {
	width := p.contentWidth()
	center := p.cfg.visibleRows / 2
	h := p.cfg.itemHeight
	rows := make([]string, 0, p.cfg.visibleRows)
	for r := 0; r < p.cfg.visibleRows; r++ {
		text := ""
		style := st.Item
		if s := p.stripRow(r); s >= 0 && s < len(p.options)*h && s%h == h/2 {
			idx := s / h
			text = ansi.Truncate(p.format(p.options[idx]), width, "…")
			if idx == p.index {
				style = st.Active
			}
		}
		cell := style.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
		left, right := " ", " "
		if r == center {
			left, right = st.Band.Render(bandLeft), st.Band.Render(bandRight)
		}
		rows = append(rows, left+cell+right)
	}
	frame := st.Frame
	if focused {
		frame = st.FocusFrame
	}
	body := frame.Render(strings.Join(rows, "\n"))
	if p.cfg.label == "" {
		return body
	}
	label := st.Label.Render(ansi.Truncate(p.cfg.label, lipgloss.Width(body), "…"))
	return lipgloss.JoinVertical(lipgloss.Left, label, body)
}

func (p *Picker[T]) contentWidth() int {
	if p.cfg.width > 0 {
		return p.cfg.width
	}
	width := 1
	for _, opt := range p.options {
		if w := ansi.StringWidth(p.format(opt)); w > width {
			width = w
		}
	}
	return width
}

// Width returns the rendered width including gutters and frame.
func (p *Picker[T]) Width() int {
	width := p.contentWidth() + 4
	if lw := ansi.StringWidth(p.cfg.label); lw > width {
		return lw
	}
	return width
}

// Height returns the rendered height including the label and frame.
func (p *Picker[T]) Height() int {
	return p.StripTop() + p.cfg.visibleRows + 1
}

// StripTop returns the line of the first viewport row within View.
func (p *Picker[T]) StripTop() int {
	if p.cfg.label == "" {
		return 1
	}
	return 2
}

// VisibleRows returns the viewport height in rows.
func (p *Picker[T]) VisibleRows() int { return p.cfg.visibleRows }

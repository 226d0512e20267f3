package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each
// column. Cells may carry ANSI styling; widths are measured on visible
// characters.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, 0)
}

// FormatWidth is Format with every line cut to maxWidth columns. The last
// column absorbs the truncation. A maxWidth of zero disables truncation.
func FormatWidth(rows [][]string, alignments []Alignment, maxWidth int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			last := c == len(row)-1
			switch {
			case c < len(alignments) && alignments[c] == AlignRight:
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
			case last:
				b.WriteString(cell)
			default:
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		line := b.String()
		if maxWidth > 0 && ansi.StringWidth(line) > maxWidth {
			line = truncate.StringWithTail(line, uint(maxWidth), "…")
		}
		out[i] = line
	}
	return out
}

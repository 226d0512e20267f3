package state

// MoveCursorHome moves the cursor to the first entry.
func (l *List) MoveCursorHome() bool {
	return l.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last entry.
func (l *List) MoveCursorEnd() bool {
	return l.moveCursorTo(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if l.Cursor < 0 {
		return l.moveCursorTo(delta)
	}
	return l.moveCursorTo(l.Cursor + delta)
}

func (l *List) moveCursorTo(target int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(target, 0, len(l.Items)-1)
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(len(l.Items)-maxVisible, 0)
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor > l.ViewportOffset+maxVisible-1 {
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Visible returns the entries inside the viewport.
func (l *List) Visible(maxVisible int) []Entry {
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items
	}
	end := min(l.ViewportOffset+maxVisible, len(l.Items))
	return l.Items[l.ViewportOffset:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

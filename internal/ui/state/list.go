package state

// Entry is one row of a list: an identifier and the text shown and matched
// by the filter.
type Entry struct {
	ID    string
	Label string
}

// CloneEntries produces a shallow copy of entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}

// List encapsulates the cursor, filter, marks and viewport of a scrollable
// list such as the inventory or the settings editors.
type List struct {
	ID             string
	Title          string
	Items          []Entry
	Full           []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Marked         map[string]struct{}
}

// NewList constructs a List with the cursor on the first entry.
func NewList(id, title string, entries []Entry) *List {
	l := &List{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Marked:     make(map[string]struct{}),
	}
	l.SetEntries(entries)
	return l
}

// IndexOf returns the visible index for an entry identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, entry := range l.Items {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (l *List) Current() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// SetEntries replaces the entries. The cursor stays on the same entry when it
// survives, otherwise it stays at the same position clamped to the new size.
func (l *List) SetEntries(entries []Entry) {
	current, hadCurrent := l.Current()
	l.Full = CloneEntries(entries)
	l.cleanupMarks()
	l.applyFilter()
	if hadCurrent {
		if idx := l.IndexOf(current.ID); idx >= 0 {
			l.Cursor = idx
		}
	}
	if l.ViewportOffset > len(l.Items)-1 || l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// MoveCursor moves the cursor by delta, stopping at either end.
func (l *List) MoveCursor(delta int) bool {
	return l.moveCursorBy(delta)
}

package state

// cleanupMarks drops marks for entries that no longer exist.
func (l *List) cleanupMarks() {
	if len(l.Marked) == 0 {
		return
	}
	valid := make(map[string]struct{}, len(l.Full))
	for _, entry := range l.Full {
		valid[entry.ID] = struct{}{}
	}
	for id := range l.Marked {
		if _, ok := valid[id]; !ok {
			delete(l.Marked, id)
		}
	}
}

// IsMarked reports whether the given id is marked.
func (l *List) IsMarked(id string) bool {
	_, ok := l.Marked[id]
	return ok
}

// ToggleCurrentMark toggles the mark on the entry under the cursor.
func (l *List) ToggleCurrentMark() bool {
	entry, ok := l.Current()
	if !ok {
		return false
	}
	if l.Marked == nil {
		l.Marked = make(map[string]struct{})
	}
	if _, marked := l.Marked[entry.ID]; marked {
		delete(l.Marked, entry.ID)
	} else {
		l.Marked[entry.ID] = struct{}{}
	}
	return true
}

// ClearMarks removes every mark.
func (l *List) ClearMarks() {
	for id := range l.Marked {
		delete(l.Marked, id)
	}
}

// MarkedIDs returns the marked ids in full-list order.
func (l *List) MarkedIDs() []string {
	if len(l.Marked) == 0 {
		return nil
	}
	ids := make([]string, 0, len(l.Marked))
	for _, entry := range l.Full {
		if l.IsMarked(entry.ID) {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position. The list cursor
// jumps to the best match while filtering and returns to where it was when
// the filter is cleared.
func (l *List) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))
	if trimmed != "" && prevTrimmed == "" {
		l.LastCursor = l.Cursor
	}
	l.applyFilter()
	switch {
	case trimmed != "":
		l.Cursor = max(BestMatchIndex(l.Items, trimmed), 0)
	case prevTrimmed != "":
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
}

func (l *List) applyFilter() {
	l.Items = FilterEntries(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// ClearFilter drops the query. It reports whether there was one.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// InsertFilterText inserts text into the filter at the cursor position.
func (l *List) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := clamp(l.FilterCursor, 0, len(runes))
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := clamp(l.FilterCursor, 0, len(runes))
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the filter cursor.
func (l *List) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := clamp(l.FilterCursor, 0, len(runes))
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i:i], runes[pos:]...)
	l.SetFilter(string(updated), i)
	return true
}

// FilterEntries returns the entries whose label fuzzy-matches query, falling
// back to a case-insensitive substring match on label or id.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneEntries(entries)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Entry, 0, len(matches))
		for idx, entry := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, entry)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) || strings.Contains(strings.ToLower(entry.ID), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the entry that best matches query:
// an exact label, then a label prefix, then the closest fuzzy match.
func BestMatchIndex(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, entry := range entries {
		if strings.EqualFold(entry.Label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Label
	}
	return out
}

package state

import (
	"reflect"
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestList("3050 SH", "3068 DOOR", "2040 FIXED")
	l.Cursor = 2
	l.SetFilter("door", len("door"))

	if len(l.Items) != 1 || l.Items[0].ID != "3068 DOOR" {
		t.Fatalf("expected only the door, got %#v", l.Items)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", l.Cursor)
	}

	if !l.ClearFilter() {
		t.Fatalf("expected ClearFilter to report a change")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", l.LastCursor)
	}
	if l.ClearFilter() {
		t.Fatalf("expected no change for empty filter")
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := newTestList("alpha")

	if !l.InsertFilterText("ab") || l.Filter != "ab" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}
	l.FilterCursor = 1
	if !l.InsertFilterText("z") || l.Filter != "azb" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state after middle insert %q/%d", l.Filter, l.FilterCursor)
	}
	if !l.DeleteFilterRuneBackward() || l.Filter != "ab" || l.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", l.Filter, l.FilterCursor)
	}

	l.SetFilter("abc def", len("abc def"))
	if !l.DeleteFilterWordBackward() || l.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", l.Filter)
	}

	l.SetFilter("abc", 0)
	if l.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if l.InsertFilterText("") {
		t.Fatal("expected empty insert to fail")
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []Entry{{ID: "1", Label: "3050 SH TMP"}, {ID: "2", Label: "3068 DOOR LH"}}
	if got := FilterEntries(entries, "tmp"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected filtered results %#v", got)
	}
	if got := FilterEntries(entries, "  "); !reflect.DeepEqual(got, entries) {
		t.Fatalf("expected blank query to keep everything, got %#v", got)
	}
	if len(FilterEntries(entries, "casement")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	entries := []Entry{{ID: "a", Label: "First"}, {ID: "b", Label: "Second"}, {ID: "c", Label: "Third"}}
	if idx := BestMatchIndex(entries, "second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

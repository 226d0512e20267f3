package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/takeoff/internal/backend"
	"github.com/atomicstack/takeoff/internal/catalog"
	"github.com/atomicstack/takeoff/internal/state"
)

func TestBackendCatalogEventUpdatesPickers(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()

	cat := catalog.Default()
	cat.Types = []string{"CASEMENT", "DOOR"}
	cat.Quantity = catalog.Range{Min: 1, Max: 5}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCatalog, Path: "catalog.yaml", Data: cat}})

	if got := m.qtyPicker.Len(); got != 5 {
		t.Fatalf("expected 5 quantities, got %d", got)
	}
	if got := m.Draft().Type; got != "CASEMENT" {
		t.Fatalf("expected draft type to fall back to CASEMENT, got %s", got)
	}
	if got := m.catalogs.Source(); got != "catalog.yaml" {
		t.Fatalf("expected store source updated, got %q", got)
	}
	if m.backendLastErr != "" {
		t.Fatalf("unexpected backend error %q", m.backendLastErr)
	}
}

func TestBackendCatalogEventKeepsDraftValue(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	cat := catalog.Default()
	cat.Width = catalog.Range{Min: 20, Max: 60}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCatalog, Data: cat}})
	if got := m.widthPicker.Value(); got != 36 {
		t.Fatalf("expected width 36 to survive the reload, got %d", got)
	}
	if got := m.widthPicker.Index(); got != 16 {
		t.Fatalf("expected width index 16, got %d", got)
	}
}

func TestBackendErrorShownInStatus(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCatalog, Err: errors.New("bad yaml")}})
	if !strings.Contains(h.View(), "Catalog: bad yaml") {
		t.Fatalf("expected catalog error in view:\n%s", h.View())
	}
}

func TestWatcherReloadReachesModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("types: [SH, DOOR]\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	initial, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	w := backend.NewWatcher(path, 10*time.Millisecond)
	t.Cleanup(w.Stop)

	m := newTestModel(t, Options{Catalogs: state.NewCatalogStore(initial), Watcher: w})
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("types: [SH, SLIDER, DOOR]\n"), 0o644); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	cmd := waitForBackendEvent(w)
	deadline := time.After(2 * time.Second)
	for {
		done := make(chan any, 1)
		go func() { done <- cmd() }()
		var msg any
		select {
		case msg = <-done:
		case <-deadline:
			t.Fatalf("timed out waiting for catalog reload")
		}
		evt, ok := msg.(backendEventMsg)
		if !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		m.Update(evt)
		if len(m.types) == 3 {
			break
		}
	}
	if m.types[1] != "SLIDER" {
		t.Fatalf("expected reloaded types, got %v", m.types)
	}
}

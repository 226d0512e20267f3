package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/takeoff/internal/backend"
	"github.com/atomicstack/takeoff/internal/catalog"
	"github.com/atomicstack/takeoff/internal/state"
	"github.com/atomicstack/takeoff/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	ShowFooter    bool
	CatalogPath   string
	ExportDir     string
	Accent        string
	WatchInterval time.Duration
	SmoothScroll  bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	store := state.NewCatalogStore(cat)
	store.SetSource(cfg.CatalogPath)

	watcher := backend.NewWatcher(cfg.CatalogPath, cfg.WatchInterval)
	defer watcher.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := ui.NewModel(ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		ExportDir:    cfg.ExportDir,
		Accent:       cfg.Accent,
		SmoothScroll: cfg.SmoothScroll,
		Catalogs:     store,
		Watcher:      watcher,
		Context:      ctx,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	model.Close()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/takeoff/internal/app"
	"github.com/atomicstack/takeoff/internal/config"
)

func TestProbeTerminalAccountsForEveryStream(t *testing.T) {
	info := probeTerminal()
	if !info.Interactive && len(info.Redirected) != 3 {
		t.Fatalf("expected all three streams redirected when not interactive, got %v", info.Redirected)
	}
	if info.Source == "" && (info.Width != 0 || info.Height != 0) {
		t.Fatalf("size reported without a source: %+v", info)
	}
}

func TestDescribePath(t *testing.T) {
	if got := describePath(""); got.Path != "(built-in)" || got.Exists {
		t.Fatalf("expected built-in marker, got %+v", got)
	}
	dir := t.TempDir()
	if got := describePath(dir); !got.Exists || !got.Dir || got.Absolute == "" {
		t.Fatalf("expected existing dir, got %+v", got)
	}
	missing := filepath.Join(dir, "catalog.yaml")
	if got := describePath(missing); got.Exists || got.Error != "" {
		t.Fatalf("expected missing file without error, got %+v", got)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:         80,
			Height:        24,
			ShowFooter:    true,
			CatalogPath:   "catalog.yaml",
			ExportDir:     "exports",
			WatchInterval: 2 * time.Second,
			SmoothScroll:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":     "80",
			"height":    "24",
			"footer":    "true",
			"catalog":   "catalog.yaml",
			"exportDir": "exports",
		},
		Args: []string{"--catalog", "catalog.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["catalog"] != "catalog.yaml" {
		t.Fatalf("expected catalog flag %q, got %v", "catalog.yaml", flagsValue["catalog"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["exportDir"] != "exports" {
		t.Fatalf("expected export dir exports, got %v", flagsValue["exportDir"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal details in payload")
	}
	if got, ok := payload["catalog"].(pathInfo); !ok || got.Path != "catalog.yaml" {
		t.Fatalf("expected catalog path info, got %v", payload["catalog"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

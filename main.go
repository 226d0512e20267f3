package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/takeoff/internal/app"
	"github.com/atomicstack/takeoff/internal/config"
	"github.com/atomicstack/takeoff/internal/logging"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "takeoff: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		events.App.Failed(err)
		fmt.Fprintf(os.Stderr, "takeoff: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the session was started with: flags,
// where the catalog and exports live, and what the terminal looks like.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"config":    cfg,
		"catalog":   describePath(cfg.App.CatalogPath),
		"exportDir": describePath(cfg.App.ExportDir),
		"terminal":  probeTerminal(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type pathInfo struct {
	Path     string `json:"path"`
	Absolute string `json:"absolute,omitempty"`
	Exists   bool   `json:"exists"`
	Dir      bool   `json:"dir,omitempty"`
	Error    string `json:"error,omitempty"`
}

// describePath reports an empty path as built-in, which is how the catalog
// flag behaves when unset.
func describePath(path string) pathInfo {
	info := pathInfo{Path: path}
	if path == "" {
		info.Path = "(built-in)"
		return info
	}
	if abs, err := filepath.Abs(path); err == nil {
		info.Absolute = abs
	}
	st, err := os.Stat(path)
	switch {
	case err == nil:
		info.Exists = true
		info.Dir = st.IsDir()
	case !os.IsNotExist(err):
		info.Error = err.Error()
	}
	return info
}

type terminalInfo struct {
	Interactive bool   `json:"interactive"`
	Source      string `json:"source,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	// Redirected lists the standard streams that are not terminals.
	Redirected []string `json:"redirected,omitempty"`
}

// probeTerminal takes the first standard stream that reports a size.
func probeTerminal() terminalInfo {
	var info terminalInfo
	streams := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	for i, f := range streams {
		fd := int(f.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			info.Redirected = append(info.Redirected, names[i])
			continue
		}
		info.Interactive = true
		if info.Source != "" {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil {
			info.Source, info.Width, info.Height = names[i], w, h
		}
	}
	return info
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/takeoff/internal/app"
	"github.com/atomicstack/takeoff/internal/theme"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth         = "TAKEOFF_WIDTH"
	envHeight        = "TAKEOFF_HEIGHT"
	envShowFooter    = "TAKEOFF_FOOTER"
	envTrace         = "TAKEOFF_TRACE"
	envLogFile       = "TAKEOFF_LOG_FILE"
	envCatalog       = "TAKEOFF_CATALOG"
	envExportDir     = "TAKEOFF_EXPORT_DIR"
	envAccent        = "TAKEOFF_ACCENT"
	envWatchInterval = "TAKEOFF_WATCH_INTERVAL"
	envSmooth        = "TAKEOFF_SMOOTH"

	defaultWatchInterval = 2 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("takeoff", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML option catalog")
	exportDir := fs.String("export-dir", envOrDefault(env, envExportDir, "."), "directory that receives CSV/XLSX exports")
	accent := fs.String("accent", envOrDefault(env, envAccent, ""), "accent colour as #rrggbb or hsl(h, s%, l%)")
	watch := fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, defaultWatchInterval), "how often the catalog file is checked for changes")
	smooth := fs.Bool("smooth", envOrBool(env, envSmooth, true), "animate picker transitions")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			CatalogPath:   *catalogPath,
			ExportDir:     *exportDir,
			Accent:        *accent,
			WatchInterval: *watch,
			SmoothScroll:  *smooth,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"catalog":       *catalogPath,
			"exportDir":     *exportDir,
			"accent":        *accent,
			"watchInterval": watch.String(),
			"smooth":        strconv.FormatBool(*smooth),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that flag parsing cannot: the catalog file must be
// readable, the export directory must exist, the accent must parse and the
// watch interval must be positive.
func Validate(cfg Config) error {
	var errs []error
	if path := cfg.App.CatalogPath; path != "" {
		if f, err := os.Open(path); err != nil {
			errs = append(errs, fmt.Errorf("catalog: %w", err))
		} else {
			f.Close()
		}
	}
	if dir := cfg.App.ExportDir; dir != "" {
		info, err := os.Stat(dir)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("export-dir: %w", err))
		case !info.IsDir():
			errs = append(errs, fmt.Errorf("export-dir: %s is not a directory", dir))
		}
	}
	if accent := cfg.App.Accent; accent != "" {
		if _, err := theme.Hex(accent); err != nil {
			errs = append(errs, fmt.Errorf("accent: %w", err))
		}
	}
	if cfg.App.WatchInterval <= 0 {
		errs = append(errs, fmt.Errorf("watch-interval must be > 0 (got %s)", cfg.App.WatchInterval))
	}
	return errors.Join(errs...)
}

// Package catalog holds the option lists and numeric ranges offered by the
// entry form, loaded from an optional YAML file.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/takeoff/internal/inventory"
	"github.com/atomicstack/takeoff/internal/theme"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrProtectedName = errors.New("option cannot be removed")
)

// MaxRangeValue caps every range so a picker never holds more than this many
// options.
const MaxRangeValue = 10000

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Valid reports whether the range starts at 1 or above, is not reversed and
// stays within MaxRangeValue.
func (r Range) Valid() bool {
	return r.Min >= 1 && r.Min <= r.Max && r.Max <= MaxRangeValue
}

// Values lists every integer in the range. An invalid range has no values.
func (r Range) Values() []int {
	if !r.Valid() {
		return nil
	}
	out := make([]int, 0, r.Max-r.Min+1)
	for v := r.Min; v <= r.Max; v++ {
		out = append(out, v)
	}
	return out
}

// Clamp limits v to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

type Defaults struct {
	Qty     int    `yaml:"qty"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Type    string `yaml:"type"`
	Transom string `yaml:"transom"`
}

type Theme struct {
	Accent         string `yaml:"accent"`
	Complement     string `yaml:"complement"`
	AutoComplement bool   `yaml:"auto_complement"`
}

// Catalog is the set of choices offered by the entry form.
type Catalog struct {
	Types    []string `yaml:"types"`
	Transoms []string `yaml:"transoms"`
	Quantity Range    `yaml:"quantity"`
	Width    Range    `yaml:"width"`
	Height   Range    `yaml:"height"`
	Defaults Defaults `yaml:"defaults"`
	Theme    Theme    `yaml:"theme"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Types:    []string{"SH", "DH", "FIXED", inventory.TypeDoor},
		Transoms: []string{inventory.TransomNone, "1'", "1'2\"", "1'4\"", "1'6\"", "1'8\"", "2'"},
		Quantity: Range{Min: 1, Max: 100},
		Width:    Range{Min: 4, Max: 244},
		Height:   Range{Min: 4, Max: 244},
		Defaults: Defaults{Qty: 1, Width: 36, Height: 60, Type: "SH", Transom: inventory.TransomNone},
		Theme: Theme{
			Accent:         theme.DefaultAccent,
			Complement:     theme.DefaultComplement,
			AutoComplement: true,
		},
	}
}

// Load reads a catalog file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML catalog. Keys that are absent keep their built-in
// values.
func Parse(data []byte) (*Catalog, error) {
	cat := Default()
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := cat.normalize(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) normalize() error {
	for name, r := range map[string]Range{"quantity": c.Quantity, "width": c.Width, "height": c.Height} {
		if !r.Valid() {
			return fmt.Errorf("%w: %s %d..%d (allowed 1..%d)", ErrInvalidRange, name, r.Min, r.Max, MaxRangeValue)
		}
	}

	c.Types = dedupe(c.Types, strings.ToUpper)
	if !contains(c.Types, inventory.TypeDoor) {
		c.Types = append(c.Types, inventory.TypeDoor)
	}
	c.Transoms = dedupe(c.Transoms, nil)
	if !contains(c.Transoms, inventory.TransomNone) {
		c.Transoms = append([]string{inventory.TransomNone}, c.Transoms...)
	}

	c.Defaults.Qty = c.Quantity.Clamp(c.Defaults.Qty)
	c.Defaults.Width = c.Width.Clamp(c.Defaults.Width)
	c.Defaults.Height = c.Height.Clamp(c.Defaults.Height)
	c.Defaults.Type = strings.ToUpper(strings.TrimSpace(c.Defaults.Type))
	if !contains(c.Types, c.Defaults.Type) {
		c.Defaults.Type = c.Types[0]
	}
	if !contains(c.Transoms, c.Defaults.Transom) {
		c.Defaults.Transom = inventory.TransomNone
	}

	if _, err := theme.Hex(c.Theme.Accent); err != nil {
		return fmt.Errorf("%w: accent: %v", ErrInvalidTheme, err)
	}
	if _, err := theme.Hex(c.Theme.Complement); err != nil {
		return fmt.Errorf("%w: complement: %v", ErrInvalidTheme, err)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	dup := *c
	dup.Types = append([]string(nil), c.Types...)
	dup.Transoms = append([]string(nil), c.Transoms...)
	return &dup
}

// AddType appends an upper-cased type. It reports false for blanks and
// duplicates.
func (c *Catalog) AddType(name string) (string, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" || contains(c.Types, name) {
		return name, false
	}
	c.Types = append(c.Types, name)
	return name, true
}

// RemoveType deletes a type. DOOR cannot be removed.
func (c *Catalog) RemoveType(name string) error {
	if name == inventory.TypeDoor {
		return fmt.Errorf("%w: %s", ErrProtectedName, name)
	}
	c.Types = without(c.Types, name)
	return nil
}

// AddTransom appends a transom height. It reports false for blanks and
// duplicates.
func (c *Catalog) AddTransom(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || contains(c.Transoms, value) {
		return value, false
	}
	c.Transoms = append(c.Transoms, value)
	return value, true
}

// RemoveTransom deletes a transom height. None cannot be removed.
func (c *Catalog) RemoveTransom(value string) error {
	if value == inventory.TransomNone {
		return fmt.Errorf("%w: %s", ErrProtectedName, value)
	}
	c.Transoms = without(c.Transoms, value)
	return nil
}

func dedupe(values []string, fold func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if fold != nil {
			v = fold(v)
		}
		if v == "" || contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

func without(values []string, v string) []string {
	out := values[:0:0]
	for _, existing := range values {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}

package theme

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultAccent     = "#d6001c"
	DefaultComplement = "hsl(180, 100%, 65%)"

	complementMinSaturation = 80
	complementMinLightness  = 65
)

// Presets are the quick-pick accent colours.
var Presets = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#06b6d4", "#ffffff",
}

var (
	ErrInvalidColor = errors.New("invalid colour")
	hslNumber       = regexp.MustCompile(`\d+(\.\d+)?`)
)

// HSL is a colour in degrees and percentages.
type HSL struct {
	H, S, L float64
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", round(c.H), round(c.S), round(c.L))
}

func round(v float64) int {
	return int(math.Round(v))
}

// ParseHSL reads "#rrggbb" or "hsl(h, s%, l%)" into HSL components.
func ParseHSL(s string) (HSL, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return HSL{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		h, sat, l := c.Hsl()
		if math.IsNaN(h) {
			h = 0
		}
		return HSL{H: h, S: sat * 100, L: l * 100}, nil
	case strings.HasPrefix(strings.ToLower(s), "hsl"):
		parts := hslNumber.FindAllString(s, -1)
		if len(parts) < 3 {
			return HSL{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
		}
		var v [3]float64
		for i := range v {
			f, err := strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return HSL{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
			}
			v[i] = f
		}
		return HSL{H: math.Mod(v[0], 360), S: math.Min(v[1], 100), L: math.Min(v[2], 100)}, nil
	}
	return HSL{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
}

// Hex converts a colour accepted by ParseHSL into "#rrggbb".
func Hex(s string) (string, error) {
	if trimmed := strings.TrimSpace(s); strings.HasPrefix(trimmed, "#") {
		c, err := colorful.Hex(trimmed)
		if err != nil {
			return "", fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		return c.Hex(), nil
	}
	c, err := ParseHSL(s)
	if err != nil {
		return "", err
	}
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex(), nil
}

// Complement returns the auto complement of accent: the opposite hue with
// saturation and lightness raised to at least 80% and 65%.
func Complement(accent string) (string, error) {
	c, err := ParseHSL(accent)
	if err != nil {
		return "", err
	}
	return HSL{
		H: math.Mod(c.H+180, 360),
		S: math.Max(c.S, complementMinSaturation),
		L: math.Max(c.L, complementMinLightness),
	}.String(), nil
}

// Wheel builds the accent produced by the hue/saturation disc.
func Wheel(hue, saturation int) string {
	return HSL{H: float64(hue), S: float64(saturation), L: 50}.String()
}

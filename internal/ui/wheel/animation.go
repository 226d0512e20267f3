package wheel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	glideFPS       = 60
	glideFrequency = 12.0
	glideDamping   = 1.0
	glideMaxFrames = 90
	glideEpsilon   = 0.05
)

// glide moves the offset toward a target with a critically damped spring.
type glide struct {
	active bool
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	frames int
}

func (g *glide) start(from, to float64) {
	g.active = true
	g.spring = harmonica.NewSpring(harmonica.FPS(glideFPS), glideFrequency, glideDamping)
	g.pos = from
	g.vel = 0
	g.target = to
	g.frames = 0
}

// step advances one frame and reports whether the glide has landed.
func (g *glide) step() (float64, bool) {
	if !g.active {
		return g.target, true
	}
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.target)
	g.frames++
	if g.frames >= glideMaxFrames || (math.Abs(g.pos-g.target) < glideEpsilon && math.Abs(g.vel) < glideEpsilon) {
		g.active = false
		return g.target, true
	}
	return g.pos, false
}

func (g *glide) stop() {
	g.active = false
	g.vel = 0
}

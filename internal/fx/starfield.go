package fx

import "github.com/vovakirdan/jet-defender/internal/core"

// Star is one background point. Z is the parallax depth, S the radius.
type Star struct {
	X, Y float64
	Z, S float64
}

// Alpha returns the brightness of the star.
func (s Star) Alpha() float64 {
	return min(1, 0.6+s.S*0.3)
}

// Starfield scrolls stars downward at speeds scaled by depth.
type Starfield struct {
	vp    core.Viewport
	rng   core.Rand
	stars []Star
}

// NewStarfield scatters n stars over the viewport.
func NewStarfield(n int, vp core.Viewport, rng core.Rand) *Starfield {
	if rng == nil {
		rng = core.NewSimpleRNG(0)
	}
	f := &Starfield{vp: vp, rng: rng, stars: make([]Star, n)}
	for i := range f.stars {
		f.stars[i] = Star{
			X: rng.Float64() * vp.W,
			Y: rng.Float64() * vp.H,
			Z: rng.Float64()*1.5 + 0.5,
			S: rng.Float64()*1.5 + 0.2,
		}
	}
	return f
}

// Resize rescales star positions to a new viewport.
func (f *Starfield) Resize(vp core.Viewport) {
	if f.vp.W > 0 && f.vp.H > 0 {
		sx, sy := vp.W/f.vp.W, vp.H/f.vp.H
		for i := range f.stars {
			f.stars[i].X *= sx
			f.stars[i].Y *= sy
		}
	}
	f.vp = vp
}

// Update scrolls the stars by dt milliseconds. Stars leaving the bottom
// re-enter above the top at a random column.
func (f *Starfield) Update(dt float64) {
	for i := range f.stars {
		s := &f.stars[i]
		s.Y += s.Z * dt * 0.06
		if s.Y > f.vp.H {
			s.Y = -10
			s.X = f.rng.Float64() * f.vp.W
		}
	}
}

// Stars returns the current stars.
func (f *Starfield) Stars() []Star {
	return f.stars
}

// Draw plots the stars onto a terminal screen behind everything else.
func (f *Starfield) Draw(dst *core.Screen, proj core.Projection) {
	for _, s := range f.stars {
		x, y := proj.Cell(s.X, s.Y)
		if s.Y < 0 || y < proj.OffsetY {
			continue
		}
		switch {
		case s.S > 1.2:
			dst.SetColored(x, y, '*', core.ColorWhite)
		case s.Z > 1.2:
			dst.SetColored(x, y, '·', core.ColorWhite)
		default:
			dst.SetColored(x, y, '.', core.ColorGray)
		}
	}
}

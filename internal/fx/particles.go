// Package fx holds the cosmetic layers drawn around the simulation: explosion
// particles and the scrolling starfield. Nothing here affects gameplay.
package fx

import (
	"slices"

	"github.com/vovakirdan/jet-defender/internal/config"
	"github.com/vovakirdan/jet-defender/internal/core"
)

// Particle is a single explosion fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64 // Units per second
	Size   float64
	Color  core.Color
	Age    float64 // ms
	Life   float64 // ms
}

// Fade returns the remaining opacity in [0, 1].
func (p Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	return core.ClampF(1-p.Age/p.Life, 0, 1)
}

// System owns all live particles.
type System struct {
	cfg       config.EffectsConfig
	rng       core.Rand
	particles []Particle
}

// NewSystem creates an empty particle system.
func NewSystem(cfg config.EffectsConfig, rng core.Rand) *System {
	if rng == nil {
		rng = core.NewSimpleRNG(0)
	}
	return &System{cfg: cfg, rng: rng}
}

// Emit spawns n particles at (x, y) flying in random directions.
func (s *System) Emit(x, y float64, n int, c core.Color) {
	speed := s.cfg.ParticleSpeed
	for range n {
		s.particles = append(s.particles, Particle{
			X:     x,
			Y:     y,
			VX:    core.Range(s.rng, -speed, speed),
			VY:    core.Range(s.rng, -speed, speed),
			Life:  s.cfg.ParticleLife + s.rng.Float64()*s.cfg.ParticleLifeRange,
			Size:  s.cfg.ParticleMinSize + s.rng.Float64()*s.cfg.ParticleSizeRange,
			Color: c,
		})
	}
}

// Update ages and moves particles by dt milliseconds, dropping the expired.
func (s *System) Update(dt float64) {
	sec := dt / 1000
	for i := len(s.particles) - 1; i >= 0; i-- {
		p := &s.particles[i]
		p.Age += dt
		p.X += p.VX * sec
		p.Y += p.VY * sec
		if p.Age > p.Life {
			s.particles = slices.Delete(s.particles, i, i+1)
		}
	}
}

// Particles returns the live particles. The slice is only valid until the
// next Emit or Update.
func (s *System) Particles() []Particle {
	return s.particles
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Clear drops every particle.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Draw plots particles onto a terminal screen, fading from '*' to '.'.
func (s *System) Draw(dst *core.Screen, proj core.Projection) {
	for _, p := range s.particles {
		x, y := proj.Cell(p.X, p.Y)
		if y < proj.OffsetY {
			continue
		}
		r := '.'
		switch f := p.Fade(); {
		case f > 0.66:
			r = '*'
		case f > 0.33:
			r = '+'
		}
		dst.SetColored(x, y, r, p.Color)
	}
}

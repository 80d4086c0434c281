package jet

import (
	"math"
	"slices"
)

// Snapshot is a read-only copy of the game for renderers and tests.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Paused    bool
	Score     int
	Level     int
	Lives     int
	HighScore int

	SpawnInterval float64
	SpawnTimer    float64

	HasPlayer      bool
	Player         Player
	DoubleShotLeft float64 // ms of double shot remaining
	ShieldLeft     float64 // ms of shield remaining

	Bullets  []Bullet
	Enemies  []Enemy
	Powerups []Powerup
}

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	s := &g.session
	snap := Snapshot{
		Tick:          g.ticks,
		Phase:         s.Phase,
		Paused:        g.paused,
		Score:         s.Score,
		Level:         s.Level,
		Lives:         s.Lives,
		HighScore:     g.highScore,
		SpawnInterval: s.SpawnInterval,
		SpawnTimer:    s.SpawnTimer,
		Bullets:       slices.Clone(s.Bullets),
		Enemies:       slices.Clone(s.Enemies),
		Powerups:      slices.Clone(s.Powerups),
	}
	if s.Player != nil {
		now := g.clock.Now()
		snap.HasPlayer = true
		snap.Player = *s.Player
		snap.DoubleShotLeft = remaining(now, s.Player.DoubleShotUntil)
		snap.ShieldLeft = remaining(now, s.Player.ShieldUntil)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Positions are rounded to hundredths.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + fixed(snap.SpawnInterval)
	h = h*31 + fixed(snap.SpawnTimer)

	if snap.HasPlayer {
		h = h*31 + fixed(snap.Player.X)
		h = h*31 + fixed(snap.Player.Cooldown)
	}

	for _, b := range snap.Bullets {
		h = h*31 + fixed(b.X)
		h = h*31 + fixed(b.Y)
	}

	for _, e := range snap.Enemies {
		h = h*31 + fixed(e.X)
		h = h*31 + fixed(e.Y)
		h = h*31 + fixed(e.Size)
		h = h*31 + uint64(e.HP) //#nosec G115 -- hash computation
	}

	for _, p := range snap.Powerups {
		h = h*31 + fixed(p.X)
		h = h*31 + fixed(p.Y)
		h = h*31 + uint64(p.Kind) //#nosec G115 -- hash computation
	}

	return h
}

func fixed(v float64) uint64 {
	return uint64(int64(math.Round(v * 100))) //#nosec G115 -- hash computation
}

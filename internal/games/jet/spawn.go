package jet

import "github.com/vovakirdan/jet-defender/internal/config"

// BurstSize returns how many enemies spawn together at a level.
func BurstSize(level, maxBurst int) int {
	return min(1+level/2, maxBurst)
}

// NextInterval returns the spawn interval after a level up.
func NextInterval(interval float64, sc config.SpawnConfig) float64 {
	return max(sc.MinInterval, interval-sc.IntervalStep)
}

// advanceSpawn accumulates dt and releases a burst once the timer passes
// the interval.
func (g *Game) advanceSpawn(dt float64) {
	s := &g.session
	s.SpawnTimer += dt
	if s.SpawnTimer <= s.SpawnInterval {
		return
	}
	s.SpawnTimer = 0

	for range BurstSize(s.Level, g.cfg.Spawn.MaxBurst) {
		s.Enemies = append(s.Enemies, NewEnemy(g.cfg, s.Level, g.vp, g.rng))
	}
}

// rollDrop leaves a power-up at (x, y) with the configured chance.
func (g *Game) rollDrop(x, y float64) {
	if g.rng.Float64() >= g.cfg.Powerups.DropChance {
		return
	}
	g.session.Powerups = append(g.session.Powerups, NewPowerup(g.cfg, x, y, g.rng))
}

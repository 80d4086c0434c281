package jet

import (
	"slices"
	"time"

	"github.com/vovakirdan/jet-defender/internal/core"
)

// Off-screen culling margins
const (
	bulletTopMargin  = 100
	bulletSideMargin = 200
	bottomMargin     = 100
)

// updateBullets moves bullets and culls those that left the viewport.
func (g *Game) updateBullets(dt float64) {
	s := &g.session
	sec := dt / 1000
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		b := &s.Bullets[i]
		b.X += b.VX * sec
		b.Y += b.VY * sec
		if b.Y < -bulletTopMargin || b.X < -bulletSideMargin || b.X > g.vp.W+bulletSideMargin {
			s.Bullets = slices.Delete(s.Bullets, i, i+1)
		}
	}
}

// updateEnemies moves every enemy and resolves, in order, the crash into
// the player, bullet hits and culling. It returns false when the last life
// was lost and the rest of the frame must be skipped.
func (g *Game) updateEnemies(dt float64, now time.Time) bool {
	s := &g.session
	sec := dt / 1000
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := &s.Enemies[i]
		e.Y += e.Speed * sec
		e.Rotation += 0.01 * dt / 16

		if e.Box().Overlaps(s.Player.Box()) {
			if !g.crash(i, now) {
				return false
			}
			continue
		}
		if g.shootDown(i) {
			continue
		}
		if e.Y > g.vp.H+bottomMargin {
			s.Enemies = slices.Delete(s.Enemies, i, i+1)
		}
	}
	return true
}

// crash removes enemy i after it touched the player. The shield turns the
// crash into a kill; otherwise a life is lost. Returns false on game over.
func (g *Game) crash(i int, now time.Time) bool {
	s := &g.session
	e := s.Enemies[i]
	s.Enemies = slices.Delete(s.Enemies, i, i+1)
	fx := g.cfg.Effects

	if s.Player.ShieldActive(now) {
		g.explode(e.X, e.Y, fx.ShieldBlock, core.ColorShield, ExplosionShieldBlock)
		g.award(g.cfg.Gameplay.KillPoints)
		return true
	}

	g.explode(e.X, e.Y, fx.PlayerHit, core.ColorBlast, ExplosionPlayerHit)
	s.Lives--
	g.emit(LifeLostEvent{Lives: s.Lives})
	if s.Lives <= 0 {
		g.gameOver()
		return false
	}
	s.Player.X = g.vp.W / 2
	return true
}

// shootDown resolves bullets against enemy i. At most one bullet is
// consumed per enemy per frame. Returns true if the enemy was destroyed.
func (g *Game) shootDown(i int) bool {
	s := &g.session
	e := &s.Enemies[i]
	box := e.Box()
	fx := g.cfg.Effects

	for j := len(s.Bullets) - 1; j >= 0; j-- {
		b := s.Bullets[j]
		if !b.Box().Overlaps(box) {
			continue
		}
		s.Bullets = slices.Delete(s.Bullets, j, j+1)
		e.HP--
		g.explode(b.X, b.Y, fx.BulletHit, core.ColorBlast, ExplosionBulletHit)
		if e.HP > 0 {
			return false
		}

		x, y := e.X, e.Y
		g.explode(x, y, fx.Kill, core.ColorBlast, ExplosionKill)
		g.rollDrop(x, y)
		s.Enemies = slices.Delete(s.Enemies, i, i+1)
		g.award(g.cfg.Gameplay.KillPoints)
		return true
	}
	return false
}

// updatePowerups moves power-ups, applies the ones the player touches and
// culls those below the viewport.
func (g *Game) updatePowerups(dt float64, now time.Time) {
	s := &g.session
	sec := dt / 1000
	for i := len(s.Powerups) - 1; i >= 0; i-- {
		p := &s.Powerups[i]
		p.Y += p.VY * sec

		if p.Box().Overlaps(s.Player.Box()) {
			g.collect(*p, now)
			s.Powerups = slices.Delete(s.Powerups, i, i+1)
			continue
		}
		if p.Y > g.vp.H+bottomMargin {
			s.Powerups = slices.Delete(s.Powerups, i, i+1)
		}
	}
}

// collect applies a power-up. Collecting again extends from now rather
// than stacking.
func (g *Game) collect(p Powerup, now time.Time) {
	pl := g.session.Player
	var until time.Time
	switch p.Kind {
	case PowerupDoubleShot:
		until = now.Add(core.Millis(g.cfg.Powerups.DoubleShot))
		pl.DoubleShotUntil = until
	case PowerupShield:
		until = now.Add(core.Millis(g.cfg.Powerups.Shield))
		pl.ShieldUntil = until
	}
	g.explode(p.X, p.Y, g.cfg.Effects.Pickup, core.ColorPickup, ExplosionPickup)
	g.emit(PowerupCollectedEvent{Kind: p.Kind, Until: until})
}

func (g *Game) explode(x, y float64, n int, c core.Color, kind ExplosionKind) {
	g.emit(ExplosionEvent{X: x, Y: y, Particles: n, Color: c, Kind: kind})
}

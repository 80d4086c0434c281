package jet

import "time"

// Step advances a running game by dt milliseconds. Outside the Running
// phase, or while paused, only pending lifecycle events are returned.
//
// Order per frame: cooldown, intents, spawn, bullets, enemies (crash, hits,
// culling), power-ups, level rule, high score. Losing the last life ends the
// frame early.
func (g *Game) Step(dt float64, in Intents) StepResult {
	g.newHigh = false
	if g.session.Phase != StateRunning || g.paused {
		return g.result()
	}
	if dt < 0 {
		dt = 0
	}
	g.ticks++
	now := g.clock.Now()
	p := g.session.Player

	if p.Cooldown > 0 {
		p.Cooldown -= dt
	}
	g.applyIntents(dt, in, now)
	g.advanceSpawn(dt)
	g.updateBullets(dt)

	if !g.updateEnemies(dt, now) {
		return g.result()
	}
	g.updatePowerups(dt, now)
	g.checkLevelUp()
	g.trackHighScore()

	return g.result()
}

func (g *Game) result() StepResult {
	events := g.events
	g.events = nil
	return StepResult{
		State:        g.State(),
		Events:       events,
		NewHighScore: g.newHigh,
	}
}

// applyIntents moves the player and fires when requested.
func (g *Game) applyIntents(dt float64, in Intents, now time.Time) {
	p := g.session.Player
	dx := p.Speed * dt / 1000
	if in.MoveLeft {
		p.X -= dx
	}
	if in.MoveRight {
		p.X += dx
	}
	if in.DragX != nil {
		p.X = *in.DragX
	}
	p.clampTo(g.vp)

	if in.Fire {
		g.fire(now)
	}
}

// fire spawns a shot unless the cooldown is still running.
func (g *Game) fire(now time.Time) bool {
	p := g.session.Player
	if p == nil || !p.Alive || p.Cooldown > 0 {
		return false
	}
	p.Cooldown = g.cfg.Player.FireCooldown

	shot := NewBullets(g.cfg, p, p.DoubleShotActive(now))
	g.session.Bullets = append(g.session.Bullets, shot...)
	g.emit(ShotFiredEvent{Bullets: len(shot)})
	return true
}

// checkLevelUp applies the single level rule: passing level*threshold
// raises the level once per frame, shortens the spawn interval and pays a
// bonus of level*bonus.
func (g *Game) checkLevelUp() {
	s := &g.session
	gp := g.cfg.Gameplay
	if s.Score <= s.Level*gp.LevelPoints || s.Level >= gp.MaxLevel {
		return
	}

	s.Level++
	s.SpawnInterval = NextInterval(s.SpawnInterval, g.cfg.Spawn)
	bonus := gp.LevelBonus * s.Level
	g.emit(LevelUpEvent{Level: s.Level, Bonus: bonus, SpawnInterval: s.SpawnInterval})
	g.award(bonus)
}

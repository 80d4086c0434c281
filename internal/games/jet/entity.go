package jet

import (
	"math"
	"time"

	"github.com/vovakirdan/jet-defender/internal/config"
	"github.com/vovakirdan/jet-defender/internal/core"
)

// Player is the craft moving along the bottom of the viewport.
type Player struct {
	X, Y            float64 // Center
	W, H            float64
	Speed           float64 // Units per second
	Cooldown        float64 // Remaining fire cooldown, ms
	DoubleShotUntil time.Time
	ShieldUntil     time.Time
	Alive           bool
}

// Box returns the collision box of the player.
func (p *Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// ShieldActive reports whether the shield absorbs collisions at now.
func (p *Player) ShieldActive(now time.Time) bool {
	return now.Before(p.ShieldUntil)
}

// DoubleShotActive reports whether shots fire in pairs at now.
func (p *Player) DoubleShotActive(now time.Time) bool {
	return now.Before(p.DoubleShotUntil)
}

// clampTo keeps the craft fully inside the viewport horizontally.
func (p *Player) clampTo(vp core.Viewport) {
	lo, hi := p.W/2, vp.W-p.W/2
	if hi < lo {
		p.X = vp.W / 2
		return
	}
	p.X = core.ClampF(p.X, lo, hi)
}

// Bullet is a projectile fired by the player.
type Bullet struct {
	X, Y   float64
	VX, VY float64 // Units per second; VY is negative (upward)
	Size   float64
}

// Box returns the collision box of the bullet.
func (b Bullet) Box() core.Box {
	return core.SquareBox(b.X, b.Y, b.Size)
}

// Enemy descends from the top of the viewport.
type Enemy struct {
	X, Y     float64
	Speed    float64 // Downward, units per second
	Size     float64
	HP       int
	Rotation float64 // Radians, cosmetic
	Variant  int     // Visual style, cosmetic
}

// Box returns the collision box of the enemy.
func (e Enemy) Box() core.Box {
	return core.SquareBox(e.X, e.Y, e.Size)
}

// PowerupKind identifies the effect of a power-up.
type PowerupKind int

const (
	PowerupDoubleShot PowerupKind = iota // Fire two diverging bullets
	PowerupShield                        // Absorb enemy collisions
)

// String returns the name of the power-up kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupDoubleShot:
		return "double"
	case PowerupShield:
		return "shield"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerupKind) Glyph() rune {
	switch k {
	case PowerupDoubleShot:
		return 'D'
	case PowerupShield:
		return 'S'
	default:
		return '?'
	}
}

// Powerup is a falling pickup dropped by destroyed enemies.
type Powerup struct {
	X, Y float64
	VY   float64
	Size float64
	Kind PowerupKind
}

// Box returns the collision box of the power-up.
func (p Powerup) Box() core.Box {
	return core.SquareBox(p.X, p.Y, p.Size)
}

// NewPlayer creates a fresh craft centered near the bottom of the viewport.
func NewPlayer(cfg config.JetConfig, vp core.Viewport) *Player {
	return &Player{
		X:     vp.W / 2,
		Y:     vp.H - cfg.Player.BottomOffset,
		W:     cfg.Player.Size,
		H:     cfg.Player.Size,
		Speed: cfg.Player.Speed,
		Alive: true,
	}
}

// NewEnemy creates an enemy above the top edge at a random column.
// Speed grows linearly with level and hp is 1 + level/2.
func NewEnemy(cfg config.JetConfig, level int, vp core.Viewport, rng core.Rand) Enemy {
	ec := cfg.Enemies
	variant := rng.Intn(ec.Variants)
	size := ec.MinSize + rng.Float64()*ec.SizeRange
	x := rng.Float64()*(vp.W-size) + size/2
	speed := ec.BaseSpeed + rng.Float64()*ec.SpeedRange + float64(level-1)*ec.LevelSpeed
	rot := rng.Float64()*2*ec.MaxRotation - ec.MaxRotation

	return Enemy{
		X:        x,
		Y:        ec.SpawnY,
		Speed:    speed,
		Size:     size,
		HP:       1 + level/2,
		Rotation: rot,
		Variant:  variant,
	}
}

// NewBullets creates the shot fired from the player's nose: one bullet, or
// two diverging ones while double shot is active.
func NewBullets(cfg config.JetConfig, p *Player, double bool) []Bullet {
	bc := cfg.Bullets
	x := p.X
	y := p.Y - p.H*bc.MuzzleFactor

	if !double {
		return []Bullet{{X: x, Y: y, VY: -bc.Speed, Size: bc.Size}}
	}
	return []Bullet{
		{X: x - bc.SpreadOffset, Y: y, VX: -bc.SpreadSpeed, VY: -bc.Speed, Size: bc.Size},
		{X: x + bc.SpreadOffset, Y: y, VX: bc.SpreadSpeed, VY: -bc.Speed, Size: bc.Size},
	}
}

// NewPowerup creates a power-up at the given point with an even chance of
// either kind.
func NewPowerup(cfg config.JetConfig, x, y float64, rng core.Rand) Powerup {
	kind := PowerupShield
	if rng.Float64() < 0.5 {
		kind = PowerupDoubleShot
	}
	return Powerup{
		X:    x,
		Y:    y,
		VY:   cfg.Powerups.FallSpeed,
		Size: cfg.Powerups.Size,
		Kind: kind,
	}
}

// remaining returns the milliseconds left until deadline, never negative.
func remaining(now, deadline time.Time) float64 {
	d := deadline.Sub(now)
	if d <= 0 {
		return 0
	}
	return math.Round(float64(d) / float64(time.Millisecond))
}

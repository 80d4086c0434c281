package jet

import (
	"time"

	"github.com/vovakirdan/jet-defender/internal/core"
)

// Event is an outcome of a simulation step, consumed by the rendering,
// audio, UI and persistence collaborators.
type Event interface {
	jetEvent()
}

// ExplosionKind tells collaborators what caused an explosion.
type ExplosionKind int

const (
	ExplosionShieldBlock ExplosionKind = iota // Enemy destroyed by the shield
	ExplosionPlayerHit                        // Enemy crashed into the player
	ExplosionBulletHit                        // Bullet struck an enemy
	ExplosionKill                             // Enemy destroyed by bullets
	ExplosionPickup                           // Power-up collected
)

// String returns the name of the explosion kind.
func (k ExplosionKind) String() string {
	switch k {
	case ExplosionShieldBlock:
		return "shield_block"
	case ExplosionPlayerHit:
		return "player_hit"
	case ExplosionBulletHit:
		return "bullet_hit"
	case ExplosionKill:
		return "kill"
	case ExplosionPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// ShotFiredEvent is emitted when the player fires.
type ShotFiredEvent struct {
	Bullets int
}

func (ShotFiredEvent) jetEvent() {}

// ExplosionEvent asks the rendering collaborator to spawn Particles
// particles at (X, Y).
type ExplosionEvent struct {
	X, Y      float64
	Particles int
	Color     core.Color
	Kind      ExplosionKind
}

func (ExplosionEvent) jetEvent() {}

// ScoreEvent is emitted whenever points are awarded.
type ScoreEvent struct {
	Points int
	Score  int // Total after the award
}

func (ScoreEvent) jetEvent() {}

// LifeLostEvent is emitted when an enemy hits an unshielded player.
type LifeLostEvent struct {
	Lives int // Remaining
}

func (LifeLostEvent) jetEvent() {}

// LevelUpEvent is emitted when the score crosses the level threshold.
type LevelUpEvent struct {
	Level         int
	Bonus         int
	SpawnInterval float64
}

func (LevelUpEvent) jetEvent() {}

// PowerupCollectedEvent is emitted when the player picks up a power-up.
type PowerupCollectedEvent struct {
	Kind  PowerupKind
	Until time.Time
}

func (PowerupCollectedEvent) jetEvent() {}

// GameStartedEvent is emitted on start and restart.
type GameStartedEvent struct {
	Restart bool
}

func (GameStartedEvent) jetEvent() {}

// GameOverEvent is emitted on the step the last life is lost.
type GameOverEvent struct {
	Score     int
	Level     int
	HighScore int
}

func (GameOverEvent) jetEvent() {}

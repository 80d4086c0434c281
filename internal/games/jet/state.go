package jet

import (
	"errors"
	"fmt"
)

// Game phases
const (
	StateIdle     = "idle"     // Title screen, no session in progress
	StateRunning  = "running"  // Simulation advancing
	StateGameOver = "gameover" // Frozen after the last life was lost
)

// Session is the mutable aggregate of one game. Only Step and the
// lifecycle methods on Game modify it.
type Session struct {
	Phase         string
	Player        *Player // nil unless Running
	Bullets       []Bullet
	Enemies       []Enemy
	Powerups      []Powerup
	Score         int
	Level         int
	Lives         int
	SpawnInterval float64
	SpawnTimer    float64
}

// Validate checks the session invariants.
func (s *Session) Validate() error {
	var errs []error

	switch s.Phase {
	case StateRunning:
		if s.Player == nil {
			errs = append(errs, errors.New("running without a player"))
		} else if !s.Player.Alive {
			errs = append(errs, errors.New("running with a dead player"))
		}
		if s.Lives <= 0 {
			errs = append(errs, fmt.Errorf("running with %d lives", s.Lives))
		}
	case StateIdle, StateGameOver:
		if s.Player != nil {
			errs = append(errs, fmt.Errorf("player present while %s", s.Phase))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown phase %q", s.Phase))
	}

	if s.Lives < 0 {
		errs = append(errs, fmt.Errorf("negative lives %d", s.Lives))
	}
	if s.Score < 0 {
		errs = append(errs, fmt.Errorf("negative score %d", s.Score))
	}
	if s.Phase != StateIdle && s.Level < 1 {
		errs = append(errs, fmt.Errorf("level %d below 1", s.Level))
	}
	for i, e := range s.Enemies {
		if e.HP < 1 {
			errs = append(errs, fmt.Errorf("enemy %d present with hp %d", i, e.HP))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("jet: invalid session: %w", errors.Join(errs...))
}

// Package feed broadcasts the HUD and gameplay events of a running game to
// websocket clients, for overlays and spectators.
package feed

import (
	"github.com/vovakirdan/jet-defender/internal/core"
	"github.com/vovakirdan/jet-defender/internal/games/jet"
)

// Event is the wire form of a simulation event.
type Event struct {
	Type  string `json:"type"`
	Kind  string `json:"kind,omitempty"`
	Value int    `json:"value"`
}

// Frame is one published message.
type Frame struct {
	Phase  string  `json:"phase"`
	Paused bool    `json:"paused,omitempty"`
	Score  int     `json:"score"`
	Level  int     `json:"level"`
	Lives  int     `json:"lives"`
	High   int     `json:"high"`
	Events []Event `json:"events,omitempty"`
}

// NewFrame builds a frame from a step result.
func NewFrame(phase string, st core.GameState, high int, events []jet.Event) Frame {
	f := Frame{
		Phase:  phase,
		Paused: st.Paused,
		Score:  st.Score,
		Level:  st.Level,
		Lives:  st.Lives,
		High:   high,
	}
	for _, e := range events {
		f.Events = append(f.Events, convert(e))
	}
	return f
}

func convert(e jet.Event) Event {
	switch e := e.(type) {
	case jet.ShotFiredEvent:
		return Event{Type: "shot", Value: e.Bullets}
	case jet.ExplosionEvent:
		return Event{Type: "explosion", Kind: e.Kind.String(), Value: e.Particles}
	case jet.ScoreEvent:
		return Event{Type: "score", Value: e.Points}
	case jet.LifeLostEvent:
		return Event{Type: "life_lost", Value: e.Lives}
	case jet.LevelUpEvent:
		return Event{Type: "level_up", Value: e.Level}
	case jet.PowerupCollectedEvent:
		return Event{Type: "powerup", Kind: e.Kind.String()}
	case jet.GameStartedEvent:
		kind := "start"
		if e.Restart {
			kind = "restart"
		}
		return Event{Type: "started", Kind: kind}
	case jet.GameOverEvent:
		return Event{Type: "game_over", Value: e.Score}
	default:
		return Event{Type: "unknown"}
	}
}

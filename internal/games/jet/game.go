// Package jet implements the Jet Defender simulation: a craft at the bottom
// of the viewport shoots descending enemies and collects power-ups.
//
// The package has no rendering, audio or persistence of its own. Frontends
// drive it with Step and react to the returned events.
package jet

import (
	"fmt"
	"time"

	"github.com/vovakirdan/jet-defender/internal/config"
	"github.com/vovakirdan/jet-defender/internal/core"
)

// HUDRows is the number of terminal rows reserved above the play field.
const HUDRows = 1

// Intents is the input sampled by the frame driver for one step.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	DragX     *float64 // Absolute pointer target, logical units
}

// IntentsFrom converts a platform input frame to simulation intents.
func IntentsFrom(in core.InputFrame) Intents {
	return Intents{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Fire:      in.Has(core.ActionFire),
		DragX:     in.DragX,
	}
}

// StepResult is returned by every Step.
type StepResult struct {
	State        core.GameState
	Events       []Event
	NewHighScore bool // The score passed the best known score during this step
}

// Game owns the session and its state machine.
type Game struct {
	cfg     config.JetConfig
	clock   core.Clock
	rng     core.Rand
	ownRNG  bool // rng was created here and may be reseeded
	runtime core.RuntimeConfig
	vp      core.Viewport

	session   Session
	paused    bool
	highScore int
	newHigh   bool
	ticks     uint64
	events    []Event
}

// New creates a game in the Idle phase. A nil clock uses the system clock and
// a nil rng a time-seeded generator.
func New(cfg config.JetConfig, clock core.Clock, rng core.Rand) *Game {
	g := &Game{cfg: cfg, clock: clock, rng: rng}
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}
	if g.rng == nil {
		g.rng = core.NewSimpleRNG(0)
		g.ownRNG = true
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ViewportFor returns the logical play area for a screen. A viewport fixed
// in the configuration wins; otherwise the terminal size minus the HUD is
// scaled by the configured cell size.
func ViewportFor(cfg config.JetConfig, rc core.RuntimeConfig) core.Viewport {
	if cfg.Viewport.Width > 0 && cfg.Viewport.Height > 0 {
		return core.Viewport{W: cfg.Viewport.Width, H: cfg.Viewport.Height}
	}
	rows := max(rc.ScreenH-HUDRows, 1)
	return core.Viewport{
		W: float64(rc.ScreenW) * cfg.Terminal.CellWidth,
		H: float64(rows) * cfg.Terminal.CellHeight,
	}
}

// Reset adapts the game to a screen and returns to the Idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.ownRNG && runtime.Seed != 0 {
		g.rng = core.NewSimpleRNG(runtime.Seed)
	}
	g.vp = ViewportFor(g.cfg, runtime)
	g.session = Session{Phase: StateIdle}
	g.paused = false
	g.ticks = 0
	g.events = nil
}

// SetViewport replaces the logical play area, keeping a running player
// inside it.
func (g *Game) SetViewport(vp core.Viewport) {
	g.vp = vp
	if p := g.session.Player; p != nil {
		p.Y = vp.H - g.cfg.Player.BottomOffset
		p.clampTo(vp)
	}
}

// Viewport returns the logical play area.
func (g *Game) Viewport() core.Viewport {
	return g.vp
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.JetConfig {
	return g.cfg
}

// Phase returns the state machine phase.
func (g *Game) Phase() string {
	return g.session.Phase
}

// Start begins a game from Idle or GameOver. It reports false while a game
// is already running.
func (g *Game) Start() bool {
	if g.session.Phase == StateRunning {
		return false
	}
	restart := g.session.Phase == StateGameOver
	g.begin()
	g.emit(GameStartedEvent{Restart: restart})
	return true
}

// Restart discards the current session, whatever its phase, and starts a
// fresh one.
func (g *Game) Restart() {
	g.begin()
	g.emit(GameStartedEvent{Restart: true})
}

func (g *Game) begin() {
	g.session = Session{
		Phase:         StateRunning,
		Player:        NewPlayer(g.cfg, g.vp),
		Score:         0,
		Level:         1,
		Lives:         g.cfg.Gameplay.Lives,
		SpawnInterval: g.cfg.Spawn.Interval,
		SpawnTimer:    0,
	}
	g.paused = false
	g.ticks = 0
}

// TogglePause freezes or resumes a running game.
func (g *Game) TogglePause() {
	if g.session.Phase == StateRunning {
		g.paused = !g.paused
	}
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// SetHighScore seeds the best known score, usually from persistence.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
}

// HighScore returns the best score seen, including the current session.
func (g *Game) HighScore() int {
	return g.highScore
}

// State returns the HUD-level view of the game.
func (g *Game) State() core.GameState {
	s := &g.session
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		Lives:    s.Lives,
		Running:  s.Phase == StateRunning,
		GameOver: s.Phase == StateGameOver,
		Paused:   g.paused,
	}
}

// Validate checks the session invariants against the configuration.
func (g *Game) Validate() error {
	if err := g.session.Validate(); err != nil {
		return err
	}
	if g.session.Level > g.cfg.Gameplay.MaxLevel {
		return fmt.Errorf("jet: level %d above maximum %d", g.session.Level, g.cfg.Gameplay.MaxLevel)
	}
	return nil
}

// Now returns the simulation clock reading.
func (g *Game) Now() time.Time {
	return g.clock.Now()
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) award(points int) {
	g.session.Score += points
	g.emit(ScoreEvent{Points: points, Score: g.session.Score})
}

// trackHighScore raises the best score when the session passes it.
func (g *Game) trackHighScore() {
	if g.session.Score > g.highScore {
		g.highScore = g.session.Score
		g.newHigh = true
	}
}

func (g *Game) gameOver() {
	s := &g.session
	g.trackHighScore()
	s.Player.Alive = false
	s.Player = nil
	s.Phase = StateGameOver
	g.paused = false
	g.emit(GameOverEvent{Score: s.Score, Level: s.Level, HighScore: g.highScore})
}

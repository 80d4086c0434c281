// Package driver runs the frame loop around the simulation: it measures
// frame time, steps the game and hands every event to the collaborators
// (effects, audio, feed, persistence and logs). Frontends only sample input
// and draw.
package driver

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jet-defender/internal/core"
	"github.com/vovakirdan/jet-defender/internal/fx"
	"github.com/vovakirdan/jet-defender/internal/games/jet"
	"github.com/vovakirdan/jet-defender/internal/platform/feed"
	"github.com/vovakirdan/jet-defender/internal/storage"
)

// Options wires the collaborators. Every field is optional.
type Options struct {
	Board  string // Leaderboard id, defaults to "jet"
	Player string
	Clock  core.Clock // Frame timing, defaults to the system clock
	Rand   core.Rand  // Effects randomness, separate from the simulation
	Store  ScoreStore
	Sound  Sound
	Feed   Publisher
	Logger *log.Logger
}

// Driver owns a game and its cosmetic layers.
type Driver struct {
	game      *jet.Game
	particles *fx.System
	stars     *fx.Starfield
	frames    *FrameClock

	board  string
	player string
	store  ScoreStore
	sound  Sound
	feed   Publisher
	logger *log.Logger

	flashLives float64 // ms left
	flashLevel float64
	scoreSaved bool
	highLogged bool
	lastState  core.GameState
	lastHigh   int
	lastSaved  storage.Entry
}

// New wraps game. The best score of the board is loaded from the store.
func New(game *jet.Game, opts Options) *Driver {
	cfg := game.Config()
	if opts.Board == "" {
		opts.Board = "jet"
	}
	if opts.Rand == nil {
		opts.Rand = core.NewSimpleRNG(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	d := &Driver{
		game:      game,
		particles: fx.NewSystem(cfg.Effects, opts.Rand),
		stars:     fx.NewStarfield(cfg.Effects.Stars, game.Viewport(), opts.Rand),
		frames:    NewFrameClock(opts.Clock, cfg.Gameplay.MaxFrame),
		board:     opts.Board,
		player:    opts.Player,
		store:     opts.Store,
		sound:     opts.Sound,
		feed:      opts.Feed,
		logger:    opts.Logger,
	}

	if d.store != nil {
		high, err := d.store.HighScore(d.board)
		if err != nil {
			d.logger.Warn("cannot load high score", "board", d.board, "error", err)
		}
		game.SetHighScore(high)
	}
	d.lastState = game.State()
	d.lastHigh = game.HighScore()
	return d
}

// Game returns the driven game.
func (d *Driver) Game() *jet.Game {
	return d.game
}

// Board returns the leaderboard id scores are saved under.
func (d *Driver) Board() string {
	return d.board
}

// Start begins a game from the title or game over screen.
func (d *Driver) Start() bool {
	return d.game.Start()
}

// Restart abandons the current game and starts a new one. The abandoned
// run is recorded first.
func (d *Driver) Restart() {
	d.Finish()
	d.game.Restart()
}

// Finish records a game still in progress, as when the player quits or
// disconnects. It is safe to call more than once.
func (d *Driver) Finish() {
	st := d.game.State()
	if !st.Running {
		return
	}
	d.saveScore(st.Score, st.Level)
}

// TogglePause freezes or resumes the game.
func (d *Driver) TogglePause() {
	d.game.TogglePause()
	if !d.game.Paused() {
		d.frames.Reset()
	}
}

// Resize adapts the viewport to a new screen size.
func (d *Driver) Resize(rc core.RuntimeConfig) {
	d.SetViewport(jet.ViewportFor(d.game.Config(), rc))
}

// SetViewport replaces the logical play area directly. The desktop frontend
// uses window pixels as logical units.
func (d *Driver) SetViewport(vp core.Viewport) {
	d.game.SetViewport(vp)
	d.stars.Resize(vp)
}

// Frame measures the elapsed time and advances by it.
func (d *Driver) Frame(in jet.Intents) jet.StepResult {
	return d.Advance(d.frames.Tick(), in)
}

// Advance steps the game by dt ms, clamped to the configured maximum frame,
// and dispatches the resulting events.
func (d *Driver) Advance(dt float64, in jet.Intents) jet.StepResult {
	dt = ClampDT(dt, d.game.Config().Gameplay.MaxFrame)
	res := d.game.Step(dt, in)

	if !res.State.Paused {
		d.stars.Update(dt)
		d.particles.Update(dt)
		d.flashLives = max(d.flashLives-dt, 0)
		d.flashLevel = max(d.flashLevel-dt, 0)
	}

	for _, e := range res.Events {
		d.dispatch(e)
	}
	if res.NewHighScore && !d.highLogged {
		d.highLogged = true
		d.logger.Info("new high score", "board", d.board, "score", res.State.Score)
	}

	d.publish(res)
	return res
}

func (d *Driver) dispatch(e jet.Event) {
	effects := d.game.Config().Effects

	switch e := e.(type) {
	case jet.ShotFiredEvent:
		if d.sound != nil {
			d.sound.PlayShot()
		}
	case jet.ExplosionEvent:
		d.particles.Emit(e.X, e.Y, e.Particles, e.Color)
		if d.sound != nil {
			d.sound.PlayExplosion()
		}
	case jet.LifeLostEvent:
		d.flashLives = effects.FlashDuration
		d.logger.Debug("life lost", "lives", e.Lives)
	case jet.LevelUpEvent:
		d.flashLevel = effects.FlashDuration
		d.logger.Info("level up", "level", e.Level, "bonus", e.Bonus, "interval", e.SpawnInterval)
	case jet.PowerupCollectedEvent:
		d.logger.Debug("power-up", "kind", e.Kind.String())
	case jet.GameStartedEvent:
		d.scoreSaved = false
		d.highLogged = false
		d.particles.Clear()
		d.frames.Reset()
		if d.sound != nil {
			d.sound.StartMusic()
		}
		d.logger.Info("game started", "board", d.board, "restart", e.Restart)
	case jet.GameOverEvent:
		if d.sound != nil {
			d.sound.StopMusic()
		}
		d.logger.Info("game over", "board", d.board, "score", e.Score, "level", e.Level, "high", e.HighScore)
		d.saveScore(e.Score, e.Level)
	}
}

// saveScore records the run once per game. Failures are logged and the
// game goes on.
func (d *Driver) saveScore(score, level int) {
	if d.scoreSaved || d.store == nil || score <= 0 {
		return
	}
	d.scoreSaved = true

	saved, err := d.store.SaveScore(storage.Entry{
		Board:  d.board,
		Player: d.player,
		Score:  score,
		Level:  level,
	})
	if err != nil {
		d.logger.Warn("cannot save score", "board", d.board, "error", err)
		return
	}
	d.lastSaved = saved
	d.logger.Debug("score saved", "run", saved.RunID.String())
}

// LastSaved returns the most recently stored run, if any.
func (d *Driver) LastSaved() storage.Entry {
	return d.lastSaved
}

func (d *Driver) publish(res jet.StepResult) {
	if d.feed == nil {
		return
	}
	high := d.game.HighScore()
	if len(res.Events) == 0 && res.State == d.lastState && high == d.lastHigh {
		return
	}
	d.lastState = res.State
	d.lastHigh = high
	d.feed.Publish(feed.NewFrame(d.game.Phase(), res.State, high, res.Events))
}

// Overlay returns the HUD emphasis currently active.
func (d *Driver) Overlay() jet.Overlay {
	return jet.Overlay{
		FlashLives: d.flashLives > 0,
		FlashLevel: d.flashLevel > 0,
	}
}

// Particles returns the live explosion particles.
func (d *Driver) Particles() []fx.Particle {
	return d.particles.Particles()
}

// Stars returns the background stars.
func (d *Driver) Stars() []fx.Star {
	return d.stars.Stars()
}

// Render draws the full terminal frame: stars, particles, then the game.
func (d *Driver) Render(dst *core.Screen) {
	dst.Clear()
	proj := d.game.Projection(dst)
	d.stars.Draw(dst, proj)
	d.particles.Draw(dst, proj)
	d.game.RenderWith(dst, d.Overlay())
}

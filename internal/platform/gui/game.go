// Package gui is the desktop frontend. It runs the frame driver inside an
// Ebitengine window, using window pixels as logical units.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/jet-defender/internal/config"
	"github.com/vovakirdan/jet-defender/internal/core"
	"github.com/vovakirdan/jet-defender/internal/games/jet"
	"github.com/vovakirdan/jet-defender/internal/platform/driver"
)

// DragZone is the share of the window height, counted from the bottom,
// where a held pointer steers the craft.
const DragZone = 0.4

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("quit")

var background = color.RGBA{R: 0x05, G: 0x07, B: 0x14, A: 0xff}

// Game adapts a driver to ebiten.Game.
type Game struct {
	driver *driver.Driver
	width  int
	height int
}

// New creates the desktop frontend. The play area is fixed to the window
// size from win.
func New(d *driver.Driver, win config.WindowConfig) *Game {
	g := &Game{driver: d, width: win.Width, height: win.Height}
	d.SetViewport(core.Viewport{W: float64(win.Width), H: float64(win.Height)})
	return g
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(d *driver.Driver, win config.WindowConfig) error {
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)

	err := ebiten.RunGame(New(d, win))
	// Closing the window mid-game still records the run.
	d.Finish()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Update samples input and advances the driver by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	state := g.driver.Game().State()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.driver.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && (state.Running || state.GameOver):
		g.driver.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.driver.TogglePause()
	}

	in := g.readInput()
	if FireStarts(g.driver.Game().Phase(), in) {
		g.driver.Start()
	}
	g.driver.Frame(in)
	return nil
}

// readInput turns held keys, mouse and touches into intents.
func (g *Game) readInput() jet.Intents {
	in := jet.Intents{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}

	vp := g.driver.Game().Viewport()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if target, ok := DragTarget(x, y, g.width, g.height, vp); ok {
			in.DragX = &target
			in.Fire = true
		}
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if target, ok := DragTarget(x, y, g.width, g.height, vp); ok {
			in.DragX = &target
			in.Fire = true
			break
		}
	}
	return in
}

// FireStarts reports whether firing should leave the current screen. Only
// the title screen starts on fire; a held trigger would otherwise skip the
// game over screen.
func FireStarts(phase string, in jet.Intents) bool {
	return in.Fire && phase == jet.StateIdle
}

// DragTarget maps a pointer position to a player x. Only the bottom
// DragZone of the window steers.
func DragTarget(x, y, width, height int, vp core.Viewport) (float64, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	if float64(y) < float64(height)*(1-DragZone) {
		return 0, false
	}
	return float64(x) / float64(width) * vp.W, true
}

// RGBA converts a palette color with an alpha in [0, 1].
func RGBA(c core.Color, alpha float64) color.RGBA {
	r, g, b := c.RGB()
	a := core.ClampF(alpha, 0, 1)
	// Premultiplied, as ebiten expects.
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}

// Draw renders the frame: stars, entities, particles, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	vp := g.driver.Game().Viewport()
	sx := float32(float64(g.width) / vp.W)
	sy := float32(float64(g.height) / vp.H)
	rect := func(x, y, w, h float64, c color.Color) {
		vector.DrawFilledRect(screen, float32(x-w/2)*sx, float32(y-h/2)*sy, float32(w)*sx, float32(h)*sy, c, false)
	}

	for _, s := range g.driver.Stars() {
		rect(s.X, s.Y, s.S, s.S, RGBA(core.ColorBrightWhite, s.Alpha()))
	}

	snap := g.driver.Game().Snapshot()
	for _, p := range snap.Powerups {
		c := core.ColorBrightYellow
		if p.Kind == jet.PowerupShield {
			c = core.ColorBrightCyan
		}
		rect(p.X, p.Y, p.Size, p.Size, RGBA(c, 1))
	}
	for _, e := range snap.Enemies {
		rect(e.X, e.Y, e.Size, e.Size, RGBA(jet.EnemyColor(e.Variant), 1))
	}
	for _, b := range snap.Bullets {
		rect(b.X, b.Y, b.Size/3, b.Size, RGBA(core.ColorBrightYellow, 1))
	}
	if snap.HasPlayer {
		g.drawPlayer(screen, snap, sx, sy)
	}

	for _, p := range g.driver.Particles() {
		rect(p.X, p.Y, p.Size, p.Size, RGBA(p.Color, p.Fade()))
	}

	if snap.DoubleShotLeft > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), RGBA(core.ColorBrightYellow, 0.06), false)
	}

	g.drawHUD(screen, snap)
}

func (g *Game) drawPlayer(screen *ebiten.Image, snap jet.Snapshot, sx, sy float32) {
	p := snap.Player
	x, y := float32(p.X-p.W/2)*sx, float32(p.Y-p.H/2)*sy
	w, h := float32(p.W)*sx, float32(p.H)*sy

	hull := core.ColorBrightWhite
	if snap.DoubleShotLeft > 0 {
		hull = core.ColorBrightYellow
	}
	vector.DrawFilledRect(screen, x, y, w, h, RGBA(hull, 1), false)

	if jet.ShieldVisible(snap.ShieldLeft) {
		// The halo fades as the shield runs out.
		alpha := 0.3 + 0.7*min(snap.ShieldLeft/g.driver.Game().Config().Powerups.Shield, 1)
		vector.StrokeRect(screen, x-6, y-6, w+12, h+12, 3, RGBA(core.ColorShield, alpha), false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap jet.Snapshot) {
	ov := g.driver.Overlay()
	ebitenutil.DebugPrintAt(screen, HUDLine(snap, ov), 8, 8)

	mid := g.height / 2
	switch {
	case snap.Phase == jet.StateIdle:
		ebitenutil.DebugPrintAt(screen, "J E T   D E F E N D E R", g.width/2-70, mid-40)
		ebitenutil.DebugPrintAt(screen, "ENTER / SPACE / tap to start", g.width/2-84, mid)
	case snap.Phase == jet.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", g.width/2-27, mid-40)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level), g.width/2-66, mid)
		ebitenutil.DebugPrintAt(screen, "R / ENTER to play again", g.width/2-69, mid+24)
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.width/2-18, mid)
	}
}

// HUDLine formats the status line. Flashing counters are bracketed.
func HUDLine(snap jet.Snapshot, ov jet.Overlay) string {
	lives := fmt.Sprintf("Lives %d", snap.Lives)
	if ov.FlashLives {
		lives = "[" + lives + "]"
	}
	level := fmt.Sprintf("Level %d", max(snap.Level, 1))
	if ov.FlashLevel {
		level = "[" + level + "]"
	}
	line := fmt.Sprintf("Score %d   %s   %s   High %d", snap.Score, level, lives, snap.HighScore)
	if snap.ShieldLeft > 0 {
		line += fmt.Sprintf("   Shield %ds", int((snap.ShieldLeft+999)/1000))
	}
	if snap.DoubleShotLeft > 0 {
		line += fmt.Sprintf("   Double %ds", int((snap.DoubleShotLeft+999)/1000))
	}
	return line
}

// Layout keeps the logical screen at the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

package jet

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jet-defender/internal/core"
)

// Visual characters for rendering
const (
	PlayerNose  = '▲'
	PlayerHull  = '█'
	BulletChar  = '|'
	ShieldChar  = '·'
	LifeChar    = '♥'
	MinScreenW  = 24
	MinScreenH  = 10
	blinkPeriod = 250 // ms
	shieldWarn  = 3000
)

// Enemy glyphs and colors by variant (cycling through)
var (
	enemyGlyphs = []rune{'▼', '◆', '▓'}
	enemyColors = []core.Color{core.ColorRed, core.ColorMagenta, core.ColorYellow}
)

// Overlay carries transient HUD emphasis owned by the UI collaborator.
type Overlay struct {
	FlashLives bool
	FlashLevel bool
}

// Projection maps logical coordinates onto the play field of dst, below
// the HUD row.
func (g *Game) Projection(dst *core.Screen) core.Projection {
	return core.NewProjection(g.vp, dst.Width(), dst.Height()-HUDRows, HUDRows)
}

// Render draws the game onto dst without clearing it, so background layers
// drawn first stay visible.
func (g *Game) Render(dst *core.Screen) {
	g.RenderWith(dst, Overlay{})
}

// RenderWith draws the game with HUD emphasis applied.
func (g *Game) RenderWith(dst *core.Screen, ov Overlay) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	proj := g.Projection(dst)
	snap := g.Snapshot()

	for _, p := range snap.Powerups {
		x, y := proj.Cell(p.X, p.Y)
		c := core.ColorBrightYellow
		if p.Kind == PowerupShield {
			c = core.ColorBrightCyan
		}
		dst.SetColored(x-1, y, '[', c)
		dst.SetColored(x, y, p.Kind.Glyph(), c)
		dst.SetColored(x+1, y, ']', c)
	}

	for _, e := range snap.Enemies {
		v := e.Variant % len(enemyGlyphs)
		dst.DrawRect(proj.CellRect(e.Box()), enemyGlyphs[v], enemyColors[v])
	}

	for _, b := range snap.Bullets {
		x, y := proj.Cell(b.X, b.Y)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}

	if snap.HasPlayer {
		g.renderPlayer(dst, proj, snap)
	}

	g.renderHUD(dst, snap, ov)

	switch {
	case snap.Phase == StateIdle:
		g.renderTitle(dst)
	case snap.Phase == StateGameOver:
		g.renderGameOver(dst, snap)
	case snap.Paused:
		drawBanner(dst, dst.Height()/2, "PAUSED", core.ColorBrightWhite)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, proj core.Projection, snap Snapshot) {
	r := proj.CellRect(snap.Player.Box())
	hull := core.ColorBrightWhite
	if snap.DoubleShotLeft > 0 {
		hull = core.ColorBrightYellow
	}

	if ShieldVisible(snap.ShieldLeft) {
		halo := core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
		for x := halo.X; x < halo.Right(); x++ {
			dst.SetColored(x, halo.Y, ShieldChar, core.ColorShield)
			dst.SetColored(x, halo.Bottom()-1, ShieldChar, core.ColorShield)
		}
		for y := halo.Y; y < halo.Bottom(); y++ {
			dst.SetColored(halo.X, y, ShieldChar, core.ColorShield)
			dst.SetColored(halo.Right()-1, y, ShieldChar, core.ColorShield)
		}
	}

	if r.H > 1 {
		dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), PlayerHull, hull)
	}
	cx, _ := proj.Cell(snap.Player.X, snap.Player.Y)
	dst.SetColored(cx, r.Y, PlayerNose, hull)
}

// ShieldVisible reports whether the shield halo is drawn with left ms of
// shield remaining. The halo blinks while the shield is about to expire.
func ShieldVisible(left float64) bool {
	if left <= 0 {
		return false
	}
	if left > shieldWarn {
		return true
	}
	return int(left/blinkPeriod)%2 == 0
}

// EnemyColor returns the display color of an enemy variant.
func EnemyColor(variant int) core.Color {
	return enemyColors[variant%len(enemyColors)]
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, ov Overlay) {
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), 1), ' ', core.ColorDefault)

	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put(fmt.Sprintf("SCORE %d", snap.Score), core.ColorBrightWhite)

	levelColor := core.ColorWhite
	if ov.FlashLevel {
		levelColor = core.ColorBrightGreen
	}
	put(fmt.Sprintf("LEVEL %d", max(snap.Level, 1)), levelColor)

	livesColor := core.ColorBrightRed
	if ov.FlashLives {
		livesColor = core.ColorBrightWhite
	}
	put(strings.Repeat(string(LifeChar), max(snap.Lives, 0)), livesColor)

	put(fmt.Sprintf("HIGH %d", snap.HighScore), core.ColorGray)

	if snap.DoubleShotLeft > 0 {
		put(fmt.Sprintf("2X %ds", secondsLeft(snap.DoubleShotLeft)), core.ColorBrightYellow)
	}
	if snap.ShieldLeft > 0 {
		put(fmt.Sprintf("SHIELD %ds", secondsLeft(snap.ShieldLeft)), core.ColorShield)
	}
}

func secondsLeft(ms float64) int {
	return int((ms + 999) / 1000)
}

func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	drawBanner(dst, mid-2, "J E T   D E F E N D E R", core.ColorBrightCyan)
	drawBanner(dst, mid, "ENTER start   ←/→ move   SPACE fire", core.ColorWhite)
	drawBanner(dst, mid+1, "P pause   Q quit", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	drawBanner(dst, mid-2, "GAME OVER", core.ColorBrightRed)
	drawBanner(dst, mid, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level), core.ColorBrightWhite)
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		drawBanner(dst, mid+1, "New high score!", core.ColorBrightYellow)
	}
	drawBanner(dst, mid+3, "R restart   Q quit", core.ColorGray)
}

// drawBanner writes centered text on a cleared strip.
func drawBanner(dst *core.Screen, y int, text string, c core.Color) {
	n := len([]rune(text))
	x := (dst.Width() - n) / 2
	dst.DrawRect(core.NewRect(x-1, y, n+2, 1), ' ', core.ColorDefault)
	dst.DrawTextColored(x, y, text, c)
}

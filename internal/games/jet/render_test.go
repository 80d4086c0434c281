package jet

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/jet-defender/internal/config"
	"github.com/vovakirdan/jet-defender/internal/core"
)

func newTerminalGame(t *testing.T) (*Game, *core.Screen, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	g := New(config.DefaultJetConfig(), clock, constRand{f: 0.99})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return g, core.NewScreen(80, 24), clock
}

func screenContains(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}

func TestRenderTitle(t *testing.T) {
	g, scr, _ := newTerminalGame(t)
	g.Render(scr)

	if !screenContains(scr, "J E T   D E F E N D E R") {
		t.Error("idle screen should show the title")
	}
	if !strings.Contains(scr.Row(0), "SCORE 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
}

func TestRenderRunning(t *testing.T) {
	g, scr, clock := newTerminalGame(t)
	g.Start()
	g.SetHighScore(250)
	g.session.Enemies = []Enemy{{X: 100, Y: 100, Size: 40, HP: 1}}
	g.session.Player.ShieldUntil = clock.Now().Add(12 * time.Second)

	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"SCORE 0", "LEVEL 1", "♥♥♥", "HIGH 250", "SHIELD 12s"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// Player centered at x=320 on a 640 wide viewport.
	if got := scr.Get(40, 16); got != PlayerNose {
		t.Errorf("player nose = %q, expected %q", got, PlayerNose)
	}
	if c := scr.GetCell(12, 4); c.Rune != enemyGlyphs[0] || c.Color != enemyColors[0] {
		t.Errorf("enemy cell = %+v", c)
	}
	if screenContains(scr, "J E T") {
		t.Error("title should not be drawn while running")
	}
}

func TestRenderPausedAndGameOver(t *testing.T) {
	g, scr, _ := newTerminalGame(t)
	g.Start()
	g.TogglePause()
	g.Render(scr)
	if !screenContains(scr, "PAUSED") {
		t.Error("paused banner missing")
	}

	g.TogglePause()
	g.session.Score = 40
	g.session.Lives = 1
	g.session.Enemies = []Enemy{{X: g.session.Player.X, Y: g.session.Player.Y, Size: 40, HP: 1}}
	g.Step(16, Intents{})

	scr.Clear()
	g.Render(scr)
	if !screenContains(scr, "GAME OVER") || !screenContains(scr, "Score: 40") {
		t.Errorf("game over screen:\n%s", scr.String())
	}
	if !screenContains(scr, "New high score!") {
		t.Error("first score should be a new high score")
	}
}

func TestRenderOverlayFlash(t *testing.T) {
	g, scr, _ := newTerminalGame(t)
	g.Start()

	g.RenderWith(scr, Overlay{FlashLevel: true})

	i := strings.Index(scr.Row(0), "LEVEL")
	if i < 0 {
		t.Fatalf("HUD row = %q", scr.Row(0))
	}
	col := len([]rune(scr.Row(0)[:i]))
	if c := scr.GetCell(col, 0); c.Color != core.ColorBrightGreen {
		t.Errorf("flashing level color = %d, expected bright green", c.Color)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _, _ := newTerminalGame(t)
	scr := core.NewScreen(20, 6)
	g.Render(scr)
	if !screenContains(scr, "Terminal too small") {
		t.Errorf("small screen:\n%s", scr.String())
	}
}

func TestShieldVisible(t *testing.T) {
	if !ShieldVisible(5000) {
		t.Error("halo should not blink with plenty of shield left")
	}
	if ShieldVisible(2900) == ShieldVisible(2600) {
		t.Error("halo should alternate while expiring")
	}
	if ShieldVisible(0) {
		t.Error("no shield, no halo")
	}
}

func TestEnemyColorCycles(t *testing.T) {
	if EnemyColor(0) != EnemyColor(len(enemyColors)) {
		t.Error("variants should cycle through the palette")
	}
}

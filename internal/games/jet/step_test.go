package jet

import (
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/jet-defender/internal/core"
	"github.com/vovakirdan/jet-defender/internal/core/mocks"
)

func TestBasicKill(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Enemies = []Enemy{{X: 240, Y: 300, Size: 40, HP: 1}}
	g.session.Bullets = []Bullet{{X: 240, Y: 300, VY: -900, Size: 22}}

	res := g.Step(16, Intents{})

	if len(g.session.Enemies) != 0 || len(g.session.Bullets) != 0 {
		t.Fatalf("enemies=%d bullets=%d, expected both empty", len(g.session.Enemies), len(g.session.Bullets))
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}
	if len(explosions(res.Events, ExplosionBulletHit)) != 1 {
		t.Error("expected one bullet-hit explosion")
	}
	kills := explosions(res.Events, ExplosionKill)
	if len(kills) != 1 || kills[0].Particles != 26 || kills[0].X != 240 {
		t.Errorf("kill explosions = %+v", kills)
	}
	if len(g.session.Powerups) != 0 {
		t.Error("no power-up should drop with a 0.99 roll")
	}
	mustValid(t, g)
}

func TestMultiHitEnemy(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Enemies = []Enemy{{X: 240, Y: 300, Size: 40, HP: 2}}
	g.session.Bullets = []Bullet{
		{X: 240, Y: 310, VY: -900, Size: 22},
		{X: 240, Y: 300, VY: -900, Size: 22},
	}

	res := g.Step(16, Intents{})
	if len(g.session.Enemies) != 1 || g.session.Enemies[0].HP != 1 {
		t.Fatalf("after first frame enemies = %+v, expected one at hp 1", g.session.Enemies)
	}
	if len(g.session.Bullets) != 1 {
		t.Errorf("one bullet per enemy per frame: bullets left = %d, expected 1", len(g.session.Bullets))
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected 0 before the kill", res.State.Score)
	}
	mustValid(t, g)

	res = g.Step(16, Intents{})
	if len(g.session.Enemies) != 0 {
		t.Fatal("second hit should destroy the enemy")
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}
}

func TestBulletTouchingEdgeDoesNotHit(t *testing.T) {
	g, _ := newRunningGame(t)
	// Enemy top edge is 280, stationary bullet bottom edge is 280.
	g.session.Enemies = []Enemy{{X: 240, Y: 300, Size: 40, HP: 1}}
	g.session.Bullets = []Bullet{{X: 240, Y: 269, Size: 22}}

	g.Step(16, Intents{})

	if len(g.session.Enemies) != 1 || len(g.session.Bullets) != 1 {
		t.Error("touching edges must not count as a hit")
	}
}

func TestShieldAbsorbsCollision(t *testing.T) {
	g, clock := newRunningGame(t)
	g.session.Player.ShieldUntil = clock.Now().Add(15 * time.Second)
	g.session.Enemies = []Enemy{{X: 240, Y: 660, Size: 40, HP: 3}}

	res := g.Step(16, Intents{})

	if res.State.Lives != 3 {
		t.Errorf("lives = %d, expected 3", res.State.Lives)
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}
	if len(g.session.Enemies) != 0 {
		t.Error("shielded crash should destroy the enemy")
	}
	blocks := explosions(res.Events, ExplosionShieldBlock)
	if len(blocks) != 1 || blocks[0].Particles != 12 || blocks[0].Color != core.ColorShield {
		t.Errorf("shield explosions = %+v", blocks)
	}
	if countEvents[LifeLostEvent](res.Events) != 0 {
		t.Error("no life should be lost behind the shield")
	}
}

func TestShieldExpiry(t *testing.T) {
	g, clock := newRunningGame(t)
	g.session.Player.ShieldUntil = clock.Now().Add(time.Second)
	g.session.Player.X = 200
	g.session.Enemies = []Enemy{{X: 200, Y: 660, Size: 40, HP: 1}}

	clock.Advance(time.Second)
	res := g.Step(16, Intents{})

	if res.State.Lives != 2 {
		t.Errorf("lives = %d, expected 2 once the shield expired", res.State.Lives)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected 0", res.State.Score)
	}
	if g.session.Player.X != 240 {
		t.Errorf("player x = %v, expected re-centred at 240", g.session.Player.X)
	}
	hits := explosions(res.Events, ExplosionPlayerHit)
	if len(hits) != 1 || hits[0].Particles != 18 {
		t.Errorf("player-hit explosions = %+v", hits)
	}
	mustValid(t, g)
}

func TestLastLifeEndsFrame(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Lives = 1
	g.session.Enemies = []Enemy{{X: 240, Y: 660, Size: 40, HP: 1}}
	g.session.Powerups = []Powerup{{X: 240, Y: 660, VY: 120, Size: 48, Kind: PowerupShield}}

	res := g.Step(16, Intents{})

	if !res.State.GameOver || res.State.Running {
		t.Fatalf("state = %+v, expected game over", res.State)
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.State.Lives)
	}
	if g.session.Player != nil {
		t.Error("no player should remain after game over")
	}
	if len(g.session.Powerups) != 1 || g.session.Powerups[0].Y != 660 {
		t.Error("the rest of the frame should be skipped")
	}
	if countEvents[GameOverEvent](res.Events) != 1 || countEvents[LifeLostEvent](res.Events) != 1 {
		t.Errorf("events = %v", res.Events)
	}
	mustValid(t, g)

	res = g.Step(16, Intents{Fire: true})
	if len(res.Events) != 0 || !res.State.GameOver {
		t.Error("game over should be frozen")
	}
}

func TestEnemyRemovedByCrashIsNotShot(t *testing.T) {
	g, _ := newRunningGame(t)
	// Bullet overlaps the crashing enemy; it must survive the crash.
	g.session.Enemies = []Enemy{{X: 240, Y: 660, Size: 40, HP: 1}}
	g.session.Bullets = []Bullet{{X: 240, Y: 660, Size: 22}}

	res := g.Step(16, Intents{})

	if len(g.session.Bullets) != 1 {
		t.Error("bullet should not be consumed by a crashed enemy")
	}
	if len(explosions(res.Events, ExplosionBulletHit)) != 0 {
		t.Error("no bullet hit expected")
	}
}

func TestCrashAmongOtherEnemies(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Enemies = []Enemy{
		{X: 100, Y: 100, Size: 40, HP: 1, Speed: 100},
		{X: 240, Y: 660, Size: 40, HP: 1},
		{X: 400, Y: 100, Size: 40, HP: 1, Speed: 100},
	}

	g.Step(16, Intents{})

	if len(g.session.Enemies) != 2 {
		t.Fatalf("enemies = %d, expected 2", len(g.session.Enemies))
	}
	for _, e := range g.session.Enemies {
		if math.Abs(e.Y-101.6) > 1e-9 {
			t.Errorf("enemy at x=%v moved to y=%v, expected 101.6", e.X, e.Y)
		}
	}
}

func TestOffscreenCulling(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Bullets = []Bullet{
		{X: 100, Y: -99, VY: -900, Size: 22},
		{X: -199, Y: 300, VX: -900, Size: 22},
		{X: 679, Y: 300, VX: 900, Size: 22},
		{X: 100, Y: 400, VY: -900, Size: 22},
	}
	g.session.Enemies = []Enemy{
		{X: 50, Y: 899, Size: 40, HP: 1, Speed: 100},
		{X: 50, Y: 500, Size: 40, HP: 1, Speed: 100},
	}
	g.session.Powerups = []Powerup{
		{X: 50, Y: 899, VY: 120, Size: 48},
		{X: 50, Y: 500, VY: 120, Size: 48},
	}

	res := g.Step(16, Intents{})

	if len(g.session.Bullets) != 1 || g.session.Bullets[0].X != 100 {
		t.Errorf("bullets = %+v, expected only the on-screen one", g.session.Bullets)
	}
	if len(g.session.Enemies) != 1 || g.session.Enemies[0].Y > 600 {
		t.Errorf("enemies = %+v, expected only the on-screen one", g.session.Enemies)
	}
	if len(g.session.Powerups) != 1 || g.session.Powerups[0].Y > 600 {
		t.Errorf("powerups = %+v, expected only the on-screen one", g.session.Powerups)
	}
	if res.State.Score != 0 || res.State.Lives != 3 || len(res.Events) != 0 {
		t.Error("culling must have no side effects")
	}
}

func TestFireCooldown(t *testing.T) {
	g, _ := newRunningGame(t)

	res := g.Step(16, Intents{Fire: true})
	if countEvents[ShotFiredEvent](res.Events) != 1 || len(g.session.Bullets) != 1 {
		t.Fatal("first shot should fire")
	}

	// Keep pressing for the rest of the cooldown.
	elapsed := 16.0
	for elapsed+16 < 200 {
		res = g.Step(16, Intents{Fire: true})
		elapsed += 16
		if countEvents[ShotFiredEvent](res.Events) != 0 {
			t.Fatalf("shot fired %vms after the first", elapsed)
		}
	}
	if len(g.session.Bullets) != 1 {
		t.Errorf("bullets = %d, expected 1 within the cooldown", len(g.session.Bullets))
	}

	res = g.Step(200, Intents{Fire: true})
	if countEvents[ShotFiredEvent](res.Events) != 1 {
		t.Error("shot should fire once the cooldown elapsed")
	}
}

func TestBulletSpawn(t *testing.T) {
	tests := []struct {
		name   string
		double bool
		want   []Bullet
	}{
		{
			name: "single",
			want: []Bullet{{X: 240, Y: 660 - 64*0.4, VY: -900, Size: 22}},
		},
		{
			name:   "double",
			double: true,
			want: []Bullet{
				{X: 222, Y: 660 - 64*0.4, VX: -80, VY: -900, Size: 22},
				{X: 258, Y: 660 - 64*0.4, VX: 80, VY: -900, Size: 22},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, clock := newRunningGame(t)
			if tc.double {
				g.session.Player.DoubleShotUntil = clock.Now().Add(10 * time.Second)
			}

			res := g.Step(0, Intents{Fire: true})

			if len(g.session.Bullets) != len(tc.want) {
				t.Fatalf("bullets = %d, expected %d", len(g.session.Bullets), len(tc.want))
			}
			for i, b := range g.session.Bullets {
				w := tc.want[i]
				if b.X != w.X || b.VX != w.VX || b.VY != w.VY || b.Size != w.Size || math.Abs(b.Y-w.Y) > 1e-9 {
					t.Errorf("bullet %d = %+v, expected %+v", i, b, w)
				}
			}
			for _, e := range res.Events {
				if ev, ok := e.(ShotFiredEvent); ok && ev.Bullets != len(tc.want) {
					t.Errorf("ShotFiredEvent.Bullets = %d", ev.Bullets)
				}
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	far := 1000.0
	near := 100.0

	tests := []struct {
		name string
		in   Intents
		dt   float64
		want float64
	}{
		{"right", Intents{MoveRight: true}, 100, 295},
		{"left", Intents{MoveLeft: true}, 100, 185},
		{"both cancel", Intents{MoveLeft: true, MoveRight: true}, 100, 240},
		{"clamped right", Intents{MoveRight: true}, 2000, 448},
		{"clamped left", Intents{MoveLeft: true}, 2000, 32},
		{"drag", Intents{DragX: &near}, 16, 100},
		{"drag clamped", Intents{DragX: &far}, 16, 448},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newRunningGame(t)
			g.session.SpawnInterval = 1e9
			g.Step(tc.dt, tc.in)
			if got := g.session.Player.X; math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("player x = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPowerupCollection(t *testing.T) {
	tests := []struct {
		kind PowerupKind
		want time.Duration
	}{
		{PowerupDoubleShot, 10 * time.Second},
		{PowerupShield, 15 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g, clock := newRunningGame(t)
			g.session.Powerups = []Powerup{{X: 240, Y: 650, VY: 120, Size: 48, Kind: tc.kind}}

			res := g.Step(16, Intents{})

			if len(g.session.Powerups) != 0 {
				t.Fatal("power-up should be collected")
			}
			p := g.session.Player
			until := p.DoubleShotUntil
			if tc.kind == PowerupShield {
				until = p.ShieldUntil
			}
			if got := until.Sub(clock.Now()); got != tc.want {
				t.Errorf("effect lasts %v, expected %v", got, tc.want)
			}
			picks := explosions(res.Events, ExplosionPickup)
			if len(picks) != 1 || picks[0].Color != core.ColorPickup || picks[0].Particles != 12 {
				t.Errorf("pickup explosions = %+v", picks)
			}
			if countEvents[PowerupCollectedEvent](res.Events) != 1 {
				t.Error("expected PowerupCollectedEvent")
			}
		})
	}
}

func TestKillDropsPowerup(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRand(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(epoch).AnyTimes()

	gomock.InOrder(
		rng.EXPECT().Float64().Return(0.05), // drop roll
		rng.EXPECT().Float64().Return(0.3),  // kind: double shot
	)

	g := New(testConfig(), clock, rng)
	g.Start()
	g.session.Enemies = []Enemy{{X: 120, Y: 300, Size: 40, HP: 1}}
	g.session.Bullets = []Bullet{{X: 120, Y: 300, VY: -900, Size: 22}}

	g.Step(16, Intents{})

	if len(g.session.Powerups) != 1 {
		t.Fatalf("powerups = %d, expected 1", len(g.session.Powerups))
	}
	p := g.session.Powerups[0]
	if p.Kind != PowerupDoubleShot || p.Size != 48 || p.VY != 120 {
		t.Errorf("powerup = %+v", p)
	}
	if math.Abs(p.X-120) > 1e-9 {
		t.Errorf("powerup x = %v, expected 120", p.X)
	}
}

func TestKillWithoutDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRand(ctrl)
	rng.EXPECT().Float64().Return(0.12) // not below the drop chance

	g := New(testConfig(), core.NewManualClock(epoch), rng)
	g.Start()
	g.session.Enemies = []Enemy{{X: 120, Y: 300, Size: 40, HP: 1}}
	g.session.Bullets = []Bullet{{X: 120, Y: 300, VY: -900, Size: 22}}

	g.Step(16, Intents{})

	if len(g.session.Powerups) != 0 {
		t.Error("a roll equal to the drop chance should not drop")
	}
}

func TestLevelUpArithmetic(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Score = 105

	res := g.Step(0, Intents{})

	if res.State.Level != 2 {
		t.Errorf("level = %d, expected 2", res.State.Level)
	}
	if g.session.SpawnInterval != 1320 {
		t.Errorf("interval = %v, expected 1320", g.session.SpawnInterval)
	}
	if res.State.Score != 125 {
		t.Errorf("score = %d, expected 125", res.State.Score)
	}
	var lv LevelUpEvent
	for _, e := range res.Events {
		if ev, ok := e.(LevelUpEvent); ok {
			lv = ev
		}
	}
	if lv.Level != 2 || lv.Bonus != 20 {
		t.Errorf("LevelUpEvent = %+v", lv)
	}
}

func TestLevelThresholdIsStrict(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Score = 100

	res := g.Step(0, Intents{})
	if res.State.Level != 1 {
		t.Errorf("level = %d, expected 1 at exactly the threshold", res.State.Level)
	}
}

func TestLevelCap(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Score = 100000

	levels := []int{}
	for range 8 {
		levels = append(levels, g.Step(0, Intents{}).State.Level)
	}

	want := []int{2, 3, 4, 5, 5, 5, 5, 5}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("levels = %v, expected %v", levels, want)
		}
	}
	// 1500 -> 1320 -> 1140 -> 960 -> 780
	if g.session.SpawnInterval != 780 {
		t.Errorf("interval = %v, expected 780", g.session.SpawnInterval)
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	g, _ := newRunningGame(t)
	g.session.Enemies = []Enemy{{X: 100, Y: 100, Size: 40, HP: 1, Speed: 100}}

	g.Step(-50, Intents{})

	if g.session.Enemies[0].Y != 100 || g.session.SpawnTimer != 0 {
		t.Error("negative dt should not move anything")
	}
}

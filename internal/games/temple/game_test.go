package temple

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/core"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestGame(cfg config.RunnerConfig) *Game {
	g := New(cfg, config.DifficultyNormal)
	g.Reset(testRuntime)
	return g
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig())

	if g.ID() != "temple" {
		t.Errorf("ID() = %q, expected temple", g.ID())
	}
	if g.Mode() != "normal" {
		t.Errorf("Mode() = %q, expected normal", g.Mode())
	}
	if g.Phase() != PhaseMenu {
		t.Errorf("Phase() = %v, expected menu", g.Phase())
	}

	st := g.State()
	if st.Playing || st.GameOver || st.Score != 0 {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestGameMenuWaitsForStart(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig())

	for i := 0; i < 100; i++ {
		g.Step(core.Input(core.ActionRight))
	}
	if g.Phase() != PhaseMenu || g.Ticks() != 0 {
		t.Fatalf("menu should not simulate, phase %v ticks %d", g.Phase(), g.Ticks())
	}

	res := g.Step(core.Input(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Phase())
	}
	if !hasEvent(res.Events, core.EventStart) || !res.State.Playing {
		t.Errorf("expected start event and playing state, got %+v", res)
	}
}

func TestGameStartWithJump(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig())

	g.Step(core.Input(core.ActionJump))
	if g.Phase() != PhasePlaying {
		t.Errorf("jump should also start, phase %v", g.Phase())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(quietConfig())
	g.Step(core.Input(core.ActionConfirm))
	g.Step(core.InputFrame{})

	g.Step(core.Input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	ticks := g.Ticks()
	for i := 0; i < 50; i++ {
		g.Step(core.Input(core.ActionRight))
	}
	if g.Ticks() != ticks {
		t.Errorf("paused game advanced from %d to %d", ticks, g.Ticks())
	}

	// The resuming tick simulates.
	g.Step(core.Input(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second pause should resume")
	}
	g.Step(core.InputFrame{})
	if g.Ticks() != ticks+2 {
		t.Errorf("Ticks() = %d, expected %d after resume", g.Ticks(), ticks+2)
	}
}

func TestGameOverCycle(t *testing.T) {
	g := newTestGame(quietConfig())
	g.Step(core.Input(core.ActionConfirm))

	g.world.player.Health = 1
	g.world.fruits = append(g.world.fruits, Fruit{X: 300, Y: 430, W: 20, H: 20})
	g.world.score = 30
	g.world.obstacles = append(g.world.obstacles, Obstacle{X: 110, Y: 440, W: 30, H: 30})

	res := g.Step(core.InputFrame{})
	if g.Phase() != PhaseGameOver || !res.State.GameOver {
		t.Fatalf("expected game over on the lethal tick, phase %v", g.Phase())
	}
	if res.State.Score != 30 {
		t.Errorf("final score = %d, expected 30", res.State.Score)
	}

	snap := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.Input(core.ActionRight))
	}
	if !reflect.DeepEqual(snap, g.Snapshot()) {
		t.Error("game over should freeze the world")
	}

	res = g.Step(core.Input(core.ActionConfirm))
	if g.Phase() != PhaseMenu || !hasEvent(res.Events, core.EventMenu) {
		t.Fatalf("acknowledge should return to the menu, phase %v", g.Phase())
	}

	g.Step(core.Input(core.ActionConfirm))
	snap = g.Snapshot()
	if g.Phase() != PhasePlaying || snap.Score != 0 || snap.Health != 5 || snap.Speed != 5 {
		t.Errorf("restart should reset, got phase %v score %d health %d speed %v",
			g.Phase(), snap.Score, snap.Health, snap.Speed)
	}
	if len(snap.Obstacles)+len(snap.Fruits)+len(snap.Enemies) != 0 {
		t.Error("restart should clear entities")
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		switch {
		case tick == 0:
			return core.Input(core.ActionConfirm)
		case tick%45 == 0:
			return core.Input(core.ActionJump)
		case tick%200 < 60:
			return core.Input(core.ActionRight)
		case tick%200 < 90:
			return core.Input(core.ActionLeft)
		default:
			return core.InputFrame{}
		}
	}

	run := func() []Snapshot {
		g := newTestGame(config.DefaultRunnerConfig())
		var out []Snapshot
		for tick := 0; tick < 3000; tick++ {
			g.Step(script(tick))
			if tick%100 == 0 {
				out = append(out, g.Snapshot())
			}
		}
		return append(out, g.Snapshot())
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should produce identical runs")
	}
}

func TestGameSeedsDiffer(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := New(config.DefaultRunnerConfig(), config.DifficultyNormal)
		rt := testRuntime
		rt.Seed = seed
		g.Reset(rt)
		g.Step(core.Input(core.ActionConfirm))
		for i := 0; i < 400; i++ {
			g.Step(core.InputFrame{})
		}
		return g.Snapshot()
	}

	if reflect.DeepEqual(run(1), run(2)) {
		t.Error("different seeds should produce different worlds")
	}
}

func TestGameLevelIsPeak(t *testing.T) {
	g := newTestGame(quietConfig())
	g.Step(core.Input(core.ActionConfirm))

	for i := 0; i < 1200; i++ {
		g.Step(core.InputFrame{})
	}
	if g.State().Level != 3 {
		t.Errorf("State().Level = %d, expected 3 after 1200 ticks", g.State().Level)
	}
}

func TestRenderPhases(t *testing.T) {
	g := newTestGame(quietConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "T E M P L E") {
		t.Error("menu should show the title")
	}
	if !strings.Contains(screen.String(), "Difficulty: normal") {
		t.Error("menu should show the difficulty")
	}

	g.Step(core.Input(core.ActionConfirm))
	g.Step(core.InputFrame{})
	g.Render(screen)
	hud := screen.Row(0)
	if strings.Count(hud, string(HeartFull)) != 5 {
		t.Errorf("HUD should show 5 hearts, got %q", hud)
	}
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD should show the score, got %q", hud)
	}
	if !strings.ContainsRune(screen.String(), PlayerBody) {
		t.Error("player should be drawn")
	}

	g.Step(core.Input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
	g.Step(core.Input(core.ActionPause))

	g.world.player.Health = 1
	g.world.obstacles = append(g.world.obstacles, Obstacle{X: 110, Y: 440, W: 30, H: 30})
	g.Step(core.InputFrame{})
	g.Render(screen)
	if !strings.Contains(screen.String(), "Final score: 0") {
		t.Error("game over box should show the final score")
	}
	if !strings.ContainsRune(screen.Row(0), HeartEmpty) {
		t.Error("HUD should show lost hearts")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig())
	g.Step(core.Input(core.ActionConfirm))
	for i := 0; i < 300; i++ {
		g.Step(core.InputFrame{})
	}

	// Must not panic when everything is clipped.
	g.Render(core.NewScreen(10, 4))
}

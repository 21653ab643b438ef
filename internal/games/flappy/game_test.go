package flappy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := NewWithClock(clock.NewMock())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("flappy")
	if err != nil {
		t.Fatalf("flappy not registered: %v", err)
	}
	if g.Title() != "Flappy Bird" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.Snapshotter); !ok {
		t.Error("flappy should expose snapshots")
	}
}

func TestGameStepFlow(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionConfirm))
	if g.Session().Phase() != PhaseGetReady {
		t.Fatalf("Phase() = %s after confirm", g.Session().Phase())
	}

	result := g.Step(frame(core.ActionJump))
	if g.Session().Phase() != PhaseRunning {
		t.Errorf("Phase() = %s after jump", g.Session().Phase())
	}
	if result.State.Mode != "medium" {
		t.Errorf("Mode = %q, expected medium", result.State.Mode)
	}
	if countEvents(result.Events, EventFlap) != 1 {
		t.Errorf("events = %v, expected a flap", result.Events)
	}
}

func TestGameElapsedOverridesTickRate(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionJump, core.ActionRelease))

	v := g.Session().Bird().Velocity
	in := frame()
	in.Elapsed = 0.1
	g.Step(in)

	if got := g.Session().Bird().Velocity; !approx(got, v+120) {
		t.Errorf("Velocity = %f, expected %f", got, v+120)
	}
}

func TestGameDifficultyActions(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionNextDifficulty))
	if g.State().Mode != "hard" {
		t.Errorf("Mode = %q after next, expected hard", g.State().Mode)
	}

	g.Step(frame(core.ActionPrevDifficulty))
	g.Step(frame(core.ActionPrevDifficulty))
	if g.State().Mode != "easy" {
		t.Errorf("Mode = %q after prev twice, expected easy", g.State().Mode)
	}
}

func TestGameConfigPathAndPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("difficulty: easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	SetConfigPath(path)
	g := NewWithClock(clock.NewMock())
	g.Reset(core.DefaultConfig())
	if g.State().Mode != "easy" {
		t.Errorf("Mode = %q, expected easy from config file", g.State().Mode)
	}

	SetDifficultyPreset("nightmare")
	g.Reset(core.DefaultConfig())
	if g.State().Mode != "nightmare" {
		t.Errorf("Mode = %q, expected nightmare from preset", g.State().Mode)
	}

	SetDifficultyPreset("bogus")
	g.Reset(core.DefaultConfig())
	if g.State().Mode != "medium" {
		t.Errorf("Mode = %q, expected bad preset to fall back to medium", g.State().Mode)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%15 == 1:
			inputs[i].Set(core.ActionJump)
		case i%15 == 2:
			inputs[i].Set(core.ActionRelease)
		}
	}

	run := func() (core.GameState, any) {
		g := newTestGame(t)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
		}
		return state, g.Snapshot()
	}

	s1, snap1 := run()
	s2, snap2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if snap1.(Snapshot).Bird != snap2.(Snapshot).Bird {
		t.Errorf("bird differs: %+v vs %+v", snap1.(Snapshot).Bird, snap2.(Snapshot).Bird)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "FLAPPY BIRD") {
		t.Error("main menu should show the title")
	}
	if !strings.Contains(screen.String(), "< Medium >") {
		t.Error("main menu should show the difficulty picker")
	}

	// 600/700 of 24 rows puts the ground on row 21
	if r := screen.Get(0, 21); r != groundPattern[0] && r != groundPattern[1] {
		t.Errorf("ground row starts with %q", r)
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	if !strings.Contains(screen.String(), "GET READY") {
		t.Error("get-ready screen should prompt the player")
	}

	g.Step(frame(core.ActionJump, core.ActionRelease))
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(frame())
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should be drawn")
	}
}

func TestGameRenderBirdAndPipes(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionJump, core.ActionRelease))

	// Pull the first obstacle into view
	g.Session().obstacles.At(0).X = 200

	screen := core.NewScreen(90, 28)
	g.Render(screen)
	out := screen.String()

	for _, r := range []rune{BirdBodyChar, PipeChar, CoinChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render is missing %q", r)
		}
	}
}

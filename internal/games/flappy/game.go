// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through the throats of scrolling pipe pairs and
// scores by picking up the collectible inside each throat.
package flappy

import (
	"github.com/benbjohnson/clock"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the configured starting difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	session   *Session
	cfg       config.FlappyConfig
	runtime   core.RuntimeConfig
	clock     clock.Clock
	tickCount int
}

// New creates a new Flappy Bird game instance on the wall clock.
func New() *Game {
	return &Game{clock: clock.New()}
}

// NewWithClock creates a game whose stopwatches read clk.
func NewWithClock(clk clock.Clock) *Game {
	return &Game{clock: clk}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads configuration and starts a fresh session in the main menu.
// A broken config file or preset falls back to the defaults.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tickCount = 0

	loaded, err := config.LoadFlappy(configPath)
	if err != nil {
		loaded = config.DefaultFlappyConfig()
	}
	if err := config.ApplyFlappyPreset(&loaded, difficultyPreset); err != nil {
		loaded.Difficulty = config.DefaultFlappyConfig().Difficulty
	}
	g.cfg = loaded
	g.session = NewSession(g.cfg, g.clock, cfg.Seed)
}

// Step applies the frame's actions and advances the session one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionConfirm) {
		s.Start()
	}
	if in.Has(core.ActionNextDifficulty) {
		s.SetDifficulty(s.State().Difficulty.Next())
	}
	if in.Has(core.ActionPrevDifficulty) {
		s.SetDifficulty(s.State().Difficulty.Prev())
	}
	if in.Has(core.ActionJump) {
		s.Activate()
	}
	if in.Has(core.ActionRelease) {
		s.Release()
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.FrameSeconds()
	}

	g.tickCount++
	events := s.Tick(dt)

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.session.Snapshot(), g.cfg.World)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Over,
		Paused:   st.Paused,
		Mode:     st.Difficulty.String(),
	}
}

// SetDifficulty changes the difficulty of the running session.
func (g *Game) SetDifficulty(d config.Difficulty) {
	g.session.SetDifficulty(d)
}

// Snapshot returns the session snapshot for spectators.
func (g *Game) Snapshot() any {
	return g.session.Snapshot()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/watch"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxFrameSeconds caps the time step after a stall, such as a suspended
// terminal or a slow SSH link.
const maxFrameSeconds = 0.1

// Options wires the optional collaborators of a game model.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Hub        *watch.Hub         // Spectator feed; nil disables it
	Clock      clock.Clock        // Frame timing; nil uses the wall clock
	Difficulty *config.Difficulty // Starting difficulty picked in a menu
}

// difficultySetter is implemented by games with selectable difficulty.
type difficultySetter interface {
	SetDifficulty(config.Difficulty)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	game.Reset(cfg)
	if opts.Difficulty != nil {
		if ds, ok := game.(difficultySetter); ok {
			ds.SetDifficulty(*opts.Difficulty)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(opts.Clock, DefaultHoldWindow),
		lastTick:   opts.Clock.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The renderer scales the world, so the session survives resizes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu from a finished or paused game
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.opts.Clock.Now()
	elapsed := now.Sub(m.lastTick).Seconds()
	m.lastTick = now
	if elapsed > maxFrameSeconds {
		elapsed = maxFrameSeconds
	}
	m.inputFrame.Elapsed = elapsed

	m.keyMapper.Poll(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.opts.Logger.Debug("game event", "event", ev, "score", m.gameState.Score, "mode", m.gameState.Mode)
	}

	m.saveScore()
	m.publish()

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveScore records the score once per game over.
func (m *Model) saveScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.gameState.Score <= 0 || m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Mode, m.gameState.Score); err != nil {
		// Best-effort save, game continues regardless
		m.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "mode", m.gameState.Mode, "score", m.gameState.Score)
}

// publish pushes the latest snapshot to spectators.
func (m *Model) publish() {
	if m.opts.Hub == nil {
		return
	}
	snap, ok := m.game.(registry.Snapshotter)
	if !ok {
		return
	}
	if err := m.opts.Hub.Broadcast(snap.Snapshot()); err != nil {
		m.opts.Logger.Warn("could not publish snapshot", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return paletteFor(m.gameState.Mode).Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// It returns true when the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left button flaps
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}

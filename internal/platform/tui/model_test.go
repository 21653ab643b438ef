package tui

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/watch"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// scriptedGame scores on Jump, ends on Confirm and records its inputs.
type scriptedGame struct {
	state      core.GameState
	difficulty config.Difficulty
	inputs     []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.state = core.GameState{Mode: g.difficulty.String()} }
func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear() }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Snapshot() any { return g.state }
func (g *scriptedGame) SetDifficulty(d config.Difficulty) {
	g.difficulty = d
	g.state.Mode = d.String()
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionJump) && !g.state.GameOver {
		g.state.Score++
	}
	if in.Has(core.ActionConfirm) {
		g.state.GameOver = true
	}
	if in.Has(core.ActionRestart) {
		g.state = core.GameState{Mode: g.state.Mode}
	}
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, game *scriptedGame, store *storage.Store) (Model, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	hard := config.DifficultyHard
	m := NewModel(game, core.DefaultConfig(), Options{Store: store, Clock: mock, Difficulty: &hard})
	return m, mock
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model, mock *clock.Mock, d time.Duration) Model {
	mock.Add(d)
	return send(m, TickMsg(mock.Now()))
}

func TestModelAppliesDifficulty(t *testing.T) {
	game := &scriptedGame{}
	m, _ := newTestModel(t, game, nil)

	if game.difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %s, expected hard", game.difficulty)
	}
	if m.State().Mode != "hard" {
		t.Errorf("Mode = %q, expected hard", m.State().Mode)
	}
}

func TestModelElapsedIsClamped(t *testing.T) {
	game := &scriptedGame{}
	m, mock := newTestModel(t, game, nil)

	m = tick(m, mock, 20*time.Millisecond)
	m = tick(m, mock, 5*time.Second)
	_ = m

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	if got := game.inputs[0].Elapsed; got < 0.0199 || got > 0.0201 {
		t.Errorf("first Elapsed = %f, expected 0.02", got)
	}
	if got := game.inputs[1].Elapsed; got != maxFrameSeconds {
		t.Errorf("stalled Elapsed = %f, expected clamp to %f", got, maxFrameSeconds)
	}
}

func TestModelInputReachesGameOnce(t *testing.T) {
	game := &scriptedGame{}
	m, mock := newTestModel(t, game, nil)

	m = send(m, keyMsg(" "))
	m = tick(m, mock, 16*time.Millisecond)
	m = tick(m, mock, 16*time.Millisecond)

	if !game.inputs[0].Has(core.ActionJump) {
		t.Error("first step should see the flap")
	}
	if game.inputs[1].Has(core.ActionJump) {
		t.Error("input frame should be cleared after each step")
	}
	if m.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", m.State().Score)
	}

	// Hold window elapses with no key events
	m = tick(m, mock, 200*time.Millisecond)
	if !game.inputs[2].Has(core.ActionRelease) {
		t.Error("quiet key should release")
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m, mock := newTestModel(t, game, store)

	m = send(m, keyMsg(" "))
	m = tick(m, mock, 16*time.Millisecond)
	m = send(m, keyMsg("enter"))
	for range 5 {
		m = tick(m, mock, 16*time.Millisecond)
	}

	scores, err := store.TopScores("scripted", storage.AnyMode, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1 || scores[0].Mode != "hard" {
		t.Fatalf("expected one hard score of 1, got %+v", scores)
	}

	// A zero-score round is not recorded, and restart re-arms saving
	m = send(m, keyMsg("r"))
	m = tick(m, mock, 16*time.Millisecond)
	m = send(m, keyMsg("enter"))
	m = tick(m, mock, 16*time.Millisecond)

	scores, _ = store.TopScores("scripted", storage.AnyMode, 10)
	if len(scores) != 1 {
		t.Errorf("zero score should not be saved, got %+v", scores)
	}
	if !m.State().GameOver {
		t.Error("second round should be over")
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &scriptedGame{}
	m, mock := newTestModel(t, game, nil)

	m = send(m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = send(m, keyMsg("enter"))
	m = tick(m, mock, 16*time.Millisecond)

	next, cmd := m.Update(keyMsg("esc"))
	m = next.(Model)
	if !m.BackToMenu() || cmd == nil {
		t.Error("back after game over should leave the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &scriptedGame{}, nil)

	m = send(m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{}
	m, mock := newTestModel(t, game, nil)

	m = send(m, keyMsg(" "))
	m = tick(m, mock, 16*time.Millisecond)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.State().Score != 1 {
		t.Errorf("resize should not reset the game, Score = %d", m.State().Score)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelPublishesSnapshots(t *testing.T) {
	hub := watch.NewHub(logging.Discard())
	defer hub.Close()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	mock := clock.NewMock()
	m := NewModel(&scriptedGame{}, core.DefaultConfig(), Options{Clock: mock, Hub: hub})
	m = send(m, keyMsg(" "))
	tick(m, mock, 16*time.Millisecond)

	// A spectator joining late receives the latest frame
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() failed: %v", err)
	}
	if !strings.Contains(string(data), `"Score":1`) {
		t.Errorf("snapshot = %s, expected score 1", data)
	}
}

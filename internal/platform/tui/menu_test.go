package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pressMenu(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuResult
	}{
		{"select start", []string{"enter"}, MenuResult{Difficulty: config.DifficultyMedium}},
		{"move down", []string{"down", "down", "enter"}, MenuResult{Difficulty: config.DifficultyNightmare}},
		{"clamped at top", []string{"up", "up", "up", "up", " "}, MenuResult{Difficulty: config.DifficultyEasy}},
		{"scoreboard keeps cursor", []string{"right", "tab"}, MenuResult{Difficulty: config.DifficultyHard, WantsScoreboard: true}},
		{"quit", []string{"q"}, MenuResult{Difficulty: config.DifficultyMedium, Quit: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, "flappy", "Flappy Bird", config.DifficultyMedium, core.DefaultConfig())
			got := pressMenu(m, tc.keys...).Result()
			got.Config = core.RuntimeConfig{}
			if got != tc.want {
				t.Errorf("Result() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestMenuShowsHighScores(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{4, 9} {
		if _, err := store.SaveScore("flappy", "hard", s); err != nil {
			t.Fatal(err)
		}
	}

	m := NewMenuModel(store, "flappy", "Flappy Bird", config.DifficultyEasy, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(MenuModel).View()

	if !strings.Contains(view, "F L A P P Y") {
		t.Error("menu should show the game title")
	}
	if !strings.Contains(view, "best 9") {
		t.Errorf("menu should show the hard high score:\n%s", view)
	}
	if !strings.Contains(view, "> Easy") {
		t.Errorf("cursor should start on easy:\n%s", view)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("flappy", "easy", 12); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("flappy", "nightmare", 3); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, "flappy", config.DifficultyEasy, 100, 30)
	if len(m.scores) != 1 || m.scores[0].Score != 12 {
		t.Fatalf("easy tab scores = %+v", m.scores)
	}
	if st, ok := m.Stats(); !ok || st.HighScore != 12 {
		t.Errorf("easy stats = %+v, %v", st, ok)
	}

	// Wraps backwards from easy to nightmare
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.current() != config.DifficultyNightmare || len(m.scores) != 1 || m.scores[0].Score != 3 {
		t.Errorf("shift+tab should show nightmare scores, got %s %+v", m.current(), m.scores)
	}

	next, _ = m.Update(keyMsg("right"))
	m = next.(ScoreboardModel)
	if m.current() != config.DifficultyEasy {
		t.Errorf("right should wrap to easy, got %s", m.current())
	}

	next, _ = m.Update(keyMsg("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the session's position in the menu/play flow.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseGetReady
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main-menu"
	case PhaseGetReady:
		return "get-ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// SessionState holds the flags shared by the bird and the obstacles during a
// tick. It is owned by the Session and handed to obstacles explicitly.
type SessionState struct {
	Score      int
	Running    bool // Set by the first activation, cleared only by restart
	Over       bool // Terminal until restart
	Paused     bool // Recorded and displayed; the update loop does not consult it
	Difficulty config.Difficulty
	ThroatGap  float64 // Derived from Difficulty; snapshotted by each new obstacle
}

// newSessionState returns cleared flags at the given difficulty.
func newSessionState(d config.Difficulty) SessionState {
	st := SessionState{}
	st.SetDifficulty(d)
	return st
}

// Active reports whether physics and obstacles should advance.
func (st *SessionState) Active() bool {
	return st.Running && !st.Over
}

// EndGame marks the session over. Repeated calls have no further effect.
func (st *SessionState) EndGame() {
	st.Over = true
}

// SetDifficulty changes the level and re-derives the throat gap.
func (st *SessionState) SetDifficulty(d config.Difficulty) {
	st.Difficulty = d
	st.ThroatGap = d.ThroatGap()
}

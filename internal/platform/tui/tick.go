// Package tui hosts games in a terminal with Bubble Tea: the frame loop,
// input mapping, the difficulty menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickMsg asks the model to advance the simulation one frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the configured tick rate.
// The model measures the real elapsed time itself, so a late tick only
// means a larger step.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	interval := time.Duration(cfg.FrameSeconds() * float64(time.Second))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

package tui

import (
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DefaultHoldWindow is how long a flap key counts as held after its last
// key event. Terminals report presses and auto-repeats but never releases.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Mouse buttons report real releases. Keyboard releases are synthesized
// by Poll once no key event has arrived for the hold window, so
// auto-repeat of a held key does not turn into a stream of flaps.
type KeyMapper struct {
	clock      clock.Clock
	holdWindow time.Duration
	keyHeld    bool
	lastKey    time.Time
	mouseHeld  bool
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(clk clock.Clock, holdWindow time.Duration) *KeyMapper {
	if clk == nil {
		clk = clock.New()
	}
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &KeyMapper{clock: clk, holdWindow: holdWindow}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "left", "h":
		return core.ActionPrevDifficulty, false
	case "right", "l":
		return core.ActionNextDifficulty, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionJump:
		if !km.keyHeld {
			frame.Set(core.ActionJump)
		}
		km.keyHeld = true
		km.lastKey = km.clock.Now()
	default:
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame maps the left button to flap press and release.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		frame.Set(core.ActionJump)
		km.mouseHeld = true
	case tea.MouseActionRelease:
		frame.Set(core.ActionRelease)
		km.mouseHeld = false
	}
}

// Poll adds a synthesized release to frame once a held key goes quiet.
// Call it once per tick before stepping the game.
func (km *KeyMapper) Poll(frame *core.InputFrame) {
	if !km.keyHeld || km.mouseHeld {
		return
	}
	if km.clock.Since(km.lastKey) >= km.holdWindow {
		km.keyHeld = false
		frame.Set(core.ActionRelease)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k", "left", "h":
		return MenuActionUp
	case "s", "down", "j", "right", "l":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

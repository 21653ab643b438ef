// Package registry maps game IDs to factories. Games register from init(),
// so hosts can create them by name without importing game packages.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is a pure simulation driven by a host. It knows nothing about the
// terminal: the host maps input to actions, measures time and displays
// the screen buffer the game draws into.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score table key (e.g. "flappy").
	ID() string

	// Title is the display name (e.g. "Flappy Bird").
	Title() string

	// Reset rebuilds the game from configuration. The RuntimeConfig
	// carries the screen size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of actions and advances the simulation.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, game over, pause and mode.
	State() core.GameState
}

// Snapshotter is implemented by games that expose a read-only,
// serializable view of their state for spectators.
type Snapshotter interface {
	Snapshot() any
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id.
// It panics on a duplicate id, which is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title()},
	}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

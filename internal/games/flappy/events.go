package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Events emitted by Session.Tick. Hosts map them to sound cues and log lines.
const (
	EventStart      core.Event = "start"      // First activation of a run
	EventFlap       core.Event = "flap"       // Bird flapped
	EventSpawn      core.Event = "spawn"      // Obstacle entered the queue
	EventEvict      core.Event = "evict"      // Oldest obstacle dropped from a full queue
	EventPoint      core.Event = "point"      // Collectible picked up
	EventHit        core.Event = "hit"        // Collision with a pipe or boundary
	EventDie        core.Event = "die"        // Bird left the playfield
	EventRestart    core.Event = "restart"    // Session returned to the main menu
	EventPause      core.Event = "pause"      // Pause flag toggled
	EventDifficulty core.Event = "difficulty" // Difficulty changed
)

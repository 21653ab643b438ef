package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleState records which one-shot interactions an obstacle has had.
type ObstacleState uint8

const (
	ObstacleActive    ObstacleState = iota // Collectible visible, not yet passed
	ObstacleCollected                      // Collectible taken, not yet passed
	ObstacleScored                         // Passed with the collectible still visible
	ObstacleCleared                        // Collectible taken and passed
)

// String returns the state name.
func (s ObstacleState) String() string {
	switch s {
	case ObstacleActive:
		return "active"
	case ObstacleCollected:
		return "collected"
	case ObstacleScored:
		return "scored"
	case ObstacleCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// CollectibleVisible reports whether the collectible can still be picked up.
func (s ObstacleState) CollectibleVisible() bool {
	return s == ObstacleActive || s == ObstacleScored
}

// Passed reports whether the bird has flown past the obstacle.
func (s ObstacleState) Passed() bool {
	return s == ObstacleScored || s == ObstacleCleared
}

func (s ObstacleState) collect() ObstacleState {
	switch s {
	case ObstacleActive:
		return ObstacleCollected
	case ObstacleScored:
		return ObstacleCleared
	}
	return s
}

func (s ObstacleState) pass() ObstacleState {
	switch s {
	case ObstacleActive:
		return ObstacleScored
	case ObstacleCollected:
		return ObstacleCleared
	}
	return s
}

// Outcome reports what happened to an obstacle during one update.
type Outcome struct {
	Hit       bool // Bird touched a pipe; the session is now over
	Collected bool // Collectible picked up; score went up by one
	Passed    bool // Trailing edge moved behind the bird this tick
}

// Obstacle is a pipe pair with a collectible in the throat.
// Coordinates are world units with y growing downward.
type Obstacle struct {
	Seq    int     // Spawn order, starting at 1 per session
	X      float64 // Left edge
	SpawnY float64 // Vertical band chosen at creation
	Gap    float64 // Throat gap snapshotted at creation
	State  ObstacleState

	dims  config.FlappyObstacles
	speed float64
}

// NewObstacle creates an obstacle at x with its vertical band and gap fixed.
func NewObstacle(seq int, x, spawnY, gap float64, dims config.FlappyObstacles, speed float64) Obstacle {
	return Obstacle{
		Seq:    seq,
		X:      x,
		SpawnY: spawnY,
		Gap:    gap,
		dims:   dims,
		speed:  speed,
	}
}

// UpperRect returns the pipe box anchored below the throat.
func (o Obstacle) UpperRect() core.RectF {
	return core.NewRectF(o.X, o.SpawnY+o.Gap, o.dims.PipeWidth, o.dims.PipeHeight)
}

// LowerRect returns the pipe box anchored above the throat.
func (o Obstacle) LowerRect() core.RectF {
	return core.NewRectF(o.X, o.SpawnY-o.Gap, o.dims.PipeWidth, o.dims.PipeHeight)
}

// CollectibleRect returns the collectible's box halfway into the gap.
func (o Obstacle) CollectibleRect() core.RectF {
	return core.NewRectF(o.X, o.SpawnY+o.Gap/2, o.dims.CoinWidth, o.dims.CoinHeight)
}

// Update scrolls the obstacle left and resolves its interactions with the bird.
// Nothing moves unless the session is running and not over.
// A pipe hit ends the session and masks the collectible for this tick.
// Passing is tracked independently and does not touch the score.
func (o *Obstacle) Update(bird core.RectF, dt float64, st *SessionState) Outcome {
	var out Outcome
	if !st.Active() {
		return out
	}

	o.X -= o.speed * dt

	switch {
	case bird.Intersects(o.UpperRect()) || bird.Intersects(o.LowerRect()):
		st.EndGame()
		out.Hit = true
	case o.State.CollectibleVisible() && bird.Intersects(o.CollectibleRect()):
		o.State = o.State.collect()
		st.Score++
		out.Collected = true
	}

	if !o.State.Passed() && o.X+o.dims.PipeWidth < bird.X {
		o.State = o.State.pass()
		out.Passed = true
	}

	return out
}

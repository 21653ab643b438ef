package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BirdCondition tracks the one-shot boundary strike of the bird.
type BirdCondition uint8

const (
	BirdFlying BirdCondition = iota // Has not touched the ceiling or floor
	BirdStruck                      // Touched a boundary; strike already reported
)

// BirdFrame is a wing pose of the flap animation.
type BirdFrame int

const (
	FrameWingUp BirdFrame = iota
	FrameParallel
	FrameWingDown
)

// String returns the pose name.
func (f BirdFrame) String() string {
	switch f {
	case FrameWingUp:
		return "wing-up"
	case FrameParallel:
		return "parallel"
	case FrameWingDown:
		return "wing-down"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f BirdFrame) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// birdFrames is the animation cycle the phase accumulator walks through.
var birdFrames = [...]BirdFrame{FrameWingUp, FrameParallel, FrameWingDown, FrameParallel}

// Bird is the player-controlled vertical integrator.
type Bird struct {
	Y         float64 // Top of the hitbox
	Velocity  float64 // Positive is down
	Phase     float64 // Animation accumulator in [0, len(birdFrames))
	Condition BirdCondition

	body    config.FlappyBird
	physics config.FlappyPhysics
}

// NewBird creates a bird at its start height with zero velocity.
func NewBird(body config.FlappyBird, physics config.FlappyPhysics) Bird {
	return Bird{
		Y:       body.StartY,
		body:    body,
		physics: physics,
	}
}

// Update advances the bird by dt seconds.
// The wing animation always advances. Gravity is integrated only when active
// (session running and not over), velocity before position.
// Update reports true on the first tick the bird leaves [0, floorY].
func (b *Bird) Update(dt, floorY float64, active bool) bool {
	b.Phase = math.Mod(b.Phase+b.physics.AnimationRate*dt, float64(len(birdFrames)))

	if !active {
		return false
	}

	b.Velocity += dt * b.physics.Gravity
	b.Y += b.Velocity * dt

	struck := false
	if b.Y < 0 || b.Y+b.body.Height > floorY {
		if b.Condition == BirdFlying {
			b.Condition = BirdStruck
			struck = true
		}
	}

	// The floor is solid, the ceiling is not
	if b.Y+b.body.Height > floorY {
		b.Y = floorY - b.body.Height
		b.Velocity = 0
	}

	return struck
}

// Flap sets the upward velocity. It is a no-op unless active.
// Returns whether the flap happened.
func (b *Bird) Flap(active bool) bool {
	if !active {
		return false
	}
	b.Velocity = b.physics.FlapVelocity
	return true
}

// Rect returns the collision rectangle at the bird's fixed column.
func (b Bird) Rect() core.RectF {
	return core.NewRectF(b.body.X, b.Y, b.body.Width, b.body.Height)
}

// Angle returns the display rotation in degrees, positive nose-down.
func (b Bird) Angle() float64 {
	if b.physics.TiltVelocity == 0 {
		return 0
	}
	return b.physics.TiltDegrees * (b.Velocity / b.physics.TiltVelocity)
}

// Frame returns the current wing pose.
func (b Bird) Frame() BirdFrame {
	i := int(b.Phase)
	if i < 0 || i >= len(birdFrames) {
		i = 0
	}
	return birdFrames[i]
}

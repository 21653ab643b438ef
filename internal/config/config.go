// Package config provides YAML-based game configuration loading and
// the difficulty table for the arcade.
package config

import (
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Difficulty Difficulty      `yaml:"difficulty"`
	World      FlappyWorld     `yaml:"world"`
	Bird       FlappyBird      `yaml:"bird"`
	Physics    FlappyPhysics   `yaml:"physics"`
	Obstacles  FlappyObstacles `yaml:"obstacles"`
	Timing     FlappyTiming    `yaml:"timing"`
}

// FlappyWorld defines the playfield geometry.
type FlappyWorld struct {
	Width        float64 `yaml:"width"`
	FloorY       float64 `yaml:"floor_y"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundTile   float64 `yaml:"ground_tile"`
}

// Height returns the full world height including the ground strip.
func (w FlappyWorld) Height() float64 {
	return w.FloorY + w.GroundHeight
}

// FlappyBird defines the bird's fixed column, start height and hitbox.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapVelocity  float64 `yaml:"flap_velocity"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`
	AnimationRate float64 `yaml:"animation_rate"`
	TiltDegrees   float64 `yaml:"tilt_degrees"`
	TiltVelocity  float64 `yaml:"tilt_velocity"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth  float64 `yaml:"pipe_width"`
	PipeHeight float64 `yaml:"pipe_height"`
	CoinWidth  float64 `yaml:"coin_width"`
	CoinHeight float64 `yaml:"coin_height"`
	BaseY      float64 `yaml:"base_y"`
	BandStep   float64 `yaml:"band_step"`
	BandMin    int     `yaml:"band_min"`
	BandMax    int     `yaml:"band_max"`
	QueueCap   int     `yaml:"queue_cap"`
}

// SpawnX returns the x position new obstacles appear at, just off the right edge.
func (o FlappyObstacles) SpawnX(worldWidth float64) float64 {
	return worldWidth + o.PipeWidth
}

// FlappyTiming defines the wall-clock cadences of the session.
type FlappyTiming struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	BlinkInterval time.Duration `yaml:"blink_interval"`
}

// Validate checks that the configuration describes a playable world.
func (c FlappyConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.FloorY <= 0:
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.FloorY)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("config: bird size must be positive, got %gx%g", c.Bird.Width, c.Bird.Height)
	case c.Bird.StartY < 0 || c.Bird.StartY+c.Bird.Height > c.World.FloorY:
		return fmt.Errorf("config: bird start_y %g is outside the playfield", c.Bird.StartY)
	case c.Obstacles.PipeWidth <= 0 || c.Obstacles.PipeHeight <= 0:
		return fmt.Errorf("config: pipe size must be positive")
	case c.Obstacles.CoinWidth <= 0 || c.Obstacles.CoinHeight <= 0:
		return fmt.Errorf("config: coin size must be positive")
	case c.Obstacles.BandMin > c.Obstacles.BandMax:
		return fmt.Errorf("config: band_min %d is greater than band_max %d", c.Obstacles.BandMin, c.Obstacles.BandMax)
	case c.Obstacles.QueueCap <= 0:
		return fmt.Errorf("config: queue_cap must be positive, got %d", c.Obstacles.QueueCap)
	case c.Timing.SpawnInterval <= 0:
		return fmt.Errorf("config: spawn_interval must be positive, got %s", c.Timing.SpawnInterval)
	case c.Timing.BlinkInterval <= 0:
		return fmt.Errorf("config: blink_interval must be positive, got %s", c.Timing.BlinkInterval)
	}
	return nil
}

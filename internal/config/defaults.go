package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Difficulty: DifficultyMedium,
		World: FlappyWorld{
			Width:        450,
			FloorY:       600,
			GroundHeight: 100,
			GroundTile:   24,
		},
		Bird: FlappyBird{
			X:      50,
			StartY: 400,
			Width:  34,
			Height: 24,
		},
		Physics: FlappyPhysics{
			Gravity:       1200,
			FlapVelocity:  -420,
			ScrollSpeed:   100,
			AnimationRate: 4,
			TiltDegrees:   8,
			TiltVelocity:  400,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:  52,
			PipeHeight: 320,
			CoinWidth:  24,
			CoinHeight: 24,
			BaseY:      100,
			BandStep:   50,
			BandMin:    -3,
			BandMax:    1,
			QueueCap:   4,
		},
		Timing: FlappyTiming{
			SpawnInterval: 3500 * time.Millisecond,
			BlinkInterval: 400 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}

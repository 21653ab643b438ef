package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BirdView is the presentation view of the bird.
type BirdView struct {
	Rect     core.RectF `json:"rect"`
	Velocity float64    `json:"velocity"`
	Angle    float64    `json:"angle"`
	Frame    BirdFrame  `json:"frame"`
}

// ObstacleView is the presentation view of one obstacle.
type ObstacleView struct {
	Seq                int        `json:"seq"`
	Upper              core.RectF `json:"upper"`
	Lower              core.RectF `json:"lower"`
	Collectible        core.RectF `json:"collectible"`
	CollectibleVisible bool       `json:"collectible_visible"`
	Passed             bool       `json:"passed"`
	Gap                float64    `json:"gap"`
}

// Snapshot is a read-only copy of everything a renderer or spectator needs.
// It shares no memory with the session.
type Snapshot struct {
	Phase        Phase             `json:"phase"`
	Score        int               `json:"score"`
	Over         bool              `json:"over"`
	Paused       bool              `json:"paused"`
	Difficulty   config.Difficulty `json:"difficulty"`
	Background   string            `json:"background"`
	BlinkFrame   bool              `json:"blink_frame"`
	GroundOffset float64           `json:"ground_offset"`
	Bird         BirdView          `json:"bird"`
	Obstacles    []ObstacleView    `json:"obstacles"`
}

// Snapshot captures the current session for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.phase,
		Score:        s.state.Score,
		Over:         s.state.Over,
		Paused:       s.state.Paused,
		Difficulty:   s.state.Difficulty,
		Background:   s.state.Difficulty.Background(),
		BlinkFrame:   s.blinkFrame,
		GroundOffset: s.groundOffset,
		Bird: BirdView{
			Rect:     s.bird.Rect(),
			Velocity: s.bird.Velocity,
			Angle:    s.bird.Angle(),
			Frame:    s.bird.Frame(),
		},
		Obstacles: make([]ObstacleView, 0, s.obstacles.Len()),
	}

	for i := 0; i < s.obstacles.Len(); i++ {
		o := s.obstacles.At(i)
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			Seq:                o.Seq,
			Upper:              o.UpperRect(),
			Lower:              o.LowerRect(),
			Collectible:        o.CollectibleRect(),
			CollectibleVisible: o.State.CollectibleVisible(),
			Passed:             o.State.Passed(),
			Gap:                o.Gap,
		})
	}

	return snap
}

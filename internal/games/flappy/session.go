package flappy

import (
	"math/rand"

	"github.com/benbjohnson/clock"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Session drives one bird through the menu, get-ready, running and
// game-over phases. It owns every piece of mutable game state.
//
// Tick order is fixed: bird, then obstacles oldest first, then ground
// scroll and spawn cadence. The same seed, clock readings and input
// trace always produce the same outcome.
type Session struct {
	cfg   config.FlappyConfig
	clock clock.Clock
	seed  int64
	rng   *rand.Rand

	state     SessionState
	phase     Phase
	bird      Bird
	obstacles ObstacleQueue
	nextSeq   int

	spawnWatch Stopwatch
	blinkWatch Stopwatch
	blinkFrame bool

	groundOffset float64

	// Activation is edge-triggered: a held press flaps once.
	latched bool

	events []core.Event
}

// NewSession creates a session in the main menu at cfg's difficulty.
// A nil clock uses the wall clock.
func NewSession(cfg config.FlappyConfig, clk clock.Clock, seed int64) *Session {
	if clk == nil {
		clk = clock.New()
	}
	s := &Session{
		cfg:   cfg,
		clock: clk,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		state: newSessionState(cfg.Difficulty),
	}
	s.reset()
	return s
}

// reset clears everything except difficulty and the RNG stream.
func (s *Session) reset() {
	difficulty := s.state.Difficulty
	s.state = newSessionState(difficulty)
	s.phase = PhaseMainMenu
	s.bird = NewBird(s.cfg.Bird, s.cfg.Physics)
	s.obstacles = NewObstacleQueue(s.cfg.Obstacles.QueueCap)
	s.nextSeq = 0
	s.spawnWatch = NewStopwatch(s.clock)
	s.blinkWatch = NewStopwatch(s.clock)
	s.blinkFrame = false
	s.groundOffset = 0
	s.latched = false
}

// Start leaves the main menu for the get-ready screen.
// It has no effect in any other phase.
func (s *Session) Start() {
	if s.phase != PhaseMainMenu {
		return
	}
	s.phase = PhaseGetReady
	s.blinkWatch.Restart()
	s.blinkFrame = false
}

// Activate handles a press of the flap control.
// The first press after get-ready starts the run and spawns the first
// obstacle. Every press flaps while the run is active. Repeated presses
// without a Release in between are ignored.
func (s *Session) Activate() {
	if s.phase == PhaseMainMenu || s.latched {
		return
	}
	s.latched = true

	if !s.state.Running {
		s.state.Running = true
		s.phase = PhaseRunning
		s.spawnWatch.Restart()
		s.emit(EventStart)
		s.spawn()
	}

	if s.bird.Flap(s.state.Active()) {
		s.emit(EventFlap)
	}
}

// Release re-arms the flap control.
func (s *Session) Release() {
	s.latched = false
}

// Restart returns a finished session to the main menu.
// Difficulty survives; score, bird and obstacles do not.
func (s *Session) Restart() {
	if !s.state.Over {
		return
	}
	s.reset()
	s.emit(EventRestart)
}

// TogglePause flips the pause flag.
func (s *Session) TogglePause() {
	s.state.Paused = !s.state.Paused
	s.emit(EventPause)
}

// SetDifficulty changes the throat gap for obstacles spawned from now on.
// Obstacles already queued keep the gap they were created with.
func (s *Session) SetDifficulty(d config.Difficulty) {
	if d == s.state.Difficulty {
		return
	}
	s.state.SetDifficulty(d)
	s.emit(EventDifficulty)
}

// Tick advances the session by dt seconds and returns the events raised
// since the previous tick, including those from input calls in between.
func (s *Session) Tick(dt float64) []core.Event {
	if dt < 0 {
		dt = 0
	}

	if s.bird.Update(dt, s.cfg.World.FloorY, s.state.Active()) {
		s.state.EndGame()
		s.emit(EventHit, EventDie)
	}

	birdRect := s.bird.Rect()
	for i := 0; i < s.obstacles.Len(); i++ {
		out := s.obstacles.At(i).Update(birdRect, dt, &s.state)
		if out.Hit {
			s.emit(EventHit)
		}
		if out.Collected {
			s.emit(EventPoint)
		}
	}

	if s.state.Active() {
		s.scrollGround(dt)
		if s.spawnWatch.Elapsed() > s.cfg.Timing.SpawnInterval {
			s.spawnWatch.Restart()
			s.spawn()
		}
	}

	if s.phase == PhaseGetReady && s.blinkWatch.Elapsed() > s.cfg.Timing.BlinkInterval {
		s.blinkFrame = !s.blinkFrame
		s.blinkWatch.Restart()
	}

	if s.state.Over {
		s.phase = PhaseGameOver
	}

	events := s.events
	s.events = nil
	return events
}

func (s *Session) scrollGround(dt float64) {
	tile := s.cfg.World.GroundTile
	s.groundOffset -= s.cfg.Physics.ScrollSpeed * dt
	if tile > 0 && s.groundOffset <= -tile {
		s.groundOffset += tile
	}
}

// spawn queues a new obstacle at the right edge in a random band.
func (s *Session) spawn() {
	o := s.cfg.Obstacles
	band := o.BandMin + s.rng.Intn(o.BandMax-o.BandMin+1)
	s.nextSeq++

	obstacle := NewObstacle(
		s.nextSeq,
		o.SpawnX(s.cfg.World.Width),
		o.BaseY+float64(band)*o.BandStep,
		s.state.ThroatGap,
		o,
		s.cfg.Physics.ScrollSpeed,
	)
	s.emit(EventSpawn)
	if _, evicted := s.obstacles.Push(obstacle); evicted {
		s.emit(EventEvict)
	}
}

func (s *Session) emit(events ...core.Event) {
	s.events = append(s.events, events...)
}

// State returns a copy of the session flags.
func (s *Session) State() SessionState {
	return s.state
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird {
	return s.bird
}

// Obstacles returns the queued obstacles, oldest first.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles.All()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// BlinkFrame reports which half of the get-ready blink is showing.
func (s *Session) BlinkFrame() bool {
	return s.blinkFrame
}

// GroundOffset returns the ground texture offset in (-tile, 0].
func (s *Session) GroundOffset() float64 {
	return s.groundOffset
}

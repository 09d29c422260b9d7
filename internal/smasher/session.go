// Package smasher runs one player's attempts at block-smasher levels.
//
// A Session owns an Arena and a ParticleSystem for the level being played
// and drives them through the attempt lifecycle:
//
//	AwaitingLaunch -> InPlay -> (ball lost, lives left) -> AwaitingLaunch
//	                         -> Victory | Defeat
//
// The package is pure simulation. It never logs or touches storage; callers
// receive a Result when an attempt ends and persist it themselves.
package smasher

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/block-smasher/internal/level"
)

// State is the attempt lifecycle state.
type State int

const (
	StateAwaitingLaunch State = iota // Ball rides the paddle
	StateInPlay                      // Ball in flight
	StateVictory                     // Every block destroyed
	StateDefeat                      // No lives left
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingLaunch:
		return "awaiting_launch"
	case StateInPlay:
		return "in_play"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the attempt is over.
func (s State) Terminal() bool {
	return s == StateVictory || s == StateDefeat
}

// Config holds the session's gameplay settings.
type Config struct {
	Arena     ArenaParams
	Particles ParticleConfig

	Lives        int
	BlockPoints  int
	LaunchSpeed  float64 // Upward speed of a fresh launch
	LaunchJitter float64 // Launch VX is uniform in [-jitter, jitter]
}

// DefaultConfig returns the classic rules: three lives, 100 points a block.
func DefaultConfig() Config {
	return Config{
		Arena:        DefaultArenaParams(),
		Particles:    DefaultParticleConfig(),
		Lives:        3,
		BlockPoints:  100,
		LaunchSpeed:  6,
		LaunchJitter: 3,
	}
}

// Transition records a state change within one tick.
type Transition struct {
	From, To State
}

// Result is emitted once when an attempt with a positive score ends.
type Result struct {
	Player  string
	Score   int
	Level   int
	Outcome State
}

// ProgressSaver persists finished attempts and the levels they unlock.
// Implementations live outside the simulation; the session only produces
// Results and unlock numbers.
type ProgressSaver interface {
	SaveResult(r Result) error
	Unlock(player string, level int) error
}

// TickResult is everything a caller needs to react to one Update.
type TickResult struct {
	ScoreDelta int
	Spawns     []SpawnRequest
	Transition *Transition
	Result     *Result
	Unlocked   int // Level unlocked by this tick, or 0
}

// Session is a single player's run of levels.
type Session struct {
	cfg       Config
	gen       *level.Generator
	rng       *rand.Rand
	particles *ParticleSystem
	arena     *Arena
	unlocked  *UnlockSet

	player string
	level  int
	state  State
	score  int
	lives  int
	tick   uint64
}

// NewSession creates a session with only level 1 unlocked. The seed drives
// launch jitter and particle spray; layouts depend only on level numbers.
// Call StartLevel before Update.
func NewSession(cfg Config, gen *level.Generator, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
	return &Session{
		cfg:       cfg,
		gen:       gen,
		rng:       rng,
		particles: NewParticleSystem(cfg.Particles, rng),
		unlocked:  NewUnlockSet(),
		arena:     NewArena(cfg.Arena, nil),
	}
}

// SetPlayer sets the name attached to emitted results.
func (s *Session) SetPlayer(name string) {
	s.player = name
}

// Player returns the current player name.
func (s *Session) Player() string {
	return s.player
}

// IsPlayable reports whether level n may be started: seeded levels always,
// curated levels once unlocked.
func (s *Session) IsPlayable(n int) bool {
	if !s.gen.Known(n) {
		return false
	}
	return s.gen.IsProcedural(n) || s.unlocked.Has(n)
}

// StartLevel begins a fresh attempt at level n with full lives, zero score,
// newly generated blocks and no particles.
func (s *Session) StartLevel(n int) error {
	if !s.gen.Known(n) {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, n)
	}
	if !s.IsPlayable(n) {
		return fmt.Errorf("%w: %d", ErrLevelLocked, n)
	}

	s.level = n
	s.score = 0
	s.lives = s.cfg.Lives
	s.state = StateAwaitingLaunch
	s.tick = 0
	s.arena = NewArena(s.cfg.Arena, s.gen.Generate(n))
	s.particles.Clear()
	return nil
}

// Retry restarts the current level.
func (s *Session) Retry() error {
	return s.StartLevel(s.level)
}

// Advance starts the level after a won one.
func (s *Session) Advance() error {
	if s.state != StateVictory {
		return ErrNotFinished
	}
	return s.StartLevel(s.level + 1)
}

// NextLevel returns the level Advance would start and whether it is playable.
func (s *Session) NextLevel() (int, bool) {
	n := s.level + 1
	return n, s.IsPlayable(n)
}

// Update advances the session one tick. paddleX is the desired paddle
// centre and launch requests a serve. Once the attempt is over the arena
// stays frozen while particles finish decaying. Before the first StartLevel
// it does nothing.
func (s *Session) Update(paddleX float64, launch bool) TickResult {
	var res TickResult
	if s.level == 0 {
		return res
	}
	s.tick++

	if s.state.Terminal() {
		s.particles.Tick()
		return res
	}

	from := s.state
	s.arena.MovePaddle(paddleX)

	if s.state == StateAwaitingLaunch && launch {
		vx := (s.rng.Float64()*2 - 1) * s.cfg.LaunchJitter
		s.arena.Launch(vx, -s.cfg.LaunchSpeed)
		s.state = StateInPlay
	}

	out := s.arena.Step()
	if out.Killed >= 0 {
		res.ScoreDelta = s.cfg.BlockPoints
		s.score += res.ScoreDelta
	}
	for _, sp := range out.Spawns {
		s.particles.Spawn(sp.X, sp.Y, sp.Count, sp.Color)
	}
	res.Spawns = out.Spawns

	if out.BallLost {
		s.lives = max(s.lives-1, 0)
		if s.lives == 0 {
			s.state = StateDefeat
		} else {
			s.arena.Serve()
			s.state = StateAwaitingLaunch
		}
	}

	s.particles.Tick()

	if !s.state.Terminal() && s.arena.AliveCount() == 0 {
		s.state = StateVictory
		res.Unlocked = s.unlockNext()
	}

	if s.state != from {
		res.Transition = &Transition{From: from, To: s.state}
		if s.state.Terminal() && s.score > 0 {
			res.Result = &Result{
				Player:  s.player,
				Score:   s.score,
				Level:   s.level,
				Outcome: s.state,
			}
		}
	}
	return res
}

// unlockNext unlocks the following curated level and returns it, or 0.
// Seeded levels need no unlocking.
func (s *Session) unlockNext() int {
	next := s.level + 1
	if s.level >= s.gen.Params().Threshold || !s.gen.Known(next) {
		return 0
	}
	if s.unlocked.Add(next) {
		return next
	}
	return 0
}

// Unlocked returns the unlocked level numbers in ascending order.
func (s *Session) Unlocked() []int {
	return s.unlocked.Levels()
}

// SetUnlocked adds previously earned levels, typically restored from storage.
func (s *Session) SetUnlocked(levels []int) {
	for _, n := range levels {
		s.unlocked.Add(n)
	}
}

// SetParticles toggles particle effects.
func (s *Session) SetParticles(on bool) {
	s.particles.SetEnabled(on)
}

// State returns the attempt state.
func (s *Session) State() State { return s.state }

// Score returns the attempt score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the level being played.
func (s *Session) Level() int { return s.level }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Generator returns the level generator the session draws layouts from.
func (s *Session) Generator() *level.Generator { return s.gen }

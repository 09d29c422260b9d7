package smasher

import (
	"math"

	"github.com/vovakirdan/block-smasher/internal/level"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick      uint64
	Level     int
	State     State
	Score     int
	Lives     int
	Ball      Ball
	Paddle    Paddle
	Blocks    []level.Block
	Particles []Particle
	Alive     int
}

// Snapshot returns the current session state. Mutating the returned
// slices does not affect the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Level:     s.level,
		State:     s.state,
		Score:     s.score,
		Lives:     s.lives,
		Ball:      s.arena.Ball(),
		Paddle:    s.arena.Paddle(),
		Blocks:    s.arena.Blocks(),
		Particles: s.particles.Particles(),
		Alive:     s.arena.AliveCount(),
	}
}

// Hash returns a hash of the simulation state for determinism checks.
// Particles are left out; they are decoration.
func (snap Snapshot) Hash() uint64 {
	var h uint64 = 17

	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(f float64) {
		mix(math.Float64bits(f))
	}
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(snap.Tick)
	mix(uint64(snap.Level)) //#nosec G115 -- hash mixing
	mix(uint64(snap.State)) //#nosec G115 -- hash mixing
	mix(uint64(snap.Score)) //#nosec G115 -- hash mixing
	mix(uint64(snap.Lives)) //#nosec G115 -- hash mixing

	mixF(snap.Ball.X)
	mixF(snap.Ball.Y)
	mixF(snap.Ball.VX)
	mixF(snap.Ball.VY)
	mixB(snap.Ball.Launched)
	mixF(snap.Paddle.X)

	for _, b := range snap.Blocks {
		mixF(b.X)
		mixF(b.Y)
		mixB(b.Alive)
	}

	return h
}

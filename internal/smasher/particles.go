package smasher

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/block-smasher/internal/core"
)

// ParticleConfig tunes particle kinematics.
type ParticleConfig struct {
	Enabled  bool
	Gravity  float64 // Added to VY every tick
	Decay    float64 // Life lost per tick
	MinSpeed float64
	MaxSpeed float64
	MinSize  float64
	MaxSize  float64
	MaxCount int // 0 disables the cap
}

// DefaultParticleConfig returns the classic particle settings.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Enabled:  true,
		Gravity:  0.3,
		Decay:    0.015,
		MinSpeed: 2,
		MaxSpeed: 5,
		MinSize:  2,
		MaxSize:  4,
		MaxCount: 2048,
	}
}

// Particle is a short-lived decorative body.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   core.Color

	age int // Ticks survived
}

// ParticleSystem owns every live particle. Particles are kept oldest first.
type ParticleSystem struct {
	cfg   ParticleConfig
	rng   *rand.Rand
	items []Particle
}

// NewParticleSystem creates an empty system drawing spray from rng.
func NewParticleSystem(cfg ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg:   cfg,
		rng:   rng,
		items: make([]Particle, 0, 64),
	}
}

// SetEnabled toggles particle creation. Existing particles keep decaying.
func (ps *ParticleSystem) SetEnabled(on bool) {
	ps.cfg.Enabled = on
}

// Enabled reports whether Spawn creates particles.
func (ps *ParticleSystem) Enabled() bool {
	return ps.cfg.Enabled
}

// Spawn emits count particles at (x, y) in uniformly random directions and
// returns how many were created. When the cap is reached the oldest
// particles are evicted first.
func (ps *ParticleSystem) Spawn(x, y float64, count int, c core.Color) int {
	if !ps.cfg.Enabled || count <= 0 {
		return 0
	}

	for range count {
		angle := ps.uniform(0, 2*math.Pi)
		speed := ps.uniform(ps.cfg.MinSpeed, ps.cfg.MaxSpeed)
		ps.items = append(ps.items, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    1,
			MaxLife: 1,
			Size:    ps.uniform(ps.cfg.MinSize, ps.cfg.MaxSize),
			Color:   c,
		})
	}

	if limit := ps.cfg.MaxCount; limit > 0 && len(ps.items) > limit {
		excess := len(ps.items) - limit
		n := copy(ps.items, ps.items[excess:])
		ps.items = ps.items[:n]
	}
	return count
}

// Tick advances every particle once and drops those whose life ran out.
// Life is derived from the tick count so a particle lives exactly
// ceil(1/Decay) ticks whatever the rounding of Decay.
func (ps *ParticleSystem) Tick() {
	ttl := ps.lifetime()
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ps.cfg.Gravity
		p.age++
		if p.age >= ttl {
			continue
		}
		p.Life = p.MaxLife - float64(p.age)*ps.cfg.Decay
		kept = append(kept, p)
	}
	ps.items = kept
}

// lifetime returns how many ticks a particle survives. Without decay
// particles never expire.
func (ps *ParticleSystem) lifetime() int {
	if ps.cfg.Decay <= 0 {
		return math.MaxInt
	}
	return int(math.Ceil(1 / ps.cfg.Decay))
}

// Particles returns a copy of the live particles, oldest first.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.items))
	copy(out, ps.items)
	return out
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}

func (ps *ParticleSystem) uniform(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

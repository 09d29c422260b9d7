package smasher

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/block-smasher/internal/core"
)

func newTestParticles(cfg ParticleConfig) *ParticleSystem {
	return NewParticleSystem(cfg, rand.New(rand.NewSource(1)))
}

func TestParticleDecay(t *testing.T) {
	for _, d := range []float64{0.01, 0.015, 0.02, 0.04, 0.05, 0.1, 0.2, 0.25, 0.3} {
		cfg := DefaultParticleConfig()
		cfg.Decay = d
		ps := newTestParticles(cfg)
		ps.Spawn(100, 100, 1, core.ColorCyan)

		expected := int(math.Ceil(1 / d))
		ticks := 0
		for ps.Len() > 0 && ticks < 1000 {
			ps.Tick()
			ticks++
		}
		if ticks != expected {
			t.Errorf("decay %v: removed after %d ticks, expected %d", d, ticks, expected)
		}
	}
}

func TestParticleSpawnRanges(t *testing.T) {
	cfg := DefaultParticleConfig()
	ps := newTestParticles(cfg)

	if n := ps.Spawn(50, 60, 200, core.ColorOrange); n != 200 {
		t.Fatalf("Spawn returned %d, expected 200", n)
	}

	for i, p := range ps.Particles() {
		speed := math.Hypot(p.VX, p.VY)
		if speed < cfg.MinSpeed-1e-9 || speed > cfg.MaxSpeed+1e-9 {
			t.Errorf("particle %d speed %v outside [%v, %v]", i, speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if p.Size < cfg.MinSize || p.Size > cfg.MaxSize {
			t.Errorf("particle %d size %v outside range", i, p.Size)
		}
		if p.Life != 1 || p.X != 50 || p.Y != 60 || p.Color != core.ColorOrange {
			t.Errorf("particle %d spawned with %+v", i, p)
		}
	}
}

func TestParticleKinematics(t *testing.T) {
	cfg := DefaultParticleConfig()
	ps := newTestParticles(cfg)
	ps.Spawn(0, 0, 1, core.ColorCyan)
	before := ps.Particles()[0]

	ps.Tick()
	after := ps.Particles()[0]

	if after.X != before.X+before.VX || after.Y != before.Y+before.VY {
		t.Errorf("position not advanced by velocity: %+v -> %+v", before, after)
	}
	if math.Abs(after.VY-(before.VY+0.3)) > 1e-12 {
		t.Errorf("VY = %v, expected %v", after.VY, before.VY+0.3)
	}
	if math.Abs(after.Life-0.985) > 1e-12 {
		t.Errorf("Life = %v, expected 0.985", after.Life)
	}
}

func TestParticleCapEvictsOldest(t *testing.T) {
	cfg := DefaultParticleConfig()
	cfg.MaxCount = 10
	ps := newTestParticles(cfg)

	ps.Spawn(0, 0, 8, core.ColorCyan)
	ps.Spawn(0, 0, 8, core.ColorPink)

	if ps.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", ps.Len())
	}
	parts := ps.Particles()
	for i, p := range parts {
		expected := core.ColorPink
		if i < 2 {
			expected = core.ColorCyan
		}
		if p.Color != expected {
			t.Errorf("particle %d color = %v, expected %v", i, p.Color, expected)
		}
	}
}

func TestParticlesDisabled(t *testing.T) {
	cfg := DefaultParticleConfig()
	cfg.Enabled = false
	ps := newTestParticles(cfg)

	if n := ps.Spawn(0, 0, 20, core.ColorCyan); n != 0 || ps.Len() != 0 {
		t.Errorf("disabled system created %d particles", ps.Len())
	}

	ps.SetEnabled(true)
	ps.Spawn(0, 0, 3, core.ColorCyan)
	ps.SetEnabled(false)
	ps.Tick()
	if ps.Len() != 3 {
		t.Errorf("existing particles should keep decaying after disabling, Len() = %d", ps.Len())
	}
}

func TestParticlesClearAndCopy(t *testing.T) {
	ps := newTestParticles(DefaultParticleConfig())
	ps.Spawn(0, 0, 5, core.ColorCyan)

	parts := ps.Particles()
	parts[0].Life = -1
	ps.Tick()
	if ps.Len() != 5 {
		t.Error("mutating the returned slice should not affect the system")
	}

	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", ps.Len())
	}
}

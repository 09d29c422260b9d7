package config

import (
	_ "embed"
)

//go:embed defaults/smasher.yaml
var defaultSmasherYAML []byte

// DefaultSmasherConfig returns the classic 800×600 configuration.
func DefaultSmasherConfig() SmasherConfig {
	return SmasherConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			BottomOffset: 40,
			KeyStep:      40,
		},
		Ball: BallConfig{
			Radius:       8,
			ServeOffset:  100,
			LaunchSpeed:  6,
			LaunchJitter: 3,
		},
		Physics: PhysicsConfig{
			HitFactor: 5,
		},
		Gameplay: GameplayConfig{
			Lives:               3,
			BlockPoints:         100,
			ProceduralThreshold: 100,
		},
		Particles: ParticlesConfig{
			Enabled:     true,
			Gravity:     0.3,
			Decay:       0.015,
			MinSpeed:    2,
			MaxSpeed:    5,
			MinSize:     2,
			MaxSize:     4,
			MaxCount:    2048,
			WallBurst:   8,
			PaddleBurst: 12,
			BlockBurst:  20,
		},
		Generator: GeneratorConfig{
			Margin: 50,
			MaxY:   420,
		},
	}
}

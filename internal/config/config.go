// Package config provides YAML (and TOML) configuration loading and
// difficulty presets for block-smasher.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/block-smasher/internal/level"
	"github.com/vovakirdan/block-smasher/internal/smasher"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SmasherConfig contains all configuration for the game.
type SmasherConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas" toml:"canvas"`
	Paddle    PaddleConfig    `yaml:"paddle" toml:"paddle"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Gameplay  GameplayConfig  `yaml:"gameplay" toml:"gameplay"`
	Particles ParticlesConfig `yaml:"particles" toml:"particles"`
	Generator GeneratorConfig `yaml:"generator" toml:"generator"`
}

// CanvasConfig defines the simulation canvas in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Canvas bottom to paddle top
	KeyStep      float64 `yaml:"key_step" toml:"key_step"`           // Keyboard nudge per press
}

// BallConfig defines the ball and its launch.
type BallConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	ServeOffset  float64 `yaml:"serve_offset" toml:"serve_offset"` // Canvas bottom to served ball
	LaunchSpeed  float64 `yaml:"launch_speed" toml:"launch_speed"`
	LaunchJitter float64 `yaml:"launch_jitter" toml:"launch_jitter"`
}

// PhysicsConfig defines collision response.
type PhysicsConfig struct {
	HitFactor float64 `yaml:"hit_factor" toml:"hit_factor"` // Horizontal speed at the paddle edge
}

// GameplayConfig defines rules.
type GameplayConfig struct {
	Lives               int `yaml:"lives" toml:"lives"`
	BlockPoints         int `yaml:"block_points" toml:"block_points"`
	ProceduralThreshold int `yaml:"procedural_threshold" toml:"procedural_threshold"`
}

// ParticlesConfig defines particle effects.
type ParticlesConfig struct {
	Enabled     bool    `yaml:"enabled" toml:"enabled"`
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	Decay       float64 `yaml:"decay" toml:"decay"`
	MinSpeed    float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed" toml:"max_speed"`
	MinSize     float64 `yaml:"min_size" toml:"min_size"`
	MaxSize     float64 `yaml:"max_size" toml:"max_size"`
	MaxCount    int     `yaml:"max_count" toml:"max_count"`
	WallBurst   int     `yaml:"wall_burst" toml:"wall_burst"`
	PaddleBurst int     `yaml:"paddle_burst" toml:"paddle_burst"`
	BlockBurst  int     `yaml:"block_burst" toml:"block_burst"`
}

// GeneratorConfig defines where procedural blocks may land.
type GeneratorConfig struct {
	Margin float64 `yaml:"margin" toml:"margin"`
	MaxY   float64 `yaml:"max_y" toml:"max_y"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal or hard)", ErrInvalid, s)
	}
}

// Validate checks that the configuration can drive a game.
func (c SmasherConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %vx%v", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.Canvas.Width:
		return fmt.Errorf("%w: paddle width %v exceeds canvas width %v", ErrInvalid, c.Paddle.Width, c.Canvas.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalid, c.Ball.Radius)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Particles.Decay <= 0:
		return fmt.Errorf("%w: particle decay must be positive, got %v", ErrInvalid, c.Particles.Decay)
	case c.Particles.MinSpeed > c.Particles.MaxSpeed || c.Particles.MinSize > c.Particles.MaxSize:
		return fmt.Errorf("%w: particle ranges are inverted", ErrInvalid)
	case c.Gameplay.ProceduralThreshold <= level.MaxCurated():
		return fmt.Errorf("%w: procedural threshold %d must exceed the last curated level %d",
			ErrInvalid, c.Gameplay.ProceduralThreshold, level.MaxCurated())
	}
	if err := level.CheckCurated(c.LevelParams()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Session converts the configuration into simulation settings.
func (c SmasherConfig) Session() smasher.Config {
	arena := smasher.DefaultArenaParams()
	arena.CanvasW = c.Canvas.Width
	arena.CanvasH = c.Canvas.Height
	arena.PaddleW = c.Paddle.Width
	arena.PaddleH = c.Paddle.Height
	arena.PaddleOffset = c.Paddle.BottomOffset
	arena.BallRadius = c.Ball.Radius
	arena.ServeOffset = c.Ball.ServeOffset
	arena.HitFactor = c.Physics.HitFactor
	arena.WallBurst = c.Particles.WallBurst
	arena.PaddleBurst = c.Particles.PaddleBurst
	arena.BlockBurst = c.Particles.BlockBurst

	return smasher.Config{
		Arena: arena,
		Particles: smasher.ParticleConfig{
			Enabled:  c.Particles.Enabled,
			Gravity:  c.Particles.Gravity,
			Decay:    c.Particles.Decay,
			MinSpeed: c.Particles.MinSpeed,
			MaxSpeed: c.Particles.MaxSpeed,
			MinSize:  c.Particles.MinSize,
			MaxSize:  c.Particles.MaxSize,
			MaxCount: c.Particles.MaxCount,
		},
		Lives:        c.Gameplay.Lives,
		BlockPoints:  c.Gameplay.BlockPoints,
		LaunchSpeed:  c.Ball.LaunchSpeed,
		LaunchJitter: c.Ball.LaunchJitter,
	}
}

// LevelParams converts the configuration into generator parameters.
func (c SmasherConfig) LevelParams() level.Params {
	return level.Params{
		Bounds: level.Bounds{
			CanvasW: c.Canvas.Width,
			CanvasH: c.Canvas.Height,
			Margin:  c.Generator.Margin,
			MaxY:    c.Generator.MaxY,
		},
		Threshold: c.Gameplay.ProceduralThreshold,
	}
}

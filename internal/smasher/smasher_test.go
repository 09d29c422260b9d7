package smasher

import (
	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/level"
)

// Levels 90 and 91 are small fixtures registered for these tests only.
const (
	oneBlockLevel = 90
	twoBlockLevel = 91
)

func init() {
	level.Register(level.Recipe{
		Number: oneBlockLevel,
		Name:   "Single",
		Build: func(level.Params) []level.Block {
			return []level.Block{{X: 380, Y: 100, W: 40, H: 20, Alive: true, Color: core.ColorPink}}
		},
	})
	level.Register(level.Recipe{
		Number: twoBlockLevel,
		Name:   "Pair",
		Build: func(level.Params) []level.Block {
			return []level.Block{
				{X: 100, Y: 100, W: 40, H: 20, Alive: true, Color: core.ColorCyan},
				{X: 600, Y: 100, W: 40, H: 20, Alive: true, Color: core.ColorCyan},
			}
		},
	})
}

func newTestSession(seed int64) *Session {
	return NewSession(DefaultConfig(), level.NewGenerator(level.DefaultParams()), seed)
}

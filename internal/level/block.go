package level

import "github.com/vovakirdan/block-smasher/internal/core"

// Block is a single breakable target. Generators create blocks alive; only
// the arena flips Alive to false.
type Block struct {
	X, Y  float64
	W, H  float64
	Alive bool
	Color core.Color
}

// Box returns the block rectangle in canvas units.
func (b Block) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bounds describes the canvas and the region blocks may be placed in.
type Bounds struct {
	CanvasW float64
	CanvasH float64
	Margin  float64 // Minimum distance from the left, right and top edges
	MaxY    float64 // Lowest allowed block bottom edge
}

// Accepts reports whether a w×h block at (x, y) lies inside the placement
// region. Edges are inclusive.
func (b Bounds) Accepts(x, y, w, h float64) bool {
	return x >= b.Margin && x <= b.CanvasW-b.Margin-w &&
		y >= b.Margin && y <= b.MaxY-h
}

// Params configures a Generator.
type Params struct {
	Bounds    Bounds
	Threshold int // First procedural level number
}

// DefaultParams returns the classic 800×600 layout parameters.
func DefaultParams() Params {
	return Params{
		Bounds: Bounds{
			CanvasW: 800,
			CanvasH: 600,
			Margin:  50,
			MaxY:    420,
		},
		Threshold: 100,
	}
}

// neonPalette is the colour set random clusters draw from.
var neonPalette = []core.Color{
	core.ColorOrange,
	core.ColorCyan,
	core.ColorPurple,
	core.ColorPink,
	core.ColorYellow,
}

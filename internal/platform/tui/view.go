package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/level"
	"github.com/vovakirdan/block-smasher/internal/smasher"
)

// Glyphs used by the arena view.
const (
	glyphBlock     = '▓'
	glyphPaddle    = '▀'
	glyphBall      = '●'
	glyphSpark     = '*'
	glyphEmber     = '+'
	glyphAsh       = '·'
	glyphLifeToken = '♥'
)

// viewport maps canvas units onto the cells inside the arena frame.
// Row 0 carries the HUD and the last row carries key hints.
type viewport struct {
	frame   core.Rect
	inner   core.Rect
	canvasW float64
	canvasH float64
}

func newViewport(screenW, screenH int, canvasW, canvasH float64) viewport {
	frame := core.NewRect(0, 1, max(screenW, 3), max(screenH-2, 3))
	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	return viewport{frame: frame, inner: inner, canvasW: canvasW, canvasH: canvasH}
}

func (v viewport) cellX(x float64) int {
	return v.inner.X + int(x*float64(v.inner.W)/v.canvasW)
}

func (v viewport) cellY(y float64) int {
	return v.inner.Y + int(y*float64(v.inner.H)/v.canvasH)
}

// canvasX converts a terminal column to the canvas x at the centre of that
// column, clamped to the canvas.
func (v viewport) canvasX(col int) float64 {
	x := (float64(col-v.inner.X) + 0.5) * v.canvasW / float64(v.inner.W)
	return core.ClampF(x, 0, v.canvasW)
}

// cells returns the clipped cell rectangle covering a canvas box. Every
// visible box covers at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0, y0 := v.cellX(b.X), v.cellY(b.Y)
	x1, y1 := v.cellX(b.Right()), v.cellY(b.Bottom())
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0 = core.Clamp(x0, v.inner.X, v.inner.Right())
	x1 = core.Clamp(x1, v.inner.X, v.inner.Right())
	y0 = core.Clamp(y0, v.inner.Y, v.inner.Bottom())
	y1 = core.Clamp(y1, v.inner.Y, v.inner.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (v viewport) inside(x, y int) bool {
	return x >= v.inner.X && x < v.inner.Right() && y >= v.inner.Y && y < v.inner.Bottom()
}

// drawArena paints a snapshot into the screen: frame, blocks, particles,
// paddle and ball, in that order.
func drawArena(s *core.Screen, v viewport, snap smasher.Snapshot) {
	s.DrawBox(v.frame)

	for _, b := range snap.Blocks {
		if !b.Alive {
			continue
		}
		s.DrawRect(v.cells(b.Box()), glyphBlock, b.Color)
	}

	for _, p := range snap.Particles {
		x, y := v.cellX(p.X), v.cellY(p.Y)
		if !v.inside(x, y) {
			continue
		}
		s.SetColored(x, y, particleGlyph(p), p.Color)
	}

	pad := snap.Paddle
	s.DrawRect(v.cells(core.Box{X: pad.X, Y: pad.Y, W: pad.W, H: pad.H}), glyphPaddle, core.ColorPurple)

	bx, by := v.cellX(snap.Ball.X), v.cellY(snap.Ball.Y)
	if v.inside(bx, by) {
		s.SetColored(bx, by, glyphBall, core.ColorBrightWhite)
	}
}

func particleGlyph(p smasher.Particle) rune {
	frac := p.Life / p.MaxLife
	switch {
	case frac > 0.66:
		return glyphSpark
	case frac > 0.33:
		return glyphEmber
	default:
		return glyphAsh
	}
}

// levelTitle names level n for the HUD and the picker.
func levelTitle(n, threshold int) string {
	if r, ok := level.Lookup(n); ok {
		return r.Name
	}
	switch {
	case n == threshold:
		return "Seeded Level"
	case n > threshold:
		return fmt.Sprintf("Random Level #%d", n-threshold)
	}
	return "Unknown"
}

// drawHUD writes the status line on row 0.
func drawHUD(s *core.Screen, snap smasher.Snapshot, title, player string) {
	left := fmt.Sprintf(" LEVEL %d  %s", snap.Level, title)
	if player != "" {
		left += "  [" + player + "]"
	}
	s.DrawTextColored(0, 0, left, core.ColorCyan)

	right := fmt.Sprintf("BLOCKS %d  SCORE %d  %s ", snap.Alive, snap.Score,
		strings.Repeat(string(glyphLifeToken), snap.Lives))
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, core.ColorPink)
}

// stateBanner returns the centred overlay and footer hint for a state.
func stateBanner(state smasher.State, paused, hasNext bool) (banner, hint string) {
	if paused {
		return "PAUSED", "P: resume  Esc: levels  Q: quit"
	}
	switch state {
	case smasher.StateAwaitingLaunch:
		return "", "Space/click: launch  ←/→ or mouse: move  P: pause  Esc: levels  Q: quit"
	case smasher.StateVictory:
		if hasNext {
			return "LEVEL CLEARED", "N: next level  R: retry  Esc: levels  Q: quit"
		}
		return "LEVEL CLEARED", "R: retry  Esc: levels  Q: quit"
	case smasher.StateDefeat:
		return "GAME OVER", "R: retry  Esc: levels  Q: quit"
	default:
		return "", "←/→ or mouse: move  P: pause  Q: quit"
	}
}

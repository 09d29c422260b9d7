package smasher

import (
	"math"

	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/level"
)

// Ball is the ball state in canvas units. Velocities are per tick.
type Ball struct {
	X, Y     float64 // Centre
	VX, VY   float64
	Radius   float64
	Launched bool
}

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player's paddle. Only X changes during play.
type Paddle struct {
	X    float64 // Left edge
	Y    float64 // Top edge
	W, H float64
}

// CenterX returns the paddle's horizontal centre.
func (p Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.W
}

// CheckWallCollision reflects the ball off the side walls.
// On contact the ball is pulled back inside [r, canvasW-r].
func CheckWallCollision(ball *Ball, canvasW float64) bool {
	if ball.X-ball.Radius > 0 && ball.X+ball.Radius < canvasW {
		return false
	}
	ball.BounceX()
	ball.X = core.ClampF(ball.X, ball.Radius, canvasW-ball.Radius)
	return true
}

// CheckCeilingCollision reflects the ball off the top edge.
func CheckCeilingCollision(ball *Ball) bool {
	if ball.Y-ball.Radius > 0 {
		return false
	}
	ball.BounceY()
	ball.Y = ball.Radius
	return true
}

// CheckPaddleCollision tests the ball centre against the paddle top band.
// On contact the horizontal velocity is set from where the ball struck,
// from -hitFactor at the left edge to +hitFactor at the right, and the ball
// is always sent upward.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, hitFactor float64) bool {
	if ball.X < paddle.X || ball.X > paddle.Right() {
		return false
	}
	if ball.Y < paddle.Y-ball.Radius || ball.Y > paddle.Y+paddle.H {
		return false
	}

	var hit float64
	if half := paddle.W / 2; half > 0 {
		hit = (ball.X - paddle.CenterX()) / half
	}

	ball.VX = hit * hitFactor
	ball.VY = -math.Abs(ball.VY)
	ball.Y = paddle.Y - ball.Radius
	return true
}

// CheckBlockCollision returns the index of the first alive block whose
// rectangle, grown by the ball radius, contains the ball centre, or -1.
// Blocks are scanned in slice order, so earlier blocks win ties.
func CheckBlockCollision(ball *Ball, blocks []level.Block) int {
	for i := range blocks {
		if !blocks[i].Alive {
			continue
		}
		if blocks[i].Box().Expand(ball.Radius).Contains(ball.X, ball.Y) {
			return i
		}
	}
	return -1
}

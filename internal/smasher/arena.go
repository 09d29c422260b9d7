package smasher

import (
	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/level"
)

// ArenaParams fixes the geometry and collision response of an arena.
type ArenaParams struct {
	CanvasW float64
	CanvasH float64

	PaddleW      float64
	PaddleH      float64
	PaddleOffset float64 // Distance from the canvas bottom to the paddle top

	BallRadius  float64
	ServeOffset float64 // Distance from the canvas bottom to a served ball

	HitFactor float64 // Horizontal speed at the paddle's outer edge

	WallBurst   int
	PaddleBurst int
	BlockBurst  int
	WallColor   core.Color
	PaddleColor core.Color
}

// DefaultArenaParams returns the classic 800×600 arena.
func DefaultArenaParams() ArenaParams {
	return ArenaParams{
		CanvasW:      800,
		CanvasH:      600,
		PaddleW:      120,
		PaddleH:      15,
		PaddleOffset: 40,
		BallRadius:   8,
		ServeOffset:  100,
		HitFactor:    5,
		WallBurst:    8,
		PaddleBurst:  12,
		BlockBurst:   20,
		WallColor:    core.ColorCyan,
		PaddleColor:  core.ColorPurple,
	}
}

// SpawnRequest asks the particle system for a burst.
type SpawnRequest struct {
	X, Y  float64
	Count int
	Color core.Color
}

// StepOutcome reports what happened during one arena tick.
type StepOutcome struct {
	Spawns   []SpawnRequest
	Killed   int // Index of the block destroyed this tick, or -1
	BallLost bool
}

// Arena owns the ball, paddle and blocks of one attempt.
type Arena struct {
	params ArenaParams
	ball   Ball
	paddle Paddle
	blocks []level.Block
	alive  int
}

// NewArena creates an arena over blocks with the ball served on a centred
// paddle. The arena takes ownership of blocks.
func NewArena(p ArenaParams, blocks []level.Block) *Arena {
	a := &Arena{
		params: p,
		paddle: Paddle{
			X: p.CanvasW/2 - p.PaddleW/2,
			Y: p.CanvasH - p.PaddleOffset,
			W: p.PaddleW,
			H: p.PaddleH,
		},
		blocks: blocks,
	}
	for _, b := range blocks {
		if b.Alive {
			a.alive++
		}
	}
	a.ball.Radius = p.BallRadius
	a.Serve()
	return a
}

// MovePaddle centres the paddle on x, keeping it inside the canvas.
func (a *Arena) MovePaddle(x float64) {
	a.paddle.X = core.ClampF(x-a.paddle.W/2, 0, a.params.CanvasW-a.paddle.W)
}

// NudgePaddle moves the paddle by dx.
func (a *Arena) NudgePaddle(dx float64) {
	a.MovePaddle(a.paddle.CenterX() + dx)
}

// Serve parks the ball above the paddle centre with no velocity.
func (a *Arena) Serve() {
	a.ball.Launched = false
	a.ball.VX, a.ball.VY = 0, 0
	a.followPaddle()
}

// Launch releases a served ball with the given velocity.
// It does nothing if the ball is already in flight.
func (a *Arena) Launch(vx, vy float64) {
	if a.ball.Launched {
		return
	}
	a.ball.Launched = true
	a.ball.VX, a.ball.VY = vx, vy
}

func (a *Arena) followPaddle() {
	a.ball.X = a.paddle.CenterX()
	a.ball.Y = a.params.CanvasH - a.params.ServeOffset
}

// Step advances the arena by one tick. A served ball only tracks the
// paddle. A launched ball moves once and then resolves walls, ceiling,
// paddle, at most one block, and finally the floor, in that order; several
// of these may fire in the same tick.
func (a *Arena) Step() StepOutcome {
	out := StepOutcome{Killed: -1}

	if !a.ball.Launched {
		a.followPaddle()
		return out
	}

	b := &a.ball
	b.Move()

	if CheckWallCollision(b, a.params.CanvasW) {
		out.Spawns = append(out.Spawns, SpawnRequest{b.X, b.Y, a.params.WallBurst, a.params.WallColor})
	}
	if CheckCeilingCollision(b) {
		out.Spawns = append(out.Spawns, SpawnRequest{b.X, b.Y, a.params.WallBurst, a.params.WallColor})
	}
	if CheckPaddleCollision(b, &a.paddle, a.params.HitFactor) {
		out.Spawns = append(out.Spawns, SpawnRequest{b.X, b.Y, a.params.PaddleBurst, a.params.PaddleColor})
	}
	if i := CheckBlockCollision(b, a.blocks); i >= 0 {
		blk := &a.blocks[i]
		blk.Alive = false
		a.alive--
		b.BounceY()
		cx, cy := blk.Box().Center()
		out.Spawns = append(out.Spawns, SpawnRequest{cx, cy, a.params.BlockBurst, blk.Color})
		out.Killed = i
	}

	if b.Y > a.params.CanvasH {
		out.BallLost = true
	}
	return out
}

// AliveCount returns the number of blocks still standing.
func (a *Arena) AliveCount() int {
	return a.alive
}

// Ball returns a copy of the ball.
func (a *Arena) Ball() Ball {
	return a.ball
}

// Paddle returns a copy of the paddle.
func (a *Arena) Paddle() Paddle {
	return a.paddle
}

// Blocks returns a copy of the blocks in generation order.
func (a *Arena) Blocks() []level.Block {
	out := make([]level.Block, len(a.blocks))
	copy(out, a.blocks)
	return out
}

// Params returns the arena parameters.
func (a *Arena) Params() ArenaParams {
	return a.params
}

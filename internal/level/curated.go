package level

import (
	"math"

	"github.com/vovakirdan/block-smasher/internal/core"
)

// chaosSeed fixes the layout of the "Explosive Chaos" level.
const chaosSeed = 12345

func init() {
	Register(Recipe{Number: 1, Name: "First Steps", Difficulty: "Easy", Build: buildGrid})
	Register(Recipe{Number: 2, Name: "Circular Formation", Difficulty: "Medium", Build: buildRing})
	Register(Recipe{Number: 3, Name: "Pyramid Power", Difficulty: "Medium", Build: buildPyramid})
	Register(Recipe{Number: 4, Name: "Checkerboard", Difficulty: "Hard", Build: buildCheckerboard})
	Register(Recipe{Number: 5, Name: "The Fortress", Difficulty: "Hard", Build: buildFortress})
	Register(Recipe{Number: 6, Name: "Explosive Chaos", Difficulty: "Extreme", Build: buildChaos})
}

// buildGrid lays out a 4×6 grid with one colour per row.
func buildGrid(_ Params) []Block {
	const (
		rows, cols = 4, 6
		w, h       = 60, 25
		gap        = 5
		startX     = 50
		startY     = 50
	)
	colors := []core.Color{core.ColorCyan, core.ColorPurple, core.ColorOrange, core.ColorPink}

	blocks := make([]Block, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			blocks = append(blocks, Block{
				X:     startX + float64(col*(w+gap)),
				Y:     startY + float64(row*(h+gap)),
				W:     w,
				H:     h,
				Alive: true,
				Color: colors[row%len(colors)],
			})
		}
	}
	return blocks
}

// buildRing places eight blocks evenly on a circle in the upper half.
func buildRing(p Params) []Block {
	const (
		count  = 8
		radius = 100
		w, h   = 60, 25
	)
	cx := math.Floor(p.Bounds.CanvasW / 2)
	cy := 200.0
	colors := []core.Color{core.ColorCyan, core.ColorPurple, core.ColorOrange}

	blocks := make([]Block, 0, count)
	for i := range count {
		angle := float64(i) / count * 2 * math.Pi
		blocks = append(blocks, Block{
			X:     cx + math.Cos(angle)*radius - w/2,
			Y:     cy + math.Sin(angle)*radius - h/2,
			W:     w,
			H:     h,
			Alive: true,
			Color: colors[i%len(colors)],
		})
	}
	return blocks
}

// buildPyramid stacks centred rows of 6, 5, ... 1 blocks.
func buildPyramid(p Params) []Block {
	const (
		rows   = 6
		w, h   = 55, 22
		gap    = 8
		startY = 60
	)
	colors := []core.Color{core.ColorOrange, core.ColorCyan, core.ColorPurple, core.ColorPink}

	var blocks []Block
	for row := range rows {
		n := rows - row
		startX := math.Floor((p.Bounds.CanvasW - float64(n*(w+gap))) / 2)
		for col := range n {
			blocks = append(blocks, Block{
				X:     startX + float64(col*(w+gap)),
				Y:     startY + float64(row*(h+gap)),
				W:     w,
				H:     h,
				Alive: true,
				Color: colors[row%len(colors)],
			})
		}
	}
	return blocks
}

// buildCheckerboard keeps the cells of a 4×8 grid where row+col is even.
func buildCheckerboard(p Params) []Block {
	const (
		rows, cols = 4, 8
		w, h       = 60, 20
		gap        = 6
		startY     = 80
	)
	startX := math.Floor((p.Bounds.CanvasW - cols*(w+gap)) / 2)

	var blocks []Block
	for row := range rows {
		color := core.ColorPurple
		if row%2 != 0 {
			color = core.ColorCyan
		}
		for col := range cols {
			if (row+col)%2 != 0 {
				continue
			}
			blocks = append(blocks, Block{
				X:     startX + float64(col*(w+gap)),
				Y:     startY + float64(row*(h+gap)),
				W:     w,
				H:     h,
				Alive: true,
				Color: color,
			})
		}
	}
	return blocks
}

// buildFortress stacks four bars of 12, 10, 8 and 6 abutting blocks.
func buildFortress(_ Params) []Block {
	const w, h = 50, 18
	bars := []struct {
		count  int
		startX float64
		y      float64
		color  core.Color
	}{
		{12, 100, 80, core.ColorOrange},
		{10, 150, 110, core.ColorCyan},
		{8, 200, 140, core.ColorPurple},
		{6, 250, 170, core.ColorPink},
	}

	var blocks []Block
	for _, bar := range bars {
		for i := range bar.count {
			blocks = append(blocks, Block{
				X:     bar.startX + float64(i*w),
				Y:     bar.y,
				W:     w,
				H:     h,
				Alive: true,
				Color: bar.color,
			})
		}
	}
	return blocks
}

// buildChaos scatters ten random clusters from a fixed seed.
func buildChaos(p Params) []Block {
	spec := clusterSpec{
		patterns:  []pattern{patternTight, patternScattered, patternLine, patternArc},
		baseCount: 5, countSpan: 4,
		baseW: 40, spanW: 15,
		baseH: 18, spanH: 8,
	}
	return generateClusters(NewRng(chaosSeed), p.Bounds, 10, spec)
}

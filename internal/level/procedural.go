package level

import (
	"math"

	"github.com/vovakirdan/block-smasher/internal/core"
)

// pattern names a cluster layout.
type pattern int

const (
	patternTight pattern = iota
	patternScattered
	patternLine
	patternArc
	patternSpiral
)

// String returns the pattern name.
func (p pattern) String() string {
	switch p {
	case patternTight:
		return "tight"
	case patternScattered:
		return "scattered"
	case patternLine:
		return "line"
	case patternArc:
		return "arc"
	case patternSpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// clusterSpec holds the ranges cluster draws are scaled into.
type clusterSpec struct {
	patterns  []pattern
	baseCount int
	countSpan int
	baseW     float64
	spanW     float64
	baseH     float64
	spanH     float64
}

var seededSpec = clusterSpec{
	patterns:  []pattern{patternTight, patternScattered, patternLine, patternArc, patternSpiral},
	baseCount: 4, countSpan: 6,
	baseW: 35, spanW: 20,
	baseH: 18, spanH: 10,
}

// difficultyCycle is the number of seeded levels before the cluster count
// wraps back to its minimum.
const difficultyCycle = 12

// ClusterCount returns the number of clusters drawn for seeded level n.
func ClusterCount(n, threshold int) int {
	diff := (n - threshold) % difficultyCycle
	return 6 + diff/2
}

// buildSeeded lays out a procedural level seeded with its own number.
func buildSeeded(n int, p Params) []Block {
	rng := NewRng(uint32(n)) //#nosec G115 -- seed wraps like the recurrence
	return generateClusters(rng, p.Bounds, ClusterCount(n, p.Threshold), seededSpec)
}

// generateClusters draws clusters in a fixed order: centre x, centre y,
// pattern, count, colour, width, height, then the pattern's own draws.
// Changing that order changes every seeded layout.
func generateClusters(rng *Rng, b Bounds, clusters int, spec clusterSpec) []Block {
	var blocks []Block
	for range clusters {
		cx := b.Margin + rng.Next()*(b.CanvasW-b.Margin*2-150)
		cy := b.Margin + rng.Next()*(b.MaxY-b.Margin-100)
		pat := spec.patterns[rng.Intn(len(spec.patterns))]
		count := spec.baseCount + rng.Intn(spec.countSpan)
		color := neonPalette[rng.Intn(len(neonPalette))]
		bw := spec.baseW + rng.Next()*spec.spanW
		bh := spec.baseH + rng.Next()*spec.spanH

		c := cluster{rng: rng, bounds: b, cx: cx, cy: cy, count: count, w: bw, h: bh, color: color}
		blocks = c.layout(pat, blocks)
	}
	return blocks
}

type cluster struct {
	rng    *Rng
	bounds Bounds
	cx, cy float64
	count  int
	w, h   float64
	color  core.Color
}

// place appends a block at (x, y) if it fits the bounds. Out-of-bounds
// candidates are dropped, not moved.
func (c *cluster) place(blocks []Block, x, y float64) []Block {
	if !c.bounds.Accepts(x, y, c.w, c.h) {
		return blocks
	}
	return append(blocks, Block{X: x, Y: y, W: c.w, H: c.h, Alive: true, Color: c.color})
}

func (c *cluster) layout(p pattern, blocks []Block) []Block {
	switch p {
	case patternTight:
		return c.tight(blocks)
	case patternScattered:
		return c.scattered(blocks)
	case patternLine:
		return c.line(blocks)
	case patternArc:
		return c.arc(blocks)
	case patternSpiral:
		return c.spiral(blocks)
	}
	return blocks
}

// tight is a two-row grid with a jittered gap.
func (c *cluster) tight(blocks []Block) []Block {
	cols := (c.count + 1) / 2
	gap := 3 + c.rng.Next()*4
	for i := range c.count {
		row, col := i/cols, i%cols
		x := c.cx + float64(col)*(c.w+gap)
		y := c.cy + float64(row)*(c.h+gap)
		blocks = c.place(blocks, x, y)
	}
	return blocks
}

// scattered puts blocks around the centre at jittered angles and radii.
func (c *cluster) scattered(blocks []Block) []Block {
	radius := 25 + c.rng.Next()*35
	for i := range c.count {
		angle := float64(i)/float64(c.count)*2*math.Pi + c.rng.Next()*0.6
		r := radius * (0.6 + c.rng.Next()*0.7)
		blocks = c.place(blocks, c.cx+math.Cos(angle)*r, c.cy+math.Sin(angle)*r)
	}
	return blocks
}

// line walks a tilted line with a sine wobble.
func (c *cluster) line(blocks []Block) []Block {
	angle := c.rng.Next()*math.Pi/3 - math.Pi/6
	spacing := c.w + 2 + c.rng.Next()*6
	for i := range c.count {
		fi := float64(i)
		x := c.cx + fi*spacing*math.Cos(angle)
		y := c.cy + fi*spacing*math.Sin(angle) + math.Sin(fi*0.9)*12
		blocks = c.place(blocks, x, y)
	}
	return blocks
}

// arc spreads blocks along part of a circle.
func (c *cluster) arc(blocks []Block) []Block {
	radius := 35 + c.rng.Next()*50
	start := c.rng.Next() * math.Pi
	length := math.Pi*0.5 + c.rng.Next()*math.Pi*0.6
	for i := range c.count {
		t := 0.0
		if c.count > 1 {
			t = float64(i) / float64(c.count-1)
		}
		angle := start + t*length
		blocks = c.place(blocks, c.cx+math.Cos(angle)*radius, c.cy+math.Sin(angle)*radius)
	}
	return blocks
}

// spiral winds one and a half turns outward from the centre.
func (c *cluster) spiral(blocks []Block) []Block {
	tightness := 3 + c.rng.Next()*4
	for i := range c.count {
		frac := float64(i) / float64(c.count)
		angle := frac * math.Pi * 2 * 1.5
		radius := 10 + frac*tightness*15
		blocks = c.place(blocks, c.cx+math.Cos(angle)*radius, c.cy+math.Sin(angle)*radius)
	}
	return blocks
}

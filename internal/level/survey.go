package level

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SurveyResult summarises block counts over a range of levels.
type SurveyResult struct {
	Levels []int
	Counts []float64

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Total  float64
}

// Survey generates every level in levels and reports block-count statistics.
// An empty level list yields a zero result.
func Survey(g *Generator, levels []int) SurveyResult {
	res := SurveyResult{
		Levels: levels,
		Counts: make([]float64, len(levels)),
	}
	if len(levels) == 0 {
		return res
	}

	for i, n := range levels {
		res.Counts[i] = float64(len(g.Generate(n)))
	}

	res.Mean, res.StdDev = stat.MeanStdDev(res.Counts, nil)
	if len(levels) == 1 {
		res.StdDev = 0
	}
	res.Min = floats.Min(res.Counts)
	res.Max = floats.Max(res.Counts)
	res.Total = floats.Sum(res.Counts)
	return res
}

// Range returns the level numbers [from, to] inclusive.
func Range(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

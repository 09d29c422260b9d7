package level

import (
	"math"
	"testing"
)

func TestSurveyCurated(t *testing.T) {
	res := Survey(NewGenerator(DefaultParams()), Range(1, 5))

	// 24, 8, 21, 16, 36
	if res.Total != 105 {
		t.Errorf("Total = %v, expected 105", res.Total)
	}
	if res.Mean != 21 {
		t.Errorf("Mean = %v, expected 21", res.Mean)
	}
	if res.Min != 8 || res.Max != 36 {
		t.Errorf("Min/Max = %v/%v, expected 8/36", res.Min, res.Max)
	}
	// sample variance of the counts is 428/4
	if math.Abs(res.StdDev-math.Sqrt(107)) > 1e-9 {
		t.Errorf("StdDev = %v, expected %v", res.StdDev, math.Sqrt(107))
	}
}

func TestSurveyEdgeCases(t *testing.T) {
	g := NewGenerator(DefaultParams())

	if res := Survey(g, nil); res.Total != 0 || len(res.Counts) != 0 {
		t.Errorf("empty survey = %+v, expected zero result", res)
	}

	res := Survey(g, []int{1})
	if res.StdDev != 0 || res.Mean != 24 {
		t.Errorf("single-level survey: mean %v stddev %v, expected 24 and 0", res.Mean, res.StdDev)
	}
}

func TestRange(t *testing.T) {
	if got := Range(3, 1); got != nil {
		t.Errorf("Range(3, 1) = %v, expected nil", got)
	}
	if got := Range(101, 103); len(got) != 3 || got[0] != 101 || got[2] != 103 {
		t.Errorf("Range(101, 103) = %v", got)
	}
}

package stats

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.10f, want %.10f (tol %g)", label, got, want, tol)
	}
}

func mean(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}

func sampleStd(vals []float64) float64 {
	m := mean(vals)
	ss := 0.0
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}

func TestDescribe(t *testing.T) {
	vals := []float64{150, 180, 330, 45, 210}
	s := Describe(vals)

	if s.Count != 5 {
		t.Errorf("count = %d", s.Count)
	}
	almostEqual(t, s.Mean, mean(vals), 1e-9, "mean")
	almostEqual(t, s.Std, sampleStd(vals), 1e-9, "std")
	almostEqual(t, s.Min, 45, 0, "min")
	almostEqual(t, s.Max, 330, 0, "max")
	almostEqual(t, s.Median, 180, 0, "median")
	// Sorted: 45 150 180 210 330. Quartiles interpolate between ranks.
	almostEqual(t, s.Q1, 150, 1e-9, "q1")
	almostEqual(t, s.Q3, 210, 1e-9, "q3")
}

func TestDescribeInterpolatesQuartiles(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	s := Describe(vals)
	almostEqual(t, s.Q1, 1.75, 1e-9, "q1")
	almostEqual(t, s.Median, 2.5, 1e-9, "median")
	almostEqual(t, s.Q3, 3.25, 1e-9, "q3")
}

func TestDescribeEdgeSizes(t *testing.T) {
	if s := Describe(nil); s.Count != 0 {
		t.Errorf("empty count = %d", s.Count)
	}
	s := Describe([]float64{42})
	if s.Count != 1 || s.Mean != 42 || s.Median != 42 || s.Std != 0 {
		t.Errorf("single-value summary = %+v", s)
	}
}

func TestQuantileBounds(t *testing.T) {
	sorted := []float64{10, 20, 30}
	almostEqual(t, Quantile(sorted, 0), 10, 0, "q0")
	almostEqual(t, Quantile(sorted, 1), 30, 0, "q1")
	almostEqual(t, Quantile(sorted, 0.5), 20, 0, "q0.5")
	almostEqual(t, Quantile(sorted, 0.25), 15, 1e-9, "q0.25")
}

func TestMedianEvenOdd(t *testing.T) {
	almostEqual(t, Median([]float64{3, 1, 2}), 2, 0, "odd median")
	almostEqual(t, Median([]float64{4, 1, 3, 2}), 2.5, 1e-9, "even median")
	if !math.IsNaN(Median(nil)) {
		t.Error("median of empty should be NaN")
	}
}

func TestMeanKeepsInfinity(t *testing.T) {
	if !math.IsInf(Mean([]float64{1, math.Inf(1), 3}), 1) {
		t.Error("mean should propagate +Inf")
	}
	if !math.IsNaN(Mean(nil)) {
		t.Error("mean of empty should be NaN")
	}
}

func TestDropNaN(t *testing.T) {
	in := []float64{1, math.NaN(), 2, math.Inf(1), math.NaN()}
	out := DropNaN(in)
	if len(out) != 3 {
		t.Fatalf("kept %d values, want 3", len(out))
	}
	if out[0] != 1 || out[1] != 2 || !math.IsInf(out[2], 1) {
		t.Errorf("out = %v", out)
	}
	// Original slice is untouched.
	if !math.IsNaN(in[1]) {
		t.Error("input mutated")
	}
}

package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Coefficients from Royston's algorithm AS R94 (Applied Statistics 44, 1995),
// which approximates the Shapiro-Wilk W test for 3 <= n <= 5000.
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// ShapiroWilk tests vals against the normal distribution and returns the W
// statistic with its upper-tail p-value.
func ShapiroWilk(vals []float64) (w, p float64, err error) {
	n := len(vals)
	if n < 3 {
		return 0, 0, fmt.Errorf("shapiro-wilk: need at least 3 values, got %d", n)
	}
	if n > 5000 {
		return 0, 0, fmt.Errorf("shapiro-wilk: at most 5000 values supported, got %d", n)
	}

	x := append([]float64(nil), vals...)
	sort.Float64s(x)
	if x[n-1]-x[0] == 0 {
		return 0, 0, fmt.Errorf("shapiro-wilk: all %d values are identical", n)
	}

	a := swWeights(n)
	mean := Mean(x)
	var num, ss float64
	for i, v := range x {
		d := v - mean
		num += a[i] * d
		ss += d * d
	}
	w = num * num / ss
	if w > 1 { // rounding can push a near-perfect fit past 1
		w = 1
	}
	return w, swPValue(w, n), nil
}

// swWeights builds the antisymmetric order-statistic weights a_1..a_n from
// Blom scores, with the tail weights polynomial-corrected per AS R94.
func swWeights(n int) []float64 {
	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
		return a
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	m := make([]float64, n)
	var ssq float64
	for i := range m {
		m[i] = norm.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssq += m[i] * m[i]
	}

	rsn := 1 / math.Sqrt(float64(n))
	an := poly(swC1, rsn) + m[n-1]/math.Sqrt(ssq)
	var phi float64
	if n > 5 {
		an1 := poly(swC2, rsn) + m[n-2]/math.Sqrt(ssq)
		phi = (ssq - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		a[n-2], a[1] = an1, -an1
	} else {
		phi = (ssq - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
	}
	a[n-1], a[0] = an, -an

	lo, hi := 1, n-2
	if n > 5 {
		lo, hi = 2, n-3
	}
	for i := lo; i <= hi; i++ {
		a[i] = m[i] / math.Sqrt(phi)
	}
	return a
}

// swPValue maps W onto a p-value through Royston's normalizing transforms.
func swPValue(w float64, n int) float64 {
	if n == 3 {
		const pi6 = 1.90985931710274  // 6/pi
		const stqr = 1.04719755119660 // asin(sqrt(3/4))
		p := pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		return math.Min(math.Max(p, 0), 1)
	}

	y := math.Log(1 - w)
	fn := float64(n)
	var mu, sigma float64
	if n <= 11 {
		gamma := poly(swG, fn)
		if y >= gamma {
			return 1e-99
		}
		y = -math.Log(gamma - y)
		mu = poly(swC3, fn)
		sigma = math.Exp(poly(swC4, fn))
	} else {
		lnN := math.Log(fn)
		mu = poly(swC5, lnN)
		sigma = math.Exp(poly(swC6, lnN))
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	return norm.Survival((y - mu) / sigma)
}

// poly evaluates c[0] + c[1]*x + c[2]*x^2 + ...
func poly(c []float64, x float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

package stats

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sells-group/geokit-cli/internal/check"
)

// Polynomial coefficients from Royston's AS R94 refinement of the
// Shapiro-Wilk test, highest order first.
var (
	swC1 = []float64{-2.706056, 4.434685, -2.071190, -0.147981, 0.221157, 0}
	swC2 = []float64{-3.582633, 5.682633, -1.752461, -0.293762, 0.042981, 0}
	swC3 = []float64{-0.0006714, 0.025054, -0.39978, 0.5440}
	swC4 = []float64{-0.0020322, 0.062767, -0.77857, 1.3822}
	swC5 = []float64{0.0038915, -0.083751, -0.31082, -1.5861}
	swC6 = []float64{0.0030302, -0.082676, -0.4803}
)

// shapiroWilk computes the W statistic and p-value for the sample x.
// Requires 3 <= len(x) and a non-degenerate sample.
func shapiroWilk(x []float64) (w, p float64, err error) {
	n := len(x)
	if n < 3 {
		return 0, 0, eris.Wrapf(check.ErrInvalidParameterValue,
			"stats: shapiro-wilk requires at least 3 observations, got %d", n)
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	if sorted[0] == sorted[n-1] {
		return 0, 0, eris.Wrap(check.ErrInvalidParameterValue,
			"stats: shapiro-wilk sample has zero range")
	}

	a := shapiroWeights(n)

	var mean float64
	for _, v := range sorted {
		mean += v
	}
	mean /= float64(n)

	var num, den float64
	for i, v := range sorted {
		num += a[i] * v
		den += (v - mean) * (v - mean)
	}
	w = num * num / den
	if w > 1 {
		w = 1
	}

	p = shapiroPValue(w, n)
	return w, p, nil
}

// shapiroWeights returns the coefficient vector a used in the W numerator.
func shapiroWeights(n int) []float64 {
	norm := distuv.UnitNormal

	// Blom-type expected normal order statistics.
	m := make([]float64, n)
	var ssq float64
	for i := 0; i < n; i++ {
		m[i] = norm.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssq += m[i] * m[i]
	}

	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt2 / 2
		a[2] = math.Sqrt2 / 2
		return a
	}

	rsn := 1 / math.Sqrt(float64(n))
	an := polyval(swC1, rsn) + m[n-1]/math.Sqrt(ssq)

	var phi float64
	var inner int // first index (from the top) computed from m directly
	if n <= 5 {
		phi = (ssq - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		inner = 1
		a[n-1] = an
	} else {
		an1 := polyval(swC2, rsn) + m[n-2]/math.Sqrt(ssq)
		phi = (ssq - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		inner = 2
		a[n-1] = an
		a[n-2] = an1
	}

	sphi := math.Sqrt(phi)
	for i := inner; i < n-inner; i++ {
		a[i] = m[i] / sphi
	}
	for i := 0; i < inner; i++ {
		a[i] = -a[n-1-i]
	}
	return a
}

// shapiroPValue maps W to an upper-tail p-value via Royston's normalizing
// transforms.
func shapiroPValue(w float64, n int) float64 {
	norm := distuv.UnitNormal

	if n == 3 {
		const stqr = 1.047198 // asin(sqrt(3/4))
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - stqr)
		return math.Min(math.Max(p, 0), 1)
	}

	var z float64
	if n <= 11 {
		fn := float64(n)
		gamma := -2.273 + 0.459*fn
		mu := polyval(swC3, fn)
		sigma := math.Exp(polyval(swC4, fn))
		z = (-math.Log(gamma-math.Log(1-w)) - mu) / sigma
	} else {
		ln := math.Log(float64(n))
		mu := polyval(swC5, ln)
		sigma := math.Exp(polyval(swC6, ln))
		z = (math.Log(1-w) - mu) / sigma
	}
	return norm.Survival(z)
}

// polyval evaluates a polynomial with coefficients c (highest order first).
func polyval(c []float64, x float64) float64 {
	var v float64
	for _, coeff := range c {
		v = v*x + coeff
	}
	return v
}

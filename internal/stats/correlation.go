package stats

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// CorrelationMethod selects the correlation coefficient.
type CorrelationMethod string

// Supported correlation methods.
const (
	Pearson  CorrelationMethod = "pearson"
	Kendall  CorrelationMethod = "kendall"
	Spearman CorrelationMethod = "spearman"
)

// ParseCorrelationMethod validates a method name.
func ParseCorrelationMethod(s string) (CorrelationMethod, error) {
	switch CorrelationMethod(s) {
	case Pearson, Kendall, Spearman:
		return CorrelationMethod(s), nil
	}
	return "", eris.Wrapf(check.ErrInvalidParameterValue, "stats: unknown correlation method %q", s)
}

// Matrix is a square symmetric matrix labeled by column names.
type Matrix struct {
	Columns []string    `json:"columns" yaml:"columns"`
	Values  [][]float64 `json:"values" yaml:"values"`
}

// Correlation computes the pairwise correlation matrix of all frame
// columns. NaN observations are excluded pairwise; pairs with fewer than
// minPeriods complete observations yield NaN. minPeriods is only supported
// for pearson and spearman, matching the underlying estimators.
func Correlation(f *table.Frame, method CorrelationMethod, minPeriods int) (*Matrix, error) {
	if f.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "stats: input frame is empty")
	}
	cols := f.Columns()
	if err := f.RequireNumeric(cols...); err != nil {
		return nil, err
	}
	if method == Kendall && minPeriods > 0 {
		return nil, eris.Wrap(check.ErrInvalidParameterValue,
			"stats: min-periods is available only with methods pearson and spearman")
	}

	series := make([][]float64, len(cols))
	for i, col := range cols {
		vals, err := f.Numeric(col)
		if err != nil {
			return nil, err
		}
		series[i] = vals
	}

	m := newMatrix(cols)
	for i := range cols {
		for j := i; j < len(cols); j++ {
			x, y := completePairs(series[i], series[j])
			v := math.NaN()
			if len(x) >= minObservations(minPeriods) {
				switch method {
				case Kendall:
					v = kendallTau(x, y)
				case Spearman:
					v = stat.Correlation(ranks(x), ranks(y), nil)
				default:
					v = stat.Correlation(x, y, nil)
				}
				v = clampUnit(v)
			}
			m.Values[i][j] = v
			m.Values[j][i] = v
		}
	}
	return m, nil
}

func newMatrix(cols []string) *Matrix {
	values := make([][]float64, len(cols))
	for i := range values {
		values[i] = make([]float64, len(cols))
	}
	return &Matrix{Columns: append([]string(nil), cols...), Values: values}
}

func minObservations(minPeriods int) int {
	if minPeriods > 2 {
		return minPeriods
	}
	return 2
}

// completePairs returns the observations where both series are non-NaN.
func completePairs(a, b []float64) (x, y []float64) {
	for i := range a {
		if !math.IsNaN(a[i]) && !math.IsNaN(b[i]) {
			x = append(x, a[i])
			y = append(y, b[i])
		}
	}
	return x, y
}

// ranks returns average ranks, with ties sharing their mean rank.
func ranks(x []float64) []float64 {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	out := make([]float64, len(x))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && x[idx[j+1]] == x[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}

// kendallTau computes the tau-b rank correlation with tie correction.
// gonum carries no Kendall estimator, so the O(n^2) concordance count is
// done directly; inputs here are interactive-scale tables.
func kendallTau(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return math.NaN()
	}
	var concordant, discordant, tiesX, tiesY float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			switch {
			case dx == 0 && dy == 0:
				// joint tie contributes to neither denominator term
			case dx == 0:
				tiesX++
			case dy == 0:
				tiesY++
			case dx*dy > 0:
				concordant++
			default:
				discordant++
			}
		}
	}
	den := math.Sqrt((concordant + discordant + tiesX) * (concordant + discordant + tiesY))
	if den == 0 {
		return math.NaN()
	}
	return (concordant - discordant) / den
}

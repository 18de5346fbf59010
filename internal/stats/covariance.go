package stats

import (
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// Covariance computes the pairwise covariance matrix of all frame columns.
// NaN observations are excluded pairwise. ddof is the delta degrees of
// freedom for the divisor (n - ddof); both ddof and minPeriods must be
// non-negative.
func Covariance(f *table.Frame, minPeriods, ddof int) (*Matrix, error) {
	if f.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "stats: input frame is empty")
	}
	cols := f.Columns()
	if err := f.RequireNumeric(cols...); err != nil {
		return nil, err
	}
	if ddof < 0 {
		return nil, eris.Wrap(check.ErrInvalidParameterValue,
			"stats: delta degrees of freedom must be non-negative")
	}
	if minPeriods < 0 {
		return nil, eris.Wrap(check.ErrInvalidParameterValue,
			"stats: min-periods must be non-negative")
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
			v := pairCovariance(x, y, minPeriods, ddof)
			m.Values[i][j] = v
			m.Values[j][i] = v
		}
	}
	return m, nil
}

func pairCovariance(x, y []float64, minPeriods, ddof int) float64 {
	n := len(x)
	if n < 2 || n < minPeriods || n-ddof <= 0 {
		return math.NaN()
	}
	// gonum's estimator divides by n-1; rescale for the requested ddof.
	return stat.Covariance(x, y, nil) * float64(n-1) / float64(n-ddof)
}

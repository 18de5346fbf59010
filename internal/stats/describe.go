package stats

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// Description summarizes one numeric column. Quartiles use linear
// interpolation between order statistics.
type Description struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
	Max    float64 `json:"max" yaml:"max"`
}

// Describe computes descriptive statistics for the selected numeric columns
// (all columns when none are named). NaN observations are dropped per
// column.
func Describe(f *table.Frame, columns ...string) (map[string]Description, error) {
	if f.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "stats: input frame is empty")
	}
	if len(columns) == 0 {
		columns = f.Columns()
	} else if err := f.RequireColumns(columns...); err != nil {
		return nil, err
	}
	if err := f.RequireNumeric(columns...); err != nil {
		return nil, err
	}

	out := make(map[string]Description, len(columns))
	for _, col := range columns {
		vals, err := f.Numeric(col)
		if err != nil {
			return nil, err
		}
		sample := make([]float64, 0, len(vals))
		for _, v := range vals {
			if !math.IsNaN(v) {
				sample = append(sample, v)
			}
		}
		if len(sample) == 0 {
			return nil, eris.Wrapf(check.ErrEmptyInput, "stats: column %q has no observations", col)
		}
		sort.Float64s(sample)

		d := Description{
			Count:  len(sample),
			Mean:   stat.Mean(sample, nil),
			Min:    sample[0],
			Q1:     quantile(sample, 0.25),
			Median: quantile(sample, 0.5),
			Q3:     quantile(sample, 0.75),
			Max:    sample[len(sample)-1],
		}
		if len(sample) > 1 {
			d.Std = stat.StdDev(sample, nil)
		}
		out[col] = d
	}
	return out, nil
}

// quantile interpolates linearly between order statistics of sorted data.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

package stats

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// MaxSampleSize is the observation ceiling for the normality test. Beyond
// this the W statistic's p-value approximation degrades, so larger samples
// are rejected rather than silently mis-reported.
const MaxSampleSize = 5000

// TestResult holds a test statistic and its p-value.
type TestResult struct {
	Statistic float64 `json:"statistic" yaml:"statistic"`
	PValue    float64 `json:"p_value" yaml:"p_value"`
}

// Normality computes the Shapiro-Wilk test for normality over the input.
//
// Frame input yields one result per selected column (all columns when none
// are named); rows with a NaN in any selected column are dropped first.
// Array input yields a single result under ArrayKey, with NaN values
// removed.
func Normality(in Input, columns ...string) (map[string]TestResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	switch in.Kind() {
	case KindArray:
		return normalityArray(in.array)
	default:
		return normalityFrame(in, columns)
	}
}

func normalityArray(data []float64) (map[string]TestResult, error) {
	if len(data) > MaxSampleSize {
		return nil, eris.Wrapf(check.ErrSampleSizeExceeded,
			"stats: sample size %d exceeds the limit of %d", len(data), MaxSampleSize)
	}

	sample := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			sample = append(sample, v)
		}
	}

	statistic, p, err := shapiroWilk(sample)
	if err != nil {
		return nil, err
	}
	return map[string]TestResult{ArrayKey: {Statistic: statistic, PValue: p}}, nil
}

func normalityFrame(in Input, columns []string) (map[string]TestResult, error) {
	f := in.frame
	if len(columns) == 0 {
		columns = f.Columns()
	} else if err := f.RequireColumns(columns...); err != nil {
		return nil, err
	}
	if err := f.RequireNumeric(columns...); err != nil {
		return nil, err
	}

	// Listwise NaN removal across the selected columns.
	series := make(map[string][]float64, len(columns))
	for _, col := range columns {
		vals, err := f.Numeric(col)
		if err != nil {
			return nil, err
		}
		series[col] = vals
	}
	keep := make([]bool, f.NumRows())
	kept := 0
	for i := 0; i < f.NumRows(); i++ {
		keep[i] = true
		for _, col := range columns {
			if math.IsNaN(series[col][i]) {
				keep[i] = false
				break
			}
		}
		if keep[i] {
			kept++
		}
	}

	results := make(map[string]TestResult, len(columns))
	for _, col := range columns {
		if kept > MaxSampleSize {
			return nil, eris.Wrapf(check.ErrSampleSizeExceeded,
				"stats: sample size for %q exceeds the limit of %d", col, MaxSampleSize)
		}
		sample := make([]float64, 0, kept)
		for i, v := range series[col] {
			if keep[i] {
				sample = append(sample, v)
			}
		}
		statistic, p, err := shapiroWilk(sample)
		if err != nil {
			return nil, eris.Wrapf(err, "stats: normality test for column %q", col)
		}
		results[col] = TestResult{Statistic: statistic, PValue: p}
	}
	return results, nil
}

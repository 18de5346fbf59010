package stats

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// ChiSquareResult holds the independence test output for one variable.
type ChiSquareResult struct {
	Statistic        float64 `json:"statistic" yaml:"statistic"`
	PValue           float64 `json:"p_value" yaml:"p_value"`
	DegreesOfFreedom int     `json:"degrees_of_freedom" yaml:"degrees_of_freedom"`
}

// ChiSquare tests each selected column for independence against the target
// column. Variables are treated as categorical: cells are compared as raw
// strings. When columns is empty, every column except the target is tested.
// Yates continuity correction is applied for one degree of freedom.
func ChiSquare(f *table.Frame, targetColumn string, columns []string) (map[string]ChiSquareResult, error) {
	if f.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "stats: input frame is empty")
	}
	if !f.HasColumn(targetColumn) {
		return nil, eris.Wrapf(check.ErrInvalidParameterValue,
			"stats: target column %q not found", targetColumn)
	}
	if len(columns) > 0 {
		var invalid []string
		for _, col := range columns {
			if !f.HasColumn(col) {
				invalid = append(invalid, col)
			}
		}
		if len(invalid) > 0 {
			return nil, eris.Wrapf(check.ErrInvalidParameterValue,
				"stats: columns not in the frame: %s", strings.Join(invalid, ", "))
		}
	} else {
		columns = f.Columns()
	}

	target, err := f.Column(targetColumn)
	if err != nil {
		return nil, err
	}

	results := make(map[string]ChiSquareResult)
	for _, col := range columns {
		if col == targetColumn {
			continue
		}
		cells, err := f.Column(col)
		if err != nil {
			return nil, err
		}
		res, err := chiSquareContingency(target, cells)
		if err != nil {
			return nil, eris.Wrapf(err, "stats: chi-square for column %q", col)
		}
		results[col] = res
	}
	return results, nil
}

// chiSquareContingency builds the crosstab of two categorical series and
// runs the chi-square independence test on it.
func chiSquareContingency(rowVar, colVar []string) (ChiSquareResult, error) {
	rowLevels := levels(rowVar)
	colLevels := levels(colVar)

	counts := make([][]float64, len(rowLevels))
	for i := range counts {
		counts[i] = make([]float64, len(colLevels))
	}
	rowIdx := indexOf(rowLevels)
	colIdx := indexOf(colLevels)
	for i := range rowVar {
		counts[rowIdx[rowVar[i]]][colIdx[colVar[i]]]++
	}

	dof := (len(rowLevels) - 1) * (len(colLevels) - 1)
	if dof <= 0 {
		return ChiSquareResult{}, eris.Wrap(check.ErrInvalidParameterValue,
			"stats: contingency table needs at least two levels per variable")
	}

	rowTotals := make([]float64, len(rowLevels))
	colTotals := make([]float64, len(colLevels))
	var total float64
	for i := range counts {
		for j, c := range counts[i] {
			rowTotals[i] += c
			colTotals[j] += c
			total += c
		}
	}

	var statistic float64
	for i := range counts {
		for j := range counts[i] {
			expected := rowTotals[i] * colTotals[j] / total
			if expected == 0 {
				return ChiSquareResult{}, eris.Wrap(check.ErrInvalidParameterValue,
					"stats: contingency table has a zero expected frequency")
			}
			observed := counts[i][j]
			if dof == 1 {
				// Yates continuity correction.
				observed += 0.5 * sign(expected-observed)
			}
			d := observed - expected
			statistic += d * d / expected
		}
	}

	p := distuv.ChiSquared{K: float64(dof)}.Survival(statistic)
	return ChiSquareResult{Statistic: statistic, PValue: p, DegreesOfFreedom: dof}, nil
}

// levels returns the distinct values of a series in first-seen order.
func levels(series []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range series {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func indexOf(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// clampUnit keeps a correlation-like value inside [-1, 1] against floating
// point drift.
func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Max(-1, math.Min(1, v))
}

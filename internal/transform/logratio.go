package transform

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// SingleLogratio returns ln(numerator/denominator). Compositional parts
// must be strictly positive; a zero or negative operand is rejected before
// the ratio is formed. Two equal operands yield exactly 0.
func SingleLogratio(numerator, denominator float64) (float64, error) {
	if numerator <= 0 {
		return 0, eris.Wrapf(check.ErrInvalidParameterValue,
			"transform: logratio numerator must be positive, got %v", numerator)
	}
	if denominator <= 0 {
		return 0, eris.Wrapf(check.ErrInvalidParameterValue,
			"transform: logratio denominator must be positive, got %v", denominator)
	}
	if numerator == denominator {
		return 0, nil
	}
	return math.Log(numerator / denominator), nil
}

// PairwiseLogratio computes ln(a_i/b_i) row by row over two numeric
// columns of the frame.
func PairwiseLogratio(f *table.Frame, numeratorColumn, denominatorColumn string) ([]float64, error) {
	if f.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "transform: input frame is empty")
	}
	if err := f.RequireNumeric(numeratorColumn, denominatorColumn); err != nil {
		return nil, err
	}

	num, err := f.Numeric(numeratorColumn)
	if err != nil {
		return nil, err
	}
	den, err := f.Numeric(denominatorColumn)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(num))
	for i := range num {
		v, err := SingleLogratio(num[i], den[i])
		if err != nil {
			return nil, eris.Wrapf(err, "transform: row %d", i)
		}
		out[i] = v
	}
	return out, nil
}

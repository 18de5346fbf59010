// Package stats implements the exploratory statistical tests: chi-square
// independence, Shapiro-Wilk normality, correlation and covariance matrices,
// and per-column descriptive summaries.
//
// Numeric heavy lifting (distributions, moments, quantiles) is delegated to
// gonum; this package supplies validation and result shaping.
package stats

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// InputKind tags the two accepted input shapes.
type InputKind int

const (
	// KindFrame marks tabular input with named columns.
	KindFrame InputKind = iota
	// KindArray marks a flat numeric sample.
	KindArray
)

// ArrayKey is the result key used for array-shaped input, which has no
// column name of its own.
const ArrayKey = "data"

// Input is a tagged union of the two input shapes the tests accept. The two
// code paths share one validation contract instead of branching on runtime
// types.
type Input struct {
	kind  InputKind
	frame *table.Frame
	array []float64
}

// FrameInput wraps a frame as test input.
func FrameInput(f *table.Frame) Input {
	return Input{kind: KindFrame, frame: f}
}

// ArrayInput wraps a flat sample as test input.
func ArrayInput(v []float64) Input {
	return Input{kind: KindArray, array: v}
}

// Kind returns the input's shape tag.
func (in Input) Kind() InputKind { return in.kind }

// validate applies the shared empty-input contract.
func (in Input) validate() error {
	switch in.kind {
	case KindFrame:
		if in.frame.Empty() {
			return eris.Wrap(check.ErrEmptyInput, "stats: input frame is empty")
		}
	case KindArray:
		if len(in.array) == 0 {
			return eris.Wrap(check.ErrEmptyInput, "stats: input array is empty")
		}
	}
	return nil
}

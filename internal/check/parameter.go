package check

import "github.com/rotisserie/eris"

// PositiveValue verifies that v is strictly positive. The guard runs before
// any I/O in the raster operations, so a bad factor never opens a file.
func PositiveValue(name string, v float64) error {
	if v <= 0 {
		return eris.Wrapf(ErrNumericValueSign, "check: %s must be positive, got %v", name, v)
	}
	return nil
}

// NonNegativeValue verifies that v is zero or greater.
func NonNegativeValue(name string, v float64) error {
	if v < 0 {
		return eris.Wrapf(ErrInvalidParameterValue, "check: %s must be non-negative, got %v", name, v)
	}
	return nil
}

// NonZeroValue verifies that v is not zero. Used by the logratio transforms,
// where a zero operand makes the ratio undefined.
func NonZeroValue(name string, v float64) error {
	if v == 0 {
		return eris.Wrapf(ErrInvalidParameterValue, "check: %s must be non-zero", name)
	}
	return nil
}

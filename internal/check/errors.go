// Package check defines the validation error kinds shared by every toolkit
// operation, plus small guard helpers used at the top of each function.
//
// The kinds form a closed set: every precondition failure raised by this
// repository wraps exactly one of them, so callers can classify failures
// with errors.Is without parsing messages.
package check

import "github.com/rotisserie/eris"

// Error kinds. Operations wrap these with context via eris; they are never
// caught or retried inside the toolkit.
var (
	// ErrEmptyInput reports an empty frame, array, or feature collection.
	ErrEmptyInput = eris.New("input data is empty")

	// ErrInvalidColumn reports a selected column missing from the input.
	ErrInvalidColumn = eris.New("invalid column selection")

	// ErrNonNumericData reports non-numeric data where numbers are required.
	ErrNonNumericData = eris.New("non-numeric data")

	// ErrInvalidParameterValue reports a parameter outside its valid domain.
	ErrInvalidParameterValue = eris.New("invalid parameter value")

	// ErrSampleSizeExceeded reports input larger than an operation's ceiling.
	ErrSampleSizeExceeded = eris.New("sample size exceeded")

	// ErrNumericValueSign reports a value with the wrong sign, e.g. a
	// non-positive scale factor.
	ErrNumericValueSign = eris.New("invalid numeric value sign")
)

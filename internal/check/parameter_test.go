package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// PositiveValue
// ---------------------------------------------------------------------------

func TestPositiveValue_Positive(t *testing.T) {
	assert.NoError(t, PositiveValue("scale factor", 0.5))
	assert.NoError(t, PositiveValue("scale factor", 2))
}

func TestPositiveValue_Zero(t *testing.T) {
	err := PositiveValue("scale factor", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNumericValueSign))
	assert.Contains(t, err.Error(), "scale factor")
}

func TestPositiveValue_Negative(t *testing.T) {
	err := PositiveValue("scale factor", -1.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNumericValueSign))
}

// ---------------------------------------------------------------------------
// NonNegativeValue
// ---------------------------------------------------------------------------

func TestNonNegativeValue(t *testing.T) {
	assert.NoError(t, NonNegativeValue("ddof", 0))
	assert.NoError(t, NonNegativeValue("ddof", 3))

	err := NonNegativeValue("ddof", -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameterValue))
}

// ---------------------------------------------------------------------------
// NonZeroValue
// ---------------------------------------------------------------------------

func TestNonZeroValue(t *testing.T) {
	assert.NoError(t, NonZeroValue("denominator", 0.001))
	assert.NoError(t, NonZeroValue("denominator", -4))

	err := NonZeroValue("denominator", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameterValue))
}

package raster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geokit-cli/internal/check"
)

// ---------------------------------------------------------------------------
// ParseMethod
// ---------------------------------------------------------------------------

func TestParseMethod_Known(t *testing.T) {
	for _, name := range []string{"nearest", "bilinear", "cubic", "average", "gauss", "max", "min"} {
		m, err := ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, Method(name), m)
	}
}

func TestParseMethod_Unknown(t *testing.T) {
	_, err := ParseMethod("lanczos")
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

func TestMethodWarpNames(t *testing.T) {
	// gdalwarp spells nearest differently from the read API.
	assert.Equal(t, "near", Nearest.warpName())
	assert.Equal(t, "bilinear", Bilinear.warpName())
	assert.Equal(t, "gauss", Gauss.warpName())
}

// ---------------------------------------------------------------------------
// Resample guards
// ---------------------------------------------------------------------------

// The sign guard fires before any dataset access, so a nil dataset is safe.
func TestResample_NonPositiveScaleBeforeIO(t *testing.T) {
	for _, scale := range []float64{0, -0.5, -2} {
		_, _, err := Resample(nil, ResampleOptions{ScaleX: scale})
		require.Error(t, err, "scale %v", scale)
		assert.True(t, errors.Is(err, check.ErrNumericValueSign))
	}
}

func TestResample_NegativeVerticalScale(t *testing.T) {
	_, _, err := Resample(nil, ResampleOptions{ScaleX: 2, ScaleY: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrNumericValueSign))
}

// ---------------------------------------------------------------------------
// Grid
// ---------------------------------------------------------------------------

func TestGridBand(t *testing.T) {
	g := newGrid(2, 3, 2)
	require.Len(t, g.Data, 12)

	b0 := g.Band(0)
	b1 := g.Band(1)
	require.Len(t, b0, 6)
	require.Len(t, b1, 6)

	b1[0] = 42
	assert.Equal(t, 42.0, g.Data[6])
}

package raster

import (
	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// resampleNoData is the sentinel the resampled metadata is normalized to.
const resampleNoData = 0.0

// ResampleOptions configures Resample.
type ResampleOptions struct {
	// ScaleX is the factor applied to the grid width. Values over 1 yield
	// higher resolution. Must be strictly positive.
	ScaleX float64
	// ScaleY optionally scales the grid height independently; 0 means use
	// ScaleX for both axes.
	ScaleY float64
	// Method selects the resampling kernel. Defaults to bilinear.
	Method Method
}

// Resample recomputes the dataset's pixel grid at new dimensions
// round-half-to-even(width*ScaleX) by round(height*ScaleY), resampling with
// the selected method. The returned metadata carries a transform rescaled by
// the exact old/new dimension ratio, the new dimensions, and a nodata value
// normalized to 0. The source is only read; writing the result is the
// caller's responsibility.
func Resample(ds *godal.Dataset, opts ResampleOptions) (*Grid, Meta, error) {
	// Sign guard runs before any pixel I/O.
	if err := check.PositiveValue("scale factor", opts.ScaleX); err != nil {
		return nil, Meta{}, err
	}
	if opts.ScaleY == 0 {
		opts.ScaleY = opts.ScaleX
	}
	if err := check.PositiveValue("vertical scale factor", opts.ScaleY); err != nil {
		return nil, Meta{}, err
	}
	if opts.Method == "" {
		opts.Method = Bilinear
	}

	meta, err := ReadMeta(ds)
	if err != nil {
		return nil, Meta{}, err
	}

	newW, newH := ScaledDims(meta.Width, meta.Height, opts.ScaleX, opts.ScaleY)
	if newW < 1 || newH < 1 {
		return nil, Meta{}, eris.Wrapf(check.ErrInvalidParameterValue,
			"raster: scale factors %v, %v collapse the grid to %dx%d",
			opts.ScaleX, opts.ScaleY, newW, newH)
	}

	g := newGrid(meta.Bands, newW, newH)
	for i, band := range ds.Bands() {
		err := band.Read(0, 0, g.Band(i), newW, newH,
			godal.Window(meta.Width, meta.Height),
			godal.Resampling(opts.Method.alg()),
		)
		if err != nil {
			return nil, Meta{}, eris.Wrapf(err, "raster: resample band %d", i+1)
		}
	}

	nodata := resampleNoData
	out := meta
	out.Width = newW
	out.Height = newH
	out.Transform = ScaleTransform(meta.Transform, meta.Width, meta.Height, newW, newH)
	out.NoData = &nodata
	return g, out, nil
}

package raster

import (
	"math"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// WindowOptions describes a pixel window centered on world coordinates.
type WindowOptions struct {
	CenterX float64
	CenterY float64
	Width   int
	Height  int
}

// WindowBounds computes the top-left pixel offsets of the window inside a
// grid of the given dimensions. The window must lie entirely inside the
// grid.
func WindowBounds(gt [6]float64, gridW, gridH int, opts WindowOptions) (col, row int, err error) {
	if opts.Width < 1 || opts.Height < 1 {
		return 0, 0, eris.Wrapf(check.ErrInvalidParameterValue,
			"raster: window dimensions must be at least 1, got %dx%d", opts.Width, opts.Height)
	}
	fc, fr, err := WorldToPixel(gt, opts.CenterX, opts.CenterY)
	if err != nil {
		return 0, 0, err
	}
	col = int(math.Floor(fc)) - opts.Width/2
	row = int(math.Floor(fr)) - opts.Height/2
	if col < 0 || row < 0 || col+opts.Width > gridW || row+opts.Height > gridH {
		return 0, 0, eris.Wrapf(check.ErrInvalidParameterValue,
			"raster: window %dx%d at (%d, %d) falls outside the %dx%d grid",
			opts.Width, opts.Height, col, row, gridW, gridH)
	}
	return col, row, nil
}

// Window extracts a fixed-size pixel window centered on world coordinates.
// The returned metadata's transform is translated to the window's corner.
func Window(ds *godal.Dataset, opts WindowOptions) (*Grid, Meta, error) {
	meta, err := ReadMeta(ds)
	if err != nil {
		return nil, Meta{}, err
	}

	col, row, err := WindowBounds(meta.Transform, meta.Width, meta.Height, opts)
	if err != nil {
		return nil, Meta{}, err
	}

	g := newGrid(meta.Bands, opts.Width, opts.Height)
	for i, band := range ds.Bands() {
		if err := band.Read(col, row, g.Band(i), opts.Width, opts.Height); err != nil {
			return nil, Meta{}, eris.Wrapf(err, "raster: read window band %d", i+1)
		}
	}

	out := meta
	out.Width = opts.Width
	out.Height = opts.Height
	out.Transform = TranslateTransform(meta.Transform, col, row)
	return g, out, nil
}

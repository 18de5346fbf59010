package raster

import (
	"math"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"
)

// Meta is the georeferencing metadata of a raster grid: dimensions, affine
// geotransform (GDAL order), projection WKT, and optional nodata value.
type Meta struct {
	Width      int
	Height     int
	Bands      int
	DataType   godal.DataType
	Transform  [6]float64
	Projection string
	NoData     *float64
}

// ReadMeta extracts metadata from an open dataset.
func ReadMeta(ds *godal.Dataset) (Meta, error) {
	st := ds.Structure()
	gt, err := ds.GeoTransform()
	if err != nil {
		return Meta{}, eris.Wrap(err, "raster: read geotransform")
	}
	m := Meta{
		Width:      st.SizeX,
		Height:     st.SizeY,
		Bands:      st.NBands,
		DataType:   st.DataType,
		Transform:  gt,
		Projection: ds.Projection(),
	}
	if bands := ds.Bands(); len(bands) > 0 {
		if nd, ok := bands[0].NoData(); ok {
			m.NoData = &nd
		}
	}
	return m, nil
}

// PixelSize returns the absolute pixel width and height.
func (m Meta) PixelSize() (float64, float64) {
	return math.Abs(m.Transform[1]), math.Abs(m.Transform[5])
}

// Origin returns the world coordinates of the top-left corner.
func (m Meta) Origin() (float64, float64) {
	return m.Transform[0], m.Transform[3]
}

// ScaledDims returns the grid dimensions after applying the scale factors,
// rounded half to even.
func ScaledDims(width, height int, sx, sy float64) (int, int) {
	return int(math.RoundToEven(float64(width) * sx)), int(math.RoundToEven(float64(height) * sy))
}

// ScaleTransform rescales a geotransform by the exact ratio of old to new
// grid dimensions, so the georeferenced extent of the grid is unchanged.
func ScaleTransform(gt [6]float64, oldW, oldH, newW, newH int) [6]float64 {
	xr := float64(oldW) / float64(newW)
	yr := float64(oldH) / float64(newH)
	out := gt
	out[1] *= xr
	out[2] *= yr
	out[4] *= xr
	out[5] *= yr
	return out
}

// TranslateTransform returns the geotransform of a sub-window whose
// top-left pixel is (col, row) in the parent grid.
func TranslateTransform(gt [6]float64, col, row int) [6]float64 {
	out := gt
	out[0] = gt[0] + float64(col)*gt[1] + float64(row)*gt[2]
	out[3] = gt[3] + float64(col)*gt[4] + float64(row)*gt[5]
	return out
}

// WorldToPixel maps world coordinates to fractional pixel coordinates for a
// north-up geotransform (no rotation terms).
func WorldToPixel(gt [6]float64, x, y float64) (col, row float64, err error) {
	if gt[2] != 0 || gt[4] != 0 {
		return 0, 0, eris.New("raster: rotated geotransforms are not supported")
	}
	return (x - gt[0]) / gt[1], (y - gt[3]) / gt[5], nil
}

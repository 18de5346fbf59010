package raster

import (
	"math"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// Snap aligns the dataset's grid origin to the cell lattice of the snap
// raster. Pixel data is unchanged; only the geotransform origin moves, to
// the nearest lattice point. Both rasters must share pixel size.
func Snap(ds, snapDS *godal.Dataset) (*Grid, Meta, error) {
	meta, err := ReadMeta(ds)
	if err != nil {
		return nil, Meta{}, err
	}
	snapMeta, err := ReadMeta(snapDS)
	if err != nil {
		return nil, Meta{}, err
	}

	pw, ph := meta.PixelSize()
	spw, sph := snapMeta.PixelSize()
	if pw != spw || ph != sph {
		return nil, Meta{}, eris.Wrapf(check.ErrInvalidParameterValue,
			"raster: pixel sizes differ: %vx%v vs %vx%v", pw, ph, spw, sph)
	}

	ox, oy := SnapOrigin(
		meta.Transform[0], meta.Transform[3],
		snapMeta.Transform[0], snapMeta.Transform[3],
		meta.Transform[1], meta.Transform[5],
	)

	g, err := readGrid(ds)
	if err != nil {
		return nil, Meta{}, err
	}

	out := meta
	out.Transform[0] = ox
	out.Transform[3] = oy
	return g, out, nil
}

// SnapOrigin moves (ox, oy) to the nearest point of the lattice anchored at
// (sx, sy) with spacing (dx, dy). dy is negative for north-up rasters.
func SnapOrigin(ox, oy, sx, sy, dx, dy float64) (float64, float64) {
	nx := math.Round((ox - sx) / dx)
	ny := math.Round((oy - sy) / dy)
	return sx + nx*dx, sy + ny*dy
}

// Package raster implements the raster-processing operations: clipping,
// reprojection, resampling, grid snapping, and window extraction.
//
// All pixel work is delegated to GDAL through godal; this package supplies
// parameter validation and the metadata arithmetic that keeps the
// georeferencing consistent with each new pixel grid.
package raster

import (
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"
)

var registerOnce sync.Once

// Open opens a raster dataset read-only, registering GDAL drivers on first
// use.
func Open(path string) (*godal.Dataset, error) {
	registerOnce.Do(godal.RegisterAll)
	ds, err := godal.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "raster: open %s", path)
	}
	return ds, nil
}

// Grid holds pixel data for one or more bands in band-major order. A grid
// never outlives the operation that produced it; persistence is the
// caller's concern.
type Grid struct {
	Bands  int
	Width  int
	Height int
	Data   []float64
}

// Band returns the pixel values of band i (0-based).
func (g *Grid) Band(i int) []float64 {
	size := g.Width * g.Height
	return g.Data[i*size : (i+1)*size]
}

func newGrid(bands, width, height int) *Grid {
	return &Grid{
		Bands:  bands,
		Width:  width,
		Height: height,
		Data:   make([]float64, bands*width*height),
	}
}

// readGrid reads every band of ds at its native size.
func readGrid(ds *godal.Dataset) (*Grid, error) {
	st := ds.Structure()
	g := newGrid(st.NBands, st.SizeX, st.SizeY)
	for i, band := range ds.Bands() {
		if err := band.Read(0, 0, g.Band(i), st.SizeX, st.SizeY); err != nil {
			return nil, eris.Wrapf(err, "raster: read band %d", i+1)
		}
	}
	return g, nil
}

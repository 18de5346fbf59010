package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// memName returns a unique name for an in-memory GDAL dataset.
func memName() string {
	return fmt.Sprintf("geokit-%s", uuid.NewString())
}

// warpToGrid runs gdalwarp with the given switches into an in-memory
// dataset and materializes the result as grid + metadata.
func warpToGrid(ds *godal.Dataset, switches []string) (*Grid, Meta, error) {
	switches = append([]string{"-of", "MEM"}, switches...)
	warped, err := ds.Warp(memName(), switches)
	if err != nil {
		return nil, Meta{}, eris.Wrap(err, "raster: warp")
	}
	defer func() { _ = warped.Close() }()
	return materialize(warped)
}

// FromDataset reads a whole dataset into grid + metadata.
func FromDataset(ds *godal.Dataset) (*Grid, Meta, error) {
	return materialize(ds)
}

// materialize reads an in-memory result dataset into grid + metadata.
func materialize(ds *godal.Dataset) (*Grid, Meta, error) {
	meta, err := ReadMeta(ds)
	if err != nil {
		return nil, Meta{}, err
	}
	g, err := readGrid(ds)
	if err != nil {
		return nil, Meta{}, err
	}
	return g, meta, nil
}

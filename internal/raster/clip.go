package raster

import (
	"github.com/airbusgeo/godal"
)

// Clip crops the dataset to the geometries in the given vector file
// (any OGR-readable format), masking pixels outside them with the source
// nodata value. The cutline is expected in the raster's CRS.
func Clip(ds *godal.Dataset, cutlinePath string) (*Grid, Meta, error) {
	return warpToGrid(ds, []string{
		"-cutline", cutlinePath,
		"-crop_to_cutline",
	})
}

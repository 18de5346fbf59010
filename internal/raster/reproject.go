package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// Reproject warps the dataset to the target EPSG coordinate reference
// system using the selected resampling method.
func Reproject(ds *godal.Dataset, targetEPSG int, method Method) (*Grid, Meta, error) {
	if targetEPSG <= 0 {
		return nil, Meta{}, eris.Wrapf(check.ErrInvalidParameterValue,
			"raster: target EPSG code must be positive, got %d", targetEPSG)
	}
	if method == "" {
		method = Nearest
	}
	return warpToGrid(ds, []string{
		"-t_srs", fmt.Sprintf("EPSG:%d", targetEPSG),
		"-r", method.warpName(),
	})
}

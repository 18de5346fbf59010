package vector

import (
	"fmt"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

var registerOnce sync.Once

func openVector(path string) (*godal.Dataset, error) {
	registerOnce.Do(godal.RegisterAll)
	ds, err := godal.Open(path, godal.VectorOnly())
	if err != nil {
		return nil, eris.Wrapf(err, "vector: open %s", path)
	}
	return ds, nil
}

// Reproject reads the vector file (any OGR-readable format), reprojects it
// to the target EPSG coordinate reference system, and writes the result as
// GeoJSON at outPath.
func Reproject(path, outPath string, targetEPSG int) error {
	if targetEPSG <= 0 {
		return eris.Wrapf(check.ErrInvalidParameterValue,
			"vector: target EPSG code must be positive, got %d", targetEPSG)
	}

	ds, err := openVector(path)
	if err != nil {
		return err
	}
	defer func() { _ = ds.Close() }()

	out, err := ds.VectorTranslate(outPath, []string{
		"-f", "GeoJSON",
		"-t_srs", fmt.Sprintf("EPSG:%d", targetEPSG),
	})
	if err != nil {
		return eris.Wrapf(err, "vector: reproject to EPSG:%d", targetEPSG)
	}
	if err := out.Close(); err != nil {
		return eris.Wrap(err, "vector: close reprojected dataset")
	}
	return nil
}

package raster

import (
	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Write stores a grid with its metadata as a GeoTIFF at path.
func Write(path string, g *Grid, meta Meta) error {
	registerOnce.Do(godal.RegisterAll)

	dtype := meta.DataType
	if dtype == godal.Unknown {
		dtype = godal.Float64
	}

	ds, err := godal.Create(godal.GTiff, path, g.Bands, dtype, g.Width, g.Height)
	if err != nil {
		return eris.Wrapf(err, "raster: create %s", path)
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil {
			zap.L().Warn("raster: close output dataset", zap.String("path", path), zap.Error(cerr))
		}
	}()

	if err := ds.SetGeoTransform(meta.Transform); err != nil {
		return eris.Wrap(err, "raster: set geotransform")
	}
	if meta.Projection != "" {
		if err := ds.SetProjection(meta.Projection); err != nil {
			return eris.Wrap(err, "raster: set projection")
		}
	}

	for i, band := range ds.Bands() {
		if meta.NoData != nil {
			if err := band.SetNoData(*meta.NoData); err != nil {
				return eris.Wrapf(err, "raster: set nodata on band %d", i+1)
			}
		}
		if err := band.Write(0, 0, g.Band(i), g.Width, g.Height); err != nil {
			return eris.Wrapf(err, "raster: write band %d", i+1)
		}
	}
	return nil
}

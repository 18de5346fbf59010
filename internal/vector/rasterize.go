package vector

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/raster"
)

// MergeStrategy selects how overlapping features combine during
// rasterization.
type MergeStrategy string

// Supported merge strategies.
const (
	MergeReplace MergeStrategy = "replace"
	MergeAdd     MergeStrategy = "add"
)

// ParseMergeStrategy validates a merge strategy name.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch MergeStrategy(s) {
	case MergeReplace, MergeAdd:
		return MergeStrategy(s), nil
	}
	return "", eris.Wrapf(check.ErrInvalidParameterValue, "vector: unknown merge strategy %q", s)
}

// RasterizeOptions configures Rasterize.
type RasterizeOptions struct {
	// Resolution is the output pixel size in CRS units. Required unless
	// BaseRasterPath is set.
	Resolution float64
	// ValueColumn names the attribute burned into pixels; when empty,
	// DefaultValue is burned for every feature.
	ValueColumn string
	// DefaultValue is the constant burn value used without a value column.
	DefaultValue float64
	// FillValue initializes pixels not covered by any feature.
	FillValue float64
	// BaseRasterPath optionally supplies a raster whose grid (extent,
	// dimensions) the output matches.
	BaseRasterPath string
	// BufferValue optionally buffers every geometry by this distance
	// before burning.
	BufferValue float64
	// Merge selects replace (last feature wins) or add (values accumulate).
	Merge MergeStrategy
}

// Rasterize burns the features of a vector file into a raster grid.
func Rasterize(path string, opts RasterizeOptions) (*raster.Grid, raster.Meta, error) {
	if opts.BaseRasterPath == "" {
		if err := check.PositiveValue("resolution", opts.Resolution); err != nil {
			return nil, raster.Meta{}, err
		}
	}
	if opts.Merge == "" {
		opts.Merge = MergeReplace
	}

	ds, err := openVector(path)
	if err != nil {
		return nil, raster.Meta{}, err
	}
	defer func() { _ = ds.Close() }()

	src := ds
	if opts.BufferValue != 0 {
		buffered, err := bufferFeatures(ds, opts.BufferValue)
		if err != nil {
			return nil, raster.Meta{}, err
		}
		defer func() { _ = buffered.Close() }()
		src = buffered
	}

	switches := []string{
		"-of", "MEM",
		"-ot", "Float32",
		"-init", fmt.Sprintf("%g", opts.FillValue),
	}
	if opts.ValueColumn != "" {
		switches = append(switches, "-a", opts.ValueColumn)
	} else {
		switches = append(switches, "-burn", fmt.Sprintf("%g", opts.DefaultValue))
	}
	if opts.Merge == MergeAdd {
		switches = append(switches, "-add")
	}

	if opts.BaseRasterPath != "" {
		base, err := raster.Open(opts.BaseRasterPath)
		if err != nil {
			return nil, raster.Meta{}, err
		}
		meta, err := raster.ReadMeta(base)
		if cerr := base.Close(); cerr != nil && err == nil {
			err = eris.Wrap(cerr, "vector: close base raster")
		}
		if err != nil {
			return nil, raster.Meta{}, err
		}
		minX, maxY := meta.Origin()
		maxX := minX + float64(meta.Width)*meta.Transform[1]
		minY := maxY + float64(meta.Height)*meta.Transform[5]
		switches = append(switches,
			"-te", fmt.Sprintf("%g", minX), fmt.Sprintf("%g", minY), fmt.Sprintf("%g", maxX), fmt.Sprintf("%g", maxY),
			"-ts", fmt.Sprintf("%d", meta.Width), fmt.Sprintf("%d", meta.Height),
		)
	} else {
		switches = append(switches,
			"-tr", fmt.Sprintf("%g", opts.Resolution), fmt.Sprintf("%g", opts.Resolution),
		)
	}

	burned, err := src.Rasterize(fmt.Sprintf("geokit-%s", uuid.NewString()), switches)
	if err != nil {
		return nil, raster.Meta{}, eris.Wrap(err, "vector: rasterize")
	}
	defer func() { _ = burned.Close() }()

	return raster.FromDataset(burned)
}

// bufferFeatures returns an in-memory copy of the dataset's first layer
// with every geometry buffered by dist, attributes preserved.
func bufferFeatures(ds *godal.Dataset, dist float64) (*godal.Dataset, error) {
	layers := ds.Layers()
	if len(layers) == 0 {
		return nil, eris.Wrap(check.ErrEmptyInput, "vector: dataset has no layers")
	}
	sql := fmt.Sprintf(`SELECT ST_Buffer(geometry, %g) AS geometry, * FROM %q`, dist, layers[0].Name())
	out, err := ds.VectorTranslate(fmt.Sprintf("geokit-%s", uuid.NewString()), []string{
		"-f", "Memory",
		"-dialect", "sqlite",
		"-sql", sql,
	})
	if err != nil {
		return nil, eris.Wrap(err, "vector: buffer features")
	}
	return out, nil
}

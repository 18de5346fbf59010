package interpolate

import (
	"math"

	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/mat"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/raster"
	"github.com/sells-group/geokit-cli/internal/vector"
)

// KrigingMethod selects the kriging variant.
type KrigingMethod string

// Supported kriging methods.
const (
	Ordinary  KrigingMethod = "ordinary"
	Universal KrigingMethod = "universal"
)

// ParseKrigingMethod validates a kriging method name.
func ParseKrigingMethod(s string) (KrigingMethod, error) {
	switch KrigingMethod(s) {
	case Ordinary, Universal:
		return KrigingMethod(s), nil
	}
	return "", eris.Wrapf(check.ErrInvalidParameterValue, "interpolate: unknown kriging method %q", s)
}

// regionalLinear is the only drift term supported for universal kriging.
const regionalLinear = "regional_linear"

// KrigingOptions configures Kriging.
type KrigingOptions struct {
	// TargetColumn names the numeric point attribute to interpolate.
	TargetColumn string
	// CellSizeX and CellSizeY are the output pixel sizes in CRS units.
	CellSizeX float64
	CellSizeY float64
	// Extent optionally fixes the output bounds (minX, minY, maxX, maxY);
	// nil derives them from the data.
	Extent *[4]float64
	// Model selects the variogram. Defaults to linear.
	Model VariogramModel
	// Method selects ordinary or universal kriging. Defaults to ordinary.
	Method KrigingMethod
	// DriftTerms configures universal kriging; only regional_linear is
	// supported.
	DriftTerms []string
}

// Kriging estimates the target attribute of a point collection on a
// regular grid from the spatial covariance structure of the samples. The
// kriging system is factorized once and solved per grid cell.
func Kriging(fc *vector.FeatureCollection, opts KrigingOptions) (*raster.Grid, raster.Meta, error) {
	if fc.Empty() {
		return nil, raster.Meta{}, eris.Wrap(check.ErrEmptyInput, "interpolate: input collection is empty")
	}
	if err := check.PositiveValue("cell size x", opts.CellSizeX); err != nil {
		return nil, raster.Meta{}, err
	}
	if err := check.PositiveValue("cell size y", opts.CellSizeY); err != nil {
		return nil, raster.Meta{}, err
	}
	if opts.Model == "" {
		opts.Model = Linear
	}
	if opts.Method == "" {
		opts.Method = Ordinary
	}
	for _, term := range opts.DriftTerms {
		if term != regionalLinear {
			return nil, raster.Meta{}, eris.Wrapf(check.ErrInvalidParameterValue,
				"interpolate: unsupported drift term %q", term)
		}
	}

	xs, ys, zs, err := samplePoints(fc, opts.TargetColumn)
	if err != nil {
		return nil, raster.Meta{}, err
	}
	if len(xs) < 2 {
		return nil, raster.Meta{}, eris.Wrap(check.ErrInvalidParameterValue,
			"interpolate: kriging needs at least 2 sample points")
	}

	extent := dataExtent(xs, ys)
	if opts.Extent != nil {
		extent = *opts.Extent
	}
	width := int(math.Ceil((extent[2] - extent[0]) / opts.CellSizeX))
	height := int(math.Ceil((extent[3] - extent[1]) / opts.CellSizeY))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	v := fitVariogram(opts.Model, xs, ys, zs)

	drift := 1 // ordinary: lagrange multiplier only
	if opts.Method == Universal {
		drift = 3 // constant + linear x, y
	}
	n := len(xs)
	dim := n + drift

	a := mat.NewDense(dim, dim, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, v.gamma(math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
		}
		a.Set(i, n, 1)
		a.Set(n, i, 1)
		if drift == 3 {
			a.Set(i, n+1, xs[i])
			a.Set(n+1, i, xs[i])
			a.Set(i, n+2, ys[i])
			a.Set(n+2, i, ys[i])
		}
	}

	var lu mat.LU
	lu.Factorize(a)

	g := &raster.Grid{Bands: 1, Width: width, Height: height, Data: make([]float64, width*height)}
	b := mat.NewVecDense(dim, nil)
	w := mat.NewVecDense(dim, nil)
	for row := 0; row < height; row++ {
		cy := extent[3] - (float64(row)+0.5)*opts.CellSizeY
		for col := 0; col < width; col++ {
			cx := extent[0] + (float64(col)+0.5)*opts.CellSizeX
			for i := 0; i < n; i++ {
				b.SetVec(i, v.gamma(math.Hypot(xs[i]-cx, ys[i]-cy)))
			}
			b.SetVec(n, 1)
			if drift == 3 {
				b.SetVec(n+1, cx)
				b.SetVec(n+2, cy)
			}
			if err := lu.SolveVecTo(w, false, b); err != nil {
				return nil, raster.Meta{}, eris.Wrap(err, "interpolate: solve kriging system")
			}
			var est float64
			for i := 0; i < n; i++ {
				est += w.AtVec(i) * zs[i]
			}
			g.Data[row*width+col] = est
		}
	}

	meta := raster.Meta{
		Width:    width,
		Height:   height,
		Bands:    1,
		DataType: godal.Float32,
		Transform: [6]float64{
			extent[0], opts.CellSizeX, 0,
			extent[3], 0, -opts.CellSizeY,
		},
	}
	return g, meta, nil
}

// samplePoints extracts point coordinates and the target attribute.
func samplePoints(fc *vector.FeatureCollection, targetColumn string) (xs, ys, zs []float64, err error) {
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(*geom.Point)
		if !ok {
			return nil, nil, nil, eris.Wrapf(check.ErrInvalidParameterValue,
				"interpolate: feature %d is not a point", i)
		}
		z, ok := f.NumericProperty(targetColumn)
		if !ok {
			return nil, nil, nil, eris.Wrapf(check.ErrInvalidColumn,
				"interpolate: feature %d has no numeric attribute %q", i, targetColumn)
		}
		xs = append(xs, pt.X())
		ys = append(ys, pt.Y())
		zs = append(zs, z)
	}
	return xs, ys, zs, nil
}

func dataExtent(xs, ys []float64) [4]float64 {
	ext := [4]float64{xs[0], ys[0], xs[0], ys[0]}
	for i := range xs {
		ext[0] = math.Min(ext[0], xs[i])
		ext[1] = math.Min(ext[1], ys[i])
		ext[2] = math.Max(ext[2], xs[i])
		ext[3] = math.Max(ext[3], ys[i])
	}
	return ext
}

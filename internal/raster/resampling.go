package raster

import (
	"github.com/airbusgeo/godal"
	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// Method names a resampling algorithm.
type Method string

// Supported resampling methods. Suitability depends on the dataset:
// nearest for categorical data, bilinear or cubic for continuous surfaces.
const (
	Nearest  Method = "nearest"
	Bilinear Method = "bilinear"
	Cubic    Method = "cubic"
	Average  Method = "average"
	Gauss    Method = "gauss"
	Max      Method = "max"
	Min      Method = "min"
)

var methodAlgs = map[Method]godal.ResamplingAlg{
	Nearest:  godal.Nearest,
	Bilinear: godal.Bilinear,
	Cubic:    godal.Cubic,
	Average:  godal.Average,
	Gauss:    godal.Gauss,
	Max:      godal.Max,
	Min:      godal.Min,
}

// warpNames maps methods to gdalwarp -r argument spellings. Methods gdalwarp
// itself rejects (gauss) are passed through verbatim and surface GDAL's own
// error.
var warpNames = map[Method]string{
	Nearest:  "near",
	Bilinear: "bilinear",
	Cubic:    "cubic",
	Average:  "average",
	Gauss:    "gauss",
	Max:      "max",
	Min:      "min",
}

// ParseMethod validates a resampling method name.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if _, ok := methodAlgs[m]; !ok {
		return "", eris.Wrapf(check.ErrInvalidParameterValue, "raster: unknown resampling method %q", s)
	}
	return m, nil
}

func (m Method) alg() godal.ResamplingAlg { return methodAlgs[m] }

func (m Method) warpName() string { return warpNames[m] }

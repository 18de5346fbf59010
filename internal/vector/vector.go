// Package vector implements the vector-processing operations: reading and
// writing feature collections, reprojection, rasterization, and shared
// boundary-line extraction.
//
// Geometries are held as immutable go-geom values with attribute maps;
// reprojection and rasterization delegate to GDAL/OGR through godal.
package vector

import (
	"github.com/twpayne/go-geom"
)

// Feature pairs a geometry with its attribute columns.
type Feature struct {
	Geometry   geom.T
	Properties map[string]any
}

// FeatureCollection is an in-memory vector dataset.
type FeatureCollection struct {
	Features []Feature
}

// Empty reports whether the collection has no features.
func (fc *FeatureCollection) Empty() bool {
	return fc == nil || len(fc.Features) == 0
}

// NumericProperty extracts a float-valued property from a feature, if
// present.
func (f Feature) NumericProperty(name string) (float64, bool) {
	v, ok := f.Properties[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

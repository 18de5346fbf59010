package vector

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// WriteGeoJSONFile writes a feature collection as a GeoJSON file.
func WriteGeoJSONFile(path string, fc *FeatureCollection) error {
	out := geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(fc.Features))}
	for _, f := range fc.Features {
		out.Features = append(out.Features, &geojson.Feature{
			Geometry:   f.Geometry,
			Properties: f.Properties,
		})
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return eris.Wrap(err, "vector: marshal geojson")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "vector: write %s", path)
	}
	return nil
}

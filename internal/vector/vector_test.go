package vector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

// ---------------------------------------------------------------------------
// NumericProperty
// ---------------------------------------------------------------------------

func TestNumericProperty(t *testing.T) {
	f := Feature{Properties: map[string]any{
		"f64":  12.5,
		"f32":  float32(2),
		"int":  7,
		"i64":  int64(9),
		"text": "nope",
	}}

	v, ok := f.NumericProperty("f64")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	v, ok = f.NumericProperty("f32")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = f.NumericProperty("int")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	v, ok = f.NumericProperty("i64")
	assert.True(t, ok)
	assert.Equal(t, 9.0, v)

	_, ok = f.NumericProperty("text")
	assert.False(t, ok)

	_, ok = f.NumericProperty("missing")
	assert.False(t, ok)
}

func TestFeatureCollectionEmpty(t *testing.T) {
	var nilFC *FeatureCollection
	assert.True(t, nilFC.Empty())
	assert.True(t, (&FeatureCollection{}).Empty())
	assert.False(t, (&FeatureCollection{Features: []Feature{{}}}).Empty())
}

// ---------------------------------------------------------------------------
// GeoJSON round trip
// ---------------------------------------------------------------------------

func TestGeoJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.geojson")

	fc := &FeatureCollection{Features: []Feature{
		{
			Geometry:   geom.NewPointFlat(geom.XY, []float64{10, 20}),
			Properties: map[string]any{"grade": 3.5},
		},
		{
			Geometry:   geom.NewPointFlat(geom.XY, []float64{30, 40}),
			Properties: map[string]any{"grade": 7.25},
		},
	}}
	require.NoError(t, WriteGeoJSONFile(path, fc))

	back, err := ReadGeoJSONFile(path)
	require.NoError(t, err)
	require.Len(t, back.Features, 2)

	pt, ok := back.Features[0].Geometry.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, []float64{10, 20}, pt.FlatCoords())

	grade, ok := back.Features[1].NumericProperty("grade")
	require.True(t, ok)
	assert.Equal(t, 7.25, grade)
}

func TestReadFile_UnknownDispatch(t *testing.T) {
	// Dispatch on extension: .geojson goes through the GeoJSON reader and
	// fails on a missing file with the path in the message.
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.geojson"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.geojson")
}

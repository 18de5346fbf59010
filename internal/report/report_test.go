package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/geokit-cli/internal/check"
)

// ---------------------------------------------------------------------------
// ParseFormat
// ---------------------------------------------------------------------------

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

// ---------------------------------------------------------------------------
// Render
// ---------------------------------------------------------------------------

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, map[string]float64{"statistic": 1.5}, JSON))

	var back map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, 1.5, back["statistic"])
	assert.Contains(t, buf.String(), "\n  ")
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, map[string][]float64{"values": {1, 2}}, YAML))

	var back map[string][]float64
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, []float64{1, 2}, back["values"])
}

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

func TestCovariance_KnownValues(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2", "3"},
		"b": {"2", "4", "6"},
	})

	m, err := Covariance(f, 0, 1)
	require.NoError(t, err)

	// var(a) = 1, cov(a, b) = 2, var(b) = 4 with the n-1 divisor.
	assert.InDelta(t, 1, m.Values[0][0], 1e-12)
	assert.InDelta(t, 2, m.Values[0][1], 1e-12)
	assert.InDelta(t, 2, m.Values[1][0], 1e-12)
	assert.InDelta(t, 4, m.Values[1][1], 1e-12)
}

func TestCovariance_DdofZero(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2", "3"},
		"b": {"2", "4", "6"},
	})

	m, err := Covariance(f, 0, 0)
	require.NoError(t, err)

	// Population estimator: sample values scaled by (n-1)/n.
	assert.InDelta(t, 2.0/3, m.Values[0][0], 1e-12)
	assert.InDelta(t, 4.0/3, m.Values[0][1], 1e-12)
}

func TestCovariance_NegativeDdof(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2"},
		"b": {"2", "4"},
	})

	_, err := Covariance(f, 0, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

func TestCovariance_NegativeMinPeriods(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2"},
		"b": {"2", "4"},
	})

	_, err := Covariance(f, -1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

func TestCovariance_MinPeriodsYieldsNaN(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2", "3"},
		"b": {"2", "4", "6"},
	})

	m, err := Covariance(f, 10, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.Values[0][1]))
}

func TestCovariance_EmptyFrame(t *testing.T) {
	f, err := table.New(nil, nil)
	require.NoError(t, err)

	_, err = Covariance(f, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrEmptyInput))
}

// ---------------------------------------------------------------------------
// Describe
// ---------------------------------------------------------------------------

func TestDescribe_KnownValues(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"v": {"1", "2", "3", "4"},
	})

	results, err := Describe(f)
	require.NoError(t, err)
	require.Contains(t, results, "v")

	d := results["v"]
	assert.Equal(t, 4, d.Count)
	assert.InDelta(t, 2.5, d.Mean, 1e-12)
	assert.InDelta(t, 1.2909944, d.Std, 1e-6)
	assert.InDelta(t, 1, d.Min, 1e-12)
	assert.InDelta(t, 1.75, d.Q1, 1e-12)
	assert.InDelta(t, 2.5, d.Median, 1e-12)
	assert.InDelta(t, 3.25, d.Q3, 1e-12)
	assert.InDelta(t, 4, d.Max, 1e-12)
}

func TestDescribe_DropsNaN(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"v": {"1", "", "3"},
	})

	results, err := Describe(f)
	require.NoError(t, err)
	assert.Equal(t, 2, results["v"].Count)
	assert.InDelta(t, 2, results["v"].Mean, 1e-12)
}

func TestDescribe_SelectedColumn(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2"},
		"b": {"10", "20"},
	})

	results, err := Describe(f, "b")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Contains(t, results, "b")
}

func TestDescribe_MissingColumn(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"a": {"1", "2"},
		"b": {"3", "4"},
	})

	_, err := Describe(f, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidColumn))
}

func TestDescribe_AllNaNColumn(t *testing.T) {
	f := numericFrame(t, map[string][]string{
		"v": {"", ""},
	})

	_, err := Describe(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrEmptyInput))
}

package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// contingencyFrame builds a frame realizing the observed counts of a 2x2
// contingency table.
func contingencyFrame(t *testing.T, counts [2][2]int) *table.Frame {
	t.Helper()

	targets := []string{"a", "b"}
	cats := []string{"x", "y"}
	var rows [][]string
	for i, target := range targets {
		for j, cat := range cats {
			for n := 0; n < counts[i][j]; n++ {
				rows = append(rows, []string{target, cat})
			}
		}
	}
	f, err := table.New([]string{"target", "var"}, rows)
	require.NoError(t, err)
	return f
}

// ---------------------------------------------------------------------------
// ChiSquare
// ---------------------------------------------------------------------------

func TestChiSquare_KnownValue2x2(t *testing.T) {
	// Observed [[10 20] [30 40]]: chi2 = 0.44643 with continuity
	// correction, p = 0.50404, dof = 1.
	f := contingencyFrame(t, [2][2]int{{10, 20}, {30, 40}})

	results, err := ChiSquare(f, "target", nil)
	require.NoError(t, err)
	require.Contains(t, results, "var")

	res := results["var"]
	assert.InDelta(t, 0.44643, res.Statistic, 1e-4)
	assert.InDelta(t, 0.50404, res.PValue, 1e-4)
	assert.Equal(t, 1, res.DegreesOfFreedom)
}

func TestChiSquare_IndependentVariables(t *testing.T) {
	// Perfectly balanced table: statistic 0 before correction; Yates moves
	// each cell by 0 because observed == expected.
	f := contingencyFrame(t, [2][2]int{{5, 5}, {5, 5}})

	results, err := ChiSquare(f, "target", nil)
	require.NoError(t, err)

	res := results["var"]
	assert.InDelta(t, 0, res.Statistic, 1e-12)
	assert.InDelta(t, 1, res.PValue, 1e-12)
}

func TestChiSquare_MultipleColumns(t *testing.T) {
	f, err := table.New(
		[]string{"target", "c1", "c2"},
		[][]string{
			{"a", "x", "u"},
			{"a", "y", "v"},
			{"b", "x", "u"},
			{"b", "y", "v"},
		},
	)
	require.NoError(t, err)

	results, err := ChiSquare(f, "target", nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Contains(t, results, "c1")
	assert.Contains(t, results, "c2")
}

func TestChiSquare_ExplicitColumnSelection(t *testing.T) {
	f, err := table.New(
		[]string{"target", "c1", "c2"},
		[][]string{
			{"a", "x", "u"},
			{"a", "y", "v"},
			{"b", "x", "u"},
			{"b", "y", "v"},
		},
	)
	require.NoError(t, err)

	results, err := ChiSquare(f, "target", []string{"c1"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Contains(t, results, "c1")
}

func TestChiSquare_EmptyFrame(t *testing.T) {
	f, err := table.New(nil, nil)
	require.NoError(t, err)

	_, err = ChiSquare(f, "target", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrEmptyInput))
}

func TestChiSquare_MissingTarget(t *testing.T) {
	f := contingencyFrame(t, [2][2]int{{1, 1}, {1, 1}})

	_, err := ChiSquare(f, "nope", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
	assert.Contains(t, err.Error(), "nope")
}

func TestChiSquare_InvalidColumns(t *testing.T) {
	f := contingencyFrame(t, [2][2]int{{1, 1}, {1, 1}})

	_, err := ChiSquare(f, "target", []string{"ghost", "var"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
	assert.Contains(t, err.Error(), "ghost")
}

func TestChiSquare_SingleLevelVariable(t *testing.T) {
	f, err := table.New(
		[]string{"target", "var"},
		[][]string{
			{"a", "only"},
			{"b", "only"},
		},
	)
	require.NoError(t, err)

	_, err = ChiSquare(f, "target", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

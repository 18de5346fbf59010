package table

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geokit-cli/internal/check"
)

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := New(
		[]string{"name", "a", "b"},
		[][]string{
			{"x", "1", "10.5"},
			{"y", "2", ""},
			{"z", "3", "30"},
		},
	)
	require.NoError(t, err)
	return f
}

// ---------------------------------------------------------------------------
// New
// ---------------------------------------------------------------------------

func TestNew_PadsShortRows(t *testing.T) {
	f, err := New([]string{"a", "b"}, [][]string{{"1"}})
	require.NoError(t, err)

	cells, err := f.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, cells)
}

func TestNew_RejectsLongRows(t *testing.T) {
	_, err := New([]string{"a"}, [][]string{{"1", "2"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

func TestNew_RejectsDuplicateColumns(t *testing.T) {
	_, err := New([]string{"a", "a"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidColumn))
}

func TestEmpty(t *testing.T) {
	f, err := New(nil, nil)
	require.NoError(t, err)
	assert.True(t, f.Empty())
	assert.False(t, sampleFrame(t).Empty())

	var nilFrame *Frame
	assert.True(t, nilFrame.Empty())
}

// ---------------------------------------------------------------------------
// Column access
// ---------------------------------------------------------------------------

func TestColumn_Missing(t *testing.T) {
	_, err := sampleFrame(t).Column("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidColumn))
}

func TestRequireColumns(t *testing.T) {
	f := sampleFrame(t)
	assert.NoError(t, f.RequireColumns("a", "b"))

	err := f.RequireColumns("a", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestNumeric_ParsesAndMapsNaN(t *testing.T) {
	f := sampleFrame(t)

	vals, err := f.Numeric("b")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.InDelta(t, 10.5, vals[0], 1e-12)
	assert.True(t, math.IsNaN(vals[1]))
	assert.InDelta(t, 30, vals[2], 1e-12)
}

func TestNumeric_NaNSpellings(t *testing.T) {
	f, err := New([]string{"v"}, [][]string{{"NaN"}, {"na"}, {"NULL"}, {" 5 "}})
	require.NoError(t, err)

	vals, err := f.Numeric("v")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(vals[0]))
	assert.True(t, math.IsNaN(vals[1]))
	assert.True(t, math.IsNaN(vals[2]))
	assert.InDelta(t, 5, vals[3], 1e-12)
}

func TestNumeric_RejectsText(t *testing.T) {
	_, err := sampleFrame(t).Numeric("name")
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrNonNumericData))
}

func TestRequireNumeric(t *testing.T) {
	f := sampleFrame(t)
	assert.NoError(t, f.RequireNumeric("a", "b"))

	err := f.RequireNumeric("name")
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrNonNumericData))
}

// ---------------------------------------------------------------------------
// Mutation helpers
// ---------------------------------------------------------------------------

func TestAppendColumn(t *testing.T) {
	f := sampleFrame(t)
	require.NoError(t, f.AppendColumn("c", []string{"7", "8", "9"}))
	assert.Equal(t, []string{"name", "a", "b", "c"}, f.Columns())

	// duplicate name
	err := f.AppendColumn("c", []string{"0", "0", "0"})
	require.Error(t, err)

	// wrong length
	err = f.AppendColumn("d", []string{"1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrInvalidParameterValue))
}

func TestDrop(t *testing.T) {
	f := sampleFrame(t)
	out := f.Drop("name", "unknown")
	assert.Equal(t, []string{"a", "b"}, out.Columns())
	assert.Equal(t, 3, out.NumRows())

	// original untouched
	assert.Equal(t, []string{"name", "a", "b"}, f.Columns())
}

func TestSelect(t *testing.T) {
	f := sampleFrame(t)
	out, err := f.Select("b", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, out.Columns())

	_, err = f.Select("missing")
	require.Error(t, err)
}

func TestRows_RoundTrip(t *testing.T) {
	f := sampleFrame(t)
	header, rows := f.Rows()

	rebuilt, err := New(header, rows)
	require.NoError(t, err)
	assert.Equal(t, f.Columns(), rebuilt.Columns())
	assert.Equal(t, f.NumRows(), rebuilt.NumRows())
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", FormatCell(math.NaN()))
	assert.Equal(t, "1.5", FormatCell(1.5))
}

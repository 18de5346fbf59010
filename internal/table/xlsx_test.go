package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

// writeWorkbook creates a two-sheet workbook fixture on disk.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("data")
	require.NoError(t, err)

	for _, record := range [][]string{
		{"a", "b"},
		{"1", "x"},
		{"2", "y"},
	} {
		row := sheet.AddRow()
		for _, cell := range record {
			row.AddCell().SetString(cell)
		}
	}

	extra, err := f.AddSheet("notes")
	require.NoError(t, err)
	extra.AddRow().AddCell().SetString("ignored")

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSXFile_FirstSheet(t *testing.T) {
	path := writeWorkbook(t)

	f, err := ReadXLSXFile(path, XLSXOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())

	vals, err := f.Numeric("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, vals)
}

func TestReadXLSXFile_ByName(t *testing.T) {
	path := writeWorkbook(t)

	f, err := ReadXLSXFile(path, XLSXOptions{SheetName: "data"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Columns())
}

func TestReadXLSXFile_UnknownSheet(t *testing.T) {
	path := writeWorkbook(t)

	_, err := ReadXLSXFile(path, XLSXOptions{SheetName: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestReadXLSXFile_IndexOutOfRange(t *testing.T) {
	path := writeWorkbook(t)

	_, err := ReadXLSXFile(path, XLSXOptions{SheetIndex: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadXLSXFile_MissingFile(t *testing.T) {
	_, err := ReadXLSXFile(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{})
	require.Error(t, err)
}

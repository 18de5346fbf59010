// Package table holds the tabular container used by the statistical and
// encoding operations, plus readers for CSV, XLSX, and SQLite inputs.
//
// A Frame exists only for the duration of a call chain: it is constructed
// from a file, consumed by an operation, and replaced by an output artifact.
package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
)

// Frame is a two-dimensional table of named columns. Cells are held as raw
// strings; numeric interpretation happens at access time so that a single
// frame can serve both categorical and numeric operations.
type Frame struct {
	names []string
	cols  map[string][]string
	nrows int
}

// New builds a frame from a header and rows. Short rows are padded with
// empty cells; long rows are an error.
func New(header []string, rows [][]string) (*Frame, error) {
	f := &Frame{
		names: append([]string(nil), header...),
		cols:  make(map[string][]string, len(header)),
		nrows: len(rows),
	}
	for _, name := range f.names {
		if _, dup := f.cols[name]; dup {
			return nil, eris.Wrapf(check.ErrInvalidColumn, "table: duplicate column %q", name)
		}
		f.cols[name] = make([]string, 0, len(rows))
	}
	for i, row := range rows {
		if len(row) > len(f.names) {
			return nil, eris.Wrapf(check.ErrInvalidParameterValue,
				"table: row %d has %d cells, header has %d", i, len(row), len(f.names))
		}
		for j, name := range f.names {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			f.cols[name] = append(f.cols[name], cell)
		}
	}
	return f, nil
}

// Empty reports whether the frame has no rows or no columns.
func (f *Frame) Empty() bool {
	return f == nil || f.nrows == 0 || len(f.names) == 0
}

// NumRows returns the row count.
func (f *Frame) NumRows() int { return f.nrows }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// RequireColumns verifies that every named column exists.
func (f *Frame) RequireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if !f.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return eris.Wrapf(check.ErrInvalidColumn, "table: columns not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Column returns the raw cells of the named column.
func (f *Frame) Column(name string) ([]string, error) {
	cells, ok := f.cols[name]
	if !ok {
		return nil, eris.Wrapf(check.ErrInvalidColumn, "table: column %q not found", name)
	}
	return cells, nil
}

// Numeric parses the named column as float64. Empty cells and the usual NaN
// spellings become NaN; anything else that fails to parse is an error.
func (f *Frame) Numeric(name string) ([]float64, error) {
	cells, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for i, cell := range cells {
		v, perr := parseCell(cell)
		if perr != nil {
			return nil, eris.Wrapf(check.ErrNonNumericData,
				"table: column %q row %d: cannot parse %q as number", name, i, cell)
		}
		out[i] = v
	}
	return out, nil
}

// IsNumeric reports whether every cell of the named column parses as a
// number (empty cells count as numeric NaN).
func (f *Frame) IsNumeric(name string) bool {
	cells, err := f.Column(name)
	if err != nil {
		return false
	}
	for _, cell := range cells {
		if _, err := parseCell(cell); err != nil {
			return false
		}
	}
	return true
}

// RequireNumeric verifies that all named columns hold numeric data.
func (f *Frame) RequireNumeric(names ...string) error {
	for _, name := range names {
		if err := f.RequireColumns(name); err != nil {
			return err
		}
		if !f.IsNumeric(name) {
			return eris.Wrapf(check.ErrNonNumericData, "table: column %q contains non-numeric data", name)
		}
	}
	return nil
}

// AppendColumn adds a column to the right edge of the frame. The cell count
// must match the frame's row count (or define it for an empty frame).
func (f *Frame) AppendColumn(name string, cells []string) error {
	if f.HasColumn(name) {
		return eris.Wrapf(check.ErrInvalidColumn, "table: column %q already exists", name)
	}
	if len(f.names) > 0 && len(cells) != f.nrows {
		return eris.Wrapf(check.ErrInvalidParameterValue,
			"table: column %q has %d cells, frame has %d rows", name, len(cells), f.nrows)
	}
	if len(f.names) == 0 {
		f.nrows = len(cells)
	}
	f.names = append(f.names, name)
	f.cols[name] = append([]string(nil), cells...)
	return nil
}

// Drop returns a copy of the frame without the named columns. Unknown names
// are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	dropped := make(map[string]bool, len(names))
	for _, name := range names {
		dropped[name] = true
	}
	out := &Frame{cols: make(map[string][]string), nrows: f.nrows}
	for _, name := range f.names {
		if dropped[name] {
			continue
		}
		out.names = append(out.names, name)
		out.cols[name] = append([]string(nil), f.cols[name]...)
	}
	if len(out.names) == 0 {
		out.nrows = 0
	}
	return out
}

// Select returns a copy of the frame containing only the named columns, in
// the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	if err := f.RequireColumns(names...); err != nil {
		return nil, err
	}
	out := &Frame{cols: make(map[string][]string), nrows: f.nrows}
	for _, name := range names {
		out.names = append(out.names, name)
		out.cols[name] = append([]string(nil), f.cols[name]...)
	}
	return out, nil
}

// Rows materializes the frame back into header + row-major cells.
func (f *Frame) Rows() (header []string, rows [][]string) {
	header = f.Columns()
	rows = make([][]string, f.nrows)
	for i := 0; i < f.nrows; i++ {
		row := make([]string, len(f.names))
		for j, name := range f.names {
			row[j] = f.cols[name][i]
		}
		rows[i] = row
	}
	return header, rows
}

func parseCell(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return math.NaN(), nil
	}
	switch strings.ToLower(s) {
	case "nan", "na", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// FormatCell renders a float the way frames store numbers, with NaN mapped
// back to an empty cell.
func FormatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Package transform implements tabular feature transformations: one-hot
// encoding of categorical columns and pairwise logratio transforms.
package transform

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geokit-cli/internal/check"
	"github.com/sells-group/geokit-cli/internal/table"
)

// DropCategory selects which indicator columns to omit to avoid
// multicollinearity.
type DropCategory string

// Drop strategies.
const (
	DropNone     DropCategory = "none"
	DropFirst    DropCategory = "first"
	DropIfBinary DropCategory = "if-binary"
)

// ParseDropCategory validates a drop strategy name.
func ParseDropCategory(s string) (DropCategory, error) {
	switch DropCategory(s) {
	case DropNone, DropFirst, DropIfBinary:
		return DropCategory(s), nil
	}
	return "", eris.Wrapf(check.ErrInvalidParameterValue, "transform: unknown drop strategy %q", s)
}

// OneHotOptions configures the encoder.
type OneHotOptions struct {
	Columns            []string     // columns to encode; nil encodes every column
	Drop               DropCategory // indicator-dropping strategy
	DropEncodedColumns bool         // remove the source columns from the output
}

// OneHot encodes the selected categorical columns as binary indicator
// columns named "<column>_<category>". Categories are ordered
// lexicographically; each distinct value yields one indicator, minus one
// under DropFirst (or DropIfBinary for two-category columns).
func OneHot(f *table.Frame, opts OneHotOptions) (*table.Frame, error) {
	if f.Empty() {
		return nil, eris.Wrap(check.ErrEmptyInput, "transform: input frame is empty")
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = f.Columns()
	} else if err := f.RequireColumns(columns...); err != nil {
		return nil, err
	}

	out := f
	if opts.DropEncodedColumns {
		out = f.Drop(columns...)
	} else {
		out = f.Drop() // copy
	}

	for _, col := range columns {
		cells, err := f.Column(col)
		if err != nil {
			return nil, err
		}
		cats := categories(cells)
		encode := cats
		switch opts.Drop {
		case DropFirst:
			encode = cats[1:]
		case DropIfBinary:
			if len(cats) == 2 {
				encode = cats[1:]
			}
		}
		for _, cat := range encode {
			indicator := make([]string, len(cells))
			for i, cell := range cells {
				if cell == cat {
					indicator[i] = "1"
				} else {
					indicator[i] = "0"
				}
			}
			if err := out.AppendColumn(col+"_"+cat, indicator); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// categories returns the distinct values of a column in sorted order.
func categories(cells []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, cell := range cells {
		if !seen[cell] {
			seen[cell] = true
			out = append(out, cell)
		}
	}
	sort.Strings(out)
	return out
}

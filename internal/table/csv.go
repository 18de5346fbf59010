package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSVOptions configures the CSV reader.
type CSVOptions struct {
	Delimiter rune   // default ','
	Comment   rune   // comment character (0 = none)
	Encoding  string // "utf-8" (default), "latin-1", "windows-1252"
	TrimSpace bool
}

// ReadCSV parses CSV from r into a frame. The first record is the header.
func ReadCSV(r io.Reader, opts CSVOptions) (*Frame, error) {
	decoded, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.FieldsPerRecord = -1 // allow variable fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "table: parse csv")
	}
	if len(records) == 0 {
		return New(nil, nil)
	}

	if opts.TrimSpace {
		for _, rec := range records {
			for i := range rec {
				rec[i] = strings.TrimSpace(rec[i])
			}
		}
	}

	return New(records[0], records[1:])
}

// ReadCSVFile opens and parses a CSV file.
func ReadCSVFile(path string, opts CSVOptions) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "table: open csv %s", path)
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(f, opts)
}

// WriteCSV writes the frame as UTF-8 CSV, header first.
func WriteCSV(w io.Writer, f *Frame) error {
	writer := csv.NewWriter(w)
	header, rows := f.Rows()
	if err := writer.Write(header); err != nil {
		return eris.Wrap(err, "table: write csv header")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return eris.Wrap(err, "table: write csv row")
		}
	}
	writer.Flush()
	return eris.Wrap(writer.Error(), "table: flush csv")
}

// WriteCSVFile writes the frame to a CSV file, creating or truncating it.
func WriteCSVFile(path string, f *Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "table: create csv %s", path)
	}
	defer func() { _ = out.Close() }()
	return WriteCSV(out, f)
}

func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin-1", "latin1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, eris.Errorf("table: unsupported encoding %q", encoding)
	}
}

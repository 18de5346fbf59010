package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/geokit-cli/internal/table"
)

// addTableFlags registers the flags shared by every command that reads a
// tabular input file.
func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "input file: .csv, .xlsx or .sqlite/.db")
	cmd.Flags().String("delimiter", "", "CSV field delimiter (default from config)")
	cmd.Flags().String("encoding", "", "CSV encoding: utf-8, iso-8859-1 or windows-1252 (default from config)")
	cmd.Flags().String("sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().String("table", "", "SQLite table name (required for SQLite input)")
	_ = cmd.MarkFlagRequired("input")
}

// loadFrame reads the tabular input named by the command's flags,
// dispatching on file extension.
func loadFrame(ctx context.Context, cmd *cobra.Command) (*table.Frame, error) {
	path, _ := cmd.Flags().GetString("input")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		delimiter, _ := cmd.Flags().GetString("delimiter")
		if delimiter == "" {
			delimiter = cfg.Table.Delimiter
		}
		if delimiter == "" {
			delimiter = ","
		}
		encoding, _ := cmd.Flags().GetString("encoding")
		if encoding == "" {
			encoding = cfg.Table.Encoding
		}
		return table.ReadCSVFile(path, table.CSVOptions{
			Delimiter: rune(delimiter[0]),
			Encoding:  encoding,
		})
	case ".xlsx":
		sheet, _ := cmd.Flags().GetString("sheet")
		return table.ReadXLSXFile(path, table.XLSXOptions{SheetName: sheet})
	case ".sqlite", ".db":
		tableName, _ := cmd.Flags().GetString("table")
		if tableName == "" {
			return nil, eris.New("input: --table is required for SQLite input")
		}
		return table.ReadSQLite(ctx, path, tableName)
	}
	return nil, eris.Errorf("input: unsupported file type %q", filepath.Ext(path))
}

package table

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// tableNameRe limits SQLite table names to plain identifiers. The name is
// interpolated into the query, so anything else is rejected up front.
var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReadSQLite loads an entire table from a SQLite database file into a frame.
// Every value is rendered through its driver string representation; numeric
// interpretation is deferred to the consuming operation, same as CSV input.
func ReadSQLite(ctx context.Context, path, tableName string) (*Frame, error) {
	if !tableNameRe.MatchString(tableName) {
		return nil, eris.Errorf("table: invalid sqlite table name %q", tableName)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrapf(err, "table: open sqlite %s", path)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %q`, tableName))
	if err != nil {
		return nil, eris.Wrapf(err, "table: query sqlite table %s", tableName)
	}
	defer func() { _ = rows.Close() }()

	header, err := rows.Columns()
	if err != nil {
		return nil, eris.Wrap(err, "table: sqlite columns")
	}

	var records [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, eris.Wrap(err, "table: scan sqlite row")
		}
		record := make([]string, len(header))
		for i, v := range raw {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "table: iterate sqlite rows")
	}

	return New(header, records)
}

package table

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDatabase creates a SQLite fixture with one populated table.
func writeDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE samples (site TEXT, value REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO samples VALUES ('x', 1.5), ('y', NULL), ('z', 3.0)`)
	require.NoError(t, err)
	return path
}

func TestReadSQLite(t *testing.T) {
	path := writeDatabase(t)

	f, err := ReadSQLite(context.Background(), path, "samples")
	require.NoError(t, err)

	assert.Equal(t, []string{"site", "value"}, f.Columns())
	assert.Equal(t, 3, f.NumRows())

	// NULL maps to the empty cell, which parses as NaN.
	assert.True(t, f.IsNumeric("value"))
}

func TestReadSQLite_InvalidTableName(t *testing.T) {
	path := writeDatabase(t)

	_, err := ReadSQLite(context.Background(), path, "samples; DROP TABLE samples")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sqlite table name")
}

func TestReadSQLite_MissingTable(t *testing.T) {
	path := writeDatabase(t)

	_, err := ReadSQLite(context.Background(), path, "nonexistent")
	require.Error(t, err)
}

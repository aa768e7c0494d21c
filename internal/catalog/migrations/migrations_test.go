package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_SortedUniqueVersions(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	prev := 0
	for _, m := range migrations {
		require.Greater(t, m.Version, prev, "versions must be strictly increasing")
		require.NotEmpty(t, m.Description)
		require.NotEmpty(t, m.SQL)
		prev = m.Version
	}
}

func TestRun_AppliesSchema(t *testing.T) {
	db := openMemDB(t)

	require.NoError(t, Run(db))

	for _, table := range []string{"signatures", "export_runs", "schema_migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %q missing after migrations", table)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemDB(t)

	require.NoError(t, Run(db))
	first, err := CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, Run(db))
	second, err := CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db := openMemDB(t)

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, 0, version)
}

func TestParseFilename(t *testing.T) {
	version, desc, err := parseFilename("01_create_signatures.sql")
	require.NoError(t, err)
	require.Equal(t, 1, version)
	require.Equal(t, "create_signatures", desc)

	_, _, err = parseFilename("bogus.sql")
	require.Error(t, err)
}

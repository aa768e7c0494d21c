package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/moray-shell/moray/internal/catalog"
	"github.com/moray-shell/moray/internal/catalog/migrations"
	"github.com/moray-shell/moray/internal/signature"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestCatalog creates a Catalog backed by an in-memory database.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.NewWithDB(NewTestDB(t))
}

// SeedSignatures stores a slice of signatures in the test catalog.
func SeedSignatures(t *testing.T, c *catalog.Catalog, sigs []signature.Signature) {
	t.Helper()

	for _, sig := range sigs {
		err := c.Put(sig)
		require.NoError(t, err, "failed to seed signature %q", sig.Name)
	}
}

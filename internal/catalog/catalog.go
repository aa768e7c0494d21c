// Package catalog persists command signatures to a local SQLite database.
//
// The catalog is the machine-readable counterpart of the help output: it
// stores each signature as its JSON form so external tooling can query
// the command surface without running the shell.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/moray-shell/moray/internal/catalog/migrations"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/signature"
)

// Catalog wraps a SQLite database holding command signatures.
// It implements the domain.CatalogStore interface.
type Catalog struct {
	db   *sql.DB
	path string
}

// New opens the catalog at the given path and runs migrations.
func New(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping catalog: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Catalog{db: db, path: path}, nil
}

// NewWithDB creates a Catalog from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Catalog {
	return &Catalog{db: db, path: ""}
}

// DB returns the underlying database connection.
// Use sparingly - prefer using Catalog methods.
func (c *Catalog) DB() *sql.DB {
	return c.db
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and
// its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Put inserts or updates the stored form of a signature.
func (c *Catalog) Put(sig signature.Signature) error {
	doc, err := json.Marshal(sig)
	if err != nil {
		return fmt.Errorf("encode signature %q: %w", sig.Name, err)
	}

	_, err = c.db.Exec(
		`INSERT INTO signatures (name, doc, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(name)
		 DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		sig.Name,
		string(doc),
	)
	if err != nil {
		return fmt.Errorf("store signature %q: %w", sig.Name, err)
	}
	return nil
}

// Get returns the stored signature for a command name.
func (c *Catalog) Get(name string) (signature.Signature, error) {
	var doc string
	err := c.db.QueryRow(
		"SELECT doc FROM signatures WHERE name = ?", name,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return signature.Signature{}, fmt.Errorf("signature %q not found", name)
	}
	if err != nil {
		return signature.Signature{}, fmt.Errorf("load signature %q: %w", name, err)
	}

	var sig signature.Signature
	if err := json.Unmarshal([]byte(doc), &sig); err != nil {
		return signature.Signature{}, fmt.Errorf("decode signature %q: %w", name, err)
	}
	return sig, nil
}

// List returns all stored signatures in name order.
func (c *Catalog) List() ([]signature.Signature, error) {
	rows, err := c.db.Query("SELECT doc FROM signatures ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()

	var out []signature.Signature
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}

		var sig signature.Signature
		if err := json.Unmarshal([]byte(doc), &sig); err != nil {
			return nil, fmt.Errorf("decode stored signature: %w", err)
		}
		out = append(out, sig)
	}
	return out, rows.Err()
}

// RecordExport records a completed export and returns its run id.
func (c *Catalog) RecordExport(count int) (string, error) {
	runID := uuid.NewString()

	_, err := c.db.Exec(
		"INSERT INTO export_runs (run_id, signature_count) VALUES (?, ?)",
		runID, count,
	)
	if err != nil {
		return "", fmt.Errorf("record export: %w", err)
	}
	return runID, nil
}

// Verify Catalog implements domain.CatalogStore
var _ domain.CatalogStore = (*Catalog)(nil)

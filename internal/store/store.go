package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite connection and provides access to the key-value table.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the key-value table.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// KV returns the key-value table backed by this store.
func (s *Store) KV() KV {
	return &sqliteKV{drv: s.drv}
}

// migrate creates the tables the application needs.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	const ddl = `CREATE TABLE IF NOT EXISTS ` + kvTable + ` (
	"key" TEXT NOT NULL PRIMARY KEY,
	"value" TEXT NOT NULL,
	"updated_at" INTEGER NOT NULL DEFAULT 0
)`
	if err := drv.Exec(ctx, ddl, []any{}, nil); err != nil {
		return fmt.Errorf("create %s: %w", kvTable, err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// Package sqlite caches fetched pages in a local SQLite database so
// repeated runs against the same URL can skip the network.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// schema defines the page cache table. Pages are keyed by (url, renderer)
// so a static fetch and a browser render of the same URL coexist, and the
// fetched_at index supports age-based eviction.
const schema = `
CREATE TABLE IF NOT EXISTS pages (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	renderer TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	content_hash TEXT NOT NULL DEFAULT '',
	fetched_at TEXT NOT NULL,
	UNIQUE (url, renderer)
);

CREATE INDEX IF NOT EXISTS idx_pages_fetched_at ON pages(fetched_at);
`

// DB wraps the SQLite connection to the cache database.
type DB struct {
	conn *sql.DB
	dsn  string
}

// NewDB returns a DB that will open the database at dsn.
// Pass ":memory:" for a throwaway in-memory cache.
func NewDB(dsn string) *DB {
	return &DB{dsn: dsn}
}

// Open connects to the database, applies the pragmas the cache relies on,
// and creates the schema if it is missing.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.dsn)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	// A single connection sidesteps SQLite's single-writer locking.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to cache database: %w", err)
	}

	// Wait out lock contention instead of returning "database is locked"
	// when two invocations share a cache file. WAL keeps reads unblocked
	// while a fetch writes its page, but is unsupported in memory.
	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if db.dsn != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create cache schema: %w", err)
	}

	db.conn = conn
	return nil
}

// Close closes the connection. Closing a DB that was never opened is a no-op.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// QueryRowContext runs a query expected to produce at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// ExecContext runs a statement without reading rows back.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

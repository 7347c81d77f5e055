package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Store gives access to the persisted clips, reviews and daily queue. All
// operations go through an injected connection; there is no package-level
// state.
type Store struct {
	db     *sqlx.DB
	dbPath string
}

// NewStore wraps an already open and migrated connection. Used by tests.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database selected by driver, applies pending
// migrations and returns a ready Store.
//
// driver "sqlite3" treats dsn as a file path and creates the parent
// directory; driver "postgres" passes dsn through as a connection URL.
func Open(driver, dsn string) (*Store, error) {
	dbPath := ""
	if driver == "sqlite3" {
		dbPath = dsn
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the connection is alive.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Path returns the sqlite file path, or "" for other drivers.
func (s *Store) Path() string {
	return s.dbPath
}

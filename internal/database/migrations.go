package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migration is one versioned schema step. Versions are applied in order,
// exactly once, and recorded in schema_migrations so a restart is a no-op.
type migration struct {
	version    int
	name       string
	statements []string
	// postgres overrides statements when the DDL syntax differs.
	postgres []string
}

func (m migration) forDriver(driver string) []string {
	if driver == "postgres" && len(m.postgres) > 0 {
		return m.postgres
	}
	return m.statements
}

var migrations = []migration{
	{
		version: 1,
		name:    "base schema",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS clips (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				video_id TEXT NOT NULL,
				start_sec INTEGER NOT NULL,
				end_sec INTEGER NOT NULL,
				title TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS reviews (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				clip_id INTEGER NOT NULL,
				score INTEGER NOT NULL,
				reviewed_at TEXT NOT NULL,
				next_review_at TEXT NOT NULL,
				FOREIGN KEY (clip_id) REFERENCES clips(id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_reviews_clip_id ON reviews(clip_id)`,
			`CREATE INDEX IF NOT EXISTS idx_reviews_reviewed_at ON reviews(reviewed_at)`,
			`CREATE TABLE IF NOT EXISTS today_queue (
				day TEXT NOT NULL,
				position INTEGER NOT NULL,
				clip_id INTEGER NOT NULL,
				FOREIGN KEY (clip_id) REFERENCES clips(id),
				UNIQUE(day, position)
			)`,
		},
		postgres: []string{
			`CREATE TABLE IF NOT EXISTS clips (
				id SERIAL PRIMARY KEY,
				video_id TEXT NOT NULL,
				start_sec INTEGER NOT NULL,
				end_sec INTEGER NOT NULL,
				title TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS reviews (
				id SERIAL PRIMARY KEY,
				clip_id INTEGER NOT NULL REFERENCES clips(id),
				score INTEGER NOT NULL,
				reviewed_at TEXT NOT NULL,
				next_review_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_reviews_clip_id ON reviews(clip_id)`,
			`CREATE INDEX IF NOT EXISTS idx_reviews_reviewed_at ON reviews(reviewed_at)`,
			`CREATE TABLE IF NOT EXISTS today_queue (
				day TEXT NOT NULL,
				position INTEGER NOT NULL,
				clip_id INTEGER NOT NULL REFERENCES clips(id),
				UNIQUE(day, position)
			)`,
		},
	},
	{
		// The queue originally held only randomly drawn clips; review slots
		// arrived later, so kind is a column added with a default.
		version: 2,
		name:    "queue entry kind",
		statements: []string{
			`ALTER TABLE today_queue ADD COLUMN kind TEXT NOT NULL DEFAULT 'new'`,
		},
	},
}

// Migrate applies all pending migrations. Safe to call on every startup.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := db.Get(&applied, db.Rebind("SELECT COUNT(*) FROM schema_migrations WHERE version = ?"), m.version)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		tx, err := db.Beginx()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		for _, stmt := range m.forDriver(db.DriverName()) {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
			}
		}
		if _, err := tx.Exec(db.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}

	return nil
}

package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the local database schema. This database holds only
// state the front-end owns: UI preferences and the activity log. Booking,
// room, guest, and invoice data stay in the backend.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS user_prefs (
		user_id TEXT PRIMARY KEY,
		default_view TEXT NOT NULL DEFAULT 'month',
		per_page INTEGER NOT NULL DEFAULT 20
	);

	CREATE TABLE IF NOT EXISTS activity (
		id TEXT PRIMARY KEY,
		actor_email TEXT NOT NULL,
		action TEXT NOT NULL,
		booking_id TEXT NOT NULL,
		room_number TEXT NOT NULL DEFAULT '',
		guest_name TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		succeeded INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activity_created_at ON activity(created_at DESC);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

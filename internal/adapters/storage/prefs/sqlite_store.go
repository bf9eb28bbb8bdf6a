package prefs

import (
	"context"
	"database/sql"

	domain "frontdesk/internal/domain/prefs"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new preferences store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByUserID retrieves preferences for a user, falling back to defaults
// when none are stored yet.
// PRE: userID is non-empty
// POST: always returns usable preferences; error only on query failure
func (s *SQLiteStore) GetByUserID(ctx context.Context, userID string) (domain.Prefs, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT user_id, default_view, per_page FROM user_prefs WHERE user_id = ?", userID)
	var p domain.Prefs
	err := row.Scan(&p.UserID, &p.DefaultView, &p.PerPage)
	if err == sql.ErrNoRows {
		return domain.Defaults(userID), nil
	}
	if err != nil {
		return domain.Prefs{}, err
	}
	return p, nil
}

// Save persists preferences (insert or update).
// PRE: value.UserID is non-empty
// POST: preferences are persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Prefs) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO user_prefs (user_id, default_view, per_page) VALUES (?, ?, ?) ON CONFLICT(user_id) DO UPDATE SET default_view=excluded.default_view, per_page=excluded.per_page",
		value.UserID, value.DefaultView, value.PerPage,
	)
	return err
}

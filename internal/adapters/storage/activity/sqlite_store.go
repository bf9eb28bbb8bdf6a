package activity

import (
	"context"
	"database/sql"
	"time"

	domain "frontdesk/internal/domain/activity"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new activity store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an activity entry.
// PRE: entry has been validated
// POST: entry is persisted
func (s *SQLiteStore) Save(ctx context.Context, value domain.Entry) error {
	succeeded := 0
	if value.Succeeded {
		succeeded = 1
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO activity (id, actor_email, action, booking_id, room_number, guest_name, note, succeeded, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		value.ID, value.ActorEmail, value.Action, value.BookingID, value.RoomNumber,
		value.GuestName, value.Note, succeeded, value.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// List retrieves entries newest-first, optionally filtered.
// PRE: filter has valid parameters
// POST: returns matching entries
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Entry, error) {
	query := "SELECT id, actor_email, action, booking_id, room_number, guest_name, note, succeeded, created_at FROM activity"
	where, args := filterClause(filter)
	query += where + " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var succeeded int
		var createdStr string
		if err := rows.Scan(&e.ID, &e.ActorEmail, &e.Action, &e.BookingID, &e.RoomNumber,
			&e.GuestName, &e.Note, &succeeded, &createdStr); err != nil {
			return nil, err
		}
		e.Succeeded = succeeded == 1
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		results = append(results, e)
	}
	return results, rows.Err()
}

// Count returns the number of matching entries.
// PRE: filter has valid parameters
// POST: returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	query := "SELECT COUNT(*) FROM activity"
	where, args := filterClause(filter)
	var n int
	if err := s.db.QueryRowContext(ctx, query+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func filterClause(filter ListFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.ActorEmail != "" {
		clauses = append(clauses, "actor_email = ?")
		args = append(args, filter.ActorEmail)
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, filter.Action)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	where := " WHERE " + clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, args
}

package activity

import (
	"errors"
	"time"
)

// Action constants for front-desk activity entries.
const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
	ActionCancel   = "cancel"
)

// Entry is one line of the local front-desk activity log: who did what to
// which booking. The log lives in this app, not the backend, so the desk has
// an audit trail even when the backend keeps none.
type Entry struct {
	ID         string
	ActorEmail string
	Action     string
	BookingID  string
	RoomNumber string
	GuestName  string
	Note       string // populated with the error message on failed actions
	Succeeded  bool
	CreatedAt  time.Time
}

// Validate checks the entry's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (e *Entry) Validate() error {
	if e.ActorEmail == "" {
		return errors.New("activity entry must name an actor")
	}
	switch e.Action {
	case ActionCheckIn, ActionCheckOut, ActionCancel:
	default:
		return errors.New("activity action must be check_in, check_out, or cancel")
	}
	if e.BookingID == "" {
		return errors.New("activity entry must reference a booking")
	}
	if e.CreatedAt.IsZero() {
		return errors.New("activity entry must have a timestamp")
	}
	return nil
}

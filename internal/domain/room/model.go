package room

import "errors"

// Housekeeping status constants. These drive the room-status board columns.
const (
	StatusAvailable    = "AVAILABLE"
	StatusReserved     = "RESERVED"
	StatusOccupied     = "OCCUPIED"
	StatusCleaning     = "CLEANING"
	StatusOutOfService = "OUT_OF_SERVICE"
)

// BoardColumns is the fixed left-to-right column order of the status board.
var BoardColumns = []string{
	StatusAvailable,
	StatusReserved,
	StatusOccupied,
	StatusCleaning,
	StatusOutOfService,
}

// ValidStatus reports whether s is a recognised housekeeping status.
func ValidStatus(s string) bool {
	for _, c := range BoardColumns {
		if s == c {
			return true
		}
	}
	return false
}

// Room is a physical room record from the backend.
type Room struct {
	ID          string
	Number      string
	Type        string // e.g. "standard", "deluxe", "suite"
	Floor       int
	NightlyRate int // cents
	Status      string
	Description string // markdown, rendered on the detail page
}

// Validate checks the room's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (r *Room) Validate() error {
	if r.Number == "" {
		return errors.New("room number cannot be empty")
	}
	if r.Type == "" {
		return errors.New("room type cannot be empty")
	}
	if !ValidStatus(r.Status) {
		return errors.New("room status is not a recognised value")
	}
	if r.NightlyRate < 0 {
		return errors.New("room nightly rate cannot be negative")
	}
	return nil
}

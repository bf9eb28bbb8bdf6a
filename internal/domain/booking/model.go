package booking

import (
	"errors"
	"time"
)

// Status is the reservation lifecycle label supplied by the backend.
// The front-desk app never transitions statuses itself; it only branches
// display logic on the current value.
type Status string

// Known backend status values.
const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"

	// StatusUnknown marks a value outside the backend contract. It is kept
	// distinguishable rather than folded into a default so contract drift
	// shows up on screen instead of being silently masked.
	StatusUnknown Status = "UNKNOWN"
)

var knownStatuses = map[Status]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusCheckedIn:  true,
	StatusCheckedOut: true,
	StatusCancelled:  true,
	StatusNoShow:     true,
}

// ParseStatus maps a raw backend string to a Status.
// PRE: none
// POST: returns the matching known status, or StatusUnknown
func ParseStatus(raw string) Status {
	s := Status(raw)
	if knownStatuses[s] {
		return s
	}
	return StatusUnknown
}

// Known reports whether the status is one of the six backend values.
func (s Status) Known() bool {
	return knownStatuses[s]
}

// Awaiting reports whether the booking is still awaiting arrival.
func (s Status) Awaiting() bool {
	return s == StatusPending || s == StatusConfirmed
}

const dateFormat = "2006-01-02"

// Booking is a reservation record fetched from the backend. Dates are
// canonical YYYY-MM-DD strings; lexicographic order on them is date order.
// INVARIANT: CheckOutDate >= CheckInDate when both are set.
type Booking struct {
	ID           string
	GuestID      string
	GuestName    string
	RoomID       string
	RoomNumber   string
	RoomType     string
	CheckInDate  string // canonical YYYY-MM-DD
	CheckOutDate string // canonical YYYY-MM-DD
	Status       Status
	Adults       int
	Children     int
	Notes        string
	CreatedAt    time.Time
}

// Validate checks the booking's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (b *Booking) Validate() error {
	if b.GuestID == "" && b.GuestName == "" {
		return errors.New("booking must reference a guest")
	}
	if b.RoomID == "" && b.RoomNumber == "" {
		return errors.New("booking must reference a room")
	}
	if b.CheckInDate == "" {
		return errors.New("booking check-in date is required")
	}
	if _, err := time.Parse(dateFormat, b.CheckInDate); err != nil {
		return errors.New("booking check-in date must be YYYY-MM-DD")
	}
	if b.CheckOutDate == "" {
		return errors.New("booking check-out date is required")
	}
	if _, err := time.Parse(dateFormat, b.CheckOutDate); err != nil {
		return errors.New("booking check-out date must be YYYY-MM-DD")
	}
	if b.CheckOutDate < b.CheckInDate {
		return errors.New("booking check-out date cannot be before check-in date")
	}
	if !b.Status.Known() {
		return errors.New("booking status is not a recognised value")
	}
	if b.Adults < 0 || b.Children < 0 {
		return errors.New("booking guest counts cannot be negative")
	}
	return nil
}

// Nights returns the number of nights between check-in and check-out.
// A same-day stay counts as zero nights.
func (b *Booking) Nights() int {
	in, err1 := time.Parse(dateFormat, b.CheckInDate)
	out, err2 := time.Parse(dateFormat, b.CheckOutDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

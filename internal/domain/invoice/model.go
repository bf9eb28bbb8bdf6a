package invoice

import (
	"errors"
	"fmt"
	"time"
)

// Invoice status constants.
const (
	StatusDraft  = "DRAFT"
	StatusIssued = "ISSUED"
	StatusPaid   = "PAID"
	StatusVoid   = "VOID"
)

// Invoice is a billing record attached to a booking.
type Invoice struct {
	ID          string
	BookingID   string
	GuestName   string
	AmountCents int
	Currency    string
	Status      string
	IssuedAt    time.Time
	DueAt       time.Time
}

// Validate checks the invoice's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (i *Invoice) Validate() error {
	if i.BookingID == "" {
		return errors.New("invoice must reference a booking")
	}
	if i.AmountCents < 0 {
		return errors.New("invoice amount cannot be negative")
	}
	switch i.Status {
	case StatusDraft, StatusIssued, StatusPaid, StatusVoid:
	default:
		return errors.New("invoice status is not a recognised value")
	}
	if i.Status != StatusDraft && i.IssuedAt.IsZero() {
		return errors.New("issued invoice must have an issue date")
	}
	return nil
}

// Overdue reports whether an issued invoice is past its due date.
func (i *Invoice) Overdue(now time.Time) bool {
	return i.Status == StatusIssued && !i.DueAt.IsZero() && now.After(i.DueAt)
}

// AmountDisplay formats the amount for templates, e.g. "NZD 120.00".
func (i *Invoice) AmountDisplay() string {
	return fmt.Sprintf("%s %d.%02d", i.Currency, i.AmountCents/100, i.AmountCents%100)
}

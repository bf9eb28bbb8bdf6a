package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"frontdesk/internal/application/frontdesk"
	"frontdesk/internal/domain/booking"
)

// BookingWriteService defines the backend calls SaveBooking needs.
type BookingWriteService interface {
	Create(ctx context.Context, b booking.Booking) (booking.Booking, error)
	Update(ctx context.Context, b booking.Booking) (booking.Booking, error)
}

// SaveBookingInput carries the form fields of the booking editor.
type SaveBookingInput struct {
	ID           string // empty means create
	GuestID      string
	RoomID       string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Children     int
	Notes        string
	Status       string // only honoured on update
}

// SaveBookingDeps holds dependencies for SaveBooking.
type SaveBookingDeps struct {
	Bookings BookingWriteService
}

// ExecuteSaveBooking normalises dates, validates the record, and writes it
// through the backend.
// PRE: none; all input is untrusted form data
// POST: Returns the stored booking as the backend echoed it back
func ExecuteSaveBooking(ctx context.Context, input SaveBookingInput, deps SaveBookingDeps) (booking.Booking, error) {
	checkIn, err := frontdesk.NormalizeDate(input.CheckInDate)
	if err != nil {
		return booking.Booking{}, errors.New("check-in date must be a valid date")
	}
	checkOut, err := frontdesk.NormalizeDate(input.CheckOutDate)
	if err != nil {
		return booking.Booking{}, errors.New("check-out date must be a valid date")
	}

	b := booking.Booking{
		ID:           input.ID,
		GuestID:      input.GuestID,
		RoomID:       input.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       input.Adults,
		Children:     input.Children,
		Notes:        input.Notes,
		Status:       booking.StatusPending,
	}
	if input.ID != "" {
		b.Status = booking.ParseStatus(input.Status)
	}

	if err := b.Validate(); err != nil {
		return booking.Booking{}, err
	}

	var stored booking.Booking
	if input.ID == "" {
		stored, err = deps.Bookings.Create(ctx, b)
	} else {
		stored, err = deps.Bookings.Update(ctx, b)
	}
	if err != nil {
		return booking.Booking{}, err
	}

	slog.Info("booking_saved", "booking_id", stored.ID, "room_id", stored.RoomID,
		"check_in", stored.CheckInDate, "check_out", stored.CheckOutDate)
	return stored, nil
}

package projections

import (
	"context"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/guest"
	"frontdesk/internal/domain/invoice"
	"frontdesk/internal/domain/room"
)

// BookingRangeReader fetches bookings overlapping a date range.
type BookingRangeReader interface {
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]booking.Booking, error)
}

// BookingReader fetches bookings for list views.
type BookingReader interface {
	List(ctx context.Context) ([]booking.Booking, error)
}

// RoomReader fetches rooms for board and list views.
type RoomReader interface {
	List(ctx context.Context) ([]room.Room, error)
}

// GuestReader fetches guests for list views.
type GuestReader interface {
	List(ctx context.Context) ([]guest.Guest, error)
}

// InvoiceReader fetches invoices for list views.
type InvoiceReader interface {
	List(ctx context.Context) ([]invoice.Invoice, error)
}

package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"frontdesk/internal/application/frontdesk"
	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/guest"
	"frontdesk/internal/domain/invoice"
	"frontdesk/internal/domain/rate"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
)

// DemoAdminEmail and DemoPassword are the seeded demo credentials, printed at
// startup in demo mode.
const (
	DemoAdminEmail = "admin@demo.hotel"
	DemoDeskEmail  = "desk@demo.hotel"
	DemoPassword   = "front desk demo"
)

// SeedDemo populates the in-memory backend with a small property: rooms on
// two floors, a handful of guests, and bookings spread around "now" so the
// front-desk calendar has arrivals, in-house stays, and departures today.
// PRE: m is empty
func (m *MemoryBackend) SeedDemo(ctx context.Context, now time.Time) error {
	today := frontdesk.Canonical(now)
	day := func(offset int) string {
		return frontdesk.Canonical(now.AddDate(0, 0, offset))
	}

	roomSpecs := []room.Room{
		{Number: "101", Type: "standard", Floor: 1, NightlyRate: 12000, Status: room.StatusAvailable},
		{Number: "102", Type: "standard", Floor: 1, NightlyRate: 12000, Status: room.StatusOccupied},
		{Number: "103", Type: "standard", Floor: 1, NightlyRate: 12500, Status: room.StatusCleaning},
		{Number: "201", Type: "deluxe", Floor: 2, NightlyRate: 18000, Status: room.StatusOccupied,
			Description: "Corner room with **harbour views** and a king bed."},
		{Number: "202", Type: "deluxe", Floor: 2, NightlyRate: 18000, Status: room.StatusReserved},
		{Number: "203", Type: "suite", Floor: 2, NightlyRate: 29000, Status: room.StatusOutOfService,
			Description: "Two-room suite. *Currently closed* for bathroom repairs."},
	}
	rooms := make(map[string]room.Room) // number -> saved room
	for _, r := range roomSpecs {
		saved, err := m.Rooms().Save(ctx, r)
		if err != nil {
			return fmt.Errorf("seed room %s: %w", r.Number, err)
		}
		rooms[saved.Number] = saved
	}

	guestSpecs := []guest.Guest{
		{Name: "Ariana Moana", Email: "ariana@example.com", Phone: "+64 21 555 0101"},
		{Name: "Tom Keller", Email: "tom.keller@example.com", Phone: "+64 21 555 0102"},
		{Name: "Mere Waititi", Email: "mere.w@example.com"},
		{Name: "Jonas Brandt", Email: "jonas@example.com", Notes: "Late arrivals; keep key at desk."},
	}
	guests := make([]guest.Guest, 0, len(guestSpecs))
	for _, g := range guestSpecs {
		saved, err := m.Guests().Save(ctx, g)
		if err != nil {
			return fmt.Errorf("seed guest %s: %w", g.Name, err)
		}
		guests = append(guests, saved)
	}

	for _, p := range []rate.Plan{
		{Name: "Standard Flexible", RoomType: "standard", NightlyRate: 12500, Currency: "NZD", Active: true,
			Description: "Free cancellation until **48 hours** before arrival."},
		{Name: "Deluxe Advance", RoomType: "deluxe", NightlyRate: 16500, Currency: "NZD", Active: true,
			Description: "Prepaid, non-refundable."},
		{Name: "Winter Suite Special", RoomType: "suite", NightlyRate: 24000, Currency: "NZD", Active: false},
	} {
		if _, err := m.Rates().Save(ctx, p); err != nil {
			return fmt.Errorf("seed rate %s: %w", p.Name, err)
		}
	}

	mkBooking := func(g guest.Guest, r room.Room, in, out string, status booking.Status) booking.Booking {
		return booking.Booking{
			GuestID: g.ID, GuestName: g.Name,
			RoomID: r.ID, RoomNumber: r.Number, RoomType: r.Type,
			CheckInDate: in, CheckOutDate: out, Status: status, Adults: 2,
			CreatedAt: now.AddDate(0, 0, -14),
		}
	}

	seedBookings := []booking.Booking{
		// Arriving today, still awaiting: bucket-1 material.
		mkBooking(guests[0], rooms["101"], today, day(3), booking.StatusConfirmed),
		// In-house, staying on.
		mkBooking(guests[1], rooms["201"], day(-2), day(2), booking.StatusCheckedIn),
		// In-house, departing today.
		mkBooking(guests[2], rooms["102"], day(-3), today, booking.StatusCheckedIn),
		// Next week, unconfirmed.
		mkBooking(guests[3], rooms["202"], day(7), day(10), booking.StatusPending),
		// Cancelled stay overlapping today.
		mkBooking(guests[3], rooms["103"], day(-1), day(1), booking.StatusCancelled),
	}
	for i, b := range seedBookings {
		seedBookings[i] = m.AddBooking(b)
	}

	m.AddInvoice(invoice.Invoice{
		BookingID: seedBookings[1].ID, GuestName: guests[1].Name,
		AmountCents: 72000, Currency: "NZD", Status: invoice.StatusIssued,
		IssuedAt: now.AddDate(0, 0, -2), DueAt: now.AddDate(0, 0, 12),
	})
	m.AddInvoice(invoice.Invoice{
		BookingID: seedBookings[2].ID, GuestName: guests[2].Name,
		AmountCents: 37500, Currency: "NZD", Status: invoice.StatusDraft,
	})

	for _, u := range []user.User{
		{Email: DemoAdminEmail, Name: "Demo Admin", Role: user.RoleAdmin, Active: true},
		{Email: DemoDeskEmail, Name: "Demo Receptionist", Role: user.RoleReceptionist, Active: true},
	} {
		saved, err := m.Users().Save(ctx, u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		if err := m.SetPassword(saved.ID, DemoPassword); err != nil {
			return fmt.Errorf("seed password for %s: %w", u.Email, err)
		}
	}

	slog.Info("demo_backend_seeded", "rooms", len(roomSpecs), "bookings", len(seedBookings))
	return nil
}

package projections

import (
	"context"
	"errors"
	"testing"
	"time"

	activitystore "frontdesk/internal/adapters/storage/activity"
	"frontdesk/internal/domain/activity"
	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/invoice"
	"frontdesk/internal/domain/room"
)

type mockInvoiceReader struct {
	invoices []invoice.Invoice
	err      error
}

// List returns the seeded invoices.
// POST: Returns the seeded invoices or the seeded error
func (m *mockInvoiceReader) List(_ context.Context) ([]invoice.Invoice, error) {
	return m.invoices, m.err
}

type mockActivityStore struct {
	entries []activity.Entry
}

// List returns the seeded entries up to the filter's limit.
// POST: Returns at most filter.Limit entries when Limit > 0
func (m *mockActivityStore) List(_ context.Context, filter activitystore.ListFilter) ([]activity.Entry, error) {
	if filter.Limit > 0 && len(m.entries) > filter.Limit {
		return m.entries[:filter.Limit], nil
	}
	return m.entries, nil
}

// TestQueryGetDashboard_Aggregates verifies each panel's numbers.
func TestQueryGetDashboard_Aggregates(t *testing.T) {
	today := mustDate(t, "2024-01-15")
	deps := GetDashboardDeps{
		Bookings: &mockBookingRangeReader{bookings: []booking.Booking{
			{ID: "b1", CheckInDate: "2024-01-15", CheckOutDate: "2024-01-18", Status: booking.StatusConfirmed},
			{ID: "b2", CheckInDate: "2024-01-13", CheckOutDate: "2024-01-17", Status: booking.StatusCheckedIn},
		}},
		Rooms: &mockRoomReader{rooms: []room.Room{
			{ID: "r1", Number: "101", Status: room.StatusOccupied},
			{ID: "r2", Number: "102", Status: room.StatusAvailable},
			{ID: "r3", Number: "103", Status: room.StatusAvailable},
		}},
		Invoices: &mockInvoiceReader{invoices: []invoice.Invoice{
			{ID: "i1", Status: invoice.StatusIssued, DueAt: today.Add(-48 * time.Hour)},
			{ID: "i2", Status: invoice.StatusPaid, DueAt: today.Add(-48 * time.Hour)},
		}},
		ActivityStore: &mockActivityStore{entries: []activity.Entry{
			{ID: "a1", Action: activity.ActionCheckIn},
		}},
	}

	res, err := QueryGetDashboard(context.Background(), GetDashboardQuery{Today: today}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stats.CheckInsToday != 1 || res.Stats.InHouse != 1 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.RoomsTotal != 3 || res.RoomsByStatus[room.StatusAvailable] != 2 {
		t.Errorf("rooms = total %d, byStatus %v", res.RoomsTotal, res.RoomsByStatus)
	}
	if res.OverdueCount != 1 {
		t.Errorf("overdue = %d want 1 (paid invoices are never overdue)", res.OverdueCount)
	}
	if len(res.RecentActivity) != 1 {
		t.Errorf("activity = %v", res.RecentActivity)
	}
	if res.BackendDown {
		t.Error("BackendDown set on a healthy backend")
	}
}

// TestQueryGetDashboard_PartialFailure verifies one failing call leaves the
// other panels intact.
func TestQueryGetDashboard_PartialFailure(t *testing.T) {
	today := mustDate(t, "2024-01-15")
	deps := GetDashboardDeps{
		Bookings: &mockBookingRangeReader{err: errors.New("connection refused")},
		Rooms: &mockRoomReader{rooms: []room.Room{
			{ID: "r1", Number: "101", Status: room.StatusAvailable},
		}},
		Invoices: &mockInvoiceReader{err: errors.New("connection refused")},
	}

	res, err := QueryGetDashboard(context.Background(), GetDashboardQuery{Today: today}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.BackendDown {
		t.Error("BackendDown not set")
	}
	if res.RoomsTotal != 1 {
		t.Errorf("rooms total = %d want 1", res.RoomsTotal)
	}
	if res.OverdueCount != 0 || len(res.RecentActivity) != 0 {
		t.Errorf("unexpected panel data: %+v", res)
	}
}

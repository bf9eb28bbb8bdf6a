package projections

import (
	"context"
	"time"

	activitystore "frontdesk/internal/adapters/storage/activity"
	"frontdesk/internal/application/frontdesk"
	"frontdesk/internal/domain/activity"
	"frontdesk/internal/domain/room"
)

// DashboardActivityStore defines the activity store interface needed by the dashboard projection.
type DashboardActivityStore interface {
	List(ctx context.Context, filter activitystore.ListFilter) ([]activity.Entry, error)
}

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	Today time.Time
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	Bookings      BookingRangeReader
	Rooms         RoomReader
	Invoices      InvoiceReader
	ActivityStore DashboardActivityStore // optional: nil skips the recent-activity panel
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	Stats          frontdesk.DayStats
	RoomsByStatus  map[string]int
	RoomsTotal     int
	OverdueCount   int
	RecentActivity []activity.Entry
	BackendDown    bool
}

// QueryGetDashboard aggregates today's numbers for the landing page. Each
// panel fetches independently so one failing backend call leaves the others
// intact.
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) (DashboardResult, error) {
	today := frontdesk.Canonical(query.Today)
	result := DashboardResult{RoomsByStatus: map[string]int{}}

	stays, err := deps.Bookings.ListByDateRange(ctx, today, today)
	if err != nil {
		result.BackendDown = true
	} else {
		result.Stats = frontdesk.ComputeStats(stays, today)
	}

	rooms, err := deps.Rooms.List(ctx)
	if err == nil {
		result.RoomsTotal = len(rooms)
		for _, r := range rooms {
			if room.ValidStatus(r.Status) {
				result.RoomsByStatus[r.Status]++
			}
		}
	}

	invoices, err := deps.Invoices.List(ctx)
	if err == nil {
		for _, inv := range invoices {
			if inv.Overdue(query.Today) {
				result.OverdueCount++
			}
		}
	}

	if deps.ActivityStore != nil {
		entries, err := deps.ActivityStore.List(ctx, activitystore.ListFilter{Limit: 10})
		if err == nil {
			result.RecentActivity = entries
		}
	}

	return result, nil
}

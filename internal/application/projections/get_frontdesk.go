package projections

import (
	"context"
	"log/slog"
	"time"

	"frontdesk/internal/application/frontdesk"
	"frontdesk/internal/domain/booking"
)

// GetFrontDeskQuery carries input for the front-desk calendar projection.
type GetFrontDeskQuery struct {
	View  string    // "week" or "month"; anything else falls back to month
	Date  string    // anchor date, canonical or RFC3339; empty means today
	Today time.Time // the receptionist's "today", drives arrival/departure buckets
}

// GetFrontDeskDeps holds dependencies for the front-desk projection.
type GetFrontDeskDeps struct {
	Bookings BookingRangeReader
}

// CalendarDay is one day cell with its prioritised bookings.
type CalendarDay struct {
	frontdesk.Day
	Bookings []booking.Booking
}

// FrontDeskResult carries the output of the front-desk projection.
type FrontDeskResult struct {
	View        frontdesk.ViewState
	Days        []CalendarDay
	Stats       frontdesk.DayStats
	Today       string
	BackendDown bool // true when the booking fetch failed and the grid rendered empty
}

// QueryGetFrontDesk builds the calendar grid for the requested period and
// distributes the period's bookings across its day cells.
// PRE: query.Today is non-zero
// POST: result always has a full grid; a fetch failure yields empty day cells
// and BackendDown=true rather than an error
func QueryGetFrontDesk(ctx context.Context, query GetFrontDeskQuery, deps GetFrontDeskDeps) (FrontDeskResult, error) {
	view := frontdesk.NewViewState(query.View, query.Date, query.Today)
	today := frontdesk.Canonical(query.Today)

	result := FrontDeskResult{View: view, Today: today}

	bookings, err := deps.Bookings.ListByDateRange(ctx, view.RangeStart(), view.RangeEnd())
	if err != nil {
		slog.Warn("frontdesk_fetch_failed", "error", err, "start", view.RangeStart(), "end", view.RangeEnd())
		result.BackendDown = true
		bookings = nil
	}

	result.Days = make([]CalendarDay, 0, len(view.Days))
	for _, day := range view.Days {
		result.Days = append(result.Days, CalendarDay{
			Day:      day,
			Bookings: frontdesk.BookingsOn(day.Canonical, bookings),
		})
	}

	result.Stats = frontdesk.ComputeStats(bookings, today)
	return result, nil
}

// WeekRows splits the day cells into rows of seven for the month template.
func (r FrontDeskResult) WeekRows() [][]CalendarDay {
	rows := make([][]CalendarDay, 0, len(r.Days)/frontdesk.DaysPerWeek)
	for i := 0; i+frontdesk.DaysPerWeek <= len(r.Days); i += frontdesk.DaysPerWeek {
		rows = append(rows, r.Days[i:i+frontdesk.DaysPerWeek])
	}
	return rows
}

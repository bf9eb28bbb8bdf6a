package frontdesk

import "frontdesk/internal/domain/booking"

// DayStats are the headline counters shown above the front-desk grid.
type DayStats struct {
	CheckInsToday  int // arrivals due today, still awaiting
	CheckOutsToday int // in-house departures due today
	InHouse        int // CHECKED_IN regardless of date
	Total          int
}

// ComputeStats aggregates the counters for an explicit "today". Pure: no
// filtering side effects on the displayed grid, no ambient clock access.
// PRE: today is canonical
func ComputeStats(bookings []booking.Booking, today string) DayStats {
	s := DayStats{Total: len(bookings)}
	for _, b := range bookings {
		if b.CheckInDate == today && b.Status.Awaiting() {
			s.CheckInsToday++
		}
		if b.CheckOutDate == today && b.Status == booking.StatusCheckedIn {
			s.CheckOutsToday++
		}
		if b.Status == booking.StatusCheckedIn {
			s.InHouse++
		}
	}
	return s
}

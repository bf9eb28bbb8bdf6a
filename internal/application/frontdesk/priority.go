package frontdesk

import (
	"sort"

	"frontdesk/internal/domain/booking"
)

// Priority buckets for a booking on one displayed day. Lower sorts first.
// A booking spanning several days is re-bucketed independently for each day
// it appears on; for a given day every booking lands in exactly one bucket.
const (
	BucketArrival   = 1 // check-in that day, still awaiting arrival
	BucketInHouse   = 2 // checked in and staying
	BucketDeparture = 3 // checked in and due to leave that day
	BucketOther     = 4
)

// Overlaps reports whether b occupies day under canonical string comparison:
// checkIn <= day <= checkOut. A same-day stay matches its single day.
func Overlaps(day string, b booking.Booking) bool {
	return b.CheckInDate <= day && day <= b.CheckOutDate
}

// BucketFor classifies b for the given day. The classification depends only
// on (isCheckInDay, isCheckOutDay, status) for that day.
//
// Departures are restricted to CHECKED_IN bookings: a cancelled or no-show
// booking whose check-out falls on the day is not actionable and sorts with
// the remainder.
func BucketFor(day string, b booking.Booking) int {
	if b.CheckInDate == day && b.Status.Awaiting() {
		return BucketArrival
	}
	if b.Status == booking.StatusCheckedIn {
		if b.CheckOutDate == day {
			return BucketDeparture
		}
		return BucketInHouse
	}
	return BucketOther
}

// BookingsOn returns the bookings overlapping day, ordered so the most
// actionable entries come first: arrivals, then in-house, then departures,
// then the rest. Ties inside a bucket break by ascending room number string.
// The sort is stable.
// PRE: day is canonical
// POST: input slice is not mutated
func BookingsOn(day string, bookings []booking.Booking) []booking.Booking {
	var matched []booking.Booking
	for _, b := range bookings {
		if Overlaps(day, b) {
			matched = append(matched, b)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		bi, bj := BucketFor(day, matched[i]), BucketFor(day, matched[j])
		if bi != bj {
			return bi < bj
		}
		return matched[i].RoomNumber < matched[j].RoomNumber
	})
	return matched
}

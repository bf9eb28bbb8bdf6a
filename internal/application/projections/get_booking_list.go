package projections

import (
	"context"

	"frontdesk/internal/application/listutil"
	"frontdesk/internal/domain/booking"
)

// GetBookingListQuery carries input for the booking list projection.
type GetBookingListQuery struct {
	Params listutil.ListParams
}

// GetBookingListDeps holds dependencies for the booking list projection.
type GetBookingListDeps struct {
	Bookings BookingReader
}

// GetBookingListResult carries one page of bookings plus paging state.
type GetBookingListResult struct {
	Bookings []booking.Booking
	Page     listutil.PageInfo
	Params   listutil.ListParams
}

// BookingSortColumns are the sort keys the booking list accepts.
var BookingSortColumns = []string{"checkInDate", "checkOutDate", "guestName", "roomNumber", "status"}

// QueryGetBookingList filters, sorts, and pages the full booking set.
// The backend owns the data; filtering happens here so search and status
// filters behave the same against any backend.
// POST: result page never exceeds Params.PerPage entries
func QueryGetBookingList(ctx context.Context, query GetBookingListQuery, deps GetBookingListDeps) (GetBookingListResult, error) {
	all, err := deps.Bookings.List(ctx)
	if err != nil {
		return GetBookingListResult{}, err
	}

	params := query.Params

	filtered := make([]booking.Booking, 0, len(all))
	statusFilter := params.Filters["status"]
	for _, b := range all {
		if statusFilter != "" && string(b.Status) != statusFilter {
			continue
		}
		if params.Search != "" && !listutil.MatchesSearch(params.Search, b.GuestName, b.RoomNumber, b.ID) {
			continue
		}
		filtered = append(filtered, b)
	}

	less := bookingLess(params.Sort)
	listutil.SortSlice(filtered, params.Dir, less)

	page := listutil.NewPageInfo(params.Page, params.PerPage, len(filtered))
	return GetBookingListResult{
		Bookings: listutil.Page(filtered, page),
		Page:     page,
		Params:   params,
	}, nil
}

func bookingLess(sortCol string) func(a, b booking.Booking) bool {
	switch sortCol {
	case "checkOutDate":
		return func(a, b booking.Booking) bool { return a.CheckOutDate < b.CheckOutDate }
	case "guestName":
		return func(a, b booking.Booking) bool { return a.GuestName < b.GuestName }
	case "roomNumber":
		return func(a, b booking.Booking) bool { return a.RoomNumber < b.RoomNumber }
	case "status":
		return func(a, b booking.Booking) bool { return a.Status < b.Status }
	default:
		// Canonical dates sort correctly as strings.
		return func(a, b booking.Booking) bool { return a.CheckInDate < b.CheckInDate }
	}
}

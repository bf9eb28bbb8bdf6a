package projections

import (
	"context"
	"sort"
	"time"

	"frontdesk/internal/application/frontdesk"
	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/room"
)

// GetRoomBoardQuery carries input for the room-status board projection.
type GetRoomBoardQuery struct {
	Today time.Time
}

// GetRoomBoardDeps holds dependencies for the room-status board projection.
type GetRoomBoardDeps struct {
	Rooms    RoomReader
	Bookings BookingRangeReader // optional: nil skips occupant lookup
}

// BoardRoom is one card on the board.
type BoardRoom struct {
	Room     room.Room
	Occupant string // guest name of the checked-in booking, if any
}

// BoardColumn is one status column on the board.
type BoardColumn struct {
	Status string
	Rooms  []BoardRoom
}

// RoomBoardResult carries the output of the room-status board projection.
type RoomBoardResult struct {
	Columns []BoardColumn
}

// QueryGetRoomBoard groups rooms into one column per housekeeping status,
// sorted by room number, with the current occupant named on occupied rooms.
// POST: every status has a column, possibly empty; rooms with an
// unrecognised status are dropped rather than invented a column
func QueryGetRoomBoard(ctx context.Context, query GetRoomBoardQuery, deps GetRoomBoardDeps) (RoomBoardResult, error) {
	rooms, err := deps.Rooms.List(ctx)
	if err != nil {
		return RoomBoardResult{}, err
	}

	occupants := map[string]string{}
	if deps.Bookings != nil {
		today := frontdesk.Canonical(query.Today)
		stays, err := deps.Bookings.ListByDateRange(ctx, today, today)
		if err == nil {
			for _, b := range stays {
				if b.Status == booking.StatusCheckedIn {
					occupants[b.RoomID] = b.GuestName
				}
			}
		}
	}

	byStatus := map[string][]BoardRoom{}
	for _, r := range rooms {
		if !room.ValidStatus(r.Status) {
			continue
		}
		byStatus[r.Status] = append(byStatus[r.Status], BoardRoom{
			Room:     r,
			Occupant: occupants[r.ID],
		})
	}

	result := RoomBoardResult{}
	for _, status := range room.BoardColumns {
		cards := byStatus[status]
		sort.Slice(cards, func(i, j int) bool {
			return cards[i].Room.Number < cards[j].Room.Number
		})
		result.Columns = append(result.Columns, BoardColumn{Status: status, Rooms: cards})
	}
	return result, nil
}

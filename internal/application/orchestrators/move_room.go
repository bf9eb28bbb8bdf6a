package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"frontdesk/internal/domain/room"
)

// RoomStatusService defines the backend call MoveRoom needs.
type RoomStatusService interface {
	SetStatus(ctx context.Context, id, status string) (room.Room, error)
}

// MoveRoomInput carries input for the board move orchestrator.
type MoveRoomInput struct {
	RoomID string
	Status string // target column
}

// MoveRoomDeps holds dependencies for MoveRoom.
type MoveRoomDeps struct {
	Rooms RoomStatusService
}

// ExecuteMoveRoom moves a room to another column on the status board.
// PRE: RoomID is non-empty
// POST: The backend holds the new status; the board re-renders from it
func ExecuteMoveRoom(ctx context.Context, input MoveRoomInput, deps MoveRoomDeps) (room.Room, error) {
	if input.RoomID == "" {
		return room.Room{}, errors.New("a room must be selected")
	}
	if !room.ValidStatus(input.Status) {
		return room.Room{}, fmt.Errorf("%q is not a room status", input.Status)
	}

	moved, err := deps.Rooms.SetStatus(ctx, input.RoomID, input.Status)
	if err != nil {
		return room.Room{}, err
	}

	slog.Info("room_moved", "room_id", moved.ID, "number", moved.Number, "status", moved.Status)
	return moved, nil
}

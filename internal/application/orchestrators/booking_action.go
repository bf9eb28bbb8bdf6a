package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"frontdesk/internal/domain/activity"
	"frontdesk/internal/domain/booking"

	"github.com/google/uuid"
)

// Front-desk action names as they appear in the calendar's action forms.
const (
	ActionCheckIn  = "checkIn"
	ActionCheckOut = "checkOut"
	ActionCancel   = "cancel"
)

// ErrUnknownAction is returned when the posted action is not one of the
// three front-desk actions.
var ErrUnknownAction = errors.New("unknown front-desk action")

// BookingActionService defines the backend calls the front-desk actions need.
type BookingActionService interface {
	CheckIn(ctx context.Context, id string) (booking.Booking, error)
	CheckOut(ctx context.Context, id string) (booking.Booking, error)
	Cancel(ctx context.Context, id string) (booking.Booking, error)
}

// ActionActivityStore defines the activity store interface needed by front-desk actions.
type ActionActivityStore interface {
	Save(ctx context.Context, value activity.Entry) error
}

// BookingActionInput carries input for the front-desk action orchestrator.
type BookingActionInput struct {
	Action     string // checkIn, checkOut, or cancel
	BookingID  string
	ActorEmail string
}

// BookingActionDeps holds dependencies for ExecuteBookingAction.
type BookingActionDeps struct {
	Bookings      BookingActionService
	ActivityStore ActionActivityStore // optional: nil skips the local audit trail
}

// ExecuteBookingAction runs one front-desk action against the backend and
// records it in the local activity log, including failed attempts.
// PRE: BookingID is non-empty; Action is one of the three action names
// POST: On success the updated booking is returned; either way an activity
// entry is written when a store is configured
func ExecuteBookingAction(ctx context.Context, input BookingActionInput, deps BookingActionDeps) (booking.Booking, error) {
	if input.BookingID == "" {
		return booking.Booking{}, errors.New("a booking must be selected")
	}

	var (
		updated booking.Booking
		err     error
	)
	switch input.Action {
	case ActionCheckIn:
		updated, err = deps.Bookings.CheckIn(ctx, input.BookingID)
	case ActionCheckOut:
		updated, err = deps.Bookings.CheckOut(ctx, input.BookingID)
	case ActionCancel:
		updated, err = deps.Bookings.Cancel(ctx, input.BookingID)
	default:
		return booking.Booking{}, fmt.Errorf("%w: %q", ErrUnknownAction, input.Action)
	}

	recordActivity(ctx, input, updated, err, deps.ActivityStore)

	if err != nil {
		slog.Warn("frontdesk_action_failed", "action", input.Action, "booking_id", input.BookingID, "error", err)
		return booking.Booking{}, err
	}

	slog.Info("frontdesk_action", "action", input.Action, "booking_id", updated.ID,
		"room", updated.RoomNumber, "guest", updated.GuestName, "status", updated.Status)
	return updated, nil
}

// recordActivity writes the audit entry. A failed write only logs; the
// backend action already happened and must not be reported as failed.
func recordActivity(ctx context.Context, input BookingActionInput, updated booking.Booking, actionErr error, store ActionActivityStore) {
	if store == nil {
		return
	}

	entry := activity.Entry{
		ID:         uuid.New().String(),
		ActorEmail: input.ActorEmail,
		Action:     activityAction(input.Action),
		BookingID:  input.BookingID,
		RoomNumber: updated.RoomNumber,
		GuestName:  updated.GuestName,
		Succeeded:  actionErr == nil,
		CreatedAt:  time.Now(),
	}
	if actionErr != nil {
		entry.Note = actionErr.Error()
	}

	if err := store.Save(ctx, entry); err != nil {
		slog.Error("activity_write_failed", "action", input.Action, "booking_id", input.BookingID, "error", err)
	}
}

func activityAction(action string) string {
	switch action {
	case ActionCheckIn:
		return activity.ActionCheckIn
	case ActionCheckOut:
		return activity.ActionCheckOut
	default:
		return activity.ActionCancel
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"frontdesk/internal/application/frontdesk"
	"frontdesk/internal/domain/booking"
)

// BookingService is the reservation surface of the property-management backend.
type BookingService interface {
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]booking.Booking, error)
	List(ctx context.Context) ([]booking.Booking, error)
	Get(ctx context.Context, id string) (booking.Booking, error)
	Create(ctx context.Context, b booking.Booking) (booking.Booking, error)
	Update(ctx context.Context, b booking.Booking) (booking.Booking, error)
	CheckIn(ctx context.Context, id string) (booking.Booking, error)
	CheckOut(ctx context.Context, id string) (booking.Booking, error)
	Cancel(ctx context.Context, id string) (booking.Booking, error)
}

// bookingDTO mirrors the backend's wire shape. Payloads are coerced into
// the explicit domain record at this boundary; nothing duck-typed reaches
// the calendar engine.
type bookingDTO struct {
	ID           string `json:"id"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       string `json:"status"`
	Room         struct {
		ID     string `json:"id"`
		Number string `json:"number"`
		Type   string `json:"type"`
	} `json:"room"`
	Guest struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"guest"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d bookingDTO) toDomain() (booking.Booking, error) {
	checkIn, err := frontdesk.NormalizeDate(d.CheckInDate)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking %s check-in: %w", d.ID, err)
	}
	checkOut, err := frontdesk.NormalizeDate(d.CheckOutDate)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking %s check-out: %w", d.ID, err)
	}
	return booking.Booking{
		ID:           d.ID,
		GuestID:      d.Guest.ID,
		GuestName:    d.Guest.Name,
		RoomID:       d.Room.ID,
		RoomNumber:   d.Room.Number,
		RoomType:     d.Room.Type,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       booking.ParseStatus(d.Status),
		Adults:       d.Adults,
		Children:     d.Children,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// bookingWriteDTO is the create/update request shape.
type bookingWriteDTO struct {
	GuestID      string `json:"guestId"`
	RoomID       string `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Notes        string `json:"notes,omitempty"`
}

// HTTPBookingService implements BookingService over the backend REST API.
type HTTPBookingService struct {
	client *Client
}

// NewBookingService creates a BookingService bound to the given client.
func NewBookingService(client *Client) *HTTPBookingService {
	return &HTTPBookingService{client: client}
}

// ListByDateRange fetches bookings overlapping [startDate, endDate].
// PRE: startDate and endDate are canonical YYYY-MM-DD
// POST: every returned booking has canonical dates and a parsed status
func (s *HTTPBookingService) ListByDateRange(ctx context.Context, startDate, endDate string) ([]booking.Booking, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var dtos []bookingDTO
	if err := s.client.do(ctx, http.MethodGet, "/bookings", q, nil, &dtos); err != nil {
		return nil, err
	}
	return coerceBookings(dtos)
}

// List fetches all bookings.
func (s *HTTPBookingService) List(ctx context.Context) ([]booking.Booking, error) {
	var dtos []bookingDTO
	if err := s.client.do(ctx, http.MethodGet, "/bookings", nil, nil, &dtos); err != nil {
		return nil, err
	}
	return coerceBookings(dtos)
}

// Get fetches one booking by ID.
func (s *HTTPBookingService) Get(ctx context.Context, id string) (booking.Booking, error) {
	var dto bookingDTO
	if err := s.client.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return booking.Booking{}, err
	}
	return dto.toDomain()
}

// Create submits a new reservation.
// PRE: b has been validated
func (s *HTTPBookingService) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	var dto bookingDTO
	err := s.client.do(ctx, http.MethodPost, "/bookings", nil, writeDTO(b), &dto)
	if err != nil {
		return booking.Booking{}, err
	}
	return dto.toDomain()
}

// Update replaces an existing reservation's editable fields.
// PRE: b.ID is set and b has been validated
func (s *HTTPBookingService) Update(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	var dto bookingDTO
	err := s.client.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(b.ID), nil, writeDTO(b), &dto)
	if err != nil {
		return booking.Booking{}, err
	}
	return dto.toDomain()
}

// CheckIn asks the backend to transition the booking to CHECKED_IN.
func (s *HTTPBookingService) CheckIn(ctx context.Context, id string) (booking.Booking, error) {
	return s.action(ctx, id, "check-in")
}

// CheckOut asks the backend to transition the booking to CHECKED_OUT.
func (s *HTTPBookingService) CheckOut(ctx context.Context, id string) (booking.Booking, error) {
	return s.action(ctx, id, "check-out")
}

// Cancel asks the backend to transition the booking to CANCELLED.
func (s *HTTPBookingService) Cancel(ctx context.Context, id string) (booking.Booking, error) {
	return s.action(ctx, id, "cancel")
}

func (s *HTTPBookingService) action(ctx context.Context, id, verb string) (booking.Booking, error) {
	var dto bookingDTO
	path := "/bookings/" + url.PathEscape(id) + "/" + verb
	if err := s.client.do(ctx, http.MethodPost, path, nil, nil, &dto); err != nil {
		return booking.Booking{}, err
	}
	return dto.toDomain()
}

func writeDTO(b booking.Booking) bookingWriteDTO {
	return bookingWriteDTO{
		GuestID:      b.GuestID,
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Adults:       b.Adults,
		Children:     b.Children,
		Notes:        b.Notes,
	}
}

func coerceBookings(dtos []bookingDTO) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0, len(dtos))
	for _, d := range dtos {
		b, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

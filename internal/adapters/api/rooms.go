package api

import (
	"context"
	"net/http"
	"net/url"

	"frontdesk/internal/domain/room"
)

// RoomService is the room surface of the property-management backend.
type RoomService interface {
	List(ctx context.Context) ([]room.Room, error)
	Get(ctx context.Context, id string) (room.Room, error)
	Save(ctx context.Context, r room.Room) (room.Room, error)
	SetStatus(ctx context.Context, id, status string) (room.Room, error)
}

type roomDTO struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        string `json:"type"`
	Floor       int    `json:"floor"`
	NightlyRate int    `json:"nightlyRate"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (d roomDTO) toDomain() room.Room {
	return room.Room{
		ID:          d.ID,
		Number:      d.Number,
		Type:        d.Type,
		Floor:       d.Floor,
		NightlyRate: d.NightlyRate,
		Status:      d.Status,
		Description: d.Description,
	}
}

func roomWrite(r room.Room) roomDTO {
	return roomDTO{
		ID:          r.ID,
		Number:      r.Number,
		Type:        r.Type,
		Floor:       r.Floor,
		NightlyRate: r.NightlyRate,
		Status:      r.Status,
		Description: r.Description,
	}
}

// HTTPRoomService implements RoomService over the backend REST API.
type HTTPRoomService struct {
	client *Client
}

// NewRoomService creates a RoomService bound to the given client.
func NewRoomService(client *Client) *HTTPRoomService {
	return &HTTPRoomService{client: client}
}

// List fetches all rooms.
func (s *HTTPRoomService) List(ctx context.Context) ([]room.Room, error) {
	var dtos []roomDTO
	if err := s.client.do(ctx, http.MethodGet, "/rooms", nil, nil, &dtos); err != nil {
		return nil, err
	}
	rooms := make([]room.Room, 0, len(dtos))
	for _, d := range dtos {
		rooms = append(rooms, d.toDomain())
	}
	return rooms, nil
}

// Get fetches one room by ID.
func (s *HTTPRoomService) Get(ctx context.Context, id string) (room.Room, error) {
	var dto roomDTO
	if err := s.client.do(ctx, http.MethodGet, "/rooms/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return room.Room{}, err
	}
	return dto.toDomain(), nil
}

// Save creates the room when it has no ID, updates it otherwise.
// PRE: r has been validated
func (s *HTTPRoomService) Save(ctx context.Context, r room.Room) (room.Room, error) {
	var dto roomDTO
	var err error
	if r.ID == "" {
		err = s.client.do(ctx, http.MethodPost, "/rooms", nil, roomWrite(r), &dto)
	} else {
		err = s.client.do(ctx, http.MethodPut, "/rooms/"+url.PathEscape(r.ID), nil, roomWrite(r), &dto)
	}
	if err != nil {
		return room.Room{}, err
	}
	return dto.toDomain(), nil
}

// SetStatus transitions a room's housekeeping status (the board move).
// PRE: status is a valid room status
func (s *HTTPRoomService) SetStatus(ctx context.Context, id, status string) (room.Room, error) {
	var dto roomDTO
	body := map[string]string{"status": status}
	path := "/rooms/" + url.PathEscape(id) + "/status"
	if err := s.client.do(ctx, http.MethodPost, path, nil, body, &dto); err != nil {
		return room.Room{}, err
	}
	return dto.toDomain(), nil
}

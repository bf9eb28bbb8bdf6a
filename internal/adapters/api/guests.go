package api

import (
	"context"
	"net/http"
	"net/url"

	"frontdesk/internal/domain/guest"
)

// GuestService is the guest-profile surface of the property-management backend.
type GuestService interface {
	List(ctx context.Context) ([]guest.Guest, error)
	Get(ctx context.Context, id string) (guest.Guest, error)
	Save(ctx context.Context, g guest.Guest) (guest.Guest, error)
}

type guestDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// HTTPGuestService implements GuestService over the backend REST API.
type HTTPGuestService struct {
	client *Client
}

// NewGuestService creates a GuestService bound to the given client.
func NewGuestService(client *Client) *HTTPGuestService {
	return &HTTPGuestService{client: client}
}

// List fetches all guest profiles.
func (s *HTTPGuestService) List(ctx context.Context) ([]guest.Guest, error) {
	var dtos []guestDTO
	if err := s.client.do(ctx, http.MethodGet, "/guests", nil, nil, &dtos); err != nil {
		return nil, err
	}
	guests := make([]guest.Guest, 0, len(dtos))
	for _, d := range dtos {
		guests = append(guests, guest.Guest(d))
	}
	return guests, nil
}

// Get fetches one guest by ID.
func (s *HTTPGuestService) Get(ctx context.Context, id string) (guest.Guest, error) {
	var dto guestDTO
	if err := s.client.do(ctx, http.MethodGet, "/guests/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return guest.Guest{}, err
	}
	return guest.Guest(dto), nil
}

// Save creates the guest when it has no ID, updates it otherwise.
// PRE: g has been validated
func (s *HTTPGuestService) Save(ctx context.Context, g guest.Guest) (guest.Guest, error) {
	var dto guestDTO
	var err error
	if g.ID == "" {
		err = s.client.do(ctx, http.MethodPost, "/guests", nil, guestDTO(g), &dto)
	} else {
		err = s.client.do(ctx, http.MethodPut, "/guests/"+url.PathEscape(g.ID), nil, guestDTO(g), &dto)
	}
	if err != nil {
		return guest.Guest{}, err
	}
	return guest.Guest(dto), nil
}

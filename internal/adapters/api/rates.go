package api

import (
	"context"
	"net/http"
	"net/url"

	"frontdesk/internal/domain/rate"
)

// RateService is the rate-plan surface of the property-management backend.
type RateService interface {
	List(ctx context.Context) ([]rate.Plan, error)
	Get(ctx context.Context, id string) (rate.Plan, error)
	Save(ctx context.Context, p rate.Plan) (rate.Plan, error)
}

type rateDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RoomType    string `json:"roomType"`
	NightlyRate int    `json:"nightlyRate"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func (d rateDTO) toDomain() rate.Plan {
	return rate.Plan(d)
}

// HTTPRateService implements RateService over the backend REST API.
type HTTPRateService struct {
	client *Client
}

// NewRateService creates a RateService bound to the given client.
func NewRateService(client *Client) *HTTPRateService {
	return &HTTPRateService{client: client}
}

// List fetches all rate plans.
func (s *HTTPRateService) List(ctx context.Context) ([]rate.Plan, error) {
	var dtos []rateDTO
	if err := s.client.do(ctx, http.MethodGet, "/rates", nil, nil, &dtos); err != nil {
		return nil, err
	}
	plans := make([]rate.Plan, 0, len(dtos))
	for _, d := range dtos {
		plans = append(plans, d.toDomain())
	}
	return plans, nil
}

// Get fetches one rate plan by ID.
func (s *HTTPRateService) Get(ctx context.Context, id string) (rate.Plan, error) {
	var dto rateDTO
	if err := s.client.do(ctx, http.MethodGet, "/rates/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return rate.Plan{}, err
	}
	return dto.toDomain(), nil
}

// Save creates the plan when it has no ID, updates it otherwise.
// PRE: p has been validated
func (s *HTTPRateService) Save(ctx context.Context, p rate.Plan) (rate.Plan, error) {
	var dto rateDTO
	var err error
	if p.ID == "" {
		err = s.client.do(ctx, http.MethodPost, "/rates", nil, rateDTO(p), &dto)
	} else {
		err = s.client.do(ctx, http.MethodPut, "/rates/"+url.PathEscape(p.ID), nil, rateDTO(p), &dto)
	}
	if err != nil {
		return rate.Plan{}, err
	}
	return dto.toDomain(), nil
}

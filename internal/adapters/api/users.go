package api

import (
	"context"
	"net/http"
	"net/url"

	"frontdesk/internal/domain/user"
)

// UserService is the staff account surface of the remote user/auth service.
// Passwords never touch this application: Login forwards credentials and the
// remote service does the verifying.
type UserService interface {
	Login(ctx context.Context, email, password string) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Get(ctx context.Context, id string) (user.User, error)
	Save(ctx context.Context, u user.User) (user.User, error)
	Deactivate(ctx context.Context, id string) error
}

type userDTO struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User userDTO `json:"user"`
}

// HTTPUserService implements UserService over the user service REST API.
type HTTPUserService struct {
	client *Client
}

// NewUserService creates a UserService bound to the given client.
func NewUserService(client *Client) *HTTPUserService {
	return &HTTPUserService{client: client}
}

// Login verifies credentials with the remote auth endpoint.
// POST: returns the authenticated user profile, or ErrUnauthorized
func (s *HTTPUserService) Login(ctx context.Context, email, password string) (user.User, error) {
	var resp loginResponse
	body := loginRequest{Email: email, Password: password}
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return user.User{}, err
	}
	return user.User(resp.User), nil
}

// List fetches all staff accounts.
func (s *HTTPUserService) List(ctx context.Context) ([]user.User, error) {
	var dtos []userDTO
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, nil, &dtos); err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(dtos))
	for _, d := range dtos {
		users = append(users, user.User(d))
	}
	return users, nil
}

// Get fetches one staff account by ID.
func (s *HTTPUserService) Get(ctx context.Context, id string) (user.User, error) {
	var dto userDTO
	if err := s.client.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return user.User{}, err
	}
	return user.User(dto), nil
}

// Save creates the account when it has no ID, updates it otherwise.
// PRE: u has been validated
func (s *HTTPUserService) Save(ctx context.Context, u user.User) (user.User, error) {
	var dto userDTO
	var err error
	if u.ID == "" {
		err = s.client.do(ctx, http.MethodPost, "/users", nil, userDTO(u), &dto)
	} else {
		err = s.client.do(ctx, http.MethodPut, "/users/"+url.PathEscape(u.ID), nil, userDTO(u), &dto)
	}
	if err != nil {
		return user.User{}, err
	}
	return user.User(dto), nil
}

// Deactivate disables a staff account.
func (s *HTTPUserService) Deactivate(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/deactivate", nil, nil, nil)
}

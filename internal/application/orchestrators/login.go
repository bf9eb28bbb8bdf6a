package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"frontdesk/internal/adapters/api"
	"frontdesk/internal/domain/user"
)

// LoginUserService defines the backend call Login needs.
type LoginUserService interface {
	Login(ctx context.Context, email, password string) (user.User, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Users LoginUserService
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBackendDown        = errors.New("the booking system is not reachable right now")
)

// ExecuteLogin validates credentials against the backend and returns user
// info for session creation.
// PRE: none; empty fields fail as invalid credentials
// POST: Returns user info on success; deactivated users cannot log in
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := deps.Users.Login(ctx, input.Email, input.Password)
	if errors.Is(err, api.ErrUnauthorized) {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email)
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		slog.Error("auth_event", "event", "login_error", "email", input.Email, "error", err)
		return LoginResult{}, ErrBackendDown
	}

	if !u.Active {
		slog.Info("auth_event", "event", "login_rejected_inactive", "email", input.Email)
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "email", u.Email, "role", u.Role)
	return LoginResult{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
}

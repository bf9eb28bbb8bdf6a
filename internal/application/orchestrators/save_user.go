package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"frontdesk/internal/domain/user"
)

// UserAdminService defines the backend calls the admin screens need.
type UserAdminService interface {
	Save(ctx context.Context, u user.User) (user.User, error)
	Deactivate(ctx context.Context, id string) error
}

// SaveUserInput carries the admin user form fields.
type SaveUserInput struct {
	ID        string // empty means create
	Email     string
	Name      string
	Role      string
	ActorID   string // the admin performing the change
	ActorRole string
}

// SaveUserDeps holds dependencies for SaveUser.
type SaveUserDeps struct {
	Users UserAdminService
}

// ErrForbidden is returned when the actor's role cannot manage users.
var ErrForbidden = errors.New("only administrators can manage users")

// ExecuteSaveUser creates or updates a staff account through the backend.
// PRE: ActorRole is the session's role, not form data
// POST: The backend holds the new account state
func ExecuteSaveUser(ctx context.Context, input SaveUserInput, deps SaveUserDeps) (user.User, error) {
	actor := user.User{Role: input.ActorRole}
	if !actor.CanManageUsers() {
		return user.User{}, ErrForbidden
	}

	u := user.User{
		ID:     input.ID,
		Email:  input.Email,
		Name:   input.Name,
		Role:   input.Role,
		Active: true,
	}
	if err := u.Validate(); err != nil {
		return user.User{}, err
	}

	stored, err := deps.Users.Save(ctx, u)
	if err != nil {
		return user.User{}, err
	}

	slog.Info("user_saved", "user_id", stored.ID, "email", stored.Email, "role", stored.Role, "actor", input.ActorID)
	return stored, nil
}

// DeactivateUserInput carries input for the deactivate orchestrator.
type DeactivateUserInput struct {
	UserID    string
	ActorID   string
	ActorRole string
}

// ExecuteDeactivateUser disables a staff account.
// PRE: ActorRole is the session's role, not form data
// POST: The account can no longer log in; admins cannot deactivate themselves
func ExecuteDeactivateUser(ctx context.Context, input DeactivateUserInput, deps SaveUserDeps) error {
	actor := user.User{Role: input.ActorRole}
	if !actor.CanManageUsers() {
		return ErrForbidden
	}
	if input.UserID == "" {
		return errors.New("a user must be selected")
	}
	if input.UserID == input.ActorID {
		return errors.New("you cannot deactivate your own account")
	}

	if err := deps.Users.Deactivate(ctx, input.UserID); err != nil {
		return err
	}

	slog.Info("user_deactivated", "user_id", input.UserID, "actor", input.ActorID)
	return nil
}

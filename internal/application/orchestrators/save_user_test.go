package orchestrators

import (
	"context"
	"errors"
	"testing"

	"frontdesk/internal/domain/user"
)

type recordingUserAdmin struct {
	saved       []user.User
	deactivated []string
}

func (r *recordingUserAdmin) Save(_ context.Context, u user.User) (user.User, error) {
	u.ID = "u-new"
	r.saved = append(r.saved, u)
	return u, nil
}

func (r *recordingUserAdmin) Deactivate(_ context.Context, id string) error {
	r.deactivated = append(r.deactivated, id)
	return nil
}

// TestExecuteSaveUser_RequiresAdmin verifies the role gate holds regardless of form input.
func TestExecuteSaveUser_RequiresAdmin(t *testing.T) {
	admin := &recordingUserAdmin{}

	_, err := ExecuteSaveUser(context.Background(), SaveUserInput{
		Email:     "new@hotel.test",
		Name:      "New Staff",
		Role:      user.RoleReceptionist,
		ActorRole: user.RoleReceptionist,
	}, SaveUserDeps{Users: admin})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if len(admin.saved) != 0 {
		t.Errorf("saved=%d, want nothing written", len(admin.saved))
	}
}

// TestExecuteSaveUser_CreatesActiveAccount verifies the happy path.
func TestExecuteSaveUser_CreatesActiveAccount(t *testing.T) {
	admin := &recordingUserAdmin{}

	stored, err := ExecuteSaveUser(context.Background(), SaveUserInput{
		Email:     "new@hotel.test",
		Name:      "New Staff",
		Role:      user.RoleManager,
		ActorID:   "u-admin",
		ActorRole: user.RoleAdmin,
	}, SaveUserDeps{Users: admin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Active {
		t.Error("new accounts should start active")
	}
	if stored.Role != user.RoleManager {
		t.Errorf("role = %s, want manager", stored.Role)
	}
}

// TestExecuteDeactivateUser_BlocksSelf verifies an admin cannot lock themselves out.
func TestExecuteDeactivateUser_BlocksSelf(t *testing.T) {
	admin := &recordingUserAdmin{}

	err := ExecuteDeactivateUser(context.Background(), DeactivateUserInput{
		UserID:    "u-admin",
		ActorID:   "u-admin",
		ActorRole: user.RoleAdmin,
	}, SaveUserDeps{Users: admin})
	if err == nil {
		t.Fatal("expected self-deactivation to be rejected")
	}
	if len(admin.deactivated) != 0 {
		t.Errorf("deactivated=%v, want none", admin.deactivated)
	}
}

// TestExecuteDeactivateUser_Deactivates verifies the call reaches the backend.
func TestExecuteDeactivateUser_Deactivates(t *testing.T) {
	admin := &recordingUserAdmin{}

	err := ExecuteDeactivateUser(context.Background(), DeactivateUserInput{
		UserID:    "u-2",
		ActorID:   "u-admin",
		ActorRole: user.RoleAdmin,
	}, SaveUserDeps{Users: admin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(admin.deactivated) != 1 || admin.deactivated[0] != "u-2" {
		t.Errorf("deactivated=%v, want [u-2]", admin.deactivated)
	}
}

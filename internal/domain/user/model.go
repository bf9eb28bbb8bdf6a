package user

import (
	"errors"
	"strings"
)

// Role constants for staff accounts managed through the remote user service.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
)

// Roles lists the assignable roles in display order.
var Roles = []string{RoleAdmin, RoleManager, RoleReceptionist}

// ValidRole reports whether r is an assignable role.
func ValidRole(r string) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is a staff account record from the user service.
type User struct {
	ID     string
	Email  string
	Name   string
	Role   string
	Active bool
}

// Validate checks the user's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return errors.New("user email is not a valid address")
	}
	if u.Name == "" {
		return errors.New("user name cannot be empty")
	}
	if !ValidRole(u.Role) {
		return errors.New("user role must be admin, manager, or receptionist")
	}
	return nil
}

// CanManageUsers reports whether the role may use the admin user screens.
func (u *User) CanManageUsers() bool {
	return u.Role == RoleAdmin
}

package guest

import (
	"errors"
	"strings"
)

// Guest is a guest profile record from the backend.
type Guest struct {
	ID    string
	Name  string
	Email string
	Phone string
	Notes string
}

// Validate checks the guest's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (g *Guest) Validate() error {
	if g.Name == "" {
		return errors.New("guest name cannot be empty")
	}
	if g.Email != "" && !strings.Contains(g.Email, "@") {
		return errors.New("guest email is not a valid address")
	}
	return nil
}

package prefs

import (
	"context"

	domain "frontdesk/internal/domain/prefs"
)

// Store persists per-user UI preferences.
type Store interface {
	GetByUserID(ctx context.Context, userID string) (domain.Prefs, error)
	Save(ctx context.Context, value domain.Prefs) error
}

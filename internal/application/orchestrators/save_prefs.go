package orchestrators

import (
	"context"
	"errors"

	"frontdesk/internal/domain/prefs"
)

// PrefsStore defines the store interface needed by SavePrefs.
type PrefsStore interface {
	Save(ctx context.Context, value prefs.Prefs) error
}

// SavePrefsInput carries the settings form fields.
type SavePrefsInput struct {
	UserID      string
	DefaultView string
	PerPage     int
}

// SavePrefsDeps holds dependencies for SavePrefs.
type SavePrefsDeps struct {
	PrefsStore PrefsStore
}

// ExecuteSavePrefs validates and persists a user's UI preferences.
// PRE: UserID identifies the signed-in user
// POST: Preferences are stored locally; the backend is never involved
func ExecuteSavePrefs(ctx context.Context, input SavePrefsInput, deps SavePrefsDeps) error {
	if input.UserID == "" {
		return errors.New("preferences need a signed-in user")
	}
	if input.DefaultView != "week" && input.DefaultView != "month" {
		return errors.New("default view must be week or month")
	}
	if input.PerPage < 5 || input.PerPage > 100 {
		return errors.New("page size must be between 5 and 100")
	}

	return deps.PrefsStore.Save(ctx, prefs.Prefs{
		UserID:      input.UserID,
		DefaultView: input.DefaultView,
		PerPage:     input.PerPage,
	})
}

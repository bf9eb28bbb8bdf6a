package prefs

// Prefs are per-user UI preferences owned by this app, not the backend.
type Prefs struct {
	UserID      string
	DefaultView string // "week" or "month"
	PerPage     int
}

// Defaults returns the preferences used before a user saves any.
func Defaults(userID string) Prefs {
	return Prefs{UserID: userID, DefaultView: "month", PerPage: 20}
}

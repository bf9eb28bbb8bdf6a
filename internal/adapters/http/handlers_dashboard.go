package web

import (
	"net/http"

	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/application/orchestrators"
	"frontdesk/internal/application/projections"
)

// handleDashboard renders the landing page with today's numbers.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches everything unrouted.
	if r.URL.Path != "/" && r.URL.Path != "/dashboard" {
		http.NotFound(w, r)
		return
	}

	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		Today: timeNow(),
	}, projections.GetDashboardDeps{
		Bookings:      services.Bookings,
		Rooms:         services.Rooms,
		Invoices:      services.Invoices,
		ActivityStore: stores.ActivityStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Dashboard": result,
	})
}

// handleSettings renders and saves per-user UI preferences.
func handleSettings(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		err := orchestrators.ExecuteSavePrefs(r.Context(), orchestrators.SavePrefsInput{
			UserID:      sess.UserID,
			DefaultView: r.FormValue("default_view"),
			PerPage:     formInt(r, "per_page", 0),
		}, orchestrators.SavePrefsDeps{PrefsStore: stores.PrefsStore})
		if err != nil {
			prefs, _ := stores.PrefsStore.GetByUserID(r.Context(), sess.UserID)
			w.WriteHeader(http.StatusBadRequest)
			renderTemplate(w, r, "settings.html", map[string]any{
				"Prefs": prefs,
				"Error": err.Error(),
			})
			return
		}
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	prefs, err := stores.PrefsStore.GetByUserID(r.Context(), sess.UserID)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "settings.html", map[string]any{"Prefs": prefs})
}

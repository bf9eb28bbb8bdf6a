package web

import (
	"net/http"
	"net/url"
	"strings"

	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/application/orchestrators"
	"frontdesk/internal/application/projections"
)

// handleFrontDesk renders the calendar. The view parameter picks week or
// month; the date parameter anchors the period and defaults to today.
func handleFrontDesk(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		// Fall back to the signed-in user's preferred granularity.
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			if prefs, err := stores.PrefsStore.GetByUserID(r.Context(), sess.UserID); err == nil {
				view = prefs.DefaultView
			}
		}
	}

	result, err := projections.QueryGetFrontDesk(r.Context(), projections.GetFrontDeskQuery{
		View:  view,
		Date:  r.URL.Query().Get("date"),
		Today: timeNow(),
	}, projections.GetFrontDeskDeps{Bookings: services.Bookings})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "frontdesk.html", map[string]any{
		"Result":  result,
		"IsMonth": result.View.Granularity == "month",
		"Error":   r.URL.Query().Get("error"),
	})
}

// handleFrontDeskAction processes check-in, check-out, and cancel posted from
// the calendar's inline forms, then redirects back to the posting view.
func handleFrontDeskAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	redirectTo := r.FormValue("redirectTo")
	if redirectTo == "" {
		redirectTo = "/frontdesk"
	}

	_, err := orchestrators.ExecuteBookingAction(r.Context(), orchestrators.BookingActionInput{
		Action:     r.FormValue("action"),
		BookingID:  r.FormValue("reservationId"),
		ActorEmail: sess.Email,
	}, orchestrators.BookingActionDeps{
		Bookings:      services.Bookings,
		ActivityStore: stores.ActivityStore,
	})
	if err != nil {
		// Surface the failure inline on the calendar rather than a dead end.
		sep := "?"
		if strings.Contains(redirectTo, "?") {
			sep = "&"
		}
		safeRedirect(w, r, redirectTo+sep+"error="+url.QueryEscape(err.Error()), "/frontdesk")
		return
	}

	safeRedirect(w, r, redirectTo, "/frontdesk")
}

package web

import (
	"net/http"

	"frontdesk/internal/adapters/http/middleware"
	activityStore "frontdesk/internal/adapters/storage/activity"
	"frontdesk/internal/application/orchestrators"
	"frontdesk/internal/domain/activity"
	"frontdesk/internal/domain/user"
)

// handleAdminUsers renders the staff account list.
func handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := services.Users.List(r.Context())
	if err != nil {
		renderTemplate(w, r, "admin_users.html", map[string]any{"BackendDown": true})
		return
	}

	renderTemplate(w, r, "admin_users.html", map[string]any{
		"Users": users,
		"Error": r.URL.Query().Get("error"),
	})
}

// handleAdminUserForm renders the staff account editor (GET) and saves it (POST).
func handleAdminUserForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := middleware.GetSessionFromContext(ctx)

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		input := orchestrators.SaveUserInput{
			ID:        r.FormValue("id"),
			Email:     r.FormValue("email"),
			Name:      r.FormValue("name"),
			Role:      r.FormValue("role"),
			ActorID:   sess.UserID,
			ActorRole: sess.Role,
		}

		_, err := orchestrators.ExecuteSaveUser(ctx, input, orchestrators.SaveUserDeps{
			Users: services.Users,
		})
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			renderTemplate(w, r, "user_form.html", map[string]any{
				"User":   user.User{ID: input.ID, Email: input.Email, Name: input.Name, Role: input.Role},
				"Roles":  user.Roles,
				"IsEdit": input.ID != "",
				"Error":  err.Error(),
			})
			return
		}

		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	var u user.User
	if id := r.URL.Query().Get("id"); id != "" {
		var err error
		u, err = services.Users.Get(ctx, id)
		if err != nil {
			backendError(w, err)
			return
		}
	}
	renderTemplate(w, r, "user_form.html", map[string]any{
		"User": u, "Roles": user.Roles, "IsEdit": u.ID != "",
	})
}

// handleAdminUserDeactivate disables a staff account.
func handleAdminUserDeactivate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	err := orchestrators.ExecuteDeactivateUser(r.Context(), orchestrators.DeactivateUserInput{
		UserID:    r.FormValue("id"),
		ActorID:   sess.UserID,
		ActorRole: sess.Role,
	}, orchestrators.SaveUserDeps{Users: services.Users})
	if err != nil {
		safeRedirect(w, r, "/admin/users?error="+queryEscape(err.Error()), "/admin/users")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// handleAdminActivity renders the local front-desk activity log.
func handleAdminActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := activityStore.ListFilter{
		ActorEmail: r.URL.Query().Get("actor"),
		Action:     r.URL.Query().Get("action"),
		Limit:      200,
	}

	entries, err := stores.ActivityStore.List(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}
	total, err := stores.ActivityStore.Count(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin_activity.html", map[string]any{
		"Entries": entries,
		"Total":   total,
		"Actor":   filter.ActorEmail,
		"Action":  filter.Action,
		"Actions": []string{activity.ActionCheckIn, activity.ActionCheckOut, activity.ActionCancel},
	})
}

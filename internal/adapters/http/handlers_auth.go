package web

import (
	"errors"
	"net/http"

	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/application/orchestrators"
)

// handleLogin renders the sign-in form and processes credentials.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == "GET" {
		renderTemplate(w, r, "login.html", map[string]any{"Email": "", "Error": ""})
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}, orchestrators.LoginDeps{Users: services.Users})
	if err != nil {
		msg := "Invalid email or password."
		if errors.Is(err, orchestrators.ErrBackendDown) {
			msg = "The booking system is not reachable right now. Try again shortly."
		}
		w.WriteHeader(http.StatusUnauthorized)
		renderTemplate(w, r, "login.html", map[string]any{
			"Error": msg,
			"Email": r.FormValue("email"),
		})
		return
	}

	token, err := sessions.Create(result.UserID, result.Email, result.Name, result.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout clears the session and returns to the sign-in page.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("frontdesk_session"); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

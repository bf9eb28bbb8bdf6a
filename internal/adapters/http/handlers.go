package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"frontdesk/internal/adapters/api"
	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// backendError maps backend sentinel errors to user-facing responses. List
// pages should prefer rendering with a warning over this hard failure.
func backendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, api.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, api.ErrUnauthorized):
		http.Error(w, "the booking system rejected this session", http.StatusBadGateway)
	case errors.Is(err, api.ErrUnavailable):
		http.Error(w, "the booking system is not reachable right now", http.StatusBadGateway)
	default:
		internalError(w, err)
	}
}

// templatesDir is relative to the process working directory. Tests override
// it because `go test` runs from the package directory.
var templatesDir = "internal/adapters/http/templates"

// statusLabels maps backend booking statuses to badge text.
var statusLabels = map[booking.Status]string{
	booking.StatusPending:    "Pending",
	booking.StatusConfirmed:  "Confirmed",
	booking.StatusCheckedIn:  "In house",
	booking.StatusCheckedOut: "Checked out",
	booking.StatusCancelled:  "Cancelled",
	booking.StatusNoShow:     "No show",
}

// roomStatusLabels maps housekeeping statuses to column headings.
var roomStatusLabels = map[string]string{
	room.StatusAvailable:    "Available",
	room.StatusReserved:     "Reserved",
	room.StatusOccupied:     "Occupied",
	room.StatusCleaning:     "Cleaning",
	room.StatusOutOfService: "Out of service",
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	name := ""
	if ok {
		role = sess.Role
		email = sess.Email
		name = sess.Name
	}

	funcMap := template.FuncMap{
		"hotelName":    func() string { return HotelName },
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"currentName":  func() string { return name },
		"isLoggedIn":   func() bool { return role != "" },
		"isAdmin":      func() bool { return role == user.RoleAdmin },
		"canManage":    func() bool { return role == user.RoleAdmin || role == user.RoleManager },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"statusLabel": func(s booking.Status) string {
			if label, ok := statusLabels[s]; ok {
				return label
			}
			return "Unknown"
		},
		"statusClass": func(s booking.Status) string {
			return "status-" + strings.ToLower(string(s))
		},
		"roomStatusLabel": func(s string) string {
			if label, ok := roomStatusLabels[s]; ok {
				return label
			}
			return s
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"paginationQuery": func(page int, sort, dir, search, status string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if sort != "" {
				q += "&sort=" + url.QueryEscape(sort)
			}
			if dir != "" {
				q += "&dir=" + url.QueryEscape(dir)
			}
			if search != "" {
				q += "&q=" + url.QueryEscape(search)
			}
			if status != "" {
				q += "&status=" + url.QueryEscape(status)
			}
			if perPage > 0 {
				q += fmt.Sprintf("&per_page=%d", perPage)
			}
			return template.URL(q)
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// queryEscape is a short alias used when building redirect targets.
func queryEscape(s string) string {
	return url.QueryEscape(s)
}

// formInt parses an integer form value, falling back to def.
func formInt(r *http.Request, key string, def int) int {
	v := r.FormValue(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// safeRedirect sends the browser back to an in-app path. Anything absolute or
// scheme-relative falls back to the default so the redirect target cannot
// leave the app.
func safeRedirect(w http.ResponseWriter, r *http.Request, target, fallback string) {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

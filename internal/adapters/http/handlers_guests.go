package web

import (
	"net/http"
	"sort"

	"frontdesk/internal/application/listutil"
	"frontdesk/internal/domain/guest"
)

// handleGuests renders the searchable guest directory.
func handleGuests(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := listutil.Parse(r.URL.Query(), []string{"name", "email"}, nil)

	guests, err := services.Guests.List(r.Context())
	if err != nil {
		renderTemplate(w, r, "guests.html", map[string]any{
			"BackendDown": true,
			"Params":      params,
			"Page":        listutil.NewPageInfo(1, params.PerPage, 0),
		})
		return
	}

	if params.Search != "" {
		filtered := guests[:0]
		for _, g := range guests {
			if listutil.MatchesSearch(params.Search, g.Name, g.Email, g.Phone) {
				filtered = append(filtered, g)
			}
		}
		guests = filtered
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].Name < guests[j].Name })

	page := listutil.NewPageInfo(params.Page, params.PerPage, len(guests))
	renderTemplate(w, r, "guests.html", map[string]any{
		"Guests": listutil.Page(guests, page),
		"Page":   page,
		"Params": params,
	})
}

// handleGuestForm renders the guest editor (GET) and saves it (POST).
func handleGuestForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		g := guest.Guest{
			ID:    r.FormValue("id"),
			Name:  r.FormValue("name"),
			Email: r.FormValue("email"),
			Phone: r.FormValue("phone"),
			Notes: r.FormValue("notes"),
		}

		if err := g.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			renderTemplate(w, r, "guest_form.html", map[string]any{
				"Guest": g, "IsEdit": g.ID != "", "Error": err.Error(),
			})
			return
		}
		if _, err := services.Guests.Save(ctx, g); err != nil {
			backendError(w, err)
			return
		}

		http.Redirect(w, r, "/guests", http.StatusSeeOther)
		return
	}

	var g guest.Guest
	if id := r.URL.Query().Get("id"); id != "" {
		var err error
		g, err = services.Guests.Get(ctx, id)
		if err != nil {
			backendError(w, err)
			return
		}
	}
	renderTemplate(w, r, "guest_form.html", map[string]any{"Guest": g, "IsEdit": g.ID != ""})
}

package web

import (
	"net/http"
	"sort"

	"frontdesk/internal/domain/rate"
)

// handleRates renders the rate plan list.
func handleRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	plans, err := services.Rates.List(r.Context())
	if err != nil {
		renderTemplate(w, r, "rates.html", map[string]any{"BackendDown": true})
		return
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })

	renderTemplate(w, r, "rates.html", map[string]any{"Plans": plans})
}

// handleRateForm renders the rate plan editor (GET) and saves it (POST).
func handleRateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		p := rate.Plan{
			ID:          r.FormValue("id"),
			Name:        r.FormValue("name"),
			RoomType:    r.FormValue("room_type"),
			NightlyRate: formInt(r, "nightly_rate", 0),
			Currency:    r.FormValue("currency"),
			Description: r.FormValue("description"),
			Active:      r.FormValue("active") == "on",
		}

		if err := p.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			renderTemplate(w, r, "rate_form.html", map[string]any{
				"Plan": p, "IsEdit": p.ID != "", "Error": err.Error(),
			})
			return
		}
		if _, err := services.Rates.Save(ctx, p); err != nil {
			backendError(w, err)
			return
		}

		http.Redirect(w, r, "/rates", http.StatusSeeOther)
		return
	}

	var p rate.Plan
	if id := r.URL.Query().Get("id"); id != "" {
		var err error
		p, err = services.Rates.Get(ctx, id)
		if err != nil {
			backendError(w, err)
			return
		}
	}
	renderTemplate(w, r, "rate_form.html", map[string]any{"Plan": p, "IsEdit": p.ID != ""})
}

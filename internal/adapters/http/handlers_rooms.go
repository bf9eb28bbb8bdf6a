package web

import (
	"net/http"
	"sort"

	"frontdesk/internal/application/orchestrators"
	"frontdesk/internal/application/projections"
	domainRoom "frontdesk/internal/domain/room"
)

// handleRooms renders the room inventory list.
func handleRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rooms, err := services.Rooms.List(r.Context())
	if err != nil {
		renderTemplate(w, r, "rooms.html", map[string]any{"BackendDown": true})
		return
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })

	renderTemplate(w, r, "rooms.html", map[string]any{"Rooms": rooms})
}

// handleRoomBoard renders the status board, one column per housekeeping state.
func handleRoomBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetRoomBoard(r.Context(), projections.GetRoomBoardQuery{
		Today: timeNow(),
	}, projections.GetRoomBoardDeps{
		Rooms:    services.Rooms,
		Bookings: services.Bookings,
	})
	if err != nil {
		renderTemplate(w, r, "room_board.html", map[string]any{"BackendDown": true})
		return
	}

	renderTemplate(w, r, "room_board.html", map[string]any{
		"Board": result,
		"Error": r.URL.Query().Get("error"),
	})
}

// handleRoomMove moves a room to another board column.
func handleRoomMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteMoveRoom(r.Context(), orchestrators.MoveRoomInput{
		RoomID: r.FormValue("room_id"),
		Status: r.FormValue("status"),
	}, orchestrators.MoveRoomDeps{Rooms: services.Rooms})
	if err != nil {
		safeRedirect(w, r, "/rooms/board?error="+queryEscape(err.Error()), "/rooms/board")
		return
	}

	http.Redirect(w, r, "/rooms/board", http.StatusSeeOther)
}

// handleRoomForm renders the room editor (GET) and saves it (POST).
func handleRoomForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		rm := domainRoom.Room{
			ID:          r.FormValue("id"),
			Number:      r.FormValue("number"),
			Type:        r.FormValue("type"),
			Floor:       formInt(r, "floor", 0),
			NightlyRate: formInt(r, "nightly_rate", 0),
			Status:      r.FormValue("status"),
			Description: r.FormValue("description"),
		}
		if rm.Status == "" {
			rm.Status = domainRoom.StatusAvailable
		}

		if err := rm.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			renderTemplate(w, r, "room_form.html", map[string]any{
				"Room": rm, "Statuses": domainRoom.BoardColumns, "IsEdit": rm.ID != "", "Error": err.Error(),
			})
			return
		}
		if _, err := services.Rooms.Save(ctx, rm); err != nil {
			backendError(w, err)
			return
		}

		http.Redirect(w, r, "/rooms", http.StatusSeeOther)
		return
	}

	var rm domainRoom.Room
	if id := r.URL.Query().Get("id"); id != "" {
		var err error
		rm, err = services.Rooms.Get(ctx, id)
		if err != nil {
			backendError(w, err)
			return
		}
	}
	renderTemplate(w, r, "room_form.html", map[string]any{
		"Room": rm, "Statuses": domainRoom.BoardColumns, "IsEdit": rm.ID != "",
	})
}

package web

import (
	"errors"
	"net/http"

	"frontdesk/internal/adapters/api"
	"frontdesk/internal/application/listutil"
	"frontdesk/internal/application/orchestrators"
	"frontdesk/internal/application/projections"
	"frontdesk/internal/domain/booking"
)

// handleBookings renders the searchable booking list.
func handleBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := listutil.Parse(r.URL.Query(), projections.BookingSortColumns, []string{"status"})

	result, err := projections.QueryGetBookingList(r.Context(), projections.GetBookingListQuery{
		Params: params,
	}, projections.GetBookingListDeps{Bookings: services.Bookings})
	if err != nil {
		// Render the page with a warning instead of failing the whole screen.
		renderTemplate(w, r, "bookings.html", map[string]any{
			"Result":      projections.GetBookingListResult{Params: params, Page: listutil.NewPageInfo(1, params.PerPage, 0)},
			"BackendDown": true,
		})
		return
	}

	renderTemplate(w, r, "bookings.html", map[string]any{
		"Result":   result,
		"Statuses": []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCheckedIn, booking.StatusCheckedOut, booking.StatusCancelled, booking.StatusNoShow},
	})
}

// handleBookingForm renders the booking editor (GET) and saves it (POST).
// /bookings/new creates; /bookings/edit?id=... updates.
func handleBookingForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		input := orchestrators.SaveBookingInput{
			ID:           r.FormValue("id"),
			GuestID:      r.FormValue("guest_id"),
			RoomID:       r.FormValue("room_id"),
			CheckInDate:  r.FormValue("check_in_date"),
			CheckOutDate: r.FormValue("check_out_date"),
			Adults:       formInt(r, "adults", 1),
			Children:     formInt(r, "children", 0),
			Notes:        r.FormValue("notes"),
			Status:       r.FormValue("status"),
		}

		_, err := orchestrators.ExecuteSaveBooking(ctx, input, orchestrators.SaveBookingDeps{
			Bookings: services.Bookings,
		})
		if err != nil {
			msg := err.Error()
			if errors.Is(err, api.ErrConflict) {
				msg = "That room is already booked for those dates."
			}
			w.WriteHeader(http.StatusBadRequest)
			renderBookingForm(w, r, booking.Booking{
				ID:           input.ID,
				GuestID:      input.GuestID,
				RoomID:       input.RoomID,
				CheckInDate:  input.CheckInDate,
				CheckOutDate: input.CheckOutDate,
				Adults:       input.Adults,
				Children:     input.Children,
				Notes:        input.Notes,
				Status:       booking.ParseStatus(input.Status),
			}, msg)
			return
		}

		http.Redirect(w, r, "/bookings", http.StatusSeeOther)
		return
	}

	var b booking.Booking
	if id := r.URL.Query().Get("id"); id != "" {
		var err error
		b, err = services.Bookings.Get(ctx, id)
		if err != nil {
			backendError(w, err)
			return
		}
	}
	renderBookingForm(w, r, b, "")
}

// renderBookingForm loads the guest and room pickers and renders the editor.
func renderBookingForm(w http.ResponseWriter, r *http.Request, b booking.Booking, errMsg string) {
	ctx := r.Context()

	guests, err := services.Guests.List(ctx)
	if err != nil {
		guests = nil
	}
	rooms, err := services.Rooms.List(ctx)
	if err != nil {
		rooms = nil
	}

	renderTemplate(w, r, "booking_form.html", map[string]any{
		"Booking":  b,
		"Guests":   guests,
		"Rooms":    rooms,
		"Statuses": []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCheckedIn, booking.StatusCheckedOut, booking.StatusCancelled, booking.StatusNoShow},
		"IsEdit":   b.ID != "",
		"Error":    errMsg,
	})
}

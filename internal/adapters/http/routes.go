package web

import (
	"net/http"

	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/domain/user"
)

// registerRoutes attaches every page and action to the mux. Auth context is
// provided by the middleware chain; gating happens per route here.
func registerRoutes(mux *http.ServeMux) {
	staff := middleware.RequireAuth
	admin := middleware.RequireRole(user.RoleAdmin)
	managers := middleware.RequireRole(user.RoleAdmin, user.RoleManager)

	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	mux.Handle("/", staff(http.HandlerFunc(handleDashboard)))
	mux.Handle("/dashboard", staff(http.HandlerFunc(handleDashboard)))
	mux.Handle("/frontdesk", staff(http.HandlerFunc(handleFrontDesk)))
	mux.Handle("/frontdesk/action", staff(http.HandlerFunc(handleFrontDeskAction)))

	mux.Handle("/bookings", staff(http.HandlerFunc(handleBookings)))
	mux.Handle("/bookings/new", staff(http.HandlerFunc(handleBookingForm)))
	mux.Handle("/bookings/edit", staff(http.HandlerFunc(handleBookingForm)))

	mux.Handle("/rooms", staff(http.HandlerFunc(handleRooms)))
	mux.Handle("/rooms/board", staff(http.HandlerFunc(handleRoomBoard)))
	mux.Handle("/rooms/board/move", staff(http.HandlerFunc(handleRoomMove)))
	mux.Handle("/rooms/edit", managers(http.HandlerFunc(handleRoomForm)))

	mux.Handle("/rates", staff(http.HandlerFunc(handleRates)))
	mux.Handle("/rates/edit", managers(http.HandlerFunc(handleRateForm)))

	mux.Handle("/guests", staff(http.HandlerFunc(handleGuests)))
	mux.Handle("/guests/edit", staff(http.HandlerFunc(handleGuestForm)))

	mux.Handle("/invoices", staff(http.HandlerFunc(handleInvoices)))
	mux.Handle("/invoices/view", staff(http.HandlerFunc(handleInvoiceDetail)))
	mux.Handle("/invoices/email", staff(http.HandlerFunc(handleInvoiceEmail)))

	mux.Handle("/settings", staff(http.HandlerFunc(handleSettings)))

	mux.Handle("/admin/users", admin(http.HandlerFunc(handleAdminUsers)))
	mux.Handle("/admin/users/edit", admin(http.HandlerFunc(handleAdminUserForm)))
	mux.Handle("/admin/users/deactivate", admin(http.HandlerFunc(handleAdminUserDeactivate)))
	mux.Handle("/admin/activity", admin(http.HandlerFunc(handleAdminActivity)))
}
